package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// repositoryDB defines the database interface needed by Repository
type repositoryDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repository loads appointments scoped to one tenant.
type Repository struct {
	db repositoryDB
}

// NewRepository creates a repository backed by a pgx pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	if pool == nil {
		panic("schedule: pgx pool required")
	}
	return &Repository{db: pool}
}

// NewRepositoryWithDB allows injecting a mock database for testing.
func NewRepositoryWithDB(db repositoryDB) *Repository {
	return &Repository{db: db}
}

// ListRange returns the tenant's appointments with visit dates inside
// [from, to], ordered by date, time, room.
func (r *Repository) ListRange(ctx context.Context, tenantID string, from, to time.Time) ([]Appointment, error) {
	const q = `SELECT id, patient_id, patient_name, dentist, room, visit_date, visit_time, status, visit_type
		FROM appointments
		WHERE tenant_id = $1 AND visit_date >= $2 AND visit_date <= $3
		ORDER BY visit_date, visit_time, room`

	rows, err := r.db.Query(ctx, q, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("schedule: list range: %w", err)
	}
	defer rows.Close()

	var appts []Appointment
	for rows.Next() {
		var apt Appointment
		var visitDate time.Time
		if err := rows.Scan(&apt.ID, &apt.PatientID, &apt.PatientName, &apt.Dentist,
			&apt.Room, &visitDate, &apt.Time, &apt.Status, &apt.Type); err != nil {
			return nil, fmt.Errorf("schedule: scan appointment: %w", err)
		}
		apt.Date = visitDate.Format(DateLayout)
		appts = append(appts, apt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("schedule: iterate appointments: %w", err)
	}
	return appts, nil
}
