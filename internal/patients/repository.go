package patients

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// repositoryDB defines the database interface needed by Repository
type repositoryDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Filter narrows a patient listing.
type Filter struct {
	Status Status // empty means all
	Search string // case-insensitive name match
}

// Repository loads patient records scoped to one tenant.
type Repository struct {
	db repositoryDB
}

// NewRepository creates a repository backed by a pgx pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	if pool == nil {
		panic("patients: pgx pool required")
	}
	return &Repository{db: pool}
}

// NewRepositoryWithDB allows injecting a mock database for testing.
func NewRepositoryWithDB(db repositoryDB) *Repository {
	return &Repository{db: db}
}

const patientColumns = `id, name, date_of_birth, insurance, last_visit, email, phone, address, status`

// ListForTenant returns the tenant's patients ordered by name.
func (r *Repository) ListForTenant(ctx context.Context, tenantID string, filter Filter) ([]Patient, error) {
	q := `SELECT ` + patientColumns + ` FROM patients WHERE tenant_id = $1`
	args := []any{tenantID}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		q += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	q += " ORDER BY name"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("patients: list: %w", err)
	}
	defer rows.Close()

	var out []Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.DateOfBirth, &p.Insurance, &p.LastVisit,
			&p.Email, &p.Phone, &p.Address, &p.Status); err != nil {
			return nil, fmt.Errorf("patients: scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("patients: iterate: %w", err)
	}
	return out, nil
}

// GetForTenant loads one patient. Returns ErrPatientNotFound for unknown
// ids.
func (r *Repository) GetForTenant(ctx context.Context, tenantID, patientID string) (*Patient, error) {
	q := `SELECT ` + patientColumns + ` FROM patients WHERE tenant_id = $1 AND id = $2`

	var p Patient
	err := r.db.QueryRow(ctx, q, tenantID, patientID).
		Scan(&p.ID, &p.Name, &p.DateOfBirth, &p.Insurance, &p.LastVisit,
			&p.Email, &p.Phone, &p.Address, &p.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("patients: load: %w", err)
	}
	return &p, nil
}
