package imaging

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// repositoryDB defines the database interface needed by Repository
type repositoryDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repository loads x-ray records scoped to one tenant.
type Repository struct {
	db repositoryDB
}

// NewRepository creates a repository backed by a pgx pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	if pool == nil {
		panic("imaging: pgx pool required")
	}
	return &Repository{db: pool}
}

// NewRepositoryWithDB allows injecting a mock database for testing.
func NewRepositoryWithDB(db repositoryDB) *Repository {
	return &Repository{db: db}
}

// ListForTenant returns the tenant's x-rays, most recent first.
func (r *Repository) ListForTenant(ctx context.Context, tenantID string) ([]XRay, error) {
	q := `SELECT id, patient_id, patient_name, date_taken, next_required, xray_type
		FROM xrays WHERE tenant_id = $1 ORDER BY date_taken DESC, id`

	rows, err := r.db.Query(ctx, q, tenantID)
	if err != nil {
		return nil, fmt.Errorf("imaging: list xrays: %w", err)
	}
	defer rows.Close()

	var out []XRay
	for rows.Next() {
		var x XRay
		if err := rows.Scan(&x.ID, &x.PatientID, &x.PatientName,
			&x.DateTaken, &x.NextRequired, &x.Type); err != nil {
			return nil, fmt.Errorf("imaging: scan xray: %w", err)
		}
		out = append(out, x)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("imaging: iterate xrays: %w", err)
	}
	return out, nil
}
