package billing

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

// Repository loads invoices scoped to one tenant.
type Repository struct {
	db repositoryDB
}

// NewRepository creates a repository backed by a pgx pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	if pool == nil {
		panic("billing: pgx pool required")
	}
	return &Repository{db: pool}
}

// NewRepositoryWithDB allows injecting a mock database for testing.
func NewRepositoryWithDB(db repositoryDB) *Repository {
	return &Repository{db: db}
}

// ListForTenant returns the tenant's invoices, newest first. An empty
// status lists everything.
func (r *Repository) ListForTenant(ctx context.Context, tenantID string, status InvoiceStatus) ([]Invoice, error) {
	q := `SELECT id, patient_id, patient_name, amount_cents, status, invoice_date, due_date
		FROM invoices WHERE tenant_id = $1`
	args := []any{tenantID}

	if status != "" {
		args = append(args, string(status))
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	q += " ORDER BY invoice_date DESC, id"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("billing: list invoices: %w", err)
	}
	defer rows.Close()

	var out []Invoice
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(&inv.ID, &inv.PatientID, &inv.PatientName,
			&inv.AmountCents, &inv.Status, &inv.Date, &inv.DueDate); err != nil {
			return nil, fmt.Errorf("billing: scan invoice: %w", err)
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("billing: iterate invoices: %w", err)
	}
	return out, nil
}
