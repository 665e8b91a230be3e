package treatment

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

// Repository loads treatment plans scoped to one tenant.
type Repository struct {
	db repositoryDB
}

// NewRepository creates a repository backed by a pgx pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	if pool == nil {
		panic("treatment: pgx pool required")
	}
	return &Repository{db: pool}
}

// NewRepositoryWithDB allows injecting a mock database for testing.
func NewRepositoryWithDB(db repositoryDB) *Repository {
	return &Repository{db: db}
}

// ListForTenant returns the tenant's plans without their items, newest
// first.
func (r *Repository) ListForTenant(ctx context.Context, tenantID string) ([]Plan, error) {
	const q = `SELECT id, patient_id, patient_name, status, total_cost_cents, urgency, created_date
		FROM treatment_plans
		WHERE tenant_id = $1
		ORDER BY created_date DESC, id`

	rows, err := r.db.Query(ctx, q, tenantID)
	if err != nil {
		return nil, fmt.Errorf("treatment: list plans: %w", err)
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		var p Plan
		if err := rows.Scan(&p.ID, &p.PatientID, &p.PatientName, &p.Status,
			&p.TotalCostCents, &p.Urgency, &p.CreatedDate); err != nil {
			return nil, fmt.Errorf("treatment: scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("treatment: iterate plans: %w", err)
	}
	return plans, nil
}

// GetForTenant loads one plan with its items. Returns ErrPlanNotFound when
// the id does not exist within the tenant.
func (r *Repository) GetForTenant(ctx context.Context, tenantID, planID string) (*Plan, error) {
	const planQ = `SELECT id, patient_id, patient_name, status, total_cost_cents, urgency, created_date
		FROM treatment_plans
		WHERE tenant_id = $1 AND id = $2`

	var p Plan
	err := r.db.QueryRow(ctx, planQ, tenantID, planID).
		Scan(&p.ID, &p.PatientID, &p.PatientName, &p.Status, &p.TotalCostCents, &p.Urgency, &p.CreatedDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("treatment: load plan: %w", err)
	}

	const itemsQ = `SELECT id, treatment_type, tooth, cost_cents, urgency, status
		FROM treatment_plan_items
		WHERE plan_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, itemsQ, planID)
	if err != nil {
		return nil, fmt.Errorf("treatment: list plan items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.TreatmentType, &item.Tooth,
			&item.CostCents, &item.Urgency, &item.Status); err != nil {
			return nil, fmt.Errorf("treatment: scan plan item: %w", err)
		}
		p.Items = append(p.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("treatment: iterate plan items: %w", err)
	}
	return &p, nil
}
