package clinic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentalcloud/console/internal/tenancy"
	"github.com/dentalcloud/console/pkg/logging"
)

// Stats represents the dashboard summary for one tenant.
type Stats struct {
	TenantID                string `json:"tenant_id"`
	ActivePatients          int64  `json:"active_patients"`
	AppointmentsToday       int64  `json:"appointments_today"`
	ProposedPlans           int64  `json:"proposed_plans"`
	AcceptedPlans           int64  `json:"accepted_plans"`
	AcceptedPlanTotalCents  int64  `json:"accepted_plan_total_cents"`
	OutstandingInvoiceCents int64  `json:"outstanding_invoice_cents"`
	Date                    string `json:"date"`
}

// statsDB defines the database interface needed by StatsRepository
type statsDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StatsRepository queries dashboard metrics from the database.
type StatsRepository struct {
	db statsDB
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	if pool == nil {
		panic("clinic: pgx pool required for stats")
	}
	return &StatsRepository{db: pool}
}

// NewStatsRepositoryWithDB allows injecting a mock database for testing.
func NewStatsRepositoryWithDB(db statsDB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetStats retrieves aggregated dashboard metrics for a tenant. The day
// parameter anchors the "today" figures.
func (r *StatsRepository) GetStats(ctx context.Context, tenantID string, day time.Time) (*Stats, error) {
	stats := &Stats{TenantID: tenantID, Date: day.Format("2006-01-02")}

	patientsQuery := `SELECT COUNT(*) FROM patients WHERE tenant_id = $1 AND status = 'Active'`
	if err := r.db.QueryRow(ctx, patientsQuery, tenantID).Scan(&stats.ActivePatients); err != nil {
		return nil, fmt.Errorf("clinic stats: count patients: %w", err)
	}

	apptsQuery := `SELECT COUNT(*) FROM appointments WHERE tenant_id = $1 AND visit_date = $2`
	if err := r.db.QueryRow(ctx, apptsQuery, tenantID, stats.Date).Scan(&stats.AppointmentsToday); err != nil {
		return nil, fmt.Errorf("clinic stats: count appointments: %w", err)
	}

	proposedQuery := `SELECT COUNT(*) FROM treatment_plans WHERE tenant_id = $1 AND status = 'Proposed'`
	if err := r.db.QueryRow(ctx, proposedQuery, tenantID).Scan(&stats.ProposedPlans); err != nil {
		return nil, fmt.Errorf("clinic stats: count proposed plans: %w", err)
	}

	acceptedQuery := `SELECT COUNT(*), COALESCE(SUM(total_cost_cents), 0) FROM treatment_plans WHERE tenant_id = $1 AND status = 'Accepted'`
	if err := r.db.QueryRow(ctx, acceptedQuery, tenantID).Scan(&stats.AcceptedPlans, &stats.AcceptedPlanTotalCents); err != nil {
		return nil, fmt.Errorf("clinic stats: accepted plans: %w", err)
	}

	invoicesQuery := `SELECT COALESCE(SUM(amount_cents), 0) FROM invoices WHERE tenant_id = $1 AND status != 'Paid'`
	if err := r.db.QueryRow(ctx, invoicesQuery, tenantID).Scan(&stats.OutstandingInvoiceCents); err != nil {
		return nil, fmt.Errorf("clinic stats: sum outstanding: %w", err)
	}

	return stats, nil
}

// StatsHandler provides HTTP endpoints for the dashboard.
type StatsHandler struct {
	repo   *StatsRepository
	logger *logging.Logger

	now func() time.Time
}

// NewStatsHandler creates a new stats HTTP handler.
func NewStatsHandler(repo *StatsRepository, logger *logging.Logger) *StatsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsHandler{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// GetStats returns dashboard metrics for the tenant.
// GET /{tenant}/dashboard/stats
// Query params:
//   - date: anchor day in YYYY-MM-DD form (optional, defaults to today)
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	session, ok := tenancy.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"missing tenant context"}`, http.StatusBadRequest)
		return
	}

	day := h.now()
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			http.Error(w, `{"error":"invalid date, use YYYY-MM-DD format"}`, http.StatusBadRequest)
			return
		}
		day = parsed
	}

	stats, err := h.repo.GetStats(r.Context(), session.Tenant.ID, day)
	if err != nil {
		h.logger.Error("failed to get dashboard stats", "tenant_id", session.Tenant.ID, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("failed to encode dashboard stats", "tenant_id", session.Tenant.ID, "error", err)
	}
}
