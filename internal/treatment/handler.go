package treatment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dentalcloud/console/internal/tenancy"
	"github.com/dentalcloud/console/pkg/logging"
)

var planTracer = otel.Tracer("dentalcloud.internal.treatment")

// Handler provides HTTP endpoints for treatment plans.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a treatment-plan HTTP handler.
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// ListResponse is the response for listing treatment plans.
type ListResponse struct {
	Plans []Plan `json:"plans"`
	Count int    `json:"count"`
}

// List returns the tenant's treatment plans.
// GET /{tenant}/treatment-plans
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := tenancy.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"missing tenant context"}`, http.StatusBadRequest)
		return
	}

	plans, err := h.repo.ListForTenant(r.Context(), session.Tenant.ID)
	if err != nil {
		h.logger.Error("failed to list treatment plans", "tenant_id", session.Tenant.ID, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	if plans == nil {
		plans = []Plan{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ListResponse{Plans: plans, Count: len(plans)}); err != nil {
		h.logger.Error("failed to encode treatment plans", "tenant_id", session.Tenant.ID, "error", err)
	}
}

// DetailResponse carries one plan with its ledger summary.
type DetailResponse struct {
	Plan    *Plan   `json:"plan"`
	Summary Summary `json:"summary"`
}

// Get returns one plan with items and financial summary.
// GET /{tenant}/treatment-plans/{planID}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := tenancy.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"missing tenant context"}`, http.StatusBadRequest)
		return
	}
	planID := chi.URLParam(r, "planID")
	if planID == "" {
		http.Error(w, `{"error":"plan id required"}`, http.StatusBadRequest)
		return
	}

	ctx, span := planTracer.Start(r.Context(), "treatment.summarize")
	defer span.End()
	span.SetAttributes(
		attribute.String("dentalcloud.tenant_id", session.Tenant.ID),
		attribute.String("dentalcloud.plan_id", planID),
	)

	plan, err := h.repo.GetForTenant(ctx, session.Tenant.ID, planID)
	if errors.Is(err, ErrPlanNotFound) {
		http.Error(w, `{"error":"treatment plan not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		span.RecordError(err)
		h.logger.Error("failed to load treatment plan",
			"tenant_id", session.Tenant.ID, "plan_id", planID, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	resp := DetailResponse{
		Plan:    plan,
		Summary: Summarize(plan, session.Tenant.CoverageRate),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode treatment plan", "tenant_id", session.Tenant.ID, "error", err)
	}
}
