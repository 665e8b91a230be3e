package imaging

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dentalcloud/console/internal/tenancy"
	"github.com/dentalcloud/console/pkg/logging"
)

// Handler provides HTTP endpoints for x-ray records.
type Handler struct {
	repo   *Repository
	logger *logging.Logger

	now func() time.Time
}

// NewHandler creates an imaging HTTP handler.
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger, now: time.Now}
}

// ListResponse is the response for listing x-rays.
type ListResponse struct {
	XRays        []XRay `json:"xrays"`
	Count        int    `json:"count"`
	OverdueCount int    `json:"overdue_count"`
}

// List returns the tenant's x-rays with overdue recall flags.
// GET /{tenant}/xrays?overdue=true
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := tenancy.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"missing tenant context"}`, http.StatusBadRequest)
		return
	}

	xrays, err := h.repo.ListForTenant(r.Context(), session.Tenant.ID)
	if err != nil {
		h.logger.Error("failed to list xrays", "tenant_id", session.Tenant.ID, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	MarkOverdue(xrays, h.now())

	overdueCount := 0
	for _, x := range xrays {
		if x.Overdue {
			overdueCount++
		}
	}

	if r.URL.Query().Get("overdue") == "true" {
		filtered := make([]XRay, 0, overdueCount)
		for _, x := range xrays {
			if x.Overdue {
				filtered = append(filtered, x)
			}
		}
		xrays = filtered
	}
	if xrays == nil {
		xrays = []XRay{}
	}

	w.Header().Set("Content-Type", "application/json")
	resp := ListResponse{XRays: xrays, Count: len(xrays), OverdueCount: overdueCount}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode xrays", "tenant_id", session.Tenant.ID, "error", err)
	}
}
