package schedule

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dentalcloud/console/internal/tenancy"
	"github.com/dentalcloud/console/pkg/logging"
)

// Handler serves calendar grids for the current tenant session.
type Handler struct {
	service *Service
	logger  *logging.Logger
	now     func() time.Time
}

// NewHandler creates a calendar HTTP handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger, now: time.Now}
}

// GetCalendar returns the appointment grid.
// GET /{tenant}/appointments/calendar?view=week&date=2026-02-26
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	session, ok := tenancy.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"missing tenant context"}`, http.StatusBadRequest)
		return
	}

	view, err := ParseViewMode(r.URL.Query().Get("view"))
	if err != nil {
		http.Error(w, `{"error":"view must be day, week or month"}`, http.StatusBadRequest)
		return
	}

	ref := h.now().UTC()
	if ds := r.URL.Query().Get("date"); ds != "" {
		ref, err = time.ParseInLocation(DateLayout, ds, time.UTC)
		if err != nil {
			http.Error(w, `{"error":"date must be formatted YYYY-MM-DD"}`, http.StatusBadRequest)
			return
		}
	}

	grid, err := h.service.Grid(r.Context(), session.Tenant.ID, view, ref)
	if err != nil {
		h.logger.Error("failed to build calendar grid",
			"tenant_id", session.Tenant.ID, "view", view, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(grid); err != nil {
		h.logger.Error("failed to encode calendar grid", "tenant_id", session.Tenant.ID, "error", err)
	}
}
