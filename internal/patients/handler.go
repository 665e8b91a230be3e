package patients

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dentalcloud/console/internal/tenancy"
	"github.com/dentalcloud/console/pkg/logging"
)

// Handler provides HTTP endpoints for patient records.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a patients HTTP handler.
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// ListResponse is the response for listing patients.
type ListResponse struct {
	Patients []Patient `json:"patients"`
	Count    int       `json:"count"`
}

// List returns the tenant's patients.
// GET /{tenant}/patients?status=Active&q=smith
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := tenancy.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"missing tenant context"}`, http.StatusBadRequest)
		return
	}

	filter := Filter{Search: r.URL.Query().Get("q")}
	switch status := r.URL.Query().Get("status"); Status(status) {
	case "":
	case StatusActive, StatusArchived:
		filter.Status = Status(status)
	default:
		http.Error(w, `{"error":"status must be Active or Archived"}`, http.StatusBadRequest)
		return
	}

	list, err := h.repo.ListForTenant(r.Context(), session.Tenant.ID, filter)
	if err != nil {
		h.logger.Error("failed to list patients", "tenant_id", session.Tenant.ID, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Patient{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ListResponse{Patients: list, Count: len(list)}); err != nil {
		h.logger.Error("failed to encode patients", "tenant_id", session.Tenant.ID, "error", err)
	}
}

// Get returns one patient record.
// GET /{tenant}/patients/{patientID}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := tenancy.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"missing tenant context"}`, http.StatusBadRequest)
		return
	}
	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		http.Error(w, `{"error":"patient id required"}`, http.StatusBadRequest)
		return
	}

	p, err := h.repo.GetForTenant(r.Context(), session.Tenant.ID, patientID)
	if errors.Is(err, ErrPatientNotFound) {
		http.Error(w, `{"error":"patient not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to load patient",
			"tenant_id", session.Tenant.ID, "patient_id", patientID, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(p); err != nil {
		h.logger.Error("failed to encode patient", "tenant_id", session.Tenant.ID, "error", err)
	}
}
