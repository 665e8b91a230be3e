package users

import (
	"encoding/json"
	"net/http"

	"github.com/dentalcloud/console/internal/tenancy"
	"github.com/dentalcloud/console/pkg/logging"
)

// Handler provides HTTP endpoints for the staff roster. Routes using it
// are admin-gated at the router.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a users HTTP handler.
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// ListResponse is the response for listing staff accounts.
type ListResponse struct {
	Users []User `json:"users"`
	Count int    `json:"count"`
}

// List returns the tenant's staff accounts.
// GET /{tenant}/users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := tenancy.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"missing tenant context"}`, http.StatusBadRequest)
		return
	}

	list, err := h.repo.ListForTenant(r.Context(), session.Tenant.ID)
	if err != nil {
		h.logger.Error("failed to list users", "tenant_id", session.Tenant.ID, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []User{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ListResponse{Users: list, Count: len(list)}); err != nil {
		h.logger.Error("failed to encode users", "tenant_id", session.Tenant.ID, "error", err)
	}
}
