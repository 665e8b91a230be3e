package navigation

import (
	"encoding/json"
	"net/http"

	"github.com/dentalcloud/console/internal/tenancy"
	"github.com/dentalcloud/console/pkg/logging"
)

// Handler serves the navigation model for the current tenant session.
type Handler struct {
	logger *logging.Logger
}

// NewHandler creates a navigation HTTP handler.
func NewHandler(logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger}
}

// Response bundles the nav list and breadcrumbs computed from one session
// snapshot, so the client can never render a nav/breadcrumb torn pair.
type Response struct {
	TenantID    string       `json:"tenant_id"`
	TenantName  string       `json:"tenant_name"`
	Role        tenancy.Role `json:"role"`
	Items       []Item       `json:"items"`
	Breadcrumbs []Crumb      `json:"breadcrumbs"`
}

// Get returns the navigation for the session's tenant and role.
// GET /{tenant}/navigation?path=/acme/patients/p1
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := tenancy.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"missing tenant context"}`, http.StatusBadRequest)
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/" + session.Tenant.Slug + "/dashboard"
	}

	items := Build(session.Tenant.Slug, session.Role)
	resp := Response{
		TenantID:    session.Tenant.ID,
		TenantName:  session.Tenant.Name,
		Role:        session.Role,
		Items:       items,
		Breadcrumbs: Breadcrumbs(session.Tenant.Slug, session.Tenant.Name, path, items),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode navigation", "tenant", session.Tenant.Slug, "error", err)
	}
}
