package router

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dentalcloud/console/internal/navigation"
	"github.com/dentalcloud/console/internal/observability/metrics"
	"github.com/dentalcloud/console/internal/tenancy"
	"github.com/dentalcloud/console/pkg/logging"
)

const roleHeader = "X-Role"

// requireTenant resolves the {tenant} slug into a full session and stores
// it on the request context. Unknown slugs get a 404 so the client can
// redirect to tenant selection. The role comes from the X-Role header;
// anything unrecognized degrades to Employee.
func requireTenant(dir *tenancy.Directory, m *metrics.TenantMetrics, logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := chi.URLParam(r, "tenant")
			tenant, err := dir.BySlug(r.Context(), slug)
			if errors.Is(err, tenancy.ErrTenantNotFound) {
				m.ObserveLookup("miss")
				http.Error(w, `{"error":"tenant not found"}`, http.StatusNotFound)
				return
			}
			if err != nil {
				m.ObserveLookup("error")
				logger.Error("tenant resolution failed", "slug", slug, "error", err)
				http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
				return
			}
			m.ObserveLookup("hit")

			session := tenancy.Session{
				Tenant: *tenant,
				Role:   tenancy.ParseRole(r.Header.Get(roleHeader)),
			}
			ctx := tenancy.WithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requirePageAccess blocks roles from admin-only surfaces. The guard keys
// off the page segment of the request path, so detail routes inherit the
// gate of their parent page.
func requirePageAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := tenancy.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, `{"error":"missing tenant context"}`, http.StatusBadRequest)
			return
		}
		if !navigation.CanAccessPath(session.Role, r.URL.Path) {
			http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
