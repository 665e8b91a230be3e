package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dentalcloud/console/internal/billing"
	"github.com/dentalcloud/console/internal/clinic"
	httpmiddleware "github.com/dentalcloud/console/internal/http/middleware"
	"github.com/dentalcloud/console/internal/imaging"
	"github.com/dentalcloud/console/internal/navigation"
	"github.com/dentalcloud/console/internal/observability/metrics"
	"github.com/dentalcloud/console/internal/patients"
	"github.com/dentalcloud/console/internal/schedule"
	"github.com/dentalcloud/console/internal/tenancy"
	"github.com/dentalcloud/console/internal/treatment"
	"github.com/dentalcloud/console/internal/users"
	"github.com/dentalcloud/console/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Directory          *tenancy.Directory
	TenantMetrics      *metrics.TenantMetrics
	NavigationHandler  *navigation.Handler
	PatientsHandler    *patients.Handler
	ScheduleHandler    *schedule.Handler
	TreatmentHandler   *treatment.Handler
	ImagingHandler     *imaging.Handler
	BillingHandler     *billing.Handler
	UsersHandler       *users.Handler
	StatsHandler       *clinic.StatsHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		public.Get("/tenants", listTenants(cfg.Directory, cfg.Logger))
	})

	// Tenant-scoped routes
	r.Route("/{tenant}", func(tenant chi.Router) {
		tenant.Use(requireTenant(cfg.Directory, cfg.TenantMetrics, cfg.Logger))
		tenant.Use(requirePageAccess)

		if cfg.NavigationHandler != nil {
			tenant.Get("/navigation", cfg.NavigationHandler.Get)
		}
		if cfg.StatsHandler != nil {
			tenant.Get("/dashboard/stats", cfg.StatsHandler.GetStats)
		}
		if cfg.PatientsHandler != nil {
			tenant.Get("/patients", cfg.PatientsHandler.List)
			tenant.Get("/patients/{patientID}", cfg.PatientsHandler.Get)
		}
		if cfg.ScheduleHandler != nil {
			tenant.Get("/appointments/calendar", cfg.ScheduleHandler.GetCalendar)
		}
		if cfg.TreatmentHandler != nil {
			tenant.Get("/treatment-plans", cfg.TreatmentHandler.List)
			tenant.Get("/treatment-plans/{planID}", cfg.TreatmentHandler.Get)
		}
		if cfg.ImagingHandler != nil {
			tenant.Get("/xrays", cfg.ImagingHandler.List)
		}
		if cfg.BillingHandler != nil {
			tenant.Get("/invoices", cfg.BillingHandler.List)
		}
		if cfg.UsersHandler != nil {
			tenant.Get("/users", cfg.UsersHandler.List)
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// listTenants serves the tenant switcher.
func listTenants(dir *tenancy.Directory, logger *logging.Logger) http.HandlerFunc {
	if logger == nil {
		logger = logging.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		tenants, err := dir.List(r.Context())
		if err != nil {
			logger.Error("failed to list tenants", "error", err)
			http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
			return
		}
		if tenants == nil {
			tenants = []tenancy.Tenant{}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"tenants": tenants,
			"count":   len(tenants),
		}); err != nil {
			logger.Error("failed to encode tenants", "error", err)
		}
	}
}
