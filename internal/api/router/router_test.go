package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dentalcloud/console/internal/navigation"
	"github.com/dentalcloud/console/internal/observability/metrics"
	"github.com/dentalcloud/console/internal/tenancy"
	"github.com/dentalcloud/console/internal/users"
	"github.com/dentalcloud/console/pkg/logging"
)

var tenantColumns = []string{"id", "name", "slug", "country", "plan", "coverage_rate"}

func newTestRouter(t *testing.T) (http.Handler, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	logger := logging.Default()
	dir := tenancy.NewDirectoryWithDB(mock, tenancy.DirectoryConfig{Logger: logger})

	cfg := &Config{
		Logger:            logger,
		Directory:         dir,
		TenantMetrics:     metrics.NewTenantMetrics(prometheus.NewRegistry()),
		NavigationHandler: navigation.NewHandler(logger),
		UsersHandler:      users.NewHandler(users.NewRepositoryWithDB(mock), logger),
	}
	return New(cfg), mock
}

func expectTenantLookup(mock pgxmock.PgxPoolIface, slug string) {
	mock.ExpectQuery(`SELECT id, name, slug, country, plan, COALESCE\(coverage_rate, \$2\)`).
		WithArgs(slug, 0.60).
		WillReturnRows(pgxmock.NewRows(tenantColumns).
			AddRow("tenant-1", "Acme Dental Clinic", slug, "US", "Premium", 0.6))
}

func TestRouterHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

func TestRouterUnknownTenant(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT id, name, slug, country, plan`).
		WithArgs("nosuch", 0.60).
		WillReturnRows(pgxmock.NewRows(tenantColumns))

	req := httptest.NewRequest(http.MethodGet, "/nosuch/navigation", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestRouterNavigationForEmployee(t *testing.T) {
	router, mock := newTestRouter(t)
	expectTenantLookup(mock, "acme")

	req := httptest.NewRequest(http.MethodGet, "/acme/navigation", nil)
	req.Header.Set("X-Role", "Employee")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp navigation.Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode navigation: %v", err)
	}
	if resp.TenantName != "Acme Dental Clinic" {
		t.Errorf("tenant name = %q", resp.TenantName)
	}
	for _, item := range resp.Items {
		if item.AdminOnly {
			t.Errorf("employee navigation includes admin item %q", item.Name)
		}
	}
}

func TestRouterAdminPageBlockedForEmployee(t *testing.T) {
	router, mock := newTestRouter(t)
	expectTenantLookup(mock, "acme")

	req := httptest.NewRequest(http.MethodGet, "/acme/users", nil)
	req.Header.Set("X-Role", "Employee")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rr.Code)
	}
}

func TestRouterAdminPageAllowedForOwner(t *testing.T) {
	router, mock := newTestRouter(t)
	expectTenantLookup(mock, "acme")

	mock.ExpectQuery(`FROM users WHERE tenant_id = \$1`).
		WithArgs("tenant-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "role", "status"}).
			AddRow("user-1", "Dr. Sarah Mitchell", "sarah@dentalcloud.com", "Owner", "Active"))

	req := httptest.NewRequest(http.MethodGet, "/acme/users", nil)
	req.Header.Set("X-Role", "Owner")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestRouterUnknownRoleDegradesToEmployee(t *testing.T) {
	router, mock := newTestRouter(t)
	expectTenantLookup(mock, "acme")

	req := httptest.NewRequest(http.MethodGet, "/acme/users", nil)
	req.Header.Set("X-Role", "Superuser")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rr.Code)
	}
}

func TestRouterListTenants(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`FROM tenants ORDER BY name`).
		WithArgs(0.60).
		WillReturnRows(pgxmock.NewRows(tenantColumns).
			AddRow("tenant-1", "Acme Dental Clinic", "acme", "US", "Premium", 0.6).
			AddRow("tenant-2", "Bright Smiles", "bright-smiles", "CA", "Standard", 0.6))

	req := httptest.NewRequest(http.MethodGet, "/tenants", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp struct {
		Tenants []tenancy.Tenant `json:"tenants"`
		Count   int              `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode tenants: %v", err)
	}
	if resp.Count != 2 || resp.Tenants[0].Slug != "acme" {
		t.Errorf("resp = %+v", resp)
	}
}
