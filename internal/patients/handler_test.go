package patients

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/dentalcloud/console/internal/tenancy"
)

func patientColumnsForTest() []string {
	return []string{"id", "name", "date_of_birth", "insurance", "last_visit", "email", "phone", "address", "status"}
}

func tenantRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := tenancy.WithSession(req.Context(), tenancy.Session{
		Tenant: tenancy.Tenant{ID: "tenant-1", Name: "Acme Dental Clinic", Slug: "acme"},
		Role:   tenancy.RoleEmployee,
	})
	return req.WithContext(ctx)
}

func TestListPatients(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, date_of_birth, insurance, last_visit, email, phone, address, status FROM patients WHERE tenant_id = \$1 ORDER BY name`).
		WithArgs("tenant-1").
		WillReturnRows(pgxmock.NewRows(patientColumnsForTest()).
			AddRow("p2", "Emma Johnson", "1990-07-22", "Aetna Dental Plus", "2026-02-15",
				"emma.j@email.com", "+1 (555) 234-5678", "456 Oak Ave", "Active").
			AddRow("p1", "John Smith", "1985-03-15", "BlueCross Premium", "2026-02-10",
				"john.smith@email.com", "+1 (555) 123-4567", "123 Main St", "Active"))

	h := NewHandler(NewRepositoryWithDB(mock), nil)
	rec := httptest.NewRecorder()
	h.List(rec, tenantRequest("/acme/patients"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 2 || resp.Patients[0].Name != "Emma Johnson" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestListPatientsWithFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`AND status = \$2 AND name ILIKE \$3`).
		WithArgs("tenant-1", "Archived", "%martinez%").
		WillReturnRows(pgxmock.NewRows(patientColumnsForTest()).
			AddRow("p5", "David Martinez", "1982-09-30", "Cigna Dental", "2025-12-15",
				"d.martinez@email.com", "+1 (555) 567-8901", "654 Maple Dr", "Archived"))

	h := NewHandler(NewRepositoryWithDB(mock), nil)
	rec := httptest.NewRecorder()
	h.List(rec, tenantRequest("/acme/patients?status=Archived&q=martinez"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 1 || resp.Patients[0].Status != StatusArchived {
		t.Errorf("resp = %+v", resp)
	}
}

func TestListPatientsBadStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	h := NewHandler(NewRepositoryWithDB(mock), nil)
	rec := httptest.NewRecorder()
	h.List(rec, tenantRequest("/acme/patients?status=Deleted"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetPatientNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`FROM patients WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs("tenant-1", "ghost").
		WillReturnRows(pgxmock.NewRows(patientColumnsForTest()))

	h := NewHandler(NewRepositoryWithDB(mock), nil)

	router := chi.NewRouter()
	router.Get("/{tenant}/patients/{patientID}", h.Get)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, tenantRequest("/acme/patients/ghost"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetPatient(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`FROM patients WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs("tenant-1", "p1").
		WillReturnRows(pgxmock.NewRows(patientColumnsForTest()).
			AddRow("p1", "John Smith", "1985-03-15", "BlueCross Premium", "2026-02-10",
				"john.smith@email.com", "+1 (555) 123-4567", "123 Main St", "Active"))

	h := NewHandler(NewRepositoryWithDB(mock), nil)

	router := chi.NewRouter()
	router.Get("/{tenant}/patients/{patientID}", h.Get)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, tenantRequest("/acme/patients/p1"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var p Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name != "John Smith" || p.Insurance != "BlueCross Premium" {
		t.Errorf("patient = %+v", p)
	}
}
