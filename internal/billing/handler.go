package billing

import (
	"encoding/json"
	"net/http"

	"github.com/dentalcloud/console/internal/tenancy"
	"github.com/dentalcloud/console/pkg/logging"
)

// Handler provides HTTP endpoints for the billing overview.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a billing HTTP handler.
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// ListResponse is the response for listing invoices. Totals always
// cover the full unfiltered ledger view being returned.
type ListResponse struct {
	Invoices []Invoice `json:"invoices"`
	Count    int       `json:"count"`
	Totals   Totals    `json:"totals"`
}

// List returns the tenant's invoices with aggregate totals.
// GET /{tenant}/invoices?status=Pending
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := tenancy.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"missing tenant context"}`, http.StatusBadRequest)
		return
	}

	var status InvoiceStatus
	switch s := r.URL.Query().Get("status"); InvoiceStatus(s) {
	case "":
	case StatusPaid, StatusPending, StatusOverdue:
		status = InvoiceStatus(s)
	default:
		http.Error(w, `{"error":"status must be Paid, Pending or Overdue"}`, http.StatusBadRequest)
		return
	}

	invoices, err := h.repo.ListForTenant(r.Context(), session.Tenant.ID, status)
	if err != nil {
		h.logger.Error("failed to list invoices", "tenant_id", session.Tenant.ID, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	if invoices == nil {
		invoices = []Invoice{}
	}

	w.Header().Set("Content-Type", "application/json")
	resp := ListResponse{Invoices: invoices, Count: len(invoices), Totals: Summarize(invoices)}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode invoices", "tenant_id", session.Tenant.ID, "error", err)
	}
}
