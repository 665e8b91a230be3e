package billing

import "errors"

// InvoiceStatus tracks the payment state of an invoice.
type InvoiceStatus string

const (
	StatusPaid    InvoiceStatus = "Paid"
	StatusPending InvoiceStatus = "Pending"
	StatusOverdue InvoiceStatus = "Overdue"
)

// Invoice is a billed amount owed by a patient. Amounts are integer
// cents.
type Invoice struct {
	ID          string        `json:"id"`
	PatientID   string        `json:"patient_id"`
	PatientName string        `json:"patient_name"`
	AmountCents int64         `json:"amount_cents"`
	Status      InvoiceStatus `json:"status"`
	Date        string        `json:"date"`
	DueDate     string        `json:"due_date"`
}

// ErrInvoiceNotFound is returned when an invoice id is unknown within
// the tenant.
var ErrInvoiceNotFound = errors.New("invoice not found")
