package billing

// Totals aggregates a tenant's invoice ledger for the billing overview.
type Totals struct {
	OutstandingCents int64 `json:"outstanding_cents"`
	CollectedCents   int64 `json:"collected_cents"`
	PendingCount     int   `json:"pending_count"`
	OverdueCount     int   `json:"overdue_count"`
}

// Summarize folds a list of invoices into billing totals. Anything not
// yet paid counts toward the outstanding balance. The input is not
// modified.
func Summarize(invoices []Invoice) Totals {
	var t Totals
	for _, inv := range invoices {
		switch inv.Status {
		case StatusPaid:
			t.CollectedCents += inv.AmountCents
		case StatusPending:
			t.OutstandingCents += inv.AmountCents
			t.PendingCount++
		case StatusOverdue:
			t.OutstandingCents += inv.AmountCents
			t.OverdueCount++
		default:
			t.OutstandingCents += inv.AmountCents
		}
	}
	return t
}
