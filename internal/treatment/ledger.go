package treatment

import "math"

// Summary is the financial rollup of a plan's accepted items. The coverage
// figure is an illustrative estimate from the tenant's configured rate, not
// an adjudicated insurance amount.
type Summary struct {
	AcceptedTotalCents         int64   `json:"accepted_total_cents"`
	EstimatedCoverageCents     int64   `json:"estimated_coverage_cents"`
	PatientResponsibilityCents int64   `json:"patient_responsibility_cents"`
	CoverageRate               float64 `json:"coverage_rate"`
}

// Summarize aggregates the plan's accepted items under the given coverage
// rate. An empty plan yields an all-zero summary; costs are not validated,
// so negative line items flow through into the totals.
func Summarize(plan *Plan, coverageRate float64) Summary {
	s := Summary{CoverageRate: coverageRate}
	if plan == nil {
		return s
	}
	for _, item := range plan.Items {
		if item.Status == ItemAccepted {
			s.AcceptedTotalCents += item.CostCents
		}
	}
	s.EstimatedCoverageCents = int64(math.Round(float64(s.AcceptedTotalCents) * coverageRate))
	s.PatientResponsibilityCents = s.AcceptedTotalCents - s.EstimatedCoverageCents
	return s
}
