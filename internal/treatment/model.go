package treatment

import "errors"

// PlanStatus is the lifecycle state of a treatment plan.
type PlanStatus string

const (
	PlanDraft    PlanStatus = "Draft"
	PlanProposed PlanStatus = "Proposed"
	PlanAccepted PlanStatus = "Accepted"
	PlanPartial  PlanStatus = "Partial"
	PlanRejected PlanStatus = "Rejected"
)

// ItemStatus is the patient's decision on a single plan item.
type ItemStatus string

const (
	ItemPending  ItemStatus = "Pending"
	ItemAccepted ItemStatus = "Accepted"
	ItemDeferred ItemStatus = "Deferred"
	ItemRejected ItemStatus = "Rejected"
)

// Urgency grades how soon a treatment should happen.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Item is one line of a treatment plan. Tooth is a tooth number or "All".
type Item struct {
	ID            string     `json:"id"`
	TreatmentType string     `json:"treatment_type"`
	Tooth         string     `json:"tooth"`
	CostCents     int64      `json:"cost_cents"`
	Urgency       Urgency    `json:"urgency"`
	Status        ItemStatus `json:"status"`
}

// Plan is a proposed course of treatment for a patient.
type Plan struct {
	ID             string     `json:"id"`
	PatientID      string     `json:"patient_id"`
	PatientName    string     `json:"patient_name"`
	Status         PlanStatus `json:"status"`
	TotalCostCents int64      `json:"total_cost_cents"`
	Urgency        Urgency    `json:"urgency"`
	CreatedDate    string     `json:"created_date"`
	Items          []Item     `json:"items,omitempty"`
}

// ErrPlanNotFound is returned when a plan id is unknown within the tenant.
var ErrPlanNotFound = errors.New("treatment plan not found")
