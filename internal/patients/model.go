package patients

import "errors"

// Status marks whether a patient is active at the clinic.
type Status string

const (
	StatusActive   Status = "Active"
	StatusArchived Status = "Archived"
)

// Patient is a clinic patient record.
type Patient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	Insurance   string `json:"insurance"`
	LastVisit   string `json:"last_visit"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Status      Status `json:"status"`
}

// ErrPatientNotFound is returned when a patient id is unknown within the
// tenant.
var ErrPatientNotFound = errors.New("patient not found")
