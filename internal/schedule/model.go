package schedule

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// Appointment is a single booked visit. Date and Time are tenant-local
// calendar values with no time zone; they arrive from external systems and
// may be malformed, which the calendar builders tolerate.
type Appointment struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Dentist     string `json:"dentist"`
	Room        string `json:"room"`
	Date        string `json:"date"` // "2006-01-02"
	Time        string `json:"time"` // "15:04"
	Status      Status `json:"status"`
	Type        string `json:"type"`
}
