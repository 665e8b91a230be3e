package imaging

import "time"

// XRay is a radiograph on file for a patient. Overdue is derived from
// the recall date rather than stored.
type XRay struct {
	ID           string `json:"id"`
	PatientID    string `json:"patient_id"`
	PatientName  string `json:"patient_name"`
	DateTaken    string `json:"date_taken"`
	NextRequired string `json:"next_required"`
	Type         string `json:"type"`
	Overdue      bool   `json:"overdue"`
}

// MarkOverdue sets the Overdue flag on each record whose recall date
// has passed. Records with an unparseable recall date are left alone.
func MarkOverdue(xrays []XRay, now time.Time) {
	today := now.Format("2006-01-02")
	for i := range xrays {
		if xrays[i].NextRequired == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", xrays[i].NextRequired); err != nil {
			continue
		}
		xrays[i].Overdue = xrays[i].NextRequired < today
	}
}
