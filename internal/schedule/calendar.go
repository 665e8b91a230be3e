package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Layouts for the tenant-local calendar values carried by appointments.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ViewMode selects which calendar projection to build.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// ParseViewMode validates an externally supplied view mode string.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewDay, ViewWeek, ViewMonth:
		return ViewMode(s), nil
	case "":
		return ViewWeek, nil
	default:
		return "", fmt.Errorf("unknown calendar view %q", s)
	}
}

// weekSlots are the fixed hourly row labels of the week grid.
var weekSlots = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}

// WeekSlots returns a copy of the week-view row labels.
func WeekSlots() []string {
	out := make([]string, len(weekSlots))
	copy(out, weekSlots)
	return out
}

// DataIntegrityWarning records an appointment that could not be placed on
// the grid. One bad record never fails the whole build.
type DataIntegrityWarning struct {
	AppointmentID string `json:"appointment_id"`
	Field         string `json:"field"`
	Value         string `json:"value"`
}

// DayList is the day view: appointments on the reference date, in time order.
type DayList struct {
	Date         string                 `json:"date"`
	Appointments []Appointment          `json:"appointments"`
	Warnings     []DataIntegrityWarning `json:"warnings,omitempty"`
}

// WeekCell holds every appointment sharing one (date, slot) pair, ordered
// by room then id. Cells are keyed by absolute date during the build, so
// appointments from different weeks can never collide on a weekday.
type WeekCell struct {
	Appointments []Appointment `json:"appointments,omitempty"`
}

// WeekRow is one time slot across the seven day columns (Monday first).
type WeekRow struct {
	Slot  string      `json:"slot"`
	Cells [7]WeekCell `json:"cells"`
}

// WeekGrid is the week view for the Monday-first week containing the
// reference date.
type WeekGrid struct {
	WeekStart string                 `json:"week_start"`
	Days      [7]string              `json:"days"`
	Rows      []WeekRow              `json:"rows"`
	Warnings  []DataIntegrityWarning `json:"warnings,omitempty"`
}

// MonthCell is one cell of the month grid. Day is 0 for leading/trailing
// blanks.
type MonthCell struct {
	Day             int    `json:"day"`
	Date            string `json:"date,omitempty"`
	HasAppointments bool   `json:"has_appointments"`
}

// MonthGrid is the month view for the month containing the reference date.
type MonthGrid struct {
	Year          int                    `json:"year"`
	Month         int                    `json:"month"`
	LeadingOffset int                    `json:"leading_offset"`
	DaysInMonth   int                    `json:"days_in_month"`
	Cells         []MonthCell            `json:"cells"`
	Warnings      []DataIntegrityWarning `json:"warnings,omitempty"`
}

// normalizedWeekday maps time.Weekday (Sunday=0) onto Monday-first column
// indexes: Monday=0 .. Sunday=6.
func normalizedWeekday(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// WeekStart returns the Monday of the week containing ref.
func WeekStart(ref time.Time) time.Time {
	ref = truncateToDay(ref)
	return ref.AddDate(0, 0, -normalizedWeekday(ref))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDate validates an appointment's calendar values and reports the
// first offending field.
func parseDate(apt Appointment) (time.Time, *DataIntegrityWarning) {
	d, err := time.ParseInLocation(DateLayout, apt.Date, time.UTC)
	if err != nil {
		return time.Time{}, &DataIntegrityWarning{AppointmentID: apt.ID, Field: "date", Value: apt.Date}
	}
	if _, err := time.Parse(TimeLayout, apt.Time); err != nil {
		return time.Time{}, &DataIntegrityWarning{AppointmentID: apt.ID, Field: "time", Value: apt.Time}
	}
	return d, nil
}

// BuildDay lists the appointments falling on the reference date, sorted by
// time (id breaks ties for determinism).
func BuildDay(ref time.Time, appts []Appointment) DayList {
	refDate := truncateToDay(ref).Format(DateLayout)
	out := DayList{Date: refDate, Appointments: []Appointment{}}

	for _, apt := range appts {
		if _, warn := parseDate(apt); warn != nil {
			out.Warnings = append(out.Warnings, *warn)
			continue
		}
		if apt.Date == refDate {
			out.Appointments = append(out.Appointments, apt)
		}
	}
	sort.SliceStable(out.Appointments, func(i, j int) bool {
		a, b := out.Appointments[i], out.Appointments[j]
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.ID < b.ID
	})
	return out
}

// BuildWeek places appointments on the Monday-first week containing ref.
// Cells are keyed by the appointment's absolute date; the weekday column is
// only a projection of that date, so same-weekday appointments in other
// weeks are excluded rather than colliding.
func BuildWeek(ref time.Time, appts []Appointment) WeekGrid {
	start := WeekStart(ref)

	grid := WeekGrid{WeekStart: start.Format(DateLayout)}
	for i := 0; i < 7; i++ {
		grid.Days[i] = start.AddDate(0, 0, i).Format(DateLayout)
	}
	grid.Rows = make([]WeekRow, len(weekSlots))
	slotIndex := make(map[string]int, len(weekSlots))
	for i, slot := range weekSlots {
		grid.Rows[i].Slot = slot
		slotIndex[slot] = i
	}

	for _, apt := range appts {
		d, warn := parseDate(apt)
		if warn != nil {
			grid.Warnings = append(grid.Warnings, *warn)
			continue
		}
		days := int(d.Sub(start).Hours() / 24)
		if days < 0 || days > 6 {
			continue // outside the displayed week
		}
		row, ok := slotIndex[apt.Time]
		if !ok {
			continue // off-grid time, e.g. 10:30 between hourly slots
		}
		cell := &grid.Rows[row].Cells[days]
		cell.Appointments = append(cell.Appointments, apt)
	}

	for r := range grid.Rows {
		for c := range grid.Rows[r].Cells {
			appts := grid.Rows[r].Cells[c].Appointments
			sort.SliceStable(appts, func(i, j int) bool {
				if appts[i].Room != appts[j].Room {
					return appts[i].Room < appts[j].Room
				}
				return appts[i].ID < appts[j].ID
			})
		}
	}
	return grid
}

// BuildMonth builds the month grid for the month containing ref. The
// leading offset is the real weekday of day 1 (Sunday-first columns, as the
// calendar renders Sun..Sat); 35 cells normally, 42 when the month
// overflows five rows.
func BuildMonth(ref time.Time, appts []Appointment) MonthGrid {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday())

	cellCount := 35
	if offset+daysInMonth > 35 {
		cellCount = 42
	}

	grid := MonthGrid{
		Year:          first.Year(),
		Month:         int(first.Month()),
		LeadingOffset: offset,
		DaysInMonth:   daysInMonth,
		Cells:         make([]MonthCell, cellCount),
	}

	booked := make(map[int]bool)
	for _, apt := range appts {
		d, warn := parseDate(apt)
		if warn != nil {
			grid.Warnings = append(grid.Warnings, *warn)
			continue
		}
		if d.Year() == first.Year() && d.Month() == first.Month() {
			booked[d.Day()] = true
		}
	}

	for i := range grid.Cells {
		day := i - offset + 1
		if day < 1 || day > daysInMonth {
			continue // blank cell
		}
		grid.Cells[i] = MonthCell{
			Day:             day,
			Date:            first.AddDate(0, 0, day-1).Format(DateLayout),
			HasAppointments: booked[day],
		}
	}
	return grid
}
