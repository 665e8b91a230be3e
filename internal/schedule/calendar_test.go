package schedule

import (
	"reflect"
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

var sampleAppointments = []Appointment{
	{ID: "apt1", PatientName: "John Smith", Room: "Room 1", Date: "2026-02-26", Time: "09:00", Status: StatusConfirmed, Type: "Routine Checkup"},
	{ID: "apt2", PatientName: "Emma Johnson", Room: "Room 2", Date: "2026-02-26", Time: "10:30", Status: StatusConfirmed, Type: "Cleaning"},
	{ID: "apt3", PatientName: "Michael Chen", Room: "Room 1", Date: "2026-02-26", Time: "14:00", Status: StatusScheduled, Type: "Crown Placement"},
	{ID: "apt4", PatientName: "Sarah Williams", Room: "Room 3", Date: "2026-02-27", Time: "11:00", Status: StatusScheduled, Type: "Root Canal"},
}

func TestBuildDayFiltersAndSorts(t *testing.T) {
	day := BuildDay(date("2026-02-26"), sampleAppointments)

	if day.Date != "2026-02-26" {
		t.Errorf("Date = %q", day.Date)
	}
	if len(day.Appointments) != 3 {
		t.Fatalf("len = %d, want 3", len(day.Appointments))
	}
	want := []string{"apt1", "apt2", "apt3"}
	for i, id := range want {
		if day.Appointments[i].ID != id {
			t.Errorf("appointments[%d].ID = %q, want %q", i, day.Appointments[i].ID, id)
		}
	}
}

func TestBuildDayEmptyForOtherDate(t *testing.T) {
	day := BuildDay(date("2026-03-02"), sampleAppointments)
	if len(day.Appointments) != 0 {
		t.Errorf("len = %d, want 0", len(day.Appointments))
	}
}

// 2026-02-26 is a Thursday: Monday-first column index 3. The 14:00
// appointment must land at (row "14:00", col 3).
func TestBuildWeekPlacesThursdayAppointment(t *testing.T) {
	grid := BuildWeek(date("2026-02-26"), sampleAppointments)

	if grid.WeekStart != "2026-02-23" {
		t.Fatalf("WeekStart = %q, want 2026-02-23", grid.WeekStart)
	}
	if grid.Days[3] != "2026-02-26" {
		t.Errorf("Days[3] = %q, want 2026-02-26", grid.Days[3])
	}

	var row *WeekRow
	for i := range grid.Rows {
		if grid.Rows[i].Slot == "14:00" {
			row = &grid.Rows[i]
			break
		}
	}
	if row == nil {
		t.Fatal("no 14:00 row")
	}
	cell := row.Cells[3]
	if len(cell.Appointments) != 1 || cell.Appointments[0].ID != "apt3" {
		t.Errorf("cell (14:00, 3) = %+v", cell.Appointments)
	}
}

// Appointments on the same weekday and slot in a different week belong to
// a different absolute date and must not appear on this week's grid.
func TestBuildWeekExcludesOtherWeeks(t *testing.T) {
	appts := []Appointment{
		{ID: "this-week", Date: "2026-02-26", Time: "14:00", Room: "Room 1"},
		{ID: "next-week", Date: "2026-03-05", Time: "14:00", Room: "Room 1"}, // also a Thursday
	}
	grid := BuildWeek(date("2026-02-26"), appts)

	var placed []string
	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			for _, apt := range cell.Appointments {
				placed = append(placed, apt.ID)
			}
		}
	}
	if len(placed) != 1 || placed[0] != "this-week" {
		t.Errorf("placed = %v, want [this-week]", placed)
	}
}

// Two rooms can legitimately share a slot; the cell keeps both in stable
// room order instead of silently dropping one.
func TestBuildWeekSharedSlotHoldsAllRooms(t *testing.T) {
	appts := []Appointment{
		{ID: "b", Date: "2026-02-26", Time: "09:00", Room: "Room 2"},
		{ID: "a", Date: "2026-02-26", Time: "09:00", Room: "Room 1"},
	}
	grid := BuildWeek(date("2026-02-26"), appts)

	cell := grid.Rows[0].Cells[3]
	if len(cell.Appointments) != 2 {
		t.Fatalf("len = %d, want 2", len(cell.Appointments))
	}
	if cell.Appointments[0].Room != "Room 1" || cell.Appointments[1].Room != "Room 2" {
		t.Errorf("cell order = %s, %s", cell.Appointments[0].Room, cell.Appointments[1].Room)
	}
}

func TestBuildWeekSkipsOffGridTimes(t *testing.T) {
	grid := BuildWeek(date("2026-02-26"), sampleAppointments)
	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			for _, apt := range cell.Appointments {
				if apt.ID == "apt2" {
					t.Error("10:30 appointment should not occupy an hourly slot")
				}
			}
		}
	}
	if len(grid.Warnings) != 0 {
		t.Errorf("off-grid times are not integrity warnings, got %v", grid.Warnings)
	}
}

func TestBuildWeekMalformedRecordsAreSkippedWithWarnings(t *testing.T) {
	appts := []Appointment{
		{ID: "good", Date: "2026-02-26", Time: "09:00"},
		{ID: "bad-date", Date: "02/26/2026", Time: "09:00"},
		{ID: "bad-time", Date: "2026-02-26", Time: "9am"},
	}
	grid := BuildWeek(date("2026-02-26"), appts)

	if len(grid.Warnings) != 2 {
		t.Fatalf("warnings = %+v, want 2", grid.Warnings)
	}
	byID := map[string]DataIntegrityWarning{}
	for _, w := range grid.Warnings {
		byID[w.AppointmentID] = w
	}
	if byID["bad-date"].Field != "date" || byID["bad-date"].Value != "02/26/2026" {
		t.Errorf("bad-date warning = %+v", byID["bad-date"])
	}
	if byID["bad-time"].Field != "time" {
		t.Errorf("bad-time warning = %+v", byID["bad-time"])
	}
	if len(grid.Rows[0].Cells[3].Appointments) != 1 {
		t.Error("good record should still be placed")
	}
}

// February 2022 starts on a Tuesday: leadingOffset 2, 28 days. Cell 2 maps
// to day 1, cell 29 to day 28, cell 30 is blank.
func TestBuildMonthOffsetMapping(t *testing.T) {
	grid := BuildMonth(date("2022-02-15"), nil)

	if grid.LeadingOffset != 2 {
		t.Fatalf("LeadingOffset = %d, want 2", grid.LeadingOffset)
	}
	if grid.DaysInMonth != 28 {
		t.Fatalf("DaysInMonth = %d, want 28", grid.DaysInMonth)
	}
	if len(grid.Cells) != 35 {
		t.Fatalf("len(Cells) = %d, want 35", len(grid.Cells))
	}
	if grid.Cells[1].Day != 0 {
		t.Errorf("cell 1 = %+v, want blank", grid.Cells[1])
	}
	if grid.Cells[2].Day != 1 {
		t.Errorf("cell 2 day = %d, want 1", grid.Cells[2].Day)
	}
	if grid.Cells[29].Day != 28 {
		t.Errorf("cell 29 day = %d, want 28", grid.Cells[29].Day)
	}
	if grid.Cells[30].Day != 0 {
		t.Errorf("cell 30 = %+v, want blank", grid.Cells[30])
	}
}

func TestBuildMonthFlagsBookedDays(t *testing.T) {
	grid := BuildMonth(date("2026-02-01"), sampleAppointments)

	// February 2026 starts on a Sunday: no leading blanks.
	if grid.LeadingOffset != 0 {
		t.Fatalf("LeadingOffset = %d, want 0", grid.LeadingOffset)
	}
	var flagged []int
	for _, cell := range grid.Cells {
		if cell.HasAppointments {
			flagged = append(flagged, cell.Day)
		}
	}
	if !reflect.DeepEqual(flagged, []int{26, 27}) {
		t.Errorf("flagged days = %v, want [26 27]", flagged)
	}
}

// A 31-day month starting late in the week overflows five rows and must
// grow to 42 cells rather than drop trailing days.
func TestBuildMonthOverflowGrowsToSixRows(t *testing.T) {
	// August 2026 starts on a Saturday: offset 6 + 31 days > 35.
	grid := BuildMonth(date("2026-08-10"), nil)

	if grid.LeadingOffset != 6 {
		t.Fatalf("LeadingOffset = %d, want 6", grid.LeadingOffset)
	}
	if len(grid.Cells) != 42 {
		t.Fatalf("len(Cells) = %d, want 42", len(grid.Cells))
	}
	if grid.Cells[36].Day != 31 {
		t.Errorf("cell 36 day = %d, want 31", grid.Cells[36].Day)
	}
}

func TestBuildersAreIdempotent(t *testing.T) {
	ref := date("2026-02-26")

	d1, d2 := BuildDay(ref, sampleAppointments), BuildDay(ref, sampleAppointments)
	if !reflect.DeepEqual(d1, d2) {
		t.Error("BuildDay not idempotent")
	}
	w1, w2 := BuildWeek(ref, sampleAppointments), BuildWeek(ref, sampleAppointments)
	if !reflect.DeepEqual(w1, w2) {
		t.Error("BuildWeek not idempotent")
	}
	m1, m2 := BuildMonth(ref, sampleAppointments), BuildMonth(ref, sampleAppointments)
	if !reflect.DeepEqual(m1, m2) {
		t.Error("BuildMonth not idempotent")
	}
}

func TestBuildersDoNotMutateInput(t *testing.T) {
	appts := make([]Appointment, len(sampleAppointments))
	copy(appts, sampleAppointments)

	BuildDay(date("2026-02-26"), appts)
	BuildWeek(date("2026-02-26"), appts)
	BuildMonth(date("2026-02-26"), appts)

	if !reflect.DeepEqual(appts, sampleAppointments) {
		t.Error("builders mutated the input collection")
	}
}

func TestWeekStart(t *testing.T) {
	cases := map[string]string{
		"2026-02-23": "2026-02-23", // Monday
		"2026-02-26": "2026-02-23", // Thursday
		"2026-03-01": "2026-02-23", // Sunday stays in the Monday-first week
		"2026-03-02": "2026-03-02",
	}
	for in, want := range cases {
		if got := WeekStart(date(in)).Format(DateLayout); got != want {
			t.Errorf("WeekStart(%s) = %s, want %s", in, got, want)
		}
	}
}
