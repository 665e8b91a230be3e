package schedule

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dentalcloud/console/internal/observability/metrics"
	"github.com/dentalcloud/console/pkg/logging"
)

var calendarTracer = otel.Tracer("dentalcloud.internal.schedule")

// Grid is the calendar projection for one view mode; exactly one of Day,
// Week, Month is set.
type Grid struct {
	View  ViewMode   `json:"view"`
	Day   *DayList   `json:"day,omitempty"`
	Week  *WeekGrid  `json:"week,omitempty"`
	Month *MonthGrid `json:"month,omitempty"`
}

// Service loads a tenant's appointments and projects them onto a calendar
// grid. Each call recomputes from the reference date; nothing is memoized
// across calls.
type Service struct {
	repo    *Repository
	metrics *metrics.CalendarMetrics
	logger  *logging.Logger
}

// NewService constructs a calendar service.
func NewService(repo *Repository, m *metrics.CalendarMetrics, logger *logging.Logger) *Service {
	if repo == nil {
		panic("schedule: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, metrics: m, logger: logger}
}

// Grid builds the calendar for the tenant at the given view and reference
// date.
func (s *Service) Grid(ctx context.Context, tenantID string, view ViewMode, ref time.Time) (*Grid, error) {
	ctx, span := calendarTracer.Start(ctx, "schedule.grid")
	defer span.End()
	span.SetAttributes(
		attribute.String("dentalcloud.tenant_id", tenantID),
		attribute.String("dentalcloud.calendar_view", string(view)),
	)

	from, to := viewRange(view, ref)
	appts, err := s.repo.ListRange(ctx, tenantID, from, to)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	grid := &Grid{View: view}
	var warnings []DataIntegrityWarning
	switch view {
	case ViewDay:
		day := BuildDay(ref, appts)
		grid.Day = &day
		warnings = day.Warnings
	case ViewWeek:
		week := BuildWeek(ref, appts)
		grid.Week = &week
		warnings = week.Warnings
	case ViewMonth:
		month := BuildMonth(ref, appts)
		grid.Month = &month
		warnings = month.Warnings
	}

	s.metrics.ObserveGrid(string(view))
	for _, w := range warnings {
		s.metrics.ObserveIntegritySkip(w.Field)
		s.logger.Warn("appointment skipped on calendar grid",
			"tenant_id", tenantID,
			"appointment_id", w.AppointmentID,
			"field", w.Field,
			"value", w.Value,
		)
	}
	return grid, nil
}

// viewRange bounds the repository fetch to the dates the view can display.
func viewRange(view ViewMode, ref time.Time) (time.Time, time.Time) {
	day := truncateToDay(ref)
	switch view {
	case ViewWeek:
		start := WeekStart(day)
		return start, start.AddDate(0, 0, 6)
	case ViewMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first, first.AddDate(0, 1, -1)
	default:
		return day, day
	}
}
