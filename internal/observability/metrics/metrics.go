package metrics

import "github.com/prometheus/client_golang/prometheus"

// CalendarMetrics exposes counters for calendar grid computation.
type CalendarMetrics struct {
	gridsBuilt     *prometheus.CounterVec
	integritySkips *prometheus.CounterVec
}

func NewCalendarMetrics(reg prometheus.Registerer) *CalendarMetrics {
	m := &CalendarMetrics{
		gridsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dentalcloud",
			Subsystem: "calendar",
			Name:      "grids_built_total",
			Help:      "Calendar grids computed, by view mode",
		}, []string{"view"}),
		integritySkips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dentalcloud",
			Subsystem: "calendar",
			Name:      "integrity_skips_total",
			Help:      "Appointment records skipped for malformed date/time fields",
		}, []string{"field"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.gridsBuilt, m.integritySkips)
	return m
}

func (m *CalendarMetrics) ObserveGrid(view string) {
	if m == nil {
		return
	}
	m.gridsBuilt.WithLabelValues(view).Inc()
}

func (m *CalendarMetrics) ObserveIntegritySkip(field string) {
	if m == nil {
		return
	}
	m.integritySkips.WithLabelValues(field).Inc()
}

// TenantMetrics counts tenant resolution outcomes at the routing boundary.
type TenantMetrics struct {
	lookups *prometheus.CounterVec
}

func NewTenantMetrics(reg prometheus.Registerer) *TenantMetrics {
	m := &TenantMetrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dentalcloud",
			Subsystem: "tenancy",
			Name:      "slug_lookups_total",
			Help:      "Tenant slug resolutions, by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.lookups)
	return m
}

func (m *TenantMetrics) ObserveLookup(outcome string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(outcome).Inc()
}
