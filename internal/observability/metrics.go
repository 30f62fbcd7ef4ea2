package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// address resolution pipeline.
type Metrics struct {
	// Typeahead metrics.
	TypeaheadQueries  *prometheus.CounterVec // labels: source={autocomplete,suggest}, outcome={success,error,empty}
	QueriesSuppressed *prometheus.CounterVec // labels: reason={short_query,skip_next,autofill}

	// Resolution metrics.
	Resolutions *prometheus.CounterVec // labels: trigger={select,autofill,geolocate,storage}, outcome={success,error,empty}

	// Result cache metrics.
	CacheLookups *prometheus.CounterVec // labels: operation, result={hit,miss}

	// Geo Places API metrics.
	GeocodeRequests    *prometheus.CounterVec   // labels: operation, outcome={success,error}
	GeocodeAPIDuration *prometheus.HistogramVec // labels: operation

	// Form session metrics.
	ActiveSessions prometheus.Gauge
	AutofillEvents prometheus.Counter
	FormSubmits    *prometheus.CounterVec // labels: intended_use={single_use,storage}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.TypeaheadQueries,
		m.QueriesSuppressed,
		m.Resolutions,
		m.CacheLookups,
		m.GeocodeRequests,
		m.GeocodeAPIDuration,
		m.ActiveSessions,
		m.AutofillEvents,
		m.FormSubmits,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		TypeaheadQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "address_entry",
			Name:      "typeahead_queries_total",
			Help:      "Typeahead queries by source API and outcome.",
		}, []string{"source", "outcome"}),
		QueriesSuppressed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "address_entry",
			Name:      "queries_suppressed_total",
			Help:      "Typeahead queries suppressed before reaching the network.",
		}, []string{"reason"}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "address_entry",
			Name:      "resolutions_total",
			Help:      "Candidate-to-address resolutions by trigger and outcome.",
		}, []string{"trigger", "outcome"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "address_entry",
			Name:      "result_cache_lookups_total",
			Help:      "Result cache lookups by operation and result.",
		}, []string{"operation", "result"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "address_entry",
			Name:      "geocode_requests_total",
			Help:      "Geo Places API requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		GeocodeAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "address_entry",
			Name:      "geocode_api_duration_seconds",
			Help:      "Geo Places API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "address_entry",
			Name:      "active_sessions",
			Help:      "Number of live form sessions.",
		}),
		AutofillEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "address_entry",
			Name:      "autofill_events_total",
			Help:      "Detected bulk autofill occurrences.",
		}),
		FormSubmits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "address_entry",
			Name:      "form_submits_total",
			Help:      "Form submissions by intended use.",
		}, []string{"intended_use"}),
	}
}
