package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// schedule service.
type Metrics struct {
	ScheduleRequests *prometheus.CounterVec // labels: outcome={cache,api,error}
	CacheLookups     *prometheus.CounterVec // labels: result={hit,miss}
	CacheEntries     prometheus.Gauge

	// Upstream fetch metrics.
	UpstreamRequests *prometheus.CounterVec // labels: outcome={success,error}
	UpstreamDuration prometheus.Histogram
	FlightsFetched   prometheus.Histogram
	ParseSkips       prometheus.Counter

	SnapshotsPublished prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ScheduleRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flight_traffic",
			Name:      "schedule_requests_total",
			Help:      "Schedule requests by outcome (cache hit, fresh api fetch, or error).",
		}, []string{"outcome"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flight_traffic",
			Name:      "cache_lookups_total",
			Help:      "Day-cache lookups by result.",
		}, []string{"result"}),
		CacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flight_traffic",
			Name:      "cache_entries",
			Help:      "Number of (airport, date) entries currently cached.",
		}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flight_traffic",
			Name:      "upstream_requests_total",
			Help:      "Aviationstack API requests by outcome.",
		}, []string{"outcome"}),
		UpstreamDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flight_traffic",
			Name:      "upstream_request_duration_seconds",
			Help:      "Aviationstack API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		FlightsFetched: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flight_traffic",
			Name:      "flights_fetched",
			Help:      "Number of flight records returned per upstream fetch.",
			Buckets:   []float64{0, 10, 50, 100, 250, 500, 750, 1000},
		}),
		ParseSkips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flight_traffic",
			Name:      "parse_skips_total",
			Help:      "Flight records skipped because their scheduled time was unparsable.",
		}),
		SnapshotsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flight_traffic",
			Name:      "snapshots_published_total",
			Help:      "Schedule snapshots published to the Kafka topic.",
		}),
	}

	prometheus.MustRegister(
		m.ScheduleRequests,
		m.CacheLookups,
		m.CacheEntries,
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.FlightsFetched,
		m.ParseSkips,
		m.SnapshotsPublished,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ScheduleRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "flight_traffic", Name: "schedule_requests_total"}, []string{"outcome"}),
		CacheLookups:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "flight_traffic", Name: "cache_lookups_total"}, []string{"result"}),
		CacheEntries:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "flight_traffic", Name: "cache_entries"}),
		UpstreamRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "flight_traffic", Name: "upstream_requests_total"}, []string{"outcome"}),
		UpstreamDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "flight_traffic", Name: "upstream_request_duration_seconds"}),
		FlightsFetched:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "flight_traffic", Name: "flights_fetched"}),
		ParseSkips:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "flight_traffic", Name: "parse_skips_total"}),
		SnapshotsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "flight_traffic", Name: "snapshots_published_total"}),
	}
}
