// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds every collector the application exports. Create it once per
// registry; registering the same names twice fails.
type Metrics struct {
	// GenerationsTotal counts executed excuse operations.
	// Labels: backend, operation, outcome.
	GenerationsTotal *prometheus.CounterVec

	// GenerationDurationSeconds observes how long an operation took end to
	// end, including the backend call. Labels: backend, operation.
	GenerationDurationSeconds *prometheus.HistogramVec

	// HTTPRequestsTotal counts finished HTTP requests.
	// Labels: method, route (the chi pattern, never the raw path), status.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDurationSeconds observes HTTP latency. Labels: method, route.
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	// HTTPInflightRequests is the number of requests currently being served.
	HTTPInflightRequests prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, errors.New("registerer cannot be nil")
	}

	m := &Metrics{
		GenerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "excuse_generation_total",
				Help: "Total number of excuse operations by backend and outcome.",
			},
			[]string{"backend", "operation", "outcome"},
		),
		GenerationDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "excuse_generation_duration_seconds",
				Help: "Excuse operation latency distributions.",
				// LLM calls run into seconds; prepopulated picks are sub-millisecond.
				Buckets: []float64{.001, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"backend", "operation"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency distributions.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPInflightRequests: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_inflight_requests",
				Help: "Current number of in-flight HTTP requests.",
			},
		),
	}

	for _, c := range []prometheus.Collector{
		m.GenerationsTotal,
		m.GenerationDurationSeconds,
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
		m.HTTPInflightRequests,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// BackendObserver records excuse operation outcomes under one backend label.
// It satisfies service.Observer.
type BackendObserver struct {
	metrics *Metrics
	backend string
}

// ForBackend returns an observer that labels every observation with backend.
func (m *Metrics) ForBackend(backend string) *BackendObserver {
	return &BackendObserver{metrics: m, backend: backend}
}

// ObserveExcuse records one finished operation.
func (o *BackendObserver) ObserveExcuse(operation, outcome string, duration time.Duration) {
	o.metrics.GenerationsTotal.WithLabelValues(o.backend, operation, outcome).Inc()
	o.metrics.GenerationDurationSeconds.WithLabelValues(o.backend, operation).Observe(duration.Seconds())
}
