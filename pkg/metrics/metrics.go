// Package metrics holds the per-service Prometheus request instruments
// shared by the HTTP handlers.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/skavtech/ict-platform/pkg/middleware"
)

// HTTPMetrics records request counts and latencies for one service.
type HTTPMetrics struct {
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	factory        promauto.Factory
	namespace      string
}

// NewHTTPMetrics registers the request instruments as <namespace>_*.
// A nil registerer uses the default Prometheus registry.
func NewHTTPMetrics(reg prometheus.Registerer, namespace string) *HTTPMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &HTTPMetrics{
		factory:   factory,
		namespace: namespace,
		requestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: namespace + "_requests_total",
				Help: "Total number of requests to " + namespace,
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    namespace + "_request_duration_seconds",
				Help:    "Duration of " + namespace + " requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		// client side quantiles p50, p90, p95, p99
		requestSummary: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: namespace + "_request_duration_summary",
				Help: "Summary of request durations with percentiles",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"method", "endpoint"},
		),
	}
}

// Gauge registers an additional service level gauge.
func (m *HTTPMetrics) Gauge(name, help string) prometheus.Gauge {
	return m.factory.NewGauge(prometheus.GaugeOpts{
		Name: m.namespace + "_" + name,
		Help: help,
	})
}

// Counter registers an additional labelled counter.
func (m *HTTPMetrics) Counter(name, help string, labels ...string) *prometheus.CounterVec {
	return m.factory.NewCounterVec(prometheus.CounterOpts{
		Name: m.namespace + "_" + name,
		Help: help,
	}, labels)
}

// Wrap instruments next under the given route template.
func (m *HTTPMetrics) Wrap(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &middleware.StatusRecorder{ResponseWriter: w, StatusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		m.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.StatusCode)).Inc()
		m.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		m.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}
