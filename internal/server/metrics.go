package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus collectors are process-wide singletons registered on the default
// registry, so NewMetrics can be called more than once (tests do) without
// duplicate registration panics.
var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "seqcalc_active_requests",
		Help: "Number of sequence requests currently being served.",
	})

	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seqcalc_requests_total",
		Help: "Total number of sequence requests by kind and outcome.",
	}, []string{"kind", "status"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "seqcalc_request_duration_seconds",
		Help:    "Sequence request duration in seconds.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
	})
)

// Metrics exposes the Prometheus instrumentation of the HTTP server.
type Metrics struct {
	handler http.Handler
}

// NewMetrics creates a Metrics instance backed by the default Prometheus
// registry, which also carries the Go runtime collectors.
func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() {
	activeRequests.Inc()
}

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() {
	activeRequests.Dec()
}

// ObserveRequest records one completed request with its kind, outcome label
// ("ok" or "error"), and duration.
func (m *Metrics) ObserveRequest(kind, status string, d time.Duration) {
	requestsTotal.WithLabelValues(kind, status).Inc()
	requestDuration.Observe(d.Seconds())
}

// WritePrometheus serves the Prometheus exposition endpoint.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
