package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pixie AI Service Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pixie",
			Subsystem: "ai",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pixie",
			Subsystem: "ai",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Dependency reachability (1 reachable, 0 unreachable)
	DependencyUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "pixie",
			Subsystem: "ai",
			Name:      "dependency_up",
			Help:      "Whether an external dependency answered its last probe",
		},
		[]string{"dependency"},
	)

	// Dependency probe duration
	DependencyCheckDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pixie",
			Subsystem: "ai",
			Name:      "dependency_check_duration_seconds",
			Help:      "Dependency probe duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"dependency"},
	)
)

// Handler returns the Prometheus metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordDependencyCheck records the outcome of one dependency probe
func RecordDependencyCheck(dependency string, up bool, durationSec float64) {
	value := 0.0
	if up {
		value = 1.0
	}
	DependencyUp.WithLabelValues(dependency).Set(value)
	DependencyCheckDuration.WithLabelValues(dependency).Observe(durationSec)
}
