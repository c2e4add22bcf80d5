package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calendrical",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "calendrical",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "calendrical",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Calendar operation metrics
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calendrical",
			Subsystem: "calendar",
			Name:      "operations_total",
			Help:      "Total number of calendar operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "calendrical",
			Subsystem: "calendar",
			Name:      "operation_duration_seconds",
			Help:      "Duration of calendar operations in seconds",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		},
		[]string{"operation"},
	)

	// Zone database metrics
	zoneCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calendrical",
			Subsystem: "tzdb",
			Name:      "cache_lookups_total",
			Help:      "Zone location cache lookups by result",
		},
		[]string{"result"},
	)

	zoneLoadFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "calendrical",
			Subsystem: "tzdb",
			Name:      "load_failures_total",
			Help:      "Zone ids that could not be loaded",
		},
	)

	availableZones = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "calendrical",
			Subsystem: "tzdb",
			Name:      "available_zones",
			Help:      "Number of zone ids found in the zoneinfo directory",
		},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		routePattern := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			routePattern = rctx.RoutePattern()
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordOperation records one calendar operation and its outcome, which is
// "ok" or an error code
func RecordOperation(operation, outcome string, duration time.Duration) {
	operationsTotal.WithLabelValues(operation, outcome).Inc()
	operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordZoneCacheLookup counts a location cache hit or miss
func RecordZoneCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	zoneCacheLookups.WithLabelValues(result).Inc()
}

// RecordZoneLoadFailure counts a zone id that could not be loaded
func RecordZoneLoadFailure() {
	zoneLoadFailures.Inc()
}

// SetAvailableZones sets the number of zone ids in the database
func SetAvailableZones(count int) {
	availableZones.Set(float64(count))
}
