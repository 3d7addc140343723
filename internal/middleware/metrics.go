package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP instruments. Each instance registers its own
// collectors, so tests can use a fresh prometheus.Registry.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	rateLimitRejects prometheus.Counter
	panicRecoveries  prometheus.Counter
}

// NewMetrics creates the HTTP metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cupcake_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cupcake_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cupcake_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),
		rateLimitRejects: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cupcake_rate_limit_rejects_total",
				Help: "Total number of requests rejected due to rate limiting",
			},
		),
		panicRecoveries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cupcake_panic_recoveries_total",
				Help: "Total number of panics recovered in HTTP handlers",
			},
		),
	}

	reg.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.requestsInFlight,
		m.rateLimitRejects,
		m.panicRecoveries,
	)

	return m
}

// Instrument records RED metrics for every request. It must wrap the
// ServeMux without any request-copying middleware in between, since the
// route label is read from the matched pattern after the mux has run.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.requestsInFlight.Inc()
		defer m.requestsInFlight.Dec()

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}

		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
