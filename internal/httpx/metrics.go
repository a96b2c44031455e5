package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records per-route request counts and latencies.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the HTTP collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookcatalog_http_requests_total",
				Help: "HTTP requests handled.",
			},
			[]string{"method", "route", "code"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookcatalog_http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "route", "code"},
		),
	}
}

// Middleware labels requests with the ServeMux pattern that matched them.
// Middlewares between this one and the mux must not replace the *http.Request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := wrap(w)

		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		code := strconv.Itoa(rw.statusCode)
		m.requests.WithLabelValues(r.Method, route, code).Inc()
		m.duration.WithLabelValues(r.Method, route, code).Observe(time.Since(start).Seconds())
	})
}
