package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sagarc03/drills"
)

// unmatchedRoute labels requests that no route handled, keeping the
// endpoint label's cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics holds the Prometheus collectors for the server.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	rejectionsTotal     *prometheus.CounterVec
	lottoDrawsTotal     *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates a metrics set on its own registry, including the Go
// runtime and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drills_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "drills_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		rejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drills_rejected_requests_total",
				Help: "Total number of requests rejected by input validation, by endpoint and field",
			},
			[]string{"endpoint", "field"},
		),

		lottoDrawsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drills_lotto_draws_total",
				Help: "Total number of lottery draws by number of winning numbers missed",
			},
			[]string{"misses"},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.rejectionsTotal,
		m.lottoDrawsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRejection counts a request that failed validation. Errors that are
// not validation failures are ignored.
func (m *Metrics) RecordRejection(endpoint string, err error) {
	if m == nil {
		return
	}
	var vErr *drills.ValidationError
	if !errors.As(err, &vErr) {
		return
	}
	m.rejectionsTotal.WithLabelValues(endpoint, vErr.Field).Inc()
}

// RecordLottoDraw records the outcome of one lottery draw
func (m *Metrics) RecordLottoDraw(misses int) {
	if m == nil {
		return
	}
	m.lottoDrawsTotal.WithLabelValues(strconv.Itoa(misses)).Inc()
}

// Handler returns the Prometheus metrics HTTP handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records request count and latency labelled by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		endpoint := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				endpoint = pattern
			}
		}

		m.RecordHTTPRequest(r.Method, endpoint, strconv.Itoa(statusOf(ww)), time.Since(start))
	})
}

// statusOf reports the written status, treating a handler that never
// called WriteHeader as 200.
func statusOf(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}
