package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// apiPrefix is the route prefix below which the first segment names the
// entity family.
const apiPrefix = "/api/v1/"

// HTTP metrics. The entity label matches the one used by the graph and
// search metrics so that request and backend series can be joined.
var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "heritagegraph",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "entity", "route", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "heritagegraph",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "entity", "route", "status"},
	)

	authFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "heritagegraph",
			Name:      "http_auth_failures_total",
			Help:      "Requests rejected by API key authentication",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration, httpRequestsTotal, authFailuresTotal)
}

// RecordAuthFailure counts a rejected request.
func RecordAuthFailure(reason string) {
	authFailuresTotal.WithLabelValues(reason).Inc()
}

// Middleware records HTTP request duration and count per entity family and
// route.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			route := routeOf(r)
			labels := []string{r.Method, entityOf(route), route, strconv.Itoa(ww.status)}
			httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			httpRequestsTotal.WithLabelValues(labels...).Inc()
		})
	}
}

// routeOf returns the chi route pattern, which keeps identifiers out of the
// labels.
func routeOf(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.RoutePattern() == "" {
		return "unknown"
	}
	return strings.TrimSuffix(rctx.RoutePattern(), "/")
}

// entityOf extracts the entity family from a route pattern:
// "/api/v1/objects/batch" is "objects". Routes outside the API and
// unmatched families are "none".
func entityOf(route string) string {
	rest, ok := strings.CutPrefix(route, apiPrefix)
	if !ok {
		return "none"
	}
	family, _, _ := strings.Cut(rest, "/")
	if family == "" || strings.HasPrefix(family, "{") {
		return "none"
	}
	return family
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b) //nolint:wrapcheck // delegating to underlying ResponseWriter
}
