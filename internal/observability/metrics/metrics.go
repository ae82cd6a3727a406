package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics records per-route request counts and latency.
type HTTPMetrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP instruments on a fresh registry.
func NewHTTPMetrics() *HTTPMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	requestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dukaankhata_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status_code"})
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dukaankhata_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	registry.MustRegister(requestsTotal, requestDuration)

	return &HTTPMetrics{
		registry:        registry,
		requestsTotal:   requestsTotal,
		requestDuration: requestDuration,
	}
}

// Record observes a completed request.
func (m *HTTPMetrics) Record(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	route = normalizeRoute(route)
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in Prometheus exposition format.
func (m *HTTPMetrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// GinMiddleware records metrics for every request.
func (m *HTTPMetrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.Record(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// Routes are labeled by registered pattern, never raw path, to keep
// cardinality bounded.
func normalizeRoute(route string) string {
	if strings.TrimSpace(route) == "" {
		return "unknown"
	}
	return route
}
