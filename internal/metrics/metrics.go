// Package metrics exposes Prometheus request metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Metric names.
const (
	MetricRequestsTotal          = "bookkeeper_http_requests_total"
	MetricRequestDurationSeconds = "bookkeeper_http_request_duration_seconds"
	MetricLedgerWritesTotal      = "bookkeeper_ledger_writes_total"
)

// unmatchedRoute labels requests that hit no registered route, keeping
// label cardinality bounded.
const unmatchedRoute = "unmatched"

// Recorder owns a private registry and the API's collectors.
//
// Safe for concurrent use.
type Recorder struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	ledgerWrites    *prometheus.CounterVec
}

// NewRecorder creates a Recorder with Go runtime and process collectors
// registered alongside the request metrics.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRequestsTotal,
				Help: "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricRequestDurationSeconds,
				Help:    "HTTP request latency in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ledgerWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricLedgerWritesTotal,
				Help: "Ledger rows written, by resource and action.",
			},
			[]string{"resource", "action"},
		),
	}

	registry.MustRegister(
		r.requestsTotal,
		r.requestDuration,
		r.ledgerWrites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Middleware records the count and latency of every request, labelled by
// the matched route template rather than the raw path.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := strconv.Itoa(c.Writer.Status())

		r.requestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		r.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// LedgerWrite counts one create, update or delete of a ledger resource.
func (r *Recorder) LedgerWrite(resource, action string) {
	if r == nil {
		return
	}
	r.ledgerWrites.WithLabelValues(resource, action).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gather collects all metric families from the registry.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}
