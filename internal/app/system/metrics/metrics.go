// Package metrics owns the Prometheus registry and the collectors the site
// records into. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lwandasite"

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	remoteOps      *prometheus.CounterVec
	remoteDuration *prometheus.HistogramVec
	contact        *prometheus.CounterVec
	gallery        *prometheus.CounterVec
}

// New creates a registry with Go runtime and process collectors plus the
// site's own collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern, and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		remoteOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_operations_total",
			Help:      "Backend operations by op, target, and result kind.",
		}, []string{"op", "target", "result"}),
		remoteDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_operation_duration_seconds",
			Help:      "Backend operation latency by op.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		contact: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		gallery: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gallery_loads_total",
			Help:      "Gallery category loads by category and outcome.",
		}, []string{"category", "outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.remoteOps,
		m.remoteDuration,
		m.contact,
		m.gallery,
	)
	return m
}

// Registry returns the underlying registry (for tests and extra collectors).
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request count and latency per chi route pattern.
// Unmatched routes are recorded as "unmatched" to keep label cardinality
// bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveRemote records one backend operation. result is "ok" or an error
// kind name.
func (m *Metrics) ObserveRemote(op, target, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.remoteOps.WithLabelValues(op, target, result).Inc()
	m.remoteDuration.WithLabelValues(op).Observe(d.Seconds())
}

// ContactOutcome counts a contact submission outcome.
func (m *Metrics) ContactOutcome(outcome string) {
	if m == nil {
		return
	}
	m.contact.WithLabelValues(outcome).Inc()
}

// GalleryOutcome counts a gallery category load outcome.
func (m *Metrics) GalleryOutcome(category, outcome string) {
	if m == nil {
		return
	}
	m.gallery.WithLabelValues(category, outcome).Inc()
}
