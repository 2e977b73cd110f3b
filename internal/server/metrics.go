package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/statebars/pkg/observability"
)

const namespace = "statebars"

// Metrics records render and HTTP activity on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	renders         *prometheus.CounterVec
	skips           *prometheus.CounterVec
	renderDuration  prometheus.Histogram
	entries         prometheus.Gauge
	inflight        prometheus.Gauge
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers all collectors on a new registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Completed chart passes.",
		}, []string{"highlighted"}),
		skips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_skipped_total",
			Help:      "Chart passes skipped for missing dependencies.",
		}, []string{"reason"}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of chart passes.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "render_entries",
			Help:      "Entries drawn by the last pass.",
		}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Requests being served.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Served requests.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.registry.MustRegister(
		m.renders, m.skips, m.renderDuration, m.entries,
		m.inflight, m.requests, m.requestDuration,
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// OnRenderStart implements observability.RenderHooks.
func (m *Metrics) OnRenderStart(int, float64, float64) {}

// OnRenderComplete implements observability.RenderHooks.
func (m *Metrics) OnRenderComplete(entries int, highlighted bool, d time.Duration) {
	m.renders.WithLabelValues(strconv.FormatBool(highlighted)).Inc()
	m.renderDuration.Observe(d.Seconds())
	m.entries.Set(float64(entries))
}

// OnRenderSkipped implements observability.RenderHooks.
func (m *Metrics) OnRenderSkipped(reason string) {
	m.skips.WithLabelValues(reason).Inc()
}

// OnRequest implements observability.HTTPHooks.
func (m *Metrics) OnRequest(context.Context, string, string) {
	m.inflight.Inc()
}

// OnResponse implements observability.HTTPHooks.
func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.inflight.Dec()
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ observability.RenderHooks = (*Metrics)(nil)
	_ observability.HTTPHooks   = (*Metrics)(nil)
)
