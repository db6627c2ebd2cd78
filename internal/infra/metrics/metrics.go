// Package metrics exposes the client's Prometheus instruments.
//
// One Metrics value owns a private registry, so tests and multiple shells in
// one process never collide on the global default registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "waiter"

// Poll results.
const (
	PollApplied = "applied"
	PollFailed  = "failed"
	PollStale   = "stale"
)

// Metrics holds every instrument of the client.
type Metrics struct {
	registry *prometheus.Registry

	// PollsTotal counts poll passes by result (applied, failed, stale).
	PollsTotal *prometheus.CounterVec

	// AlertsTotal counts ready alerts by shape (single, aggregate).
	AlertsTotal *prometheus.CounterVec

	// ReadyOrders is the last applied count of alertable orders.
	ReadyOrders prometheus.Gauge

	// GatewayRequestsTotal counts backend calls by method, route and outcome.
	GatewayRequestsTotal *prometheus.CounterVec

	// GatewayRequestDuration times backend calls by method and route.
	GatewayRequestDuration *prometheus.HistogramVec

	// ToastsTotal counts toasts by kind and variant.
	ToastsTotal *prometheus.CounterVec
}

// New creates and registers all instruments on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PollsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poller",
			Name:      "polls_total",
			Help:      "Poll passes by result",
		}, []string{"result"}),
		AlertsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poller",
			Name:      "alerts_total",
			Help:      "Ready alerts emitted by shape",
		}, []string{"shape"}),
		ReadyOrders: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "poller",
			Name:      "ready_orders",
			Help:      "Orders in the alert status as of the last applied poll",
		}),
		GatewayRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Backend requests by method, route and outcome",
		}, []string{"method", "route", "outcome"}),
		GatewayRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Backend request latency",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		ToastsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "toasts_total",
			Help:      "Toasts shown by kind and variant",
		}, []string{"kind", "variant"}),
	}
}

// Registry returns the registry the instruments live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObservePoll records one poll pass.
func (m *Metrics) ObservePoll(result string) {
	m.PollsTotal.WithLabelValues(result).Inc()
}

// ObserveAlert records one emitted alert covering count orders.
func (m *Metrics) ObserveAlert(count int) {
	shape := "aggregate"
	if count == 1 {
		shape = "single"
	}
	m.AlertsTotal.WithLabelValues(shape).Inc()
}

// SetReadyOrders records the latest applied count.
func (m *Metrics) SetReadyOrders(count int) {
	m.ReadyOrders.Set(float64(count))
}

// ObserveRequest records one backend call.
func (m *Metrics) ObserveRequest(method, route, outcome string, elapsed time.Duration) {
	m.GatewayRequestsTotal.WithLabelValues(method, route, outcome).Inc()
	m.GatewayRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveToast records one toast.
func (m *Metrics) ObserveToast(kind, variant string) {
	m.ToastsTotal.WithLabelValues(kind, variant).Inc()
}
