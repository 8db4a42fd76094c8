package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments exposed by the routing service.
type Metrics struct {
	RoutingDecisions  *prometheus.CounterVec
	PaymentExecutions *prometheus.CounterVec
	RoutingFailures   *prometheus.CounterVec
	SelectionDuration prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics registers the routing service metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		RoutingDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "router_routing_decisions_total",
			Help: "Routing decisions by strategy and selected processor.",
		}, []string{"strategy", "processor"}),
		PaymentExecutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "router_payment_executions_total",
			Help: "Payment executions by processor and outcome status.",
		}, []string{"processor", "status"}),
		RoutingFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "router_routing_failures_total",
			Help: "Routing failures by kind (unknown_strategy, no_eligible_processor).",
		}, []string{"kind"}),
		SelectionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "router_selection_duration_seconds",
			Help:    "Time spent selecting a processor for a transaction.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		registry: reg,
	}
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
