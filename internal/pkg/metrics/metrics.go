// Package metrics holds the Prometheus collectors of the service on a dedicated registry.
//
// The registry is created in the composition root and served on /metrics. Tests create
// their own Metrics to keep counters isolated.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mangoshop"

// Quote results.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Order outcomes.
const (
	OutcomePlaced   = "placed"
	OutcomeRejected = "rejected"
	OutcomeDeclined = "declined"
	OutcomeFailed   = "failed"
)

// Metrics groups the collectors updated by the HTTP adapter and the jobs.
type Metrics struct {
	registry *prometheus.Registry

	quotes       *prometheus.CounterVec
	orders       *prometheus.CounterVec
	backlog      *prometheus.GaugeVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers the service collectors plus the Go and process collectors on a new registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		quotes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_quotes_total",
			Help:      "Delivery quotes by delivery method and result.",
		}, []string{"delivery_method", "result"}),
		orders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_total",
			Help:      "Order placement attempts by delivery method and outcome.",
		}, []string{"delivery_method", "outcome"}),
		backlog: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "order_backlog",
			Help:      "Processing orders by delivery method, refreshed by the backlog job.",
		}, []string{"delivery_method"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Registry returns the registry to expose over HTTP.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveQuote(method string, valid bool) {
	result := ResultInvalid
	if valid {
		result = ResultValid
	}
	m.quotes.WithLabelValues(methodLabel(method), result).Inc()
}

func (m *Metrics) ObserveOrder(method, outcome string) {
	m.orders.WithLabelValues(methodLabel(method), outcome).Inc()
}

// RecordBacklog sets the backlog gauge of one delivery method.
func (m *Metrics) RecordBacklog(method string, count int64) {
	m.backlog.WithLabelValues(methodLabel(method)).Set(float64(count))
}

func (m *Metrics) ObserveRequest(route, method, code string, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpDuration.WithLabelValues(route).Observe(seconds)
}

// methodLabel bounds label cardinality to the known delivery methods.
func methodLabel(method string) string {
	switch method {
	case "pickup", "doorstep":
		return method
	default:
		return "other"
	}
}
