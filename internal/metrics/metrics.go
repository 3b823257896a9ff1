// Package metrics exposes redirect outcomes to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const outcomeLabel = "outcome"

// Outcome values recorded for watch requests. Billing outcomes mirror
// domain.VisitOutcome; the rest describe requests that never reached
// billing or failed.
const (
	OutcomeBilled          = "billed"
	OutcomeRepeat          = "repeat"
	OutcomeBudgetExhausted = "budget_exhausted"
	OutcomeNoCampaign      = "no_campaign"
	OutcomeInvalid         = "invalid"
	OutcomeError           = "error"
)

// Metrics defines the Prometheus collectors for the redirect service. Each
// instance owns its registry so tests can create as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	watchRequests *prometheus.CounterVec
	watchTimer    *prometheus.HistogramVec
	billedAmount  prometheus.Counter
}

// New registers all collectors under namespace.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		Registry: registry,
		watchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "watch_requests_total",
			Help:      "Count of ad watch requests by outcome.",
		}, []string{outcomeLabel}),
		watchTimer: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "watch_request_duration_seconds",
			Help:      "Time spent selecting and billing an ad, by outcome.",
			Buckets:   []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{outcomeLabel}),
		billedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "billed_amount_total",
			Help:      "Sum of bid values debited from campaign budgets.",
		}),
	}
	registry.MustRegister(m.watchRequests, m.watchTimer, m.billedAmount)
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return m
}

// RecordWatch counts one watch request.
func (m *Metrics) RecordWatch(outcome string, amount int64, elapsed time.Duration) {
	m.watchRequests.WithLabelValues(outcome).Inc()
	m.watchTimer.WithLabelValues(outcome).Observe(elapsed.Seconds())
	if amount > 0 {
		m.billedAmount.Add(float64(amount))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
