// Package metrics provides Prometheus metrics for the foosleague service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "foosleague"

// Manager owns the service's Prometheus collectors behind its own
// registry, keeping the default Go collectors out of the scrape.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	settlementRuns prometheus.Counter
	settledMatches prometheus.Counter
	settlementErrs prometheus.Counter
}

// New creates a metrics manager with all collectors registered
func New() *Manager {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Manager{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		settlementRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_runs_total",
			Help:      "Total settlement invocations.",
		}),
		settledMatches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settled_matches_total",
			Help:      "Total matches deactivated by settlement.",
		}),
		settlementErrs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_errors_total",
			Help:      "Total settlement runs that failed.",
		}),
	}
}

// ObserveRequest records one served HTTP request
func (m *Manager) ObserveRequest(method, route, status string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveSettlement records the outcome of one settlement run
func (m *Manager) ObserveSettlement(settled int, err error) {
	m.settlementRuns.Inc()
	if err != nil {
		m.settlementErrs.Inc()
		return
	}
	m.settledMatches.Add(float64(settled))
}

// Handler returns the scrape endpoint for this manager's registry
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
