// Package metrics holds the Prometheus collectors of the point-of-sale service.
// Collectors live on a private registry exposed by Handler.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry          *prometheus.Registry
	aggregatesWritten *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	menusHidden       prometheus.Counter
	auditRuns         *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		aggregatesWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kitchenpos",
				Name:      "aggregates_written_total",
				Help:      "Aggregates written by committed transactions",
			},
			[]string{"aggregate"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "kitchenpos",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		menusHidden: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "kitchenpos",
				Name:      "menus_hidden_total",
				Help:      "Overpriced menus hidden by the menu audit",
			},
		),
		auditRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kitchenpos",
				Name:      "menu_audit_runs_total",
				Help:      "Menu audit runs by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.aggregatesWritten,
		m.requestDuration,
		m.menusHidden,
		m.auditRuns,
	)

	return m
}

// AggregateWritten counts one aggregate under its type name, e.g. "order.Order".
func (m *Metrics) AggregateWritten(aggregate any) {
	m.aggregatesWritten.WithLabelValues(strings.TrimPrefix(fmt.Sprintf("%T", aggregate), "*")).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// MenuAuditFinished records one audit run and the menus it hid.
func (m *Metrics) MenuAuditFinished(hidden int, err error) {
	if err != nil {
		m.auditRuns.WithLabelValues("failed").Inc()
		return
	}
	m.auditRuns.WithLabelValues("succeeded").Inc()
	m.menusHidden.Add(float64(hidden))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
