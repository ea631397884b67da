// Package metrics provides Prometheus metrics for gallery page generation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the gallery metrics and the registry they live on.
// A nil *Manager is valid and records nothing.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	fetches       prometheus.Counter
	fetchFailures prometheus.Counter
	fetchLatency  prometheus.Histogram
	pagesRendered prometheus.Counter
	cardsRendered prometheus.Counter
	imagesLoaded  *prometheus.CounterVec
}

// NewManager creates a Manager with its own registry unless one is supplied.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gallery",
		histogramBuckets: prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.fetches = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "fetch",
		Name:      "requests_total",
		Help:      "Character listing fetches attempted.",
	})
	m.fetchFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "fetch",
		Name:      "failures_total",
		Help:      "Character listing fetches that failed.",
	})
	m.fetchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "fetch",
		Name:      "duration_seconds",
		Help:      "Time spent fetching the character listing.",
		Buckets:   m.histogramBuckets,
	})
	m.pagesRendered = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "render",
		Name:      "pages_total",
		Help:      "Gallery pages rendered.",
	})
	m.cardsRendered = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "render",
		Name:      "cards_total",
		Help:      "Character cards rendered.",
	})
	m.imagesLoaded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "images",
		Name:      "loads_total",
		Help:      "Card image loads by outcome.",
	}, []string{"outcome"})

	m.registry.MustRegister(
		m.fetches,
		m.fetchFailures,
		m.fetchLatency,
		m.pagesRendered,
		m.cardsRendered,
		m.imagesLoaded,
	)
	return m
}

// ObserveFetch records one listing fetch.
func (m *Manager) ObserveFetch(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.fetches.Inc()
	m.fetchLatency.Observe(d.Seconds())
	if err != nil {
		m.fetchFailures.Inc()
	}
}

// PageRendered records a completed page with the given number of cards.
func (m *Manager) PageRendered(cards int) {
	if m == nil {
		return
	}
	m.pagesRendered.Inc()
	m.cardsRendered.Add(float64(cards))
}

// ImageLoaded records the outcome of one card image load.
func (m *Manager) ImageLoaded(err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.imagesLoaded.WithLabelValues(outcome).Inc()
}

func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
