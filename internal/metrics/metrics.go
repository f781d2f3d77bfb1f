// Package metrics defines the Prometheus collectors for ranking runs and
// exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors.
type Metrics struct {
	RankRequestsTotal *prometheus.CounterVec
	RankDuration      *prometheus.HistogramVec
	Iterations        prometheus.Histogram
	GraphPages        prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them on reg. A nil reg uses a
// fresh private registry, so tests can build as many as they like.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		RankRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linkrank_rank_requests_total",
				Help: "Total ranking runs by method and status.",
			},
			[]string{"method", "status"},
		),
		RankDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "linkrank_rank_duration_seconds",
				Help:    "Ranking run latency in seconds.",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method"},
		),
		Iterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "linkrank_iterations",
				Help:    "Passes needed by the iterative engine to converge.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		GraphPages: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "linkrank_graph_pages",
				Help:    "Number of pages per ranked graph.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}

	reg.MustRegister(
		m.RankRequestsTotal,
		m.RankDuration,
		m.Iterations,
		m.GraphPages,
	)
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	} else {
		m.gatherer = prometheus.DefaultGatherer
	}

	return m
}

// Observe records one finished run.
func (m *Metrics) Observe(method, status string, elapsed time.Duration) {
	m.RankRequestsTotal.WithLabelValues(method, status).Inc()
	m.RankDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Handler returns the scrape handler for the registry the collectors live in.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
