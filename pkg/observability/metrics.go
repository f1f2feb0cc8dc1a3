package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Prometheus Metrics
// =============================================================================

const namespace = "antennamap"

// Metrics records load and query events as Prometheus metrics. It
// implements both [LoadHooks] and [QueryHooks].
//
// A CLI run is short-lived, so metrics are not scraped; call
// [Metrics.WriteTextfile] at exit to leave them for the node exporter's
// textfile collector.
type Metrics struct {
	registry *prometheus.Registry

	loadDuration   prometheus.Histogram
	loadErrors     prometheus.Counter
	mapsCreated    prometheus.Counter
	antennas       prometheus.Gauge
	edges          prometheus.Gauge
	queryDuration  *prometheus.HistogramVec
	queryResults   *prometheus.CounterVec
	queryErrors    *prometheus.CounterVec
	queriesRunning prometheus.Gauge
}

var (
	_ LoadHooks  = (*Metrics)(nil)
	_ QueryHooks = (*Metrics)(nil)
)

// NewMetrics creates the metrics on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,

		// loadDuration measures reading a map and building its graph.
		loadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "load",
			Name:      "duration_seconds",
			Help:      "Time to read a map and build its graph",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		loadErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "load",
			Name:      "errors_total",
			Help:      "Map loads that failed",
		}),
		mapsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "load",
			Name:      "default_maps_written_total",
			Help:      "Missing maps replaced by the default map",
		}),
		antennas: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "antennas",
			Help:      "Antennas in the last loaded map",
		}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edges",
			Help:      "Edges in the last loaded graph",
		}),

		// queryDuration measures each query.
		// Labels: kind (interference, dfs, bfs, paths, intersections)
		queryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "duration_seconds",
			Help:      "Query latency in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
		}, []string{"kind"}),
		queryResults: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "results_total",
			Help:      "Results returned by queries",
		}, []string{"kind"}),
		queryErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "errors_total",
			Help:      "Queries that failed",
		}, []string{"kind"}),
		queriesRunning: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "in_flight",
			Help:      "Queries started but not completed",
		}),
	}
}

// Gatherer exposes the registry, e.g. for tests or an HTTP handler.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// WriteTextfile writes every metric to path in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) OnLoadStart(context.Context, string) {}

func (m *Metrics) OnLoadComplete(_ context.Context, _ string, antennas, edges int, d time.Duration, err error) {
	m.loadDuration.Observe(d.Seconds())
	if err != nil {
		m.loadErrors.Inc()
		return
	}
	m.antennas.Set(float64(antennas))
	m.edges.Set(float64(edges))
}

func (m *Metrics) OnMapCreated(context.Context, string) {
	m.mapsCreated.Inc()
}

func (m *Metrics) OnQueryStart(context.Context, string) {
	m.queriesRunning.Inc()
}

func (m *Metrics) OnQueryComplete(_ context.Context, kind string, results int, d time.Duration, err error) {
	m.queriesRunning.Dec()
	m.queryDuration.WithLabelValues(kind).Observe(d.Seconds())
	if err != nil {
		m.queryErrors.WithLabelValues(kind).Inc()
		return
	}
	m.queryResults.WithLabelValues(kind).Add(float64(results))
}
