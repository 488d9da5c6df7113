package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Render Prometheus metrics.
var (
	RenderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "querydsl",
			Name:      "render_total",
			Help:      "Total number of rendered query templates",
		},
		[]string{"query", "status"}, // status: "ok" / "error"
	)

	RenderBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "querydsl",
			Name:      "render_bytes",
			Help:      "Size of rendered query bodies in bytes",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 6),
		},
	)
)

var renderMetricsRegistered bool

// RegisterRenderMetrics registers the render metrics. Must be called once from main.
func RegisterRenderMetrics() {
	if renderMetricsRegistered {
		return
	}
	prometheus.MustRegister(RenderTotal)
	prometheus.MustRegister(RenderBytes)
	renderMetricsRegistered = true
}

// ObserveRender records the outcome of rendering one query.
func ObserveRender(query string, size int, err error) {
	if err != nil {
		RenderTotal.WithLabelValues(query, "error").Inc()
		return
	}
	RenderTotal.WithLabelValues(query, "ok").Inc()
	RenderBytes.Observe(float64(size))
}

// WriteTextfile dumps the default registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
