package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.NodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      "nodes_total",
			Help:      "Size of the node id space, removed nodes included",
		},
	)

	r.EdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      "edges_total",
			Help:      "Size of the edge id space, removed edges included",
		},
	)

	r.InvalidNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      "invalid_nodes_total",
			Help:      "Removed nodes awaiting compaction",
		},
	)

	r.InvalidEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      "invalid_edges_total",
			Help:      "Removed edges awaiting compaction",
		},
	)

	r.RemovalsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "removals_total",
			Help:      "Number of lazy removals",
		},
		[]string{"kind"},
	)
}
