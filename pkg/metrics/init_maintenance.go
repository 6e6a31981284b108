package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Graph passes are O(graph size); buckets span small test graphs up to
// full-device graphs.
var passBuckets = []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30}

func (r *Registry) initMaintenanceMetrics() {
	r.CompactionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "compactions_total",
			Help:      "Number of Compress calls",
		},
	)

	r.CompactionDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: r.namespace,
			Name:      "compaction_duration_seconds",
			Help:      "Compress duration in seconds",
			Buckets:   passBuckets,
		},
	)

	r.CompactedEntriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "compacted_entries_total",
			Help:      "Removed entries physically dropped by compaction",
		},
		[]string{"kind"},
	)

	r.LookupRebuildsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "lookup_rebuilds_total",
			Help:      "Number of fast node lookup rebuilds",
		},
	)

	r.LookupRebuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: r.namespace,
			Name:      "lookup_rebuild_duration_seconds",
			Help:      "Fast node lookup rebuild duration in seconds",
			Buckets:   passBuckets,
		},
	)

	r.AdjacencyRebuildsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "adjacency_rebuilds_total",
			Help:      "Number of RebuildNodeEdges calls",
		},
	)

	r.AdjacencyRebuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: r.namespace,
			Name:      "adjacency_rebuild_duration_seconds",
			Help:      "RebuildNodeEdges duration in seconds",
			Buckets:   passBuckets,
		},
	)

	r.ValidationRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "validation_runs_total",
			Help:      "Validation runs by result",
		},
		[]string{"result"},
	)

	r.ValidationFailedChecksTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "validation_failed_checks_total",
			Help:      "Failed validator checks by check name",
		},
		[]string{"check"},
	)
}
