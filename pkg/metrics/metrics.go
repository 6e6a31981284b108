package metrics

import (
	"time"
)

// UpdateGraphSize sets the size gauges.
func (r *Registry) UpdateGraphSize(nodes, edges, invalidNodes, invalidEdges int) {
	if r == nil {
		return
	}
	r.NodesTotal.Set(float64(nodes))
	r.EdgesTotal.Set(float64(edges))
	r.InvalidNodesTotal.Set(float64(invalidNodes))
	r.InvalidEdgesTotal.Set(float64(invalidEdges))
}

// RecordRemoval counts one lazy removal of the given kind ("node" or "edge").
func (r *Registry) RecordRemoval(kind string) {
	if r == nil {
		return
	}
	r.RemovalsTotal.WithLabelValues(kind).Inc()
}

// RecordCompaction records a Compress call and what it dropped.
func (r *Registry) RecordCompaction(duration time.Duration, removedNodes, removedEdges int) {
	if r == nil {
		return
	}
	r.CompactionsTotal.Inc()
	r.CompactionDuration.Observe(duration.Seconds())
	r.CompactedEntriesTotal.WithLabelValues("node").Add(float64(removedNodes))
	r.CompactedEntriesTotal.WithLabelValues("edge").Add(float64(removedEdges))
}

// RecordLookupRebuild records a fast lookup rebuild.
func (r *Registry) RecordLookupRebuild(duration time.Duration) {
	if r == nil {
		return
	}
	r.LookupRebuildsTotal.Inc()
	r.LookupRebuildDuration.Observe(duration.Seconds())
}

// RecordAdjacencyRebuild records a RebuildNodeEdges call.
func (r *Registry) RecordAdjacencyRebuild(duration time.Duration) {
	if r == nil {
		return
	}
	r.AdjacencyRebuildsTotal.Inc()
	r.AdjacencyRebuildDuration.Observe(duration.Seconds())
}

// RecordValidation records a validation run and the checks that failed.
func (r *Registry) RecordValidation(ok bool, failedChecks []string) {
	if r == nil {
		return
	}
	result := "pass"
	if !ok {
		result = "fail"
	}
	r.ValidationRunsTotal.WithLabelValues(result).Inc()
	for _, check := range failedChecks {
		r.ValidationFailedChecksTotal.WithLabelValues(check).Inc()
	}
}
