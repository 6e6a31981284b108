package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "rrgraph"

// Registry holds the routing-resource graph metrics. A nil *Registry is
// valid and records nothing.
type Registry struct {
	// Graph size
	NodesTotal        prometheus.Gauge
	EdgesTotal        prometheus.Gauge
	InvalidNodesTotal prometheus.Gauge
	InvalidEdgesTotal prometheus.Gauge
	RemovalsTotal     *prometheus.CounterVec

	// Maintenance passes
	CompactionsTotal            prometheus.Counter
	CompactionDuration          prometheus.Histogram
	CompactedEntriesTotal       *prometheus.CounterVec
	LookupRebuildsTotal         prometheus.Counter
	LookupRebuildDuration       prometheus.Histogram
	AdjacencyRebuildsTotal      prometheus.Counter
	AdjacencyRebuildDuration    prometheus.Histogram
	ValidationRunsTotal         *prometheus.CounterVec
	ValidationFailedChecksTotal *prometheus.CounterVec

	namespace string
	registry  *prometheus.Registry
}

// NewRegistry creates a registry under DefaultNamespace.
func NewRegistry() *Registry {
	return NewRegistryWithNamespace(DefaultNamespace)
}

// NewRegistryWithNamespace creates a registry whose metric names start with
// namespace.
func NewRegistryWithNamespace(namespace string) *Registry {
	r := &Registry{
		namespace: namespace,
		registry:  prometheus.NewRegistry(),
	}
	r.initGraphMetrics()
	r.initMaintenanceMetrics()
	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}
