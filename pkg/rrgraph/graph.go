package rrgraph

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-rrgraph/pkg/logging"
	"github.com/dd0wney/cluso-rrgraph/pkg/metrics"
)

// Graph is the in-memory routing-resource graph. Every node and edge
// attribute lives in its own array indexed by handle value.
//
// A Graph is not safe for concurrent mutation. Reads may run concurrently
// only with each other; the fast lookup rebuild they can trigger is guarded
// internally, or can be forced up front with EnsureLookup.
type Graph struct {
	id      uuid.UUID
	logger  logging.Logger
	metrics *metrics.Registry

	numNodes int
	numEdges int

	// Node attributes, one entry per node id
	nodeTypes       []NodeType
	nodeBounds      []Rect
	nodeCapacities  []int16
	nodePtcNums     [][]int16 // one entry per unit length (+1) for channels, one otherwise
	nodeCostIndices []int16
	nodeDirections  []Direction
	nodeSides       []Side
	nodeRs          []float32
	nodeCs          []float32
	nodeRCIndices   []int16
	nodeSegments    []SegmentID

	// Adjacency, one entry per node id. Each node owns
	// edgeArena[nodeEdgeOffsets[n] : nodeEdgeOffsets[n]+in+out].
	nodeEdgeOffsets  []int32
	nodeNumInEdges   []int32
	nodeNumOutEdges  []int32
	nodeNonConfigIn  []int32
	nodeNonConfigOut []int32
	edgeArena        []EdgeID

	// adjacencyEdges is the edge count when the adjacency was last rebuilt.
	// Edges at or above it are not yet listed in any node's array.
	adjacencyEdges int

	// Edge attributes, one entry per edge id
	edgeSrcNodes  []NodeID
	edgeSinkNodes []NodeID
	edgeSwitches  []SwitchID

	switches []Switch
	segments []Segment

	invalidNodes map[NodeID]struct{}
	invalidEdges map[EdgeID]struct{}
	dirty        bool

	lookup nodeLookup
}

// Options configures a Graph.
type Options struct {
	Logger  logging.Logger
	Metrics *metrics.Registry

	// Capacity hints, applied with the Reserve* methods
	ReserveNodes    int
	ReserveEdges    int
	ReserveSwitches int
	ReserveSegments int
}

// New creates an empty graph that logs nothing and records no metrics.
func New() *Graph {
	return NewWithOptions(Options{})
}

// NewWithOptions creates an empty graph with custom options.
func NewWithOptions(opts Options) *Graph {
	g := &Graph{
		id:           uuid.New(),
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		invalidNodes: make(map[NodeID]struct{}),
		invalidEdges: make(map[EdgeID]struct{}),
	}
	if g.logger == nil {
		g.logger = logging.NewNopLogger()
	}
	g.logger = g.logger.With(logging.Component("rrgraph"), logging.Graph(g.id.String()))

	g.ReserveNodes(opts.ReserveNodes)
	g.ReserveEdges(opts.ReserveEdges)
	g.ReserveSwitches(opts.ReserveSwitches)
	g.ReserveSegments(opts.ReserveSegments)
	return g
}

// InstanceID identifies this graph in log output.
func (g *Graph) InstanceID() uuid.UUID {
	return g.id
}

// NumNodes returns the size of the node id space, tombstones included.
func (g *Graph) NumNodes() int { return g.numNodes }

// NumEdges returns the size of the edge id space, tombstones included.
func (g *Graph) NumEdges() int { return g.numEdges }

// NumSwitches returns the size of the switch catalog.
func (g *Graph) NumSwitches() int { return len(g.switches) }

// NumSegments returns the size of the segment catalog.
func (g *Graph) NumSegments() int { return len(g.segments) }

// ValidNodeID reports whether n names a node that exists and is not removed.
func (g *Graph) ValidNodeID(n NodeID) bool {
	if n < 0 || int(n) >= g.numNodes {
		return false
	}
	_, removed := g.invalidNodes[n]
	return !removed
}

// ValidEdgeID reports whether e names an edge that exists and is not removed.
func (g *Graph) ValidEdgeID(e EdgeID) bool {
	if e < 0 || int(e) >= g.numEdges {
		return false
	}
	_, removed := g.invalidEdges[e]
	return !removed
}

// ValidSwitchID reports whether s is in the switch catalog.
func (g *Graph) ValidSwitchID(s SwitchID) bool {
	return s >= 0 && int(s) < len(g.switches)
}

// ValidSegmentID reports whether s is in the segment catalog.
func (g *Graph) ValidSegmentID(s SegmentID) bool {
	return s >= 0 && int(s) < len(g.segments)
}

// IsDirty reports whether entries were removed since the last Compress.
func (g *Graph) IsDirty() bool { return g.dirty }

// SetDirty marks the graph as holding tombstones.
func (g *Graph) SetDirty() { g.dirty = true }

// ClearDirty clears the dirty flag without compacting.
func (g *Graph) ClearDirty() { g.dirty = false }

// ReserveNodes grows the capacity of every node attribute array.
func (g *Graph) ReserveNodes(n int) {
	if n <= 0 {
		return
	}
	g.nodeTypes = grow(g.nodeTypes, n)
	g.nodeBounds = grow(g.nodeBounds, n)
	g.nodeCapacities = grow(g.nodeCapacities, n)
	g.nodePtcNums = grow(g.nodePtcNums, n)
	g.nodeCostIndices = grow(g.nodeCostIndices, n)
	g.nodeDirections = grow(g.nodeDirections, n)
	g.nodeSides = grow(g.nodeSides, n)
	g.nodeRs = grow(g.nodeRs, n)
	g.nodeCs = grow(g.nodeCs, n)
	g.nodeRCIndices = grow(g.nodeRCIndices, n)
	g.nodeSegments = grow(g.nodeSegments, n)

	g.nodeEdgeOffsets = grow(g.nodeEdgeOffsets, n)
	g.nodeNumInEdges = grow(g.nodeNumInEdges, n)
	g.nodeNumOutEdges = grow(g.nodeNumOutEdges, n)
	g.nodeNonConfigIn = grow(g.nodeNonConfigIn, n)
	g.nodeNonConfigOut = grow(g.nodeNonConfigOut, n)
}

// ReserveEdges grows the capacity of every edge attribute array.
func (g *Graph) ReserveEdges(n int) {
	if n <= 0 {
		return
	}
	g.edgeSrcNodes = grow(g.edgeSrcNodes, n)
	g.edgeSinkNodes = grow(g.edgeSinkNodes, n)
	g.edgeSwitches = grow(g.edgeSwitches, n)
}

// grow makes room for at least n elements in total.
func grow[T any](s []T, n int) []T {
	if n <= cap(s) {
		return s
	}
	out := make([]T, len(s), n)
	copy(out, s)
	return out
}

// Clear drops every node, edge, switch and segment.
func (g *Graph) Clear() {
	g.clearNodes()
	g.clearEdges()
	g.switches = g.switches[:0]
	g.segments = g.segments[:0]

	g.invalidateLookup()
	clear(g.invalidNodes)
	clear(g.invalidEdges)
	g.dirty = false

	g.metrics.UpdateGraphSize(0, 0, 0, 0)
	g.logger.Debug("graph cleared")
}

func (g *Graph) clearNodes() {
	g.numNodes = 0
	g.nodeTypes = g.nodeTypes[:0]
	g.nodeBounds = g.nodeBounds[:0]
	g.nodeCapacities = g.nodeCapacities[:0]
	g.nodePtcNums = g.nodePtcNums[:0]
	g.nodeCostIndices = g.nodeCostIndices[:0]
	g.nodeDirections = g.nodeDirections[:0]
	g.nodeSides = g.nodeSides[:0]
	g.nodeRs = g.nodeRs[:0]
	g.nodeCs = g.nodeCs[:0]
	g.nodeRCIndices = g.nodeRCIndices[:0]
	g.nodeSegments = g.nodeSegments[:0]

	g.nodeEdgeOffsets = g.nodeEdgeOffsets[:0]
	g.nodeNumInEdges = g.nodeNumInEdges[:0]
	g.nodeNumOutEdges = g.nodeNumOutEdges[:0]
	g.nodeNonConfigIn = g.nodeNonConfigIn[:0]
	g.nodeNonConfigOut = g.nodeNonConfigOut[:0]
	g.edgeArena = nil
}

func (g *Graph) clearEdges() {
	g.numEdges = 0
	g.adjacencyEdges = 0
	g.edgeSrcNodes = g.edgeSrcNodes[:0]
	g.edgeSinkNodes = g.edgeSinkNodes[:0]
	g.edgeSwitches = g.edgeSwitches[:0]
}

// Stats is a point-in-time summary of the graph.
type Stats struct {
	NodeIDs      int // size of the node id space
	EdgeIDs      int // size of the edge id space
	InvalidNodes int
	InvalidEdges int
	Switches     int
	Segments     int
	Dirty        bool
	LookupFresh  bool
}

// Stats returns graph statistics.
func (g *Graph) Stats() Stats {
	return Stats{
		NodeIDs:      g.numNodes,
		EdgeIDs:      g.numEdges,
		InvalidNodes: len(g.invalidNodes),
		InvalidEdges: len(g.invalidEdges),
		Switches:     len(g.switches),
		Segments:     len(g.segments),
		Dirty:        g.dirty,
		LookupFresh:  g.LookupFresh(),
	}
}

func (g *Graph) updateSizeMetrics() {
	g.metrics.UpdateGraphSize(g.numNodes, g.numEdges, len(g.invalidNodes), len(g.invalidEdges))
}

// NodeString renders the basic attributes of a node for diagnostics.
func (g *Graph) NodeString(n NodeID) string {
	g.mustValidNode("NodeString", n)
	var b strings.Builder
	bb := g.nodeBounds[n]
	fmt.Fprintf(&b, "Node id: %d\n", n)
	fmt.Fprintf(&b, "Node type: %s\n", g.nodeTypes[n])
	fmt.Fprintf(&b, "Node xlow: %d\n", bb.XLow)
	fmt.Fprintf(&b, "Node ylow: %d\n", bb.YLow)
	fmt.Fprintf(&b, "Node xhigh: %d\n", bb.XHigh)
	fmt.Fprintf(&b, "Node yhigh: %d\n", bb.YHigh)
	fmt.Fprintf(&b, "Node ptc: %d\n", g.nodePtcNums[n][0])
	fmt.Fprintf(&b, "Node num in_edges: %d\n", g.nodeNumInEdges[n])
	fmt.Fprintf(&b, "Node num out_edges: %d\n", g.nodeNumOutEdges[n])
	return b.String()
}

// Precondition helpers. The must* variants always run; the safe* variants
// are dropped in rrgraph_unchecked builds.

func (g *Graph) mustValidNode(op string, n NodeID) {
	if !g.ValidNodeID(n) {
		panic(NewError(op).Node(n).Cause(ErrInvalidNode).Build())
	}
}

func (g *Graph) safeValidNode(op string, n NodeID) {
	if checksEnabled {
		g.mustValidNode(op, n)
	}
}

func (g *Graph) mustValidEdge(op string, e EdgeID) {
	if !g.ValidEdgeID(e) {
		panic(NewError(op).Edge(e).Cause(ErrInvalidEdge).Build())
	}
}

func (g *Graph) safeValidEdge(op string, e EdgeID) {
	if checksEnabled {
		g.mustValidEdge(op, e)
	}
}

func (g *Graph) mustValidSwitch(op string, s SwitchID) {
	if !g.ValidSwitchID(s) {
		panic(NewError(op).Switch(s).Cause(ErrInvalidSwitch).Build())
	}
}

func (g *Graph) mustValidSegment(op string, s SegmentID) {
	if !g.ValidSegmentID(s) {
		panic(NewError(op).Segment(s).Cause(ErrInvalidSegment).Build())
	}
}

// mustNodeType panics unless the node's type satisfies ok.
func (g *Graph) mustNodeType(op string, n NodeID, ok func(NodeType) bool, want string) {
	if t := g.nodeTypes[n]; !ok(t) {
		panic(NewError(op).Node(n).Cause(ErrWrongNodeType).
			Context("%s valid only for %s nodes, got %s", op, want, t).Build())
	}
}

func mustSizes(op string, ok bool) {
	if !ok {
		panic(NewError(op).Graph().Cause(ErrSizeMismatch).Build())
	}
}
