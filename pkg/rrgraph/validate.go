package rrgraph

import (
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-rrgraph/pkg/logging"
)

// maxDiagnostics caps the messages kept per check; Violations still counts
// every problem.
const maxDiagnostics = 32

// CheckResult is the outcome of one validator check.
type CheckResult struct {
	Name        string
	Violations  int
	Diagnostics []string
}

func (c *CheckResult) addf(format string, args ...any) {
	c.Violations++
	if len(c.Diagnostics) < maxDiagnostics {
		c.Diagnostics = append(c.Diagnostics, fmt.Sprintf(format, args...))
	}
}

// ValidationReport aggregates every check of a validation run.
type ValidationReport struct {
	Checks []CheckResult
}

// OK reports whether every check passed.
func (r ValidationReport) OK() bool {
	return len(r.Failed()) == 0
}

// Failed returns the names of the checks that found violations.
func (r ValidationReport) Failed() []string {
	var names []string
	for _, c := range r.Checks {
		if c.Violations > 0 {
			names = append(names, c.Name)
		}
	}
	return names
}

// Err returns nil for a passing report, otherwise an error wrapping
// ErrValidationFailed.
func (r ValidationReport) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	return NewError("Validate").Graph().Cause(ErrValidationFailed).
		Context("failed checks: %s", strings.Join(failed, ", ")).Err()
}

// Check names, in run order.
const (
	CheckSizes         = "sizes"
	CheckNodeEdges     = "node_edges"
	CheckNodeSegments  = "node_segments"
	CheckEdgeSwitches  = "edge_switches"
	CheckEdgeEndpoints = "edge_endpoints"
)

// Validate runs every consistency check and reports whether all passed.
// It never panics on a corrupted graph.
func (g *Graph) Validate() bool {
	return g.ValidateReport().OK()
}

// ValidateReport runs every check and returns the full findings.
func (g *Graph) ValidateReport() ValidationReport {
	report := ValidationReport{Checks: []CheckResult{
		g.checkSizes(),
		g.checkNodeEdges(),
		g.checkNodeSegments(),
		g.checkEdgeSwitches(),
		g.checkEdgeEndpoints(),
	}}

	failed := report.Failed()
	for _, c := range report.Checks {
		for _, d := range c.Diagnostics {
			g.logger.Warn(d, logging.Check(c.Name))
		}
	}
	if len(failed) > 0 {
		g.logger.Error("graph validation failed",
			logging.String("failed_checks", strings.Join(failed, ",")),
			logging.Count(len(failed)),
			logging.Error(report.Err()))
	}
	g.metrics.RecordValidation(len(failed) == 0, failed)
	return report
}

// ValidateNode checks the adjacency and segment references of one node.
func (g *Graph) ValidateNode(n NodeID) bool {
	c := CheckResult{Name: CheckNodeEdges}
	if !g.ValidNodeID(n) {
		return false
	}
	g.checkNodeEdgesOf(n, &c)
	g.checkNodeSegmentOf(n, &c)
	return c.Violations == 0
}

// ValidateEdge checks the endpoint and switch references of one edge.
func (g *Graph) ValidateEdge(e EdgeID) bool {
	c := CheckResult{Name: CheckEdgeEndpoints}
	if !g.ValidEdgeID(e) {
		return false
	}
	g.checkEdgeSwitchOf(e, &c)
	g.checkEdgeEndpointsOf(e, &c)
	return c.Violations == 0
}

func (g *Graph) nodeSizesConsistent() bool {
	n := g.numNodes
	return len(g.nodeTypes) == n &&
		len(g.nodeBounds) == n &&
		len(g.nodeCapacities) == n &&
		len(g.nodePtcNums) == n &&
		len(g.nodeCostIndices) == n &&
		len(g.nodeDirections) == n &&
		len(g.nodeSides) == n &&
		len(g.nodeRs) == n &&
		len(g.nodeCs) == n &&
		len(g.nodeRCIndices) == n &&
		len(g.nodeSegments) == n &&
		len(g.nodeEdgeOffsets) == n &&
		len(g.nodeNumInEdges) == n &&
		len(g.nodeNumOutEdges) == n &&
		len(g.nodeNonConfigIn) == n &&
		len(g.nodeNonConfigOut) == n
}

func (g *Graph) edgeSizesConsistent() bool {
	e := g.numEdges
	return len(g.edgeSrcNodes) == e &&
		len(g.edgeSinkNodes) == e &&
		len(g.edgeSwitches) == e
}

func (g *Graph) checkSizes() CheckResult {
	c := CheckResult{Name: CheckSizes}
	sizes := []struct {
		name string
		got  int
		want int
	}{
		{"node types", len(g.nodeTypes), g.numNodes},
		{"node bounds", len(g.nodeBounds), g.numNodes},
		{"node capacities", len(g.nodeCapacities), g.numNodes},
		{"node ptc numbers", len(g.nodePtcNums), g.numNodes},
		{"node cost indices", len(g.nodeCostIndices), g.numNodes},
		{"node directions", len(g.nodeDirections), g.numNodes},
		{"node sides", len(g.nodeSides), g.numNodes},
		{"node R", len(g.nodeRs), g.numNodes},
		{"node C", len(g.nodeCs), g.numNodes},
		{"node RC indices", len(g.nodeRCIndices), g.numNodes},
		{"node segments", len(g.nodeSegments), g.numNodes},
		{"node edge offsets", len(g.nodeEdgeOffsets), g.numNodes},
		{"node in-edge counts", len(g.nodeNumInEdges), g.numNodes},
		{"node out-edge counts", len(g.nodeNumOutEdges), g.numNodes},
		{"node non-configurable in counts", len(g.nodeNonConfigIn), g.numNodes},
		{"node non-configurable out counts", len(g.nodeNonConfigOut), g.numNodes},
		{"edge sources", len(g.edgeSrcNodes), g.numEdges},
		{"edge sinks", len(g.edgeSinkNodes), g.numEdges},
		{"edge switches", len(g.edgeSwitches), g.numEdges},
	}
	for _, s := range sizes {
		if s.got != s.want {
			c.addf("%s: %d entries, expected %d", s.name, s.got, s.want)
		}
	}
	for n := range min(len(g.nodeEdgeOffsets), len(g.nodeNumInEdges), len(g.nodeNumOutEdges)) {
		end := int(g.nodeEdgeOffsets[n]) + int(g.nodeNumInEdges[n]) + int(g.nodeNumOutEdges[n])
		if g.nodeEdgeOffsets[n] < 0 || end > len(g.edgeArena) {
			c.addf("node %d: adjacency slot [%d,%d) outside arena of %d",
				n, g.nodeEdgeOffsets[n], end, len(g.edgeArena))
		}
	}
	return c
}

// slotSafe reports whether n's adjacency can be read without going out of
// bounds. Sizes are reported by checkSizes.
func (g *Graph) slotSafe(n NodeID) bool {
	if int(n) >= len(g.nodeEdgeOffsets) || int(n) >= len(g.nodeNumInEdges) || int(n) >= len(g.nodeNumOutEdges) ||
		int(n) >= len(g.nodeNonConfigIn) || int(n) >= len(g.nodeNonConfigOut) {
		return false
	}
	off, in, out := g.nodeEdgeOffsets[n], g.nodeNumInEdges[n], g.nodeNumOutEdges[n]
	return off >= 0 && in >= 0 && out >= 0 && int(off+in+out) <= len(g.edgeArena)
}

func (g *Graph) checkNodeEdges() CheckResult {
	c := CheckResult{Name: CheckNodeEdges}
	for n := range g.numNodes {
		if g.ValidNodeID(NodeID(n)) {
			g.checkNodeEdgesOf(NodeID(n), &c)
		}
	}
	return c
}

func (g *Graph) checkNodeEdgesOf(n NodeID, c *CheckResult) {
	if !g.slotSafe(n) {
		return
	}
	if g.nodeNonConfigIn[n] > g.nodeNumInEdges[n] || g.nodeNonConfigOut[n] > g.nodeNumOutEdges[n] {
		c.addf("node %d: non-configurable counts (%d in, %d out) exceed fan (%d in, %d out)",
			n, g.nodeNonConfigIn[n], g.nodeNonConfigOut[n], g.nodeNumInEdges[n], g.nodeNumOutEdges[n])
	}
	for _, e := range g.inSlot(n) {
		if e == InvalidEdgeID {
			continue
		}
		switch {
		case !g.ValidEdgeID(e):
			c.addf("node %d: in-edge %d is not a valid edge", n, e)
		case int(e) >= len(g.edgeSinkNodes):
			c.addf("node %d: in-edge %d has no sink entry", n, e)
		case g.edgeSinkNodes[e] != n:
			c.addf("node %d: in-edge %d has sink %d", n, e, g.edgeSinkNodes[e])
		}
	}
	for _, e := range g.outSlot(n) {
		if e == InvalidEdgeID {
			continue
		}
		switch {
		case !g.ValidEdgeID(e):
			c.addf("node %d: out-edge %d is not a valid edge", n, e)
		case int(e) >= len(g.edgeSrcNodes):
			c.addf("node %d: out-edge %d has no source entry", n, e)
		case g.edgeSrcNodes[e] != n:
			c.addf("node %d: out-edge %d has source %d", n, e, g.edgeSrcNodes[e])
		}
	}
}

func (g *Graph) checkNodeSegments() CheckResult {
	c := CheckResult{Name: CheckNodeSegments}
	for n := range g.numNodes {
		if g.ValidNodeID(NodeID(n)) {
			g.checkNodeSegmentOf(NodeID(n), &c)
		}
	}
	return c
}

func (g *Graph) checkNodeSegmentOf(n NodeID, c *CheckResult) {
	if int(n) >= len(g.nodeTypes) || int(n) >= len(g.nodeSegments) {
		return
	}
	if g.nodeTypes[n].IsChannel() && !g.ValidSegmentID(g.nodeSegments[n]) {
		c.addf("node %d (%s): segment %d out of range [0,%d)",
			n, g.nodeTypes[n], g.nodeSegments[n], len(g.segments))
	}
}

func (g *Graph) checkEdgeSwitches() CheckResult {
	c := CheckResult{Name: CheckEdgeSwitches}
	for e := range g.numEdges {
		if g.ValidEdgeID(EdgeID(e)) {
			g.checkEdgeSwitchOf(EdgeID(e), &c)
		}
	}
	return c
}

func (g *Graph) checkEdgeSwitchOf(e EdgeID, c *CheckResult) {
	if int(e) >= len(g.edgeSwitches) {
		return
	}
	if sw := g.edgeSwitches[e]; !g.ValidSwitchID(sw) {
		c.addf("edge %d: switch %d out of range [0,%d)", e, sw, len(g.switches))
	}
}

func (g *Graph) checkEdgeEndpoints() CheckResult {
	c := CheckResult{Name: CheckEdgeEndpoints}
	for e := range g.numEdges {
		if g.ValidEdgeID(EdgeID(e)) {
			g.checkEdgeEndpointsOf(EdgeID(e), &c)
		}
	}
	return c
}

func (g *Graph) checkEdgeEndpointsOf(e EdgeID, c *CheckResult) {
	if int(e) < len(g.edgeSrcNodes) && !g.ValidNodeID(g.edgeSrcNodes[e]) {
		c.addf("edge %d: source %d is not a valid node", e, g.edgeSrcNodes[e])
	}
	if int(e) < len(g.edgeSinkNodes) && !g.ValidNodeID(g.edgeSinkNodes[e]) {
		c.addf("edge %d: sink %d is not a valid node", e, g.edgeSinkNodes[e])
	}
}
