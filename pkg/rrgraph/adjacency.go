package rrgraph

import "github.com/dd0wney/cluso-rrgraph/pkg/logging"

// RebuildNodeEdges lists every live edge in the adjacency of both of its
// endpoints. Each node's slot in the edge arena is laid out as
//
//	[configurable in][non-configurable in][configurable out][non-configurable out]
//
// and keeps creation order inside each group, so repeated rebuilds from the
// same edges give identical arrays. All edge switches must be resolved.
// This is a full rebuild; call it once after bulk edge creation.
func (g *Graph) RebuildNodeEdges() {
	timer := logging.StartTimer(g.logger, "adjacency rebuilt", logging.Operation("RebuildNodeEdges"))

	// Reject bad edges before touching any counter, so a failed rebuild
	// leaves the previous adjacency intact.
	for e := range g.numEdges {
		eid := EdgeID(e)
		if !g.ValidEdgeID(eid) {
			continue
		}
		if sw := g.edgeSwitches[e]; !g.ValidSwitchID(sw) {
			panic(NewError("RebuildNodeEdges").Edge(eid).Cause(ErrInvalidSwitch).
				Context("switch %d unresolved", sw).Build())
		}
		g.mustValidNode("RebuildNodeEdges", g.edgeSrcNodes[e])
		g.mustValidNode("RebuildNodeEdges", g.edgeSinkNodes[e])
	}

	numIn := g.nodeNumInEdges
	numOut := g.nodeNumOutEdges
	nonConfigIn := g.nodeNonConfigIn
	nonConfigOut := g.nodeNonConfigOut
	clear(numIn)
	clear(numOut)
	clear(nonConfigIn)
	clear(nonConfigOut)

	// Count
	for e := range g.numEdges {
		if !g.ValidEdgeID(EdgeID(e)) {
			continue
		}
		src, sink, sw := g.edgeSrcNodes[e], g.edgeSinkNodes[e], g.edgeSwitches[e]
		numOut[src]++
		numIn[sink]++
		if !g.switches[sw].Configurable() {
			nonConfigOut[src]++
			nonConfigIn[sink]++
		}
	}

	// Allocate by prefix sums
	total := int32(0)
	for n := range g.numNodes {
		g.nodeEdgeOffsets[n] = total
		total += numIn[n] + numOut[n]
	}
	arena := make([]EdgeID, total)

	// Scatter in id order. Separate cursors keep self-loops in both halves.
	inCursor := make([]int32, g.numNodes)
	outCursor := make([]int32, g.numNodes)
	for e := range g.numEdges {
		eid := EdgeID(e)
		if !g.ValidEdgeID(eid) {
			continue
		}
		src, sink := g.edgeSrcNodes[e], g.edgeSinkNodes[e]
		arena[g.nodeEdgeOffsets[sink]+inCursor[sink]] = eid
		inCursor[sink]++
		arena[g.nodeEdgeOffsets[src]+numIn[src]+outCursor[src]] = eid
		outCursor[src]++
	}

	// Partition each half by configurability
	var scratch []EdgeID
	for n := range g.numNodes {
		off := g.nodeEdgeOffsets[n]
		in := arena[off : off+numIn[n]]
		out := arena[off+numIn[n] : off+numIn[n]+numOut[n]]
		scratch = g.stablePartition(in, scratch)
		scratch = g.stablePartition(out, scratch)
	}

	g.edgeArena = arena
	g.adjacencyEdges = g.numEdges

	elapsed := timer.EndWithLevel(logging.DebugLevel, logging.Count(int(total)))
	g.metrics.RecordAdjacencyRebuild(elapsed)
}

// stablePartition moves configurable edges ahead of non-configurable ones,
// keeping relative order in both groups. scratch is reused across calls.
func (g *Graph) stablePartition(edges, scratch []EdgeID) []EdgeID {
	scratch = scratch[:0]
	w := 0
	for _, e := range edges {
		if g.switches[g.edgeSwitches[e]].Configurable() {
			edges[w] = e
			w++
		} else {
			scratch = append(scratch, e)
		}
	}
	copy(edges[w:], scratch)
	return scratch
}

// Slot views. Capped so appends by callers can never spill into a
// neighbour's slot.

func (g *Graph) nodeSlot(n NodeID) []EdgeID {
	off := g.nodeEdgeOffsets[n]
	end := off + g.nodeNumInEdges[n] + g.nodeNumOutEdges[n]
	return g.edgeArena[off:end:end]
}

func (g *Graph) inSlot(n NodeID) []EdgeID {
	off := g.nodeEdgeOffsets[n]
	end := off + g.nodeNumInEdges[n]
	return g.edgeArena[off:end:end]
}

func (g *Graph) outSlot(n NodeID) []EdgeID {
	off := g.nodeEdgeOffsets[n] + g.nodeNumInEdges[n]
	end := off + g.nodeNumOutEdges[n]
	return g.edgeArena[off:end:end]
}

// NodeEdges returns the node's whole adjacency slot, in-edges first.
// Removed edges show up as InvalidEdgeID until the next Compress.
// The returned slice aliases graph storage and must not be modified.
func (g *Graph) NodeEdges(n NodeID) []EdgeID {
	g.safeValidNode("NodeEdges", n)
	return g.nodeSlot(n)
}

// NodeInEdges returns the node's incoming edges.
func (g *Graph) NodeInEdges(n NodeID) []EdgeID {
	g.safeValidNode("NodeInEdges", n)
	return g.inSlot(n)
}

// NodeOutEdges returns the node's outgoing edges.
func (g *Graph) NodeOutEdges(n NodeID) []EdgeID {
	g.safeValidNode("NodeOutEdges", n)
	return g.outSlot(n)
}

// NodeConfigurableInEdges returns the incoming edges over configurable switches.
func (g *Graph) NodeConfigurableInEdges(n NodeID) []EdgeID {
	g.safeValidNode("NodeConfigurableInEdges", n)
	in := g.inSlot(n)
	k := len(in) - int(g.nodeNonConfigIn[n])
	return in[:k:k]
}

// NodeNonConfigurableInEdges returns the incoming hardwired edges.
func (g *Graph) NodeNonConfigurableInEdges(n NodeID) []EdgeID {
	g.safeValidNode("NodeNonConfigurableInEdges", n)
	in := g.inSlot(n)
	return in[len(in)-int(g.nodeNonConfigIn[n]):]
}

// NodeConfigurableOutEdges returns the outgoing edges over configurable switches.
func (g *Graph) NodeConfigurableOutEdges(n NodeID) []EdgeID {
	g.safeValidNode("NodeConfigurableOutEdges", n)
	out := g.outSlot(n)
	k := len(out) - int(g.nodeNonConfigOut[n])
	return out[:k:k]
}

// NodeNonConfigurableOutEdges returns the outgoing hardwired edges.
func (g *Graph) NodeNonConfigurableOutEdges(n NodeID) []EdgeID {
	g.safeValidNode("NodeNonConfigurableOutEdges", n)
	out := g.outSlot(n)
	return out[len(out)-int(g.nodeNonConfigOut[n]):]
}

// NodeFanIn is the number of in-edges recorded at the last rebuild.
func (g *Graph) NodeFanIn(n NodeID) int {
	g.safeValidNode("NodeFanIn", n)
	return int(g.nodeNumInEdges[n])
}

// NodeFanOut is the number of out-edges recorded at the last rebuild.
func (g *Graph) NodeFanOut(n NodeID) int {
	g.safeValidNode("NodeFanOut", n)
	return int(g.nodeNumOutEdges[n])
}

// NodeNumConfigurableInEdges and friends expose the partition boundaries.
func (g *Graph) NodeNumConfigurableInEdges(n NodeID) int {
	return g.NodeFanIn(n) - int(g.nodeNonConfigIn[n])
}

func (g *Graph) NodeNumNonConfigurableInEdges(n NodeID) int {
	g.safeValidNode("NodeNumNonConfigurableInEdges", n)
	return int(g.nodeNonConfigIn[n])
}

func (g *Graph) NodeNumConfigurableOutEdges(n NodeID) int {
	return g.NodeFanOut(n) - int(g.nodeNonConfigOut[n])
}

func (g *Graph) NodeNumNonConfigurableOutEdges(n NodeID) int {
	g.safeValidNode("NodeNumNonConfigurableOutEdges", n)
	return int(g.nodeNonConfigOut[n])
}
