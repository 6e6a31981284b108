package rrgraph

import (
	"golang.org/x/exp/constraints"

	"github.com/dd0wney/cluso-rrgraph/pkg/logging"
)

// RemoveEdge tombstones an edge. Its first occurrence in the sink's in-edges
// and in the source's out-edges is overwritten with InvalidEdgeID; slot
// lengths do not change. Removing an already removed edge is a no-op.
func (g *Graph) RemoveEdge(e EdgeID) {
	if e < 0 || int(e) >= g.numEdges {
		panic(NewError("RemoveEdge").Edge(e).Cause(ErrInvalidEdge).Build())
	}
	if _, removed := g.invalidEdges[e]; removed {
		return
	}
	g.removeEdge(e)
	g.updateSizeMetrics()
	g.logger.Debug("edge removed", logging.EdgeID(int(e)))
}

func (g *Graph) removeEdge(e EdgeID) {
	scrub(g.inSlot(g.edgeSinkNodes[e]), e)
	scrub(g.outSlot(g.edgeSrcNodes[e]), e)
	g.invalidEdges[e] = struct{}{}
	g.dirty = true
	g.metrics.RecordRemoval("edge")
}

func scrub(slot []EdgeID, e EdgeID) {
	for i, x := range slot {
		if x == e {
			slot[i] = InvalidEdgeID
			return
		}
	}
}

// RemoveNode removes every edge touching n, then tombstones n. Edges created
// since the last RebuildNodeEdges are found by scanning them directly.
func (g *Graph) RemoveNode(n NodeID) {
	g.mustValidNode("RemoveNode", n)

	removed := 0
	for _, slot := range [][]EdgeID{g.inSlot(n), g.outSlot(n)} {
		for _, e := range slot {
			if g.ValidEdgeID(e) {
				g.removeEdge(e)
				removed++
			}
		}
	}
	for e := EdgeID(g.adjacencyEdges); int(e) < g.numEdges; e++ {
		if g.ValidEdgeID(e) && (g.edgeSrcNodes[e] == n || g.edgeSinkNodes[e] == n) {
			g.removeEdge(e)
			removed++
		}
	}

	g.invalidNodes[n] = struct{}{}
	g.dirty = true
	g.invalidateLookup()
	g.metrics.RecordRemoval("node")
	g.updateSizeMetrics()
	g.logger.Debug("node removed", logging.NodeID(int(n)), logging.Count(removed))
}

// RemapResult maps pre-compaction ids to their new values. Removed ids map
// to the invalid sentinel.
type RemapResult struct {
	NodeMap      []NodeID
	EdgeMap      []EdgeID
	RemovedNodes int
	RemovedEdges int
}

// Node translates an old node id.
func (r RemapResult) Node(old NodeID) NodeID {
	if old < 0 || int(old) >= len(r.NodeMap) {
		return InvalidNodeID
	}
	return r.NodeMap[old]
}

// Edge translates an old edge id.
func (r RemapResult) Edge(old EdgeID) EdgeID {
	if old < 0 || int(old) >= len(r.EdgeMap) {
		return InvalidEdgeID
	}
	return r.EdgeMap[old]
}

// remapIDs assigns consecutive new ids to the live entries of an id space of
// size n, in ascending order. Dead ids map to invalid.
func remapIDs[T constraints.Signed](n int, live func(T) bool, invalid T) (remap []T, kept int) {
	remap = make([]T, n)
	for i := range n {
		if live(T(i)) {
			remap[i] = T(kept)
			kept++
		} else {
			remap[i] = invalid
		}
	}
	return remap, kept
}

// compactValues keeps vals[i] for every i that remap does not drop, in place.
func compactValues[T any, I constraints.Signed](vals []T, remap []I) []T {
	w := 0
	for i, v := range vals {
		if remap[i] >= 0 {
			vals[w] = v
			w++
		}
	}
	clear(vals[w:])
	return vals[:w]
}

// Compress renumbers the live nodes and edges densely from zero, keeping
// their relative order, and drops all removed entries. Removed edges are
// dropped from every adjacency slot and the slot counters are recomputed.
// It must be called explicitly; nothing compacts implicitly.
func (g *Graph) Compress() RemapResult {
	timer := logging.StartTimer(g.logger, "graph compressed", logging.Operation("Compress"))

	nodeMap, liveNodes := remapIDs(g.numNodes, g.ValidNodeID, InvalidNodeID)
	edgeMap, liveEdges := remapIDs(g.numEdges, g.ValidEdgeID, InvalidEdgeID)
	result := RemapResult{
		NodeMap:      nodeMap,
		EdgeMap:      edgeMap,
		RemovedNodes: g.numNodes - liveNodes,
		RemovedEdges: g.numEdges - liveEdges,
	}

	g.compactAdjacency(nodeMap, edgeMap, liveNodes)

	g.nodeTypes = compactValues(g.nodeTypes, nodeMap)
	g.nodeBounds = compactValues(g.nodeBounds, nodeMap)
	g.nodeCapacities = compactValues(g.nodeCapacities, nodeMap)
	g.nodePtcNums = compactValues(g.nodePtcNums, nodeMap)
	g.nodeCostIndices = compactValues(g.nodeCostIndices, nodeMap)
	g.nodeDirections = compactValues(g.nodeDirections, nodeMap)
	g.nodeSides = compactValues(g.nodeSides, nodeMap)
	g.nodeRs = compactValues(g.nodeRs, nodeMap)
	g.nodeCs = compactValues(g.nodeCs, nodeMap)
	g.nodeRCIndices = compactValues(g.nodeRCIndices, nodeMap)
	g.nodeSegments = compactValues(g.nodeSegments, nodeMap)
	g.numNodes = liveNodes

	listed := 0
	for i := range min(g.adjacencyEdges, g.numEdges) {
		if edgeMap[i] >= 0 {
			listed++
		}
	}
	g.edgeSrcNodes = compactValues(g.edgeSrcNodes, edgeMap)
	g.edgeSinkNodes = compactValues(g.edgeSinkNodes, edgeMap)
	g.edgeSwitches = compactValues(g.edgeSwitches, edgeMap)
	for i := range g.edgeSrcNodes {
		// A live edge on a dead node maps to InvalidNodeID; Validate reports it.
		g.edgeSrcNodes[i] = remapNode(nodeMap, g.edgeSrcNodes[i])
		g.edgeSinkNodes[i] = remapNode(nodeMap, g.edgeSinkNodes[i])
	}
	g.numEdges = liveEdges
	g.adjacencyEdges = listed

	mustSizes("Compress", g.nodeSizesConsistent() && g.edgeSizesConsistent())
	for _, e := range g.edgeArena {
		if e < 0 || int(e) >= g.numEdges {
			panic(NewError("Compress").Edge(e).Cause(ErrDanglingHandle).Build())
		}
	}

	g.invalidateLookup()
	clear(g.invalidNodes)
	clear(g.invalidEdges)
	g.dirty = false

	elapsed := timer.EndWithLevel(logging.InfoLevel,
		logging.Int("removed_nodes", result.RemovedNodes),
		logging.Int("removed_edges", result.RemovedEdges),
		logging.Int("nodes", liveNodes),
		logging.Int("edges", liveEdges))
	g.metrics.RecordCompaction(elapsed, result.RemovedNodes, result.RemovedEdges)
	g.updateSizeMetrics()
	return result
}

func remapNode(nodeMap []NodeID, n NodeID) NodeID {
	if n < 0 || int(n) >= len(nodeMap) {
		return InvalidNodeID
	}
	return nodeMap[n]
}

// compactAdjacency copies every surviving node's slot into a fresh arena,
// translating edge ids and dropping removed ones group by group.
func (g *Graph) compactAdjacency(nodeMap []NodeID, edgeMap []EdgeID, liveNodes int) {
	arena := make([]EdgeID, 0, len(g.edgeArena))
	offsets := make([]int32, 0, liveNodes)
	numIn := make([]int32, 0, liveNodes)
	numOut := make([]int32, 0, liveNodes)
	nonConfigIn := make([]int32, 0, liveNodes)
	nonConfigOut := make([]int32, 0, liveNodes)

	keep := func(group []EdgeID) int32 {
		k := int32(0)
		for _, e := range group {
			if e < 0 || int(e) >= len(edgeMap) || edgeMap[e] < 0 {
				continue
			}
			arena = append(arena, edgeMap[e])
			k++
		}
		return k
	}

	for n := range g.numNodes {
		if nodeMap[n] < 0 {
			continue
		}
		id := NodeID(n)
		in, out := g.inSlot(id), g.outSlot(id)
		ci := len(in) - int(g.nodeNonConfigIn[n])
		co := len(out) - int(g.nodeNonConfigOut[n])

		offsets = append(offsets, int32(len(arena)))
		cin := keep(in[:ci])
		ncin := keep(in[ci:])
		cout := keep(out[:co])
		ncout := keep(out[co:])
		numIn = append(numIn, cin+ncin)
		nonConfigIn = append(nonConfigIn, ncin)
		numOut = append(numOut, cout+ncout)
		nonConfigOut = append(nonConfigOut, ncout)
	}

	g.edgeArena = arena
	g.nodeEdgeOffsets = offsets
	g.nodeNumInEdges = numIn
	g.nodeNumOutEdges = numOut
	g.nodeNonConfigIn = nonConfigIn
	g.nodeNonConfigOut = nonConfigOut
}
