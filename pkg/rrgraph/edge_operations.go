package rrgraph

import "slices"

// CreateEdge appends a directed edge from src to sink over switch sw.
// The edge is not listed in either endpoint's adjacency until the next
// RebuildNodeEdges. With allowUnresolved set, sw may be UnresolvedSwitchID
// and must be fixed with SetEdgeSwitch before the rebuild.
func (g *Graph) CreateEdge(src, sink NodeID, sw SwitchID, allowUnresolved bool) EdgeID {
	g.mustValidNode("CreateEdge", src)
	g.mustValidNode("CreateEdge", sink)
	if !allowUnresolved || sw != UnresolvedSwitchID {
		g.mustValidSwitch("CreateEdge", sw)
	}

	id := EdgeID(g.numEdges)
	g.numEdges++
	g.edgeSrcNodes = append(g.edgeSrcNodes, src)
	g.edgeSinkNodes = append(g.edgeSinkNodes, sink)
	g.edgeSwitches = append(g.edgeSwitches, sw)

	mustSizes("CreateEdge", g.edgeSizesConsistent())
	return id
}

// EdgeSrcNode returns the source node of an edge.
func (g *Graph) EdgeSrcNode(e EdgeID) NodeID {
	g.safeValidEdge("EdgeSrcNode", e)
	return g.edgeSrcNodes[e]
}

// EdgeSinkNode returns the sink node of an edge.
func (g *Graph) EdgeSinkNode(e EdgeID) NodeID {
	g.safeValidEdge("EdgeSinkNode", e)
	return g.edgeSinkNodes[e]
}

// EdgeSwitch returns the switch of an edge, possibly UnresolvedSwitchID.
func (g *Graph) EdgeSwitch(e EdgeID) SwitchID {
	g.safeValidEdge("EdgeSwitch", e)
	return g.edgeSwitches[e]
}

// SetEdgeSwitch resolves or replaces the switch of an edge. Changing
// configurability after RebuildNodeEdges leaves the partition stale until
// the next rebuild.
func (g *Graph) SetEdgeSwitch(e EdgeID, sw SwitchID) {
	g.mustValidEdge("SetEdgeSwitch", e)
	g.mustValidSwitch("SetEdgeSwitch", sw)
	g.edgeSwitches[e] = sw
}

// EdgeIsConfigurable reports whether the edge's switch can be programmed.
func (g *Graph) EdgeIsConfigurable(e EdgeID) bool {
	g.safeValidEdge("EdgeIsConfigurable", e)
	sw := g.edgeSwitches[e]
	g.mustValidSwitch("EdgeIsConfigurable", sw)
	return g.switches[sw].Configurable()
}

// EdgeIsNonConfigurable is the negation of EdgeIsConfigurable.
func (g *Graph) EdgeIsNonConfigurable(e EdgeID) bool {
	return !g.EdgeIsConfigurable(e)
}

// FindEdges returns every live edge from src to sink, in ascending id order.
// Edges created after the last RebuildNodeEdges are included.
func (g *Graph) FindEdges(src, sink NodeID) []EdgeID {
	g.safeValidNode("FindEdges", src)
	g.safeValidNode("FindEdges", sink)

	var found []EdgeID
	for _, e := range g.outSlot(src) {
		if g.ValidEdgeID(e) && g.edgeSinkNodes[e] == sink {
			found = append(found, e)
		}
	}
	for e := EdgeID(g.adjacencyEdges); int(e) < g.numEdges; e++ {
		if g.ValidEdgeID(e) && g.edgeSrcNodes[e] == src && g.edgeSinkNodes[e] == sink {
			found = append(found, e)
		}
	}
	slices.Sort(found)
	return found
}
