package rrgraph

import "iter"

// Nodes yields every valid node id in ascending order. Removed nodes are
// skipped without building a filtered list.
func (g *Graph) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for i := range g.numNodes {
			n := NodeID(i)
			if g.ValidNodeID(n) && !yield(n) {
				return
			}
		}
	}
}

// Edges yields every valid edge id in ascending order.
func (g *Graph) Edges() iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		for i := range g.numEdges {
			e := EdgeID(i)
			if g.ValidEdgeID(e) && !yield(e) {
				return
			}
		}
	}
}

// Switches yields every switch id.
func (g *Graph) Switches() iter.Seq[SwitchID] {
	return func(yield func(SwitchID) bool) {
		for i := range g.switches {
			if !yield(SwitchID(i)) {
				return
			}
		}
	}
}

// Segments yields every segment id.
func (g *Graph) Segments() iter.Seq[SegmentID] {
	return func(yield func(SegmentID) bool) {
		for i := range g.segments {
			if !yield(SegmentID(i)) {
				return
			}
		}
	}
}
