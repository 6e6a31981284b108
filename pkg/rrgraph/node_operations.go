package rrgraph

import "slices"

// CreateNode appends a node of the given type with default attributes and
// returns its id. The fast lookup is invalidated.
func (g *Graph) CreateNode(t NodeType) NodeID {
	if t >= NumNodeTypes {
		panic(NewError("CreateNode").Graph().Cause(ErrWrongNodeType).Context("type %d", t).Build())
	}
	id := NodeID(g.numNodes)
	g.numNodes++

	g.nodeTypes = append(g.nodeTypes, t)
	g.nodeBounds = append(g.nodeBounds, Rect{-1, -1, -1, -1})
	g.nodeCapacities = append(g.nodeCapacities, -1)
	g.nodePtcNums = append(g.nodePtcNums, []int16{-1})
	g.nodeCostIndices = append(g.nodeCostIndices, -1)
	g.nodeDirections = append(g.nodeDirections, NoDirection)
	g.nodeSides = append(g.nodeSides, SideNone)
	g.nodeRs = append(g.nodeRs, 0)
	g.nodeCs = append(g.nodeCs, 0)
	g.nodeRCIndices = append(g.nodeRCIndices, -1)
	g.nodeSegments = append(g.nodeSegments, InvalidSegmentID)

	// Empty until the next RebuildNodeEdges
	g.nodeEdgeOffsets = append(g.nodeEdgeOffsets, int32(len(g.edgeArena)))
	g.nodeNumInEdges = append(g.nodeNumInEdges, 0)
	g.nodeNumOutEdges = append(g.nodeNumOutEdges, 0)
	g.nodeNonConfigIn = append(g.nodeNonConfigIn, 0)
	g.nodeNonConfigOut = append(g.nodeNonConfigOut, 0)

	g.invalidateLookup()

	mustSizes("CreateNode", g.nodeSizesConsistent())
	return id
}

// NodeType returns the type of a node.
func (g *Graph) NodeType(n NodeID) NodeType {
	g.safeValidNode("NodeType", n)
	return g.nodeTypes[n]
}

// NodeBoundingBox returns the node's bounding box.
func (g *Graph) NodeBoundingBox(n NodeID) Rect {
	g.safeValidNode("NodeBoundingBox", n)
	return g.nodeBounds[n]
}

func (g *Graph) NodeXLow(n NodeID) int16  { return g.NodeBoundingBox(n).XLow }
func (g *Graph) NodeYLow(n NodeID) int16  { return g.NodeBoundingBox(n).YLow }
func (g *Graph) NodeXHigh(n NodeID) int16 { return g.NodeBoundingBox(n).XHigh }
func (g *Graph) NodeYHigh(n NodeID) int16 { return g.NodeBoundingBox(n).YHigh }

// NodeLength is the longer side of the node's bounding box.
func (g *Graph) NodeLength(n NodeID) int16 {
	return rectLength(g.NodeBoundingBox(n))
}

func rectLength(r Rect) int16 {
	return max(abs16(r.XHigh-r.XLow), abs16(r.YHigh-r.YLow))
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

// NodeStartCoordinate returns where a channel node's signal enters it.
// Increasing and bidirectional wires start at the low corner, decreasing
// wires at the high corner.
func (g *Graph) NodeStartCoordinate(n NodeID) Point {
	g.safeValidNode("NodeStartCoordinate", n)
	g.mustNodeType("NodeStartCoordinate", n, NodeType.IsChannel, "CHANX/CHANY")
	bb := g.nodeBounds[n]
	if g.nodeDirections[n] == DecDirection {
		return Point{bb.XHigh, bb.YHigh}
	}
	return Point{bb.XLow, bb.YLow}
}

// NodeEndCoordinate is the corner opposite to NodeStartCoordinate.
func (g *Graph) NodeEndCoordinate(n NodeID) Point {
	g.safeValidNode("NodeEndCoordinate", n)
	g.mustNodeType("NodeEndCoordinate", n, NodeType.IsChannel, "CHANX/CHANY")
	bb := g.nodeBounds[n]
	if g.nodeDirections[n] == DecDirection {
		return Point{bb.XLow, bb.YLow}
	}
	return Point{bb.XHigh, bb.YHigh}
}

// NodeCapacity returns the node capacity.
func (g *Graph) NodeCapacity(n NodeID) int16 {
	g.safeValidNode("NodeCapacity", n)
	return g.nodeCapacities[n]
}

// NodePtcNum returns the first ptc number of a node.
func (g *Graph) NodePtcNum(n NodeID) int16 {
	g.safeValidNode("NodePtcNum", n)
	return g.nodePtcNums[n][0]
}

// NodePinNum returns the pin number of an IPIN/OPIN node.
func (g *Graph) NodePinNum(n NodeID) int16 {
	g.safeValidNode("NodePinNum", n)
	g.mustNodeType("NodePinNum", n, NodeType.IsPin, "IPIN/OPIN")
	return g.nodePtcNums[n][0]
}

// NodeTrackNum returns the track number at the low end of a channel node.
func (g *Graph) NodeTrackNum(n NodeID) int16 {
	g.safeValidNode("NodeTrackNum", n)
	g.mustNodeType("NodeTrackNum", n, NodeType.IsChannel, "CHANX/CHANY")
	return g.nodePtcNums[n][0]
}

// NodeClassNum returns the class number of a SOURCE/SINK node.
func (g *Graph) NodeClassNum(n NodeID) int16 {
	g.safeValidNode("NodeClassNum", n)
	g.mustNodeType("NodeClassNum", n, NodeType.IsTerminal, "SOURCE/SINK")
	return g.nodePtcNums[n][0]
}

// NodeTrackIDs returns a copy of the per-offset track numbers of a channel node.
func (g *Graph) NodeTrackIDs(n NodeID) []int16 {
	g.safeValidNode("NodeTrackIDs", n)
	g.mustNodeType("NodeTrackIDs", n, NodeType.IsChannel, "CHANX/CHANY")
	return slices.Clone(g.nodePtcNums[n])
}

// NodeCostIndex returns the node's cost index.
func (g *Graph) NodeCostIndex(n NodeID) int16 {
	g.safeValidNode("NodeCostIndex", n)
	return g.nodeCostIndices[n]
}

// NodeDirection returns the direction of a channel node.
func (g *Graph) NodeDirection(n NodeID) Direction {
	g.safeValidNode("NodeDirection", n)
	g.mustNodeType("NodeDirection", n, NodeType.IsChannel, "CHANX/CHANY")
	return g.nodeDirections[n]
}

// NodeSide returns the side of a pin node.
func (g *Graph) NodeSide(n NodeID) Side {
	g.safeValidNode("NodeSide", n)
	g.mustNodeType("NodeSide", n, NodeType.IsPin, "IPIN/OPIN")
	return g.nodeSides[n]
}

// NodeR returns the node resistance.
func (g *Graph) NodeR(n NodeID) float32 {
	g.safeValidNode("NodeR", n)
	return g.nodeRs[n]
}

// NodeC returns the node capacitance.
func (g *Graph) NodeC(n NodeID) float32 {
	g.safeValidNode("NodeC", n)
	return g.nodeCs[n]
}

// NodeRCDataIndex returns the node's RC-data index.
func (g *Graph) NodeRCDataIndex(n NodeID) int16 {
	g.safeValidNode("NodeRCDataIndex", n)
	return g.nodeRCIndices[n]
}

// NodeSegment returns the segment type of a node. Only channel nodes are
// required to carry a valid one.
func (g *Graph) NodeSegment(n NodeID) SegmentID {
	g.safeValidNode("NodeSegment", n)
	return g.nodeSegments[n]
}

// Mutators

// SetNodeType changes a node's type.
func (g *Graph) SetNodeType(n NodeID, t NodeType) {
	g.mustValidNode("SetNodeType", n)
	if t >= NumNodeTypes {
		panic(NewError("SetNodeType").Node(n).Cause(ErrWrongNodeType).Context("type %d", t).Build())
	}
	g.nodeTypes[n] = t
	g.invalidateLookup()
}

func (g *Graph) SetNodeXLow(n NodeID, v int16) {
	g.mustValidNode("SetNodeXLow", n)
	g.nodeBounds[n].XLow = v
	g.invalidateLookup()
}

func (g *Graph) SetNodeYLow(n NodeID, v int16) {
	g.mustValidNode("SetNodeYLow", n)
	g.nodeBounds[n].YLow = v
	g.invalidateLookup()
}

func (g *Graph) SetNodeXHigh(n NodeID, v int16) {
	g.mustValidNode("SetNodeXHigh", n)
	g.nodeBounds[n].XHigh = v
	g.invalidateLookup()
}

func (g *Graph) SetNodeYHigh(n NodeID, v int16) {
	g.mustValidNode("SetNodeYHigh", n)
	g.nodeBounds[n].YHigh = v
	g.invalidateLookup()
}

// SetNodeBoundingBox replaces the node's bounding box.
func (g *Graph) SetNodeBoundingBox(n NodeID, bb Rect) {
	g.mustValidNode("SetNodeBoundingBox", n)
	g.nodeBounds[n] = bb
	g.invalidateLookup()
}

// SetNodeCapacity sets the node capacity.
func (g *Graph) SetNodeCapacity(n NodeID, capacity int16) {
	g.mustValidNode("SetNodeCapacity", n)
	g.nodeCapacities[n] = capacity
}

// SetNodePtcNum writes a ptc number. Channel nodes get one entry per unit of
// length (plus one), all set to ptc; other nodes keep their single entry.
// Set the bounding box first.
func (g *Graph) SetNodePtcNum(n NodeID, ptc int16) {
	g.mustValidNode("SetNodePtcNum", n)
	if g.nodeTypes[n].IsChannel() {
		ptcs := resizePtcs(g.nodePtcNums[n], int(rectLength(g.nodeBounds[n]))+1)
		for i := range ptcs {
			ptcs[i] = ptc
		}
		g.nodePtcNums[n] = ptcs
	} else {
		if len(g.nodePtcNums[n]) != 1 {
			panic(NewError("SetNodePtcNum").Node(n).Cause(ErrSizeMismatch).
				Context("%s node holds %d ptc entries", g.nodeTypes[n], len(g.nodePtcNums[n])).Build())
		}
		g.nodePtcNums[n][0] = ptc
	}
	g.invalidateLookup()
}

// resizePtcs returns ptcs resized to n entries. New entries are unset (-1).
func resizePtcs(ptcs []int16, n int) []int16 {
	if len(ptcs) == n {
		return ptcs
	}
	if len(ptcs) > n {
		return ptcs[:n:n]
	}
	out := make([]int16, n)
	copy(out, ptcs)
	for i := len(ptcs); i < n; i++ {
		out[i] = -1
	}
	return out
}

// SetNodePinNum sets the pin number of an IPIN/OPIN node.
func (g *Graph) SetNodePinNum(n NodeID, pin int16) {
	g.mustValidNode("SetNodePinNum", n)
	g.mustNodeType("SetNodePinNum", n, NodeType.IsPin, "IPIN/OPIN")
	g.SetNodePtcNum(n, pin)
}

// SetNodeTrackNum sets one track number along the whole channel node.
func (g *Graph) SetNodeTrackNum(n NodeID, track int16) {
	g.mustValidNode("SetNodeTrackNum", n)
	g.mustNodeType("SetNodeTrackNum", n, NodeType.IsChannel, "CHANX/CHANY")
	g.SetNodePtcNum(n, track)
}

// SetNodeClassNum sets the class number of a SOURCE/SINK node.
func (g *Graph) SetNodeClassNum(n NodeID, class int16) {
	g.mustValidNode("SetNodeClassNum", n)
	g.mustNodeType("SetNodeClassNum", n, NodeType.IsTerminal, "SOURCE/SINK")
	g.SetNodePtcNum(n, class)
}

// AddNodeTrackNum assigns the track number used at one grid cell of a
// channel node. offset is an absolute coordinate inside the node.
func (g *Graph) AddNodeTrackNum(n NodeID, offset Point, track int16) {
	g.mustValidNode("AddNodeTrackNum", n)
	g.mustNodeType("AddNodeTrackNum", n, NodeType.IsChannel, "CHANX/CHANY")

	bb := g.nodeBounds[n]
	ptcs := resizePtcs(g.nodePtcNums[n], int(rectLength(bb))+1)
	i := int(offset.X-bb.XLow) + int(offset.Y-bb.YLow)
	if i < 0 || i >= len(ptcs) {
		panic(NewError("AddNodeTrackNum").Node(n).Cause(ErrOutOfRange).
			Context("offset (%d,%d) maps to %d of %d entries", offset.X, offset.Y, i, len(ptcs)).Build())
	}
	ptcs[i] = track
	g.nodePtcNums[n] = ptcs
	g.invalidateLookup()
}

// SetNodeCostIndex sets the node's cost index.
func (g *Graph) SetNodeCostIndex(n NodeID, idx int16) {
	g.mustValidNode("SetNodeCostIndex", n)
	g.nodeCostIndices[n] = idx
}

// SetNodeDirection sets the direction of a channel node.
func (g *Graph) SetNodeDirection(n NodeID, d Direction) {
	g.mustValidNode("SetNodeDirection", n)
	g.mustNodeType("SetNodeDirection", n, NodeType.IsChannel, "CHANX/CHANY")
	g.nodeDirections[n] = d
}

// SetNodeSide sets the side of a pin node.
func (g *Graph) SetNodeSide(n NodeID, s Side) {
	g.mustValidNode("SetNodeSide", n)
	g.mustNodeType("SetNodeSide", n, NodeType.IsPin, "IPIN/OPIN")
	g.nodeSides[n] = s
	g.invalidateLookup()
}

// SetNodeR sets the node resistance.
func (g *Graph) SetNodeR(n NodeID, r float32) {
	g.mustValidNode("SetNodeR", n)
	g.nodeRs[n] = r
}

// SetNodeC sets the node capacitance.
func (g *Graph) SetNodeC(n NodeID, c float32) {
	g.mustValidNode("SetNodeC", n)
	g.nodeCs[n] = c
}

// SetNodeRCDataIndex sets the node's RC-data index.
func (g *Graph) SetNodeRCDataIndex(n NodeID, idx int16) {
	g.mustValidNode("SetNodeRCDataIndex", n)
	g.nodeRCIndices[n] = idx
}

// SetNodeSegment sets the segment type of a node. Channel nodes require a
// segment that exists in the catalog.
func (g *Graph) SetNodeSegment(n NodeID, s SegmentID) {
	g.mustValidNode("SetNodeSegment", n)
	if g.nodeTypes[n].IsChannel() {
		g.mustValidSegment("SetNodeSegment", s)
	}
	g.nodeSegments[n] = s
}
