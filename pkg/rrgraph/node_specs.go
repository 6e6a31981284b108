package rrgraph

// Typed node construction. Each spec only carries the attributes that mean
// something for its node category, so a side on a wire or a direction on a
// pin cannot be expressed. Storage stays flat; these helpers just drive the
// setters in the right order.

// ChannelAxis selects CHANX or CHANY.
type ChannelAxis uint8

const (
	AxisX ChannelAxis = iota
	AxisY
)

func (a ChannelAxis) nodeType() NodeType {
	if a == AxisY {
		return ChanY
	}
	return ChanX
}

// PinKind selects IPIN or OPIN.
type PinKind uint8

const (
	InputPin PinKind = iota
	OutputPin
)

func (k PinKind) nodeType() NodeType {
	if k == OutputPin {
		return OPin
	}
	return IPin
}

// TerminalKind selects SOURCE or SINK.
type TerminalKind uint8

const (
	SourceTerminal TerminalKind = iota
	SinkTerminal
)

func (k TerminalKind) nodeType() NodeType {
	if k == SinkTerminal {
		return Sink
	}
	return Source
}

// Electrical holds the attributes shared by every node category.
type Electrical struct {
	Capacity    int16
	CostIndex   int16
	R           float32
	C           float32
	RCDataIndex int16
}

// ChannelSpec describes a routing wire.
type ChannelSpec struct {
	Axis      ChannelAxis
	Bounds    Rect
	Track     int16
	Direction Direction
	Segment   SegmentID
	Electrical
}

// PinSpec describes a block pin.
type PinSpec struct {
	Kind   PinKind
	Bounds Rect
	Pin    int16
	Side   Side
	Electrical
}

// TerminalSpec describes a logical source or sink.
type TerminalSpec struct {
	Kind   TerminalKind
	Bounds Rect
	Class  int16
	Electrical
}

func (g *Graph) applyElectrical(n NodeID, e Electrical) {
	g.nodeCapacities[n] = e.Capacity
	g.nodeCostIndices[n] = e.CostIndex
	g.nodeRs[n] = e.R
	g.nodeCs[n] = e.C
	g.nodeRCIndices[n] = e.RCDataIndex
}

// CreateChannelNode creates a CHANX/CHANY node with one track number along
// its whole length. Use AddNodeTrackNum afterwards for per-cell tracks.
func (g *Graph) CreateChannelNode(spec ChannelSpec) NodeID {
	n := g.CreateNode(spec.Axis.nodeType())
	g.SetNodeBoundingBox(n, spec.Bounds)
	g.SetNodeTrackNum(n, spec.Track)
	g.SetNodeDirection(n, spec.Direction)
	g.SetNodeSegment(n, spec.Segment)
	g.applyElectrical(n, spec.Electrical)
	return n
}

// CreatePinNode creates an IPIN/OPIN node.
func (g *Graph) CreatePinNode(spec PinSpec) NodeID {
	n := g.CreateNode(spec.Kind.nodeType())
	g.SetNodeBoundingBox(n, spec.Bounds)
	g.SetNodePinNum(n, spec.Pin)
	g.SetNodeSide(n, spec.Side)
	g.applyElectrical(n, spec.Electrical)
	return n
}

// CreateTerminalNode creates a SOURCE/SINK node.
func (g *Graph) CreateTerminalNode(spec TerminalSpec) NodeID {
	n := g.CreateNode(spec.Kind.nodeType())
	g.SetNodeBoundingBox(n, spec.Bounds)
	g.SetNodeClassNum(n, spec.Class)
	g.applyElectrical(n, spec.Electrical)
	return n
}
