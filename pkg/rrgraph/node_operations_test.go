package rrgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeLength(t *testing.T) {
	tests := []struct {
		name string
		bb   Rect
		want int16
	}{
		{"point", Rect{3, 3, 3, 3}, 0},
		{"horizontal", Rect{0, 1, 4, 1}, 4},
		{"vertical", Rect{2, 1, 2, 7}, 6},
		{"reversed", Rect{5, 0, 1, 0}, 4},
		{"block", Rect{0, 0, 2, 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			n := g.CreateNode(Source)
			g.SetNodeBoundingBox(n, tt.bb)
			assert.Equal(t, tt.want, g.NodeLength(n))
		})
	}
}

func TestNodeStartEndCoordinate(t *testing.T) {
	tests := []struct {
		dir        Direction
		start, end Point
	}{
		{IncDirection, Point{1, 4}, Point{5, 4}},
		{BiDirection, Point{1, 4}, Point{5, 4}},
		{DecDirection, Point{5, 4}, Point{1, 4}},
		{NoDirection, Point{1, 4}, Point{5, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			g := New()
			n := g.CreateNode(ChanX)
			g.SetNodeBoundingBox(n, Rect{1, 4, 5, 4})
			g.SetNodeDirection(n, tt.dir)
			assert.Equal(t, tt.start, g.NodeStartCoordinate(n))
			assert.Equal(t, tt.end, g.NodeEndCoordinate(n))
		})
	}
}

func TestStartCoordinateRequiresChannel(t *testing.T) {
	g := New()
	n := g.CreateNode(IPin)
	requirePanicsWith(t, ErrWrongNodeType, func() { g.NodeStartCoordinate(n) })
}

func TestChannelPtcFillsLength(t *testing.T) {
	g := New()
	n := g.CreateNode(ChanY)
	g.SetNodeBoundingBox(n, Rect{2, 0, 2, 3})
	g.SetNodeTrackNum(n, 6)

	assert.Equal(t, []int16{6, 6, 6, 6}, g.NodeTrackIDs(n))
	assert.Equal(t, int16(6), g.NodeTrackNum(n))

	// Rewriting resizes to the new length
	g.SetNodeYHigh(n, 1)
	g.SetNodePtcNum(n, 2)
	assert.Equal(t, []int16{2, 2}, g.NodeTrackIDs(n))
}

func TestNodeTrackIDsReturnsCopy(t *testing.T) {
	g := New()
	n := g.CreateNode(ChanX)
	g.SetNodeBoundingBox(n, Rect{0, 0, 1, 0})
	g.SetNodeTrackNum(n, 3)

	ids := g.NodeTrackIDs(n)
	ids[0] = 99
	assert.Equal(t, int16(3), g.NodeTrackNum(n))
}

func TestAddNodeTrackNum(t *testing.T) {
	g := New()
	n := g.CreateNode(ChanX)
	g.SetNodeBoundingBox(n, Rect{2, 1, 5, 1})
	for x := int16(2); x <= 5; x++ {
		g.AddNodeTrackNum(n, Point{x, 1}, 10+x)
	}
	assert.Equal(t, []int16{12, 13, 14, 15}, g.NodeTrackIDs(n))

	requirePanicsWith(t, ErrOutOfRange, func() { g.AddNodeTrackNum(n, Point{6, 1}, 0) })
	requirePanicsWith(t, ErrOutOfRange, func() { g.AddNodeTrackNum(n, Point{1, 1}, 0) })
}

func TestAddNodeTrackNumPartialLeavesUnset(t *testing.T) {
	g := New()
	n := g.CreateNode(ChanY)
	g.SetNodeBoundingBox(n, Rect{0, 0, 0, 2})
	g.AddNodeTrackNum(n, Point{0, 2}, 4)

	assert.Equal(t, []int16{-1, -1, 4}, g.NodeTrackIDs(n))
}

func TestNonChannelPtcIsScalar(t *testing.T) {
	g := New()
	n := g.CreateNode(OPin)
	g.SetNodeBoundingBox(n, Rect{0, 0, 3, 0})
	g.SetNodePinNum(n, 7)

	assert.Equal(t, int16(7), g.NodePinNum(n))
	assert.Equal(t, int16(7), g.NodePtcNum(n))
	assert.Len(t, g.nodePtcNums[n], 1)
}

func TestPtcAliasesCheckType(t *testing.T) {
	g := New()
	pin := g.CreateNode(IPin)
	src := g.CreateNode(Source)
	ch := g.CreateNode(ChanX)

	tests := []struct {
		name string
		fn   func()
	}{
		{"pin number of source", func() { g.NodePinNum(src) }},
		{"set pin number of channel", func() { g.SetNodePinNum(ch, 1) }},
		{"class number of pin", func() { g.NodeClassNum(pin) }},
		{"set class number of channel", func() { g.SetNodeClassNum(ch, 1) }},
		{"track number of pin", func() { g.NodeTrackNum(pin) }},
		{"set track number of source", func() { g.SetNodeTrackNum(src, 1) }},
		{"add track number to pin", func() { g.AddNodeTrackNum(pin, Point{}, 1) }},
		{"side of channel", func() { g.NodeSide(ch) }},
		{"set side of source", func() { g.SetNodeSide(src, Top) }},
		{"direction of pin", func() { g.NodeDirection(pin) }},
		{"set direction of source", func() { g.SetNodeDirection(src, IncDirection) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requirePanicsWith(t, ErrWrongNodeType, tt.fn)
		})
	}
}

func TestSettersRejectInvalidNode(t *testing.T) {
	s := newScenario(t)
	g := s.g
	g.RemoveNode(s.snk)

	tests := []struct {
		name string
		fn   func()
	}{
		{"capacity", func() { g.SetNodeCapacity(s.snk, 1) }},
		{"bounding box", func() { g.SetNodeBoundingBox(s.snk, Rect{}) }},
		{"cost index", func() { g.SetNodeCostIndex(99, 1) }},
		{"R", func() { g.SetNodeR(-1, 1) }},
		{"type", func() { g.SetNodeType(s.snk, Sink) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requirePanicsWith(t, ErrInvalidNode, tt.fn)
		})
	}
}

func TestGettersRejectInvalidNode(t *testing.T) {
	requireChecked(t)
	g := New()
	n := g.CreateNode(Sink)

	requirePanicsWith(t, ErrInvalidNode, func() { g.NodeType(n + 1) })
	requirePanicsWith(t, ErrInvalidNode, func() { g.NodeCapacity(-1) })

	g.RemoveNode(n)
	requirePanicsWith(t, ErrInvalidNode, func() { g.NodeBoundingBox(n) })
}

func TestSetNodeSegment(t *testing.T) {
	g := New()
	seg := g.CreateSegment(l4Segment)
	ch := g.CreateNode(ChanY)
	pin := g.CreateNode(IPin)

	g.SetNodeSegment(ch, seg)
	assert.Equal(t, seg, g.NodeSegment(ch))

	requirePanicsWith(t, ErrInvalidSegment, func() { g.SetNodeSegment(ch, seg+1) })

	// Non-channel nodes may carry any value
	g.SetNodeSegment(pin, InvalidSegmentID)
	assert.Equal(t, InvalidSegmentID, g.NodeSegment(pin))
}

func TestElectricalSetters(t *testing.T) {
	g := New()
	n := g.CreateNode(IPin)
	g.SetNodeCapacity(n, 2)
	g.SetNodeCostIndex(n, 5)
	g.SetNodeR(n, 12.5)
	g.SetNodeC(n, 3e-15)
	g.SetNodeRCDataIndex(n, 4)
	g.SetNodeSide(n, Bottom)

	assert.Equal(t, int16(2), g.NodeCapacity(n))
	assert.Equal(t, int16(5), g.NodeCostIndex(n))
	assert.Equal(t, float32(12.5), g.NodeR(n))
	assert.Equal(t, float32(3e-15), g.NodeC(n))
	assert.Equal(t, int16(4), g.NodeRCDataIndex(n))
	assert.Equal(t, Bottom, g.NodeSide(n))
}

func TestTypedConstructors(t *testing.T) {
	g := New()
	seg := g.CreateSegment(l4Segment)

	ch := g.CreateChannelNode(ChannelSpec{
		Axis:       AxisY,
		Bounds:     Rect{3, 1, 3, 4},
		Track:      2,
		Direction:  DecDirection,
		Segment:    seg,
		Electrical: Electrical{Capacity: 1, CostIndex: 7, R: 1, C: 2, RCDataIndex: 3},
	})
	pin := g.CreatePinNode(PinSpec{
		Kind:       OutputPin,
		Bounds:     Rect{3, 1, 3, 1},
		Pin:        9,
		Side:       Right,
		Electrical: Electrical{Capacity: 1},
	})
	snk := g.CreateTerminalNode(TerminalSpec{Kind: SinkTerminal, Bounds: Rect{3, 1, 3, 1}, Class: 4})

	require.Equal(t, ChanY, g.NodeType(ch))
	assert.Equal(t, []int16{2, 2, 2, 2}, g.NodeTrackIDs(ch))
	assert.Equal(t, DecDirection, g.NodeDirection(ch))
	assert.Equal(t, Point{3, 4}, g.NodeStartCoordinate(ch))
	assert.Equal(t, seg, g.NodeSegment(ch))
	assert.Equal(t, int16(7), g.NodeCostIndex(ch))
	assert.Equal(t, int16(3), g.NodeRCDataIndex(ch))

	require.Equal(t, OPin, g.NodeType(pin))
	assert.Equal(t, int16(9), g.NodePinNum(pin))
	assert.Equal(t, Right, g.NodeSide(pin))

	require.Equal(t, Sink, g.NodeType(snk))
	assert.Equal(t, int16(4), g.NodeClassNum(snk))
	assert.Equal(t, int16(0), g.NodeCapacity(snk))
}

func TestChannelConstructorNeedsSegment(t *testing.T) {
	g := New()
	requirePanicsWith(t, ErrInvalidSegment, func() {
		g.CreateChannelNode(ChannelSpec{Axis: AxisX, Bounds: Rect{0, 0, 1, 0}, Segment: 0})
	})
}

func TestSetNodeTypeRejectsUnknownType(t *testing.T) {
	s := newScenario(t)
	g := s.g

	requirePanicsWith(t, ErrWrongNodeType, func() { g.SetNodeType(s.ch, NumNodeTypes) })
	requirePanicsWith(t, ErrWrongNodeType, func() { g.SetNodeType(s.ch, NodeType(7)) })

	// The rejected type never reaches storage or the lookup
	assert.Equal(t, ChanX, g.NodeType(s.ch))
	assert.Equal(t, s.ch, g.FindNode(1, 0, ChanX, 1, SideNone))
	assert.Equal(t, s.snk, g.FindNode(2, 0, Sink, 1, SideNone))
	assert.Equal(t, 2, g.ChanNumTracks(1, 0, ChanX))
	assert.Equal(t, []NodeID{s.src, s.ch, s.snk}, g.NodesInRegion(Rect{0, 0, 2, 0}))
}
