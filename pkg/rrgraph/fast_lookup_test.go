package rrgraph

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioFindNode(t *testing.T) {
	s := newScenario(t)
	g := s.g

	for x := int16(0); x <= 2; x++ {
		assert.Equal(t, s.ch, g.FindNode(x, 0, ChanX, 1, SideNone), "x=%d", x)
	}
	assert.Equal(t, s.src, g.FindNode(0, 0, Source, 0, SideNone))
	assert.Equal(t, s.snk, g.FindNode(2, 0, Sink, 1, SideNone))

	tests := []struct {
		name string
		x, y int16
		typ  NodeType
		ptc  int16
	}{
		{"past x extent", 3, 0, ChanX, 1},
		{"past y extent", 0, 1, ChanX, 1},
		{"negative x", -1, 0, ChanX, 1},
		{"wrong track", 1, 0, ChanX, 0},
		{"track past table", 1, 0, ChanX, 40},
		{"negative ptc", 1, 0, ChanX, -1},
		{"wrong type", 1, 0, ChanY, 1},
		{"unknown type", 1, 0, NumNodeTypes, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.FindNode(tt.x, tt.y, tt.typ, tt.ptc, SideNone)
			assert.Equal(t, InvalidNodeID, got)
		})
	}
}

func TestChanNumTracks(t *testing.T) {
	s := newScenario(t)
	g := s.g

	assert.Equal(t, 0, g.ChanNumTracks(5, 5, ChanX))
	assert.Equal(t, 0, g.ChanNumTracks(-1, 0, ChanX))
	assert.Equal(t, 2, g.ChanNumTracks(1, 0, ChanX))
	assert.Equal(t, 0, g.ChanNumTracks(1, 0, ChanY))

	requirePanicsWith(t, ErrWrongNodeType, func() { g.ChanNumTracks(0, 0, IPin) })
}

func TestFindNodePerCellTracks(t *testing.T) {
	g := New()
	seg := g.CreateSegment(l4Segment)
	x := g.CreateChannelNode(ChannelSpec{Axis: AxisX, Bounds: Rect{1, 2, 4, 2}, Segment: seg, Direction: IncDirection})
	y := g.CreateChannelNode(ChannelSpec{Axis: AxisY, Bounds: Rect{0, 0, 0, 3}, Segment: seg, Direction: DecDirection})
	for i := int16(0); i < 4; i++ {
		g.AddNodeTrackNum(x, Point{1 + i, 2}, 4+i)
		g.AddNodeTrackNum(y, Point{0, i}, 8-i)
	}

	for i := int16(0); i < 4; i++ {
		assert.Equal(t, x, g.FindNode(1+i, 2, ChanX, 4+i, SideNone))
		assert.Equal(t, y, g.FindNode(0, i, ChanY, 8-i, SideNone))
	}
	// A track used at one cell is not found at another
	assert.Equal(t, InvalidNodeID, g.FindNode(2, 2, ChanX, 4, SideNone))
	assert.Equal(t, 8, g.ChanNumTracks(4, 2, ChanX))
}

func TestFindNodePinSides(t *testing.T) {
	g := New()
	left := g.CreatePinNode(PinSpec{Kind: InputPin, Bounds: Rect{1, 1, 1, 1}, Pin: 2, Side: Left})
	top := g.CreatePinNode(PinSpec{Kind: InputPin, Bounds: Rect{1, 1, 1, 1}, Pin: 2, Side: Top})
	src := g.CreateTerminalNode(TerminalSpec{Kind: SourceTerminal, Bounds: Rect{1, 1, 1, 1}, Class: 2})

	assert.Equal(t, left, g.FindNode(1, 1, IPin, 2, Left))
	assert.Equal(t, top, g.FindNode(1, 1, IPin, 2, Top))
	assert.Equal(t, InvalidNodeID, g.FindNode(1, 1, IPin, 2, Bottom))
	assert.Equal(t, InvalidNodeID, g.FindNode(1, 1, OPin, 2, Left))

	// Side is ignored for non-pin types
	assert.Equal(t, src, g.FindNode(1, 1, Source, 2, Right))
	assert.Equal(t, src, g.FindNode(1, 1, Source, 2, SideNone))
}

func TestFindNodeMultiCellBlock(t *testing.T) {
	g := New()
	snk := g.CreateTerminalNode(TerminalSpec{Kind: SinkTerminal, Bounds: Rect{2, 0, 3, 1}, Class: 0})

	for _, p := range []Point{{2, 0}, {3, 0}, {2, 1}, {3, 1}} {
		assert.Equal(t, snk, g.FindNode(p.X, p.Y, Sink, 0, SideNone))
	}
	assert.Equal(t, InvalidNodeID, g.FindNode(1, 0, Sink, 0, SideNone))
}

func TestLookupStaleness(t *testing.T) {
	s := newScenario(t)
	g := s.g
	assert.False(t, g.LookupFresh())

	require.Equal(t, s.ch, g.FindNode(0, 0, ChanX, 1, SideNone))
	assert.True(t, g.LookupFresh())

	tests := []struct {
		name   string
		mutate func()
	}{
		{"create node", func() { g.CreateNode(IPin) }},
		{"move node", func() { g.SetNodeXHigh(s.ch, 1) }},
		{"retrack node", func() { g.SetNodeTrackNum(s.ch, 3) }},
		{"remove node", func() { g.RemoveNode(s.snk) }},
		{"compress", func() { g.Compress() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.EnsureLookup()
			require.True(t, g.LookupFresh())
			tt.mutate()
			assert.False(t, g.LookupFresh())
		})
	}

	// Queries see the latest geometry
	assert.Equal(t, InvalidNodeID, g.FindNode(2, 0, ChanX, 3, SideNone))
	assert.Equal(t, s.ch, g.FindNode(1, 0, ChanX, 3, SideNone))
}

func TestLookupIgnoresRemovedAndUnplacedNodes(t *testing.T) {
	s := newScenario(t)
	g := s.g
	unplaced := g.CreateNode(OPin)
	g.RemoveNode(s.snk)

	assert.Equal(t, InvalidNodeID, g.FindNode(2, 0, Sink, 1, SideNone))
	assert.NotContains(t, g.NodesInRegion(Rect{-5, -5, 5, 5}), unplaced)
}

func TestBuildFastNodeLookupRecordsMetrics(t *testing.T) {
	s := newScenario(t)
	g := s.g

	g.BuildFastNodeLookup()
	g.FindNode(0, 0, ChanX, 1, SideNone) // fresh, no rebuild
	g.BuildFastNodeLookup()
	assert.Equal(t, float64(2), readCounter(t, g.metrics.LookupRebuildsTotal))
}

func TestConcurrentReadersShareOneRebuild(t *testing.T) {
	s := newScenario(t)
	g := s.g

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for x := int16(0); x <= 2; x++ {
				if got := g.FindNode(x, 0, ChanX, 1, SideNone); got != s.ch {
					t.Errorf("FindNode(%d) = %v", x, got)
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, float64(1), readCounter(t, g.metrics.LookupRebuildsTotal))
}

func TestNodesInRegion(t *testing.T) {
	s := newScenario(t)
	g := s.g
	far := g.CreateTerminalNode(TerminalSpec{Kind: SinkTerminal, Bounds: Rect{8, 8, 9, 9}})

	assert.Equal(t, []NodeID{s.src, s.ch, s.snk}, g.NodesInRegion(Rect{0, 0, 2, 0}))
	assert.Equal(t, []NodeID{s.ch, s.snk}, g.NodesInRegion(Rect{2, 0, 2, 0}))
	assert.Equal(t, []NodeID{s.ch}, g.NodesInRegion(Rect{1, 0, 1, 0}))
	assert.Equal(t, []NodeID{far}, g.NodesInRegion(Rect{9, 9, 5, 5}), "reversed corners")
	assert.Empty(t, g.NodesInRegion(Rect{4, 4, 6, 6}))

	g.RemoveNode(s.ch)
	assert.Equal(t, []NodeID{s.src, s.snk}, g.NodesInRegion(Rect{0, 0, 2, 0}))
}
