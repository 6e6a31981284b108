package rrgraph

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tidwall/rtree"

	"github.com/dd0wney/cluso-rrgraph/pkg/logging"
)

type lookupState uint32

const (
	lookupAbsent lookupState = iota
	lookupStale
	lookupFresh
)

// sideSlots holds one node per pin side plus the SideNone slot used by
// every non-pin node.
type sideSlots [NumSides + 1]NodeID

// nodeLookup is a cache derived from node geometry. Only the rebuild is
// synchronized; mutating the graph concurrently with queries is not allowed.
type nodeLookup struct {
	mu    sync.Mutex
	state atomic.Uint32

	dimX, dimY int
	// cells[(x*dimY+y)*NumNodeTypes+t][ptc][side]
	cells [][]sideSlots

	region rtree.RTreeG[NodeID]
}

func (g *Graph) invalidateLookup() {
	g.lookup.state.CompareAndSwap(uint32(lookupFresh), uint32(lookupStale))
}

// LookupFresh reports whether the fast lookup is built and current.
func (g *Graph) LookupFresh() bool {
	return lookupState(g.lookup.state.Load()) == lookupFresh
}

// EnsureLookup builds the fast lookup if it is absent or stale. Calling it
// before starting concurrent readers keeps them off the rebuild path.
func (g *Graph) EnsureLookup() {
	g.ensureLookup()
}

// BuildFastNodeLookup rebuilds the fast lookup unconditionally.
func (g *Graph) BuildFastNodeLookup() {
	l := &g.lookup
	l.mu.Lock()
	defer l.mu.Unlock()
	g.buildLookupLocked()
}

func (g *Graph) ensureLookup() *nodeLookup {
	l := &g.lookup
	if lookupState(l.state.Load()) == lookupFresh {
		return l
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if lookupState(l.state.Load()) != lookupFresh {
		g.buildLookupLocked()
	}
	return l
}

func (g *Graph) buildLookupLocked() {
	start := time.Now()
	l := &g.lookup

	// Extent over every placed node
	maxX, maxY := -1, -1
	for n := range g.numNodes {
		if !g.ValidNodeID(NodeID(n)) {
			continue
		}
		bb := g.nodeBounds[n]
		if bb.XLow < 0 || bb.YLow < 0 || bb.XHigh < 0 || bb.YHigh < 0 {
			continue
		}
		maxX = max(maxX, int(bb.XLow), int(bb.XHigh))
		maxY = max(maxY, int(bb.YLow), int(bb.YHigh))
	}
	l.dimX, l.dimY = maxX+1, maxY+1
	l.cells = make([][]sideSlots, l.dimX*l.dimY*int(NumNodeTypes))
	l.region = rtree.RTreeG[NodeID]{}

	indexed := 0
	for n := range g.numNodes {
		id := NodeID(n)
		if !g.ValidNodeID(id) {
			continue
		}
		bb := g.nodeBounds[n]
		if bb.XLow < 0 || bb.YLow < 0 || bb.XHigh < 0 || bb.YHigh < 0 {
			continue
		}
		t := g.nodeTypes[n]
		side := SideNone
		if t.IsPin() {
			side = g.nodeSides[n]
		}
		ptcs := g.nodePtcNums[n]

		x0, x1 := min(bb.XLow, bb.XHigh), max(bb.XLow, bb.XHigh)
		y0, y1 := min(bb.YLow, bb.YHigh), max(bb.YLow, bb.YHigh)
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				ptc := ptcs[0]
				switch t {
				case ChanX:
					ptc = ptcAt(ptcs, int(abs16(x-bb.XLow)))
				case ChanY:
					ptc = ptcAt(ptcs, int(abs16(y-bb.YLow)))
				}
				if ptc < 0 {
					continue
				}
				l.record(int(x), int(y), t, int(ptc), side, id)
			}
		}

		l.region.Insert(
			[2]float64{float64(x0), float64(y0)},
			[2]float64{float64(x1), float64(y1)},
			id)
		indexed++
	}

	l.state.Store(uint32(lookupFresh))

	elapsed := time.Since(start)
	g.logger.Debug("fast node lookup rebuilt",
		logging.Count(indexed),
		logging.Int("dim_x", l.dimX),
		logging.Int("dim_y", l.dimY),
		logging.Latency(elapsed))
	g.metrics.RecordLookupRebuild(elapsed)
}

func ptcAt(ptcs []int16, i int) int16 {
	if i < 0 || i >= len(ptcs) {
		return -1
	}
	return ptcs[i]
}

func (l *nodeLookup) cellIndex(x, y int, t NodeType) int {
	return (x*l.dimY+y)*int(NumNodeTypes) + int(t)
}

func (l *nodeLookup) inBounds(x, y int, t NodeType) bool {
	return x >= 0 && x < l.dimX && y >= 0 && y < l.dimY && t < NumNodeTypes
}

func (l *nodeLookup) record(x, y int, t NodeType, ptc int, side Side, n NodeID) {
	c := l.cellIndex(x, y, t)
	slots := l.cells[c]
	for len(slots) <= ptc {
		slots = append(slots, emptySlots)
	}
	if side > SideNone {
		side = SideNone
	}
	slots[ptc][side] = n
	l.cells[c] = slots
}

var emptySlots = sideSlots{InvalidNodeID, InvalidNodeID, InvalidNodeID, InvalidNodeID, InvalidNodeID}

// FindNode returns the node of type t with the given ptc number covering
// cell (x, y). side is only used for IPIN/OPIN. Anything outside the
// indexed extent, or an empty slot, yields InvalidNodeID.
func (g *Graph) FindNode(x, y int16, t NodeType, ptc int16, side Side) NodeID {
	l := g.ensureLookup()
	if !l.inBounds(int(x), int(y), t) || ptc < 0 {
		return InvalidNodeID
	}
	if !t.IsPin() || side > SideNone {
		side = SideNone
	}
	slots := l.cells[l.cellIndex(int(x), int(y), t)]
	if int(ptc) >= len(slots) {
		return InvalidNodeID
	}
	return slots[ptc][side]
}

// ChanNumTracks returns how many track slots the CHANX or CHANY table holds
// at (x, y), which is one more than the highest track indexed there. It is
// zero outside the indexed extent.
func (g *Graph) ChanNumTracks(x, y int16, t NodeType) int {
	if !t.IsChannel() {
		panic(NewError("ChanNumTracks").Graph().Cause(ErrWrongNodeType).
			Context("ChanNumTracks valid only for CHANX/CHANY, got %s", t).Build())
	}
	l := g.ensureLookup()
	if !l.inBounds(int(x), int(y), t) {
		return 0
	}
	return len(l.cells[l.cellIndex(int(x), int(y), t)])
}
