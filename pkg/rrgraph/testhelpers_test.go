package rrgraph

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-rrgraph/pkg/metrics"
)

var (
	muxSwitch   = Switch{Name: "mux", Kind: SwitchMux, R: 100, Tdel: 5e-11}
	shortSwitch = Switch{Name: "short", Kind: SwitchShort}
	l4Segment   = Segment{Name: "L4", Length: 4, Frequency: 1, Directionality: UniDirectional}
)

// testGraph returns an empty graph wired to a private metrics registry.
func testGraph(t *testing.T) (*Graph, *metrics.Registry) {
	t.Helper()
	reg := metrics.NewRegistry()
	return NewWithOptions(Options{Metrics: reg}), reg
}

// scenario is the three-node graph SOURCE -> CHANX -> SINK.
type scenario struct {
	g            *Graph
	mux, short   SwitchID
	seg          SegmentID
	src, ch, snk NodeID
	in, out      EdgeID
}

// newScenario builds SOURCE -> CHANX(x=0..2, y=0, track 1) -> SINK, with a
// configurable switch on the first edge and a hardwired one on the second.
func newScenario(t *testing.T) *scenario {
	t.Helper()
	g, _ := testGraph(t)
	s := &scenario{g: g}
	s.mux = g.CreateSwitch(muxSwitch)
	s.short = g.CreateSwitch(shortSwitch)
	s.seg = g.CreateSegment(l4Segment)

	s.src = g.CreateTerminalNode(TerminalSpec{
		Kind:       SourceTerminal,
		Bounds:     Rect{0, 0, 0, 0},
		Class:      0,
		Electrical: Electrical{Capacity: 1, CostIndex: 0},
	})
	s.ch = g.CreateChannelNode(ChannelSpec{
		Axis:       AxisX,
		Bounds:     Rect{0, 0, 2, 0},
		Track:      1,
		Direction:  IncDirection,
		Segment:    s.seg,
		Electrical: Electrical{Capacity: 1, CostIndex: 2, R: 10, C: 1e-15},
	})
	s.snk = g.CreateTerminalNode(TerminalSpec{
		Kind:       SinkTerminal,
		Bounds:     Rect{2, 0, 2, 0},
		Class:      1,
		Electrical: Electrical{Capacity: 1, CostIndex: 1},
	})

	s.in = g.CreateEdge(s.src, s.ch, s.mux, false)
	s.out = g.CreateEdge(s.ch, s.snk, s.short, false)
	g.RebuildNodeEdges()
	return s
}

// requirePanicsWith runs fn and requires a *GraphError panic wrapping want.
func requirePanicsWith(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", want)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		var ge *GraphError
		require.True(t, errors.As(err, &ge), "panic %v is not a *GraphError", err)
		require.ErrorIs(t, err, want)
	}()
	fn()
}

// requireChecked skips tests of checks that rrgraph_unchecked builds drop.
func requireChecked(t *testing.T) {
	t.Helper()
	if !checksEnabled {
		t.Skip("handle checks compiled out")
	}
}

func readCounter(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func readGauge(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}
