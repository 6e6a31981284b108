package rrgraph

// Switch and segment catalogs. Both are append-only and are only ever
// emptied by Clear.

// CreateSwitch appends a switch record and returns its id.
func (g *Graph) CreateSwitch(sw Switch) SwitchID {
	id := SwitchID(len(g.switches))
	g.switches = append(g.switches, sw)
	return id
}

// CreateSegment appends a segment record and returns its id.
func (g *Graph) CreateSegment(seg Segment) SegmentID {
	id := SegmentID(len(g.segments))
	g.segments = append(g.segments, seg)
	return id
}

// ReserveSwitches grows the switch catalog capacity.
func (g *Graph) ReserveSwitches(n int) {
	if n > 0 {
		g.switches = grow(g.switches, n)
	}
}

// ReserveSegments grows the segment catalog capacity.
func (g *Graph) ReserveSegments(n int) {
	if n > 0 {
		g.segments = grow(g.segments, n)
	}
}

// Switch returns the switch record with the given id.
func (g *Graph) Switch(id SwitchID) Switch {
	g.mustValidSwitch("Switch", id)
	return g.switches[id]
}

// Segment returns the segment record with the given id.
func (g *Graph) Segment(id SegmentID) Segment {
	g.mustValidSegment("Segment", id)
	return g.segments[id]
}
