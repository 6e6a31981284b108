package rrgraph

import "slices"

// NodesInRegion returns, in ascending order, every placed node whose
// bounding box intersects r.
func (g *Graph) NodesInRegion(r Rect) []NodeID {
	l := g.ensureLookup()
	x0, x1 := min(r.XLow, r.XHigh), max(r.XLow, r.XHigh)
	y0, y1 := min(r.YLow, r.YHigh), max(r.YLow, r.YHigh)

	var found []NodeID
	l.region.Search(
		[2]float64{float64(x0), float64(y0)},
		[2]float64{float64(x1), float64(y1)},
		func(_, _ [2]float64, n NodeID) bool {
			found = append(found, n)
			return true
		})
	slices.Sort(found)
	return found
}
