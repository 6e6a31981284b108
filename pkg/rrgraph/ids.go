package rrgraph

import "strconv"

// NodeID is a dense, zero-based handle for a routing-resource node.
// Its value indexes every per-node attribute array directly.
type NodeID int32

// EdgeID is a dense, zero-based handle for a directed edge.
type EdgeID int32

// SwitchID indexes the switch catalog.
type SwitchID int32

// SegmentID indexes the segment catalog.
type SegmentID int32

// Invalid sentinels, one per id type.
const (
	InvalidNodeID    NodeID    = -1
	InvalidEdgeID    EdgeID    = -1
	InvalidSwitchID  SwitchID  = -1
	InvalidSegmentID SegmentID = -1
)

// UnresolvedSwitchID marks an edge whose switch is not known yet. Such edges
// must be created with allowUnresolved and fixed with SetEdgeSwitch before
// the adjacency is rebuilt.
const UnresolvedSwitchID = InvalidSwitchID

// Index returns the underlying integer.
func (id NodeID) Index() int { return int(id) }

// IsInvalid reports whether id is the invalid sentinel.
func (id NodeID) IsInvalid() bool { return id == InvalidNodeID }

func (id NodeID) String() string {
	if id.IsInvalid() {
		return "node(invalid)"
	}
	return "node(" + strconv.Itoa(int(id)) + ")"
}

// Index returns the underlying integer.
func (id EdgeID) Index() int { return int(id) }

// IsInvalid reports whether id is the invalid sentinel.
func (id EdgeID) IsInvalid() bool { return id == InvalidEdgeID }

func (id EdgeID) String() string {
	if id.IsInvalid() {
		return "edge(invalid)"
	}
	return "edge(" + strconv.Itoa(int(id)) + ")"
}

// Index returns the underlying integer.
func (id SwitchID) Index() int { return int(id) }

// IsInvalid reports whether id is the invalid sentinel.
func (id SwitchID) IsInvalid() bool { return id == InvalidSwitchID }

// Index returns the underlying integer.
func (id SegmentID) Index() int { return int(id) }

// IsInvalid reports whether id is the invalid sentinel.
func (id SegmentID) IsInvalid() bool { return id == InvalidSegmentID }
