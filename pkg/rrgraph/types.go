package rrgraph

// NodeType is the closed set of routing-resource node kinds.
type NodeType uint8

const (
	Source NodeType = iota
	Sink
	IPin
	OPin
	ChanX
	ChanY
	// NumNodeTypes is the number of node types
	NumNodeTypes
)

var nodeTypeNames = [NumNodeTypes]string{"SOURCE", "SINK", "IPIN", "OPIN", "CHANX", "CHANY"}

// String returns the string representation of a node type
func (t NodeType) String() string {
	if t < NumNodeTypes {
		return nodeTypeNames[t]
	}
	return "UNKNOWN"
}

// IsChannel reports whether t is CHANX or CHANY.
func (t NodeType) IsChannel() bool { return t == ChanX || t == ChanY }

// IsPin reports whether t is IPIN or OPIN.
func (t NodeType) IsPin() bool { return t == IPin || t == OPin }

// IsTerminal reports whether t is SOURCE or SINK.
func (t NodeType) IsTerminal() bool { return t == Source || t == Sink }

// Direction of a channel node.
type Direction uint8

const (
	IncDirection Direction = iota
	DecDirection
	BiDirection
	NoDirection
)

func (d Direction) String() string {
	switch d {
	case IncDirection:
		return "INC_DIR"
	case DecDirection:
		return "DEC_DIR"
	case BiDirection:
		return "BI_DIR"
	default:
		return "NO_DIR"
	}
}

// Side of the block a pin node sits on.
type Side uint8

const (
	Top Side = iota
	Right
	Bottom
	Left
	// SideNone is stored for every non-pin node. It is also the lookup slot
	// those nodes occupy.
	SideNone
)

// NumSides is the number of real compass sides.
const NumSides = int(SideNone)

func (s Side) String() string {
	switch s {
	case Top:
		return "TOP"
	case Right:
		return "RIGHT"
	case Bottom:
		return "BOTTOM"
	case Left:
		return "LEFT"
	default:
		return "NONE"
	}
}

// Rect is an axis-aligned bounding box in grid coordinates.
type Rect struct {
	XLow, YLow, XHigh, YHigh int16
}

// Point is a grid coordinate.
type Point struct {
	X, Y int16
}

// SwitchKind is the electrical kind of a switch.
type SwitchKind uint8

const (
	SwitchMux SwitchKind = iota
	SwitchTristate
	SwitchPassGate
	SwitchShort
	SwitchBuffer
)

func (k SwitchKind) String() string {
	switch k {
	case SwitchMux:
		return "mux"
	case SwitchTristate:
		return "tristate"
	case SwitchPassGate:
		return "pass_gate"
	case SwitchShort:
		return "short"
	case SwitchBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// Switch is an opaque switch-model record stored by id.
type Switch struct {
	Name         string
	Kind         SwitchKind
	R            float32
	Cin          float32
	Cout         float32
	Cinternal    float32
	Tdel         float32
	MuxTransSize float32
	BufSize      float32
	PowerBufSize float32
}

// Configurable reports whether an edge over this switch can be programmed.
// Shorts and buffers are hardwired.
func (s Switch) Configurable() bool {
	switch s.Kind {
	case SwitchShort, SwitchBuffer:
		return false
	default:
		return true
	}
}

// SegmentDirectionality of a wire segment type.
type SegmentDirectionality uint8

const (
	UniDirectional SegmentDirectionality = iota
	BiDirectional
)

// Segment is an opaque wire-segment-model record stored by id.
type Segment struct {
	Name           string
	Length         int
	Frequency      int
	Rmetal         float32
	Cmetal         float32
	Directionality SegmentDirectionality
}
