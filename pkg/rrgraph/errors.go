package rrgraph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrInvalidNode      = errors.New("invalid node id")
	ErrInvalidEdge      = errors.New("invalid edge id")
	ErrInvalidSwitch    = errors.New("invalid switch id")
	ErrInvalidSegment   = errors.New("invalid segment id")
	ErrWrongNodeType    = errors.New("wrong node type")
	ErrSizeMismatch     = errors.New("attribute array size mismatch")
	ErrOutOfRange       = errors.New("offset out of range")
	ErrDanglingHandle   = errors.New("dangling handle after compaction")
	ErrValidationFailed = errors.New("graph validation failed")
)

// GraphError provides structured information about a failed precondition or
// a failed validation. Precondition failures are raised with panic(*GraphError).
type GraphError struct {
	Op      string // Operation that failed (e.g., "SetNodeSide", "Compress")
	Entity  string // Entity type (e.g., "node", "edge", "switch")
	ID      int    // Entity ID, meaningful when HasID is set
	HasID   bool
	Cause   error
	Context string
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	switch {
	case e.HasID && e.Context != "":
		return fmt.Sprintf("%s %s %d (%s): %v", e.Op, e.Entity, e.ID, e.Context, e.Cause)
	case e.HasID:
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Cause)
	case e.Context != "":
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	case e.Entity != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// ErrorBuilder provides a fluent interface for building GraphErrors.
type ErrorBuilder struct {
	err GraphError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op}}
}

func (b *ErrorBuilder) entity(name string, id int) *ErrorBuilder {
	b.err.Entity = name
	b.err.ID = id
	b.err.HasID = true
	return b
}

// Node sets the entity to "node" with the given ID.
func (b *ErrorBuilder) Node(id NodeID) *ErrorBuilder { return b.entity("node", int(id)) }

// Edge sets the entity to "edge" with the given ID.
func (b *ErrorBuilder) Edge(id EdgeID) *ErrorBuilder { return b.entity("edge", int(id)) }

// Switch sets the entity to "switch" with the given ID.
func (b *ErrorBuilder) Switch(id SwitchID) *ErrorBuilder { return b.entity("switch", int(id)) }

// Segment sets the entity to "segment" with the given ID.
func (b *ErrorBuilder) Segment(id SegmentID) *ErrorBuilder { return b.entity("segment", int(id)) }

// Graph sets the entity to the whole graph.
func (b *ErrorBuilder) Graph() *ErrorBuilder {
	b.err.Entity = "graph"
	return b
}

// Context sets additional context information.
func (b *ErrorBuilder) Context(format string, args ...any) *ErrorBuilder {
	b.err.Context = fmt.Sprintf(format, args...)
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Build returns the constructed GraphError.
func (b *ErrorBuilder) Build() *GraphError {
	return &b.err
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// IsPrecondition reports whether err is a precondition failure raised by an
// accessor or mutator, as opposed to a validation verdict.
func IsPrecondition(err error) bool {
	var ge *GraphError
	if !errors.As(err, &ge) {
		return false
	}
	return !errors.Is(err, ErrValidationFailed)
}
