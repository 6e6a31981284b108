package logging

import (
	"time"
)

// Field keys shared by every graph log entry.
const (
	KeyComponent = "component"
	KeyGraph     = "graph"
	KeyNodeID    = "node_id"
	KeyEdgeID    = "edge_id"
	KeyCheck     = "check"
	KeyOperation = "operation"
	KeyLatency   = "latency"
	KeyCount     = "count"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Graph field helpers. Handles are passed as plain ints so this package
// stays below rrgraph in the import graph.

func Component(name string) Field { return String(KeyComponent, name) }

// Graph tags entries with a graph instance id.
func Graph(id string) Field { return String(KeyGraph, id) }

func NodeID(id int) Field { return Int(KeyNodeID, id) }

func EdgeID(id int) Field { return Int(KeyEdgeID, id) }

// Check names a validator check.
func Check(name string) Field { return String(KeyCheck, name) }

func Operation(op string) Field { return String(KeyOperation, op) }

// Latency records how long an operation took, rendered like "1.5ms".
func Latency(d time.Duration) Field { return Duration(KeyLatency, d) }

func Count(n int) Field { return Int(KeyCount, n) }
