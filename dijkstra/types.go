// This file declares sentinel errors, Options and the functional options for
// single-source Dijkstra runs.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation and the Oracle.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a referenced vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that no path exists between the requested pair of
	// vertices. For the tour pipeline this is a fatal precondition failure,
	// never a value to silently substitute with infinity.
	ErrNoPath = errors.New("dijkstra: no path between vertices")
)

// DefaultEpsilon is the absolute tolerance used by the triangle-inequality
// check to absorb floating-point drift.
const DefaultEpsilon = 1e-9

// Options configures the behavior of a single Dijkstra run.
//
// Source     - starting vertex ID (must be non-empty and present in the graph).
// ReturnPath - if true, return the predecessor map; otherwise prev is nil.
type Options struct {
	// Source is the ID of the source vertex.
	Source string

	// ReturnPath controls whether the predecessor map is returned.
	ReturnPath bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// DefaultOptions returns Options initialized with sensible defaults for the
// given source vertex ID.
//
// Defaults:
//   - Source:     <as passed> (validated in Dijkstra, not here).
//   - ReturnPath: false.
func DefaultOptions(source string) Options {
	return Options{
		Source:     source,
		ReturnPath: false,
	}
}
