// Package core defines the weighted undirected Graph used by every stage of
// the tour-construction pipeline, together with its Vertex and Edge types.
//
// The Graph is a simple graph: one undirected edge per unordered vertex pair,
// no self-loops, non-negative float64 weights. It is mutable during
// construction (AddVertex/AddEdge, guarded by an RWMutex) and treated as
// read-only by every algorithm package; multigraph semantics needed by the
// Eulerian stage live in the christofides package, not here.
//
// Determinism:
//
//	Vertices(), Edges() and Neighbors() return lexicographically sorted
//	results, so every algorithm built on top of core enumerates the graph
//	in a reproducible order.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrNegativeWeight - edge weight below zero.
//	ErrLoopNotAllowed - self-loop attempted.
//	ErrDuplicateEdge  - second edge for the same unordered pair.
package core
