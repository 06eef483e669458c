// This file declares Vertex, Edge, Graph, sentinel errors, and the NewGraph
// constructor. Method implementations live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an attempt to add an edge with negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted; the pipeline
	// operates on simple graphs only.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge was attempted for a vertex
	// pair that already has one.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data (generators use it for planar
// coordinates); it is shared, not deep-copied, by Clone.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents one undirected connection between two vertices.
//
// Edges are reported with From < To lexicographically, so the same edge is
// never enumerated twice under two orientations.
type Edge struct {
	// From is the lexicographically smaller endpoint ID.
	From string

	// To is the lexicographically larger endpoint ID.
	To string

	// Weight is the non-negative cost of the edge.
	Weight float64
}

// Graph is the in-memory weighted undirected simple graph.
//
// A single RWMutex guards both the vertex catalog and the weight table;
// construction happens once per run and every later stage only reads.
type Graph struct {
	mu sync.RWMutex

	// vertices maps vertex ID to its record.
	vertices map[string]*Vertex

	// weights[u][v] stores the edge weight; entries are mirrored so that
	// weights[u][v] == weights[v][u] for every edge.
	weights map[string]map[string]float64
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
		weights:  make(map[string]map[string]float64),
	}
}
