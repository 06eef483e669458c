// This file declares the SpanningTree artifact, sentinel errors, Options and
// the Compute dispatcher.
package mst

import (
	"errors"
	"sort"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
)

// Sentinel errors for spanning-tree computation.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrDisconnected indicates the graph is not fully connected, so a
	// spanning tree covering all vertices cannot be formed.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrEmptyRoot indicates that no start vertex was specified for Prim.
	ErrEmptyRoot = errors.New("mst: empty root vertex")

	// ErrUnknownMethod indicates Compute received an unrecognized Method.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// SpanningTree is the immutable result of an MST computation: exactly
// |V|−1 edges connecting every vertex, plus derived per-vertex degrees.
type SpanningTree struct {
	// Edges are the tree edges in canonical (From < To) orientation,
	// in the order the algorithm selected them.
	Edges []core.Edge

	// Weight is the total weight of all tree edges.
	Weight float64

	// degrees maps vertex ID to its degree within the tree.
	degrees map[string]int
}

// newSpanningTree derives degrees from the chosen edge set.
func newSpanningTree(edges []core.Edge, weight float64, vertices []string) *SpanningTree {
	deg := make(map[string]int, len(vertices))
	for _, v := range vertices {
		deg[v] = 0
	}
	for _, e := range edges {
		deg[e.From]++
		deg[e.To]++
	}

	return &SpanningTree{Edges: edges, Weight: weight, degrees: deg}
}

// Degree returns the tree degree of vertex id (0 for unknown vertices).
// Complexity: O(1).
func (t *SpanningTree) Degree(id string) int { return t.degrees[id] }

// OddVertices returns the IDs of all vertices with odd tree degree, sorted
// lexicographically. By the handshake parity argument the returned slice
// always has even length for a valid tree.
// Complexity: O(V log V).
func (t *SpanningTree) OddVertices() []string {
	odd := make([]string, 0, len(t.degrees)/2+1)
	for v, d := range t.degrees {
		if d%2 == 1 {
			odd = append(odd, v)
		}
	}
	sort.Strings(odd)

	return odd
}

// Options configures which MST algorithm Compute runs, and for Prim, which
// starting vertex to grow from.
type Options struct {
	// Method is MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim; ignored by Kruskal. When empty,
	// Prim starts from the lexicographically smallest vertex.
	Root string
}

// Option configures Options.
type Option func(*Options)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns Options selecting Prim with an automatic root.
func DefaultOptions() Options {
	return Options{Method: MethodPrim}
}

// Compute selects and runs the MST algorithm based on opts.
// Complexity: per chosen algorithm; see Prim and Kruskal.
func Compute(g *core.Graph, opts ...Option) (*SpanningTree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodPrim:
		root := cfg.Root
		if root == "" && g != nil {
			if vs := g.Vertices(); len(vs) > 0 {
				root = vs[0]
			}
		}

		return Prim(g, root)
	case MethodKruskal:
		return Kruskal(g)
	default:
		return nil, ErrUnknownMethod
	}
}
