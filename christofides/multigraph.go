package christofides

import (
	"fmt"
	"sort"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
	"github.com/PatrykCzartowski/combinatorial-optimization/dijkstra"
	"github.com/PatrykCzartowski/combinatorial-optimization/mst"
)

// Multigraph is an undirected graph whose edges form a multiset: the same
// vertex pair may appear multiple times, each occurrence with its own
// weight. It exists solely as the stage-3 artifact between multigraph
// assembly and Eulerian circuit extraction, and is not exposed before its
// construction completes.
type Multigraph struct {
	// edges is the occurrence list; an occurrence's index is its identity.
	edges []occurrence

	// adj maps a vertex to the indexes of its incident occurrences.
	adj map[string][]int
}

// occurrence is one multiset edge occurrence.
type occurrence struct {
	u, v string
	w    float64
}

// other returns the endpoint opposite to id.
func (e occurrence) other(id string) string {
	if e.u == id {
		return e.v
	}

	return e.u
}

// NewMultigraph creates an empty Multigraph.
func NewMultigraph() *Multigraph {
	return &Multigraph{adj: make(map[string][]int)}
}

// AddEdge appends one occurrence of the undirected edge {u,v} with weight w.
// Complexity: O(1) amortized.
func (m *Multigraph) AddEdge(u, v string, w float64) {
	idx := len(m.edges)
	m.edges = append(m.edges, occurrence{u: u, v: v, w: w})
	m.adj[u] = append(m.adj[u], idx)
	m.adj[v] = append(m.adj[v], idx)
}

// Degree returns the number of edge occurrences incident to id.
// Complexity: O(1).
func (m *Multigraph) Degree(id string) int { return len(m.adj[id]) }

// EdgeCount returns the number of edge occurrences.
// Complexity: O(1).
func (m *Multigraph) EdgeCount() int { return len(m.edges) }

// TotalWeight returns the sum of all occurrence weights, rounded to 1e-9.
// Complexity: O(E).
func (m *Multigraph) TotalWeight() float64 {
	var sum float64
	for _, e := range m.edges {
		sum += e.w
	}

	return round1e9(sum)
}

// Vertices returns the IDs of all vertices carrying at least one
// occurrence, sorted lexicographically.
// Complexity: O(V log V).
func (m *Multigraph) Vertices() []string {
	ids := make([]string, 0, len(m.adj))
	for id := range m.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every occurrence as a core.Edge in canonical orientation,
// sorted by (From, To, Weight). Intended for diagnostics and tests.
// Complexity: O(E log E).
func (m *Multigraph) Edges() []core.Edge {
	edges := make([]core.Edge, 0, len(m.edges))
	for _, e := range m.edges {
		u, v := e.u, e.v
		if u > v {
			u, v = v, u
		}
		edges = append(edges, core.Edge{From: u, To: v, Weight: e.w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		if edges[i].To != edges[j].To {
			return edges[i].To < edges[j].To
		}

		return edges[i].Weight < edges[j].Weight
	})

	return edges
}

// Assemble unions the spanning-tree edges with the matching edges into the
// Eulerian multigraph of stage 3.
//
// Every tree edge is inserted once. Every matched pair contributes either
// its direct graph edge, or - when the pair has no direct edge - every edge
// along the oracle's shortest path between the two, expanding the pair into
// a chain of real edges.
//
// Postcondition, asserted rather than hoped for: every vertex degree in the
// result is even. A violation is ErrOddDegree, an internal invariant
// failure of the parity argument, never a recoverable input error.
//
// Complexity: O(E_tree + Σ path lengths) plus the parity sweep.
func Assemble(g *core.Graph, o *dijkstra.Oracle, tree *mst.SpanningTree, matching Matching) (*Multigraph, error) {
	m := NewMultigraph()

	// 1) All spanning-tree edges.
	for _, e := range tree.Edges {
		m.AddEdge(e.From, e.To, e.Weight)
	}

	// 2) Matching edges: direct when present, else the shortest-path chain.
	for _, p := range matching {
		if g.HasEdge(p.U, p.V) {
			w, err := g.Weight(p.U, p.V)
			if err != nil {
				return nil, err
			}
			m.AddEdge(p.U, p.V, w)

			continue
		}
		path, err := o.Path(p.U, p.V)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < len(path); i++ {
			w, err := g.Weight(path[i], path[i+1])
			if err != nil {
				return nil, err
			}
			m.AddEdge(path[i], path[i+1], w)
		}
	}

	// 3) Parity postcondition.
	for _, v := range m.Vertices() {
		if m.Degree(v)%2 == 1 {
			return nil, fmt.Errorf("%w: vertex %q has degree %d", ErrOddDegree, v, m.Degree(v))
		}
	}

	return m, nil
}
