// Kruskal's Minimum Spanning Tree over a weighted undirected core.Graph,
// using a disjoint-set (union-find) with path compression and union by rank.
package mst

import (
	"sort"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
)

// Kruskal computes the MST of g by scanning edges in ascending weight order
// and joining components with union-find.
//
// Error conditions:
//   - ErrNilGraph     : g is nil.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and the graph does not connect.
//
// Steps:
//  1. Validate; single-vertex graphs yield a trivial empty tree.
//  2. Sort edges by weight; core.Edges() is already endpoint-sorted, so a
//     stable sort makes equal-weight ties deterministic.
//  3. Initialize union-find over all vertices.
//  4. Take each edge joining two distinct components until |V|−1 edges.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *core.Graph) (*SpanningTree, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, ErrDisconnected
	}
	if len(vertices) == 1 {
		return newSpanningTree(nil, 0, vertices), nil
	}

	// 2. Collect and sort edges by ascending weight; stable keeps the
	//    canonical endpoint order among equal weights.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	// 3. Union-find over vertex IDs.
	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
		rank[v] = 0
	}

	// Iterative find with path compression.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; returns false when both endpoints already share a root.
	union := func(u, v string) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}

		return true
	}

	// 4. Greedy scan.
	n := len(vertices)
	tree := make([]core.Edge, 0, n-1)
	var totalWeight float64
	for _, e := range edges {
		if union(e.From, e.To) {
			tree = append(tree, e)
			totalWeight += e.Weight
			if len(tree) == n-1 {
				break
			}
		}
	}

	if len(tree) < n-1 {
		return nil, ErrDisconnected
	}

	return newSpanningTree(tree, totalWeight, vertices), nil
}
