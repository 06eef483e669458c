package christofides

import (
	"github.com/PatrykCzartowski/combinatorial-optimization/core"
	"github.com/PatrykCzartowski/combinatorial-optimization/dijkstra"
)

// Match pairs up the odd-degree vertices of the spanning tree with the
// greedy nearest-available heuristic:
//
//	Repeatedly take the smallest remaining unmatched vertex, scan all other
//	unmatched vertices for the minimum-weight edge to it in the derived
//	complete subgraph, pair the two, and remove both from the pool.
//
// The derived subgraph weight for a pair is the original graph edge weight
// when the edge exists, otherwise the oracle's shortest-path distance; the
// graph's connectivity (a pipeline precondition) guarantees every pair has
// a finite weight, so the pool always empties.
//
// This is a heuristic, not a true minimum-weight perfect matching: it does
// not guarantee global minimality, and with it the formal 1.5·OPT bound of
// Christofides is not assured (see the package documentation).
//
// Ties resolve to the scan-order-first candidate, and the pool is kept
// sorted, so the matching is deterministic.
//
// Returns ErrOddMatchingSet if odd has odd cardinality - a broken upstream
// invariant, since any tree's odd-degree set has even size.
//
// Complexity: O(k²) over the odd set of size k, plus oracle queries.
func Match(g *core.Graph, o *dijkstra.Oracle, odd []string) (Matching, error) {
	if len(odd)%2 == 1 {
		return nil, ErrOddMatchingSet
	}

	// Work on a local copy; odd arrives sorted from SpanningTree.OddVertices.
	remaining := append([]string(nil), odd...)
	matching := make(Matching, 0, len(odd)/2)

	for len(remaining) > 1 {
		// 1) Take the smallest unmatched vertex.
		u := remaining[0]
		remaining = remaining[1:]

		// 2) Scan the rest for the cheapest partner.
		bestIdx := -1
		var bestW float64
		for i, v := range remaining {
			w, err := pairWeight(g, o, u, v)
			if err != nil {
				return nil, err
			}
			if bestIdx < 0 || w < bestW {
				bestIdx, bestW = i, w
			}
		}

		// 3) Record the pair and drop the partner from the pool.
		v := remaining[bestIdx]
		matching = append(matching, Pair{U: u, V: v, Weight: bestW})
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return matching, nil
}

// pairWeight returns the derived complete-subgraph weight for {u,v}:
// the direct edge weight when present, else the shortest-path distance.
func pairWeight(g *core.Graph, o *dijkstra.Oracle, u, v string) (float64, error) {
	if g.HasEdge(u, v) {
		return g.Weight(u, v)
	}

	return o.Distance(u, v)
}
