// Prim's Minimum Spanning Tree over a weighted undirected core.Graph,
// growing from a root vertex using a min-heap of candidate edges.
package mst

import (
	"container/heap"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
)

// Prim computes the MST of g by growing outwards from root.
//
// Error conditions:
//   - ErrNilGraph           : g is nil.
//   - ErrDisconnected       : |V| == 0, or |V| > 1 and the graph does not connect.
//   - ErrEmptyRoot          : root is "".
//   - core.ErrVertexNotFound: root does not exist in g.
//
// Steps:
//  1. Validate graph and root.
//  2. Single-vertex graphs yield a trivial empty tree.
//  3. Mark root visited and seed the heap with its incident edges.
//  4. Repeatedly pop the lightest edge to an unvisited vertex, add it to the
//     tree, and push that vertex's incident edges.
//  5. Fewer than |V|−1 collected edges means the graph is disconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root string) (*SpanningTree, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, ErrDisconnected
	}
	// 2. Single-vertex MST is trivially empty.
	if len(vertices) == 1 {
		if vertices[0] != root {
			return nil, core.ErrVertexNotFound
		}

		return newSpanningTree(nil, 0, vertices), nil
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, core.ErrVertexNotFound
	}

	// 3. Seed: mark root visited, push its incident edges.
	n := len(vertices)
	visited := make(map[string]bool, n)
	tree := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	visited[root] = true
	neighbors, err := g.Neighbors(root)
	if err != nil {
		return nil, err
	}
	for _, e := range neighbors {
		heap.Push(pq, e)
	}

	// 4. Main loop: extract the lightest crossing edge until the tree spans.
	for pq.Len() > 0 && len(tree) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		v := e.To
		// Skip edges whose far endpoint joined the tree in the meantime.
		if visited[v] {
			continue
		}
		visited[v] = true
		tree = append(tree, canonical(e))
		totalWeight += e.Weight

		next, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, ne := range next {
			if !visited[ne.To] {
				heap.Push(pq, ne)
			}
		}
	}

	// 5. Fewer than |V|-1 edges means some vertex was never reached.
	if len(tree) < n-1 {
		return nil, ErrDisconnected
	}

	return newSpanningTree(tree, totalWeight, vertices), nil
}

// canonical reorients an edge to From < To so trees report edges uniformly.
func canonical(e core.Edge) core.Edge {
	if e.From > e.To {
		e.From, e.To = e.To, e.From
	}

	return e
}

// edgePQ implements heap.Interface for a min-heap of core.Edge ordered by
// Weight, with (To, From) as a deterministic tie-break.
type edgePQ []core.Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight ascending; ties resolve by endpoint IDs so equal
// weights never make the tree depend on heap internals.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}
	if pq[i].To != pq[j].To {
		return pq[i].To < pq[j].To
	}

	return pq[i].From < pq[j].From
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new core.Edge to the heap.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the smallest-weight core.Edge from the heap.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
