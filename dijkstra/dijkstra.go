package dijkstra

import (
	"container/heap"
	"math"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.Inf(1) if unreachable).
//   - prev: optional predecessor map if ReturnPath is set (nil otherwise).
//     prev[v] == u means the shortest path to v arrives through u;
//     for the source and unreachable vertices, prev[v] == "".
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Negative weights cannot occur: core.AddEdge rejects them at construction.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 2) Initialize dist[v] = +Inf, prev[v] = "" for every vertex.
	vertices := g.Vertices()
	dist := make(map[string]float64, len(vertices))
	prev := make(map[string]string, len(vertices))
	visited := make(map[string]bool, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
		prev[v] = ""
	}
	dist[cfg.Source] = 0

	// 3) Seed the heap with the source at distance 0.
	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: cfg.Source, dist: 0})

	// 4) Main loop: pop the closest unfinalized vertex and relax its edges.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id

		// Skip stale entries left behind by the lazy decrease-key strategy.
		if visited[u] {
			continue
		}
		visited[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range neighbors {
			v := e.To
			// Candidate distance via u; strictly-better test avoids pushing
			// duplicates for equal-length alternatives.
			if nd := dist[u] + e.Weight; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				heap.Push(&pq, &nodeItem{id: v, dist: nd})
			}
		}
	}

	if !cfg.ReturnPath {
		return dist, nil, nil
	}

	return dist, prev, nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, with ties
// broken by vertex ID so that heap contents never depend on insertion order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex ID for determinism among ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
