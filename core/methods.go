// Package core: Graph method implementations.
//
// All mutators and queries are thread-safe under the single RWMutex declared
// in types.go. Enumeration methods sort their output to keep every consumer
// deterministic.
package core

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed.
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	// No-op for an existing vertex.
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.weights[id] = make(map[string]float64)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the stored vertex record for id, or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// AddEdge creates the undirected edge {from,to} with the given weight,
// inserting both endpoints first if they are missing.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrNegativeWeight, or
// ErrDuplicateEdge when the pair already carries an edge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Input validation.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	// 2) Ensure both endpoints exist (idempotent).
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Simple-graph constraint: one edge per unordered pair.
	if _, dup := g.weights[from][to]; dup {
		return ErrDuplicateEdge
	}
	// 4) Store both orientations so Weight(u,v) is symmetric by construction.
	g.weights[from][to] = weight
	g.weights[to][from] = weight

	return nil
}

// HasEdge reports whether an edge between u and v exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.weights[u][v]

	return ok
}

// Weight returns the weight of the edge between u and v.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.weights[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge exactly once (From < To), sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0)
	for u, nbrs := range g.weights {
		for v, w := range nbrs {
			// Emit each unordered pair once, in canonical orientation.
			if u < v {
				edges = append(edges, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// Neighbors returns the edges incident to id, one per neighbor, sorted by
// the neighbor ID. Each returned Edge has From == id regardless of canonical
// orientation, which keeps relaxation loops branch-free.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	edges := make([]Edge, 0, len(g.weights[id]))
	for v, w := range g.weights[id] {
		edges = append(edges, Edge{From: id, To: v, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// Degree returns the number of edges incident to id.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.weights[id]), nil
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E| (each undirected edge counted once).
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbrs := range g.weights {
		total += len(nbrs)
	}

	// Every edge is mirrored, so halve the directed count.
	return total / 2
}

// TotalWeight returns the sum of all edge weights (each edge counted once).
// Complexity: O(V + E).
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum float64
	for u, nbrs := range g.weights {
		for v, w := range nbrs {
			if u < v {
				sum += w
			}
		}
	}

	return sum
}

// IsComplete reports whether every pair of distinct vertices is joined by an
// edge. The Christofides guarantee additionally requires metric weights; see
// the dijkstra triangle-inequality check for that half of the precondition.
// Complexity: O(V).
func (g *Graph) IsComplete() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.vertices)
	for id := range g.vertices {
		if len(g.weights[id]) != n-1 {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the graph structure. Vertex Metadata maps are
// shared between the original and the clone.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: id, Metadata: v.Metadata}
		c.weights[id] = make(map[string]float64, len(g.weights[id]))
		for to, w := range g.weights[id] {
			c.weights[id][to] = w
		}
	}

	return c
}
