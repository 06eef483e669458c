package dijkstra

import (
	"fmt"
	"math"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
)

// Oracle answers shortest-path queries for arbitrary vertex pairs of one
// graph by memoizing a single-source Dijkstra run per queried source.
//
// The Oracle never mutates the graph, and per-source results are computed at
// most once, so querying all pairs costs O(V · (V+E) log V) total. It is not
// safe for concurrent use.
type Oracle struct {
	g *core.Graph

	// dist[source][v] and prev[source][v] cache completed runs.
	dist map[string]map[string]float64
	prev map[string]map[string]string
}

// NewOracle wraps g in a fresh Oracle with an empty cache.
// Returns ErrNilGraph if g is nil.
// Complexity: O(1).
func NewOracle(g *core.Graph) (*Oracle, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Oracle{
		g:    g,
		dist: make(map[string]map[string]float64),
		prev: make(map[string]map[string]string),
	}, nil
}

// from returns the memoized single-source result for source, running
// Dijkstra on the first query.
func (o *Oracle) from(source string) (map[string]float64, map[string]string, error) {
	if d, ok := o.dist[source]; ok {
		return d, o.prev[source], nil
	}
	dist, prev, err := Dijkstra(o.g, Source(source), WithReturnPath())
	if err != nil {
		return nil, nil, err
	}
	o.dist[source] = dist
	o.prev[source] = prev

	return dist, prev, nil
}

// Distance returns the shortest-path distance from u to v.
// Returns ErrNoPath if v is unreachable from u, ErrVertexNotFound if either
// endpoint is missing.
// Complexity: O((V+E) log V) on the first query per source, O(1) after.
func (o *Oracle) Distance(u, v string) (float64, error) {
	if !o.g.HasVertex(v) {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}
	dist, _, err := o.from(u)
	if err != nil {
		return 0, err
	}
	d := dist[v]
	if math.IsInf(d, 1) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrNoPath, u, v)
	}

	return d, nil
}

// Path returns the vertices of a shortest path from u to v, inclusive of
// both endpoints. Returns ErrNoPath if v is unreachable from u.
// Complexity: as Distance, plus O(path length) for reconstruction.
func (o *Oracle) Path(u, v string) ([]string, error) {
	if !o.g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}
	dist, prev, err := o.from(u)
	if err != nil {
		return nil, err
	}
	if math.IsInf(dist[v], 1) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, u, v)
	}

	// Walk predecessors back from v to u, then reverse in place.
	path := []string{v}
	for cur := v; cur != u; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Connected reports whether every vertex is reachable from every other.
// For undirected graphs one source suffices; the empty graph counts as
// connected. Complexity: one Dijkstra run.
func (o *Oracle) Connected() (bool, error) {
	vertices := o.g.Vertices()
	if len(vertices) == 0 {
		return true, nil
	}
	dist, _, err := o.from(vertices[0])
	if err != nil {
		return false, err
	}
	for _, v := range vertices {
		if math.IsInf(dist[v], 1) {
			return false, nil
		}
	}

	return true, nil
}
