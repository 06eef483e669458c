package christofides_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
	"github.com/PatrykCzartowski/combinatorial-optimization/dijkstra"
)

// exampleGraph builds the canonical 6-vertex complete metric instance used
// by the end-to-end tests (vertices "0".."5").
func exampleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	edges := []struct {
		u, v string
		w    float64
	}{
		{"0", "1", 4}, {"0", "2", 3}, {"0", "3", 5}, {"0", "4", 6}, {"0", "5", 5},
		{"1", "2", 5}, {"1", "3", 7}, {"1", "4", 8}, {"1", "5", 6},
		{"2", "3", 5}, {"2", "4", 7}, {"2", "5", 6},
		{"3", "4", 3}, {"3", "5", 4},
		{"4", "5", 2},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// euclideanGraph builds a complete graph over n random planar points; its
// distances satisfy the triangle inequality by construction.
func euclideanGraph(t *testing.T, n int, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i], ys[i] = r.Float64()*100, r.Float64()*100
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
			require.NoError(t, g.AddEdge(vid(i), vid(j), d))
		}
	}

	return g
}

// pointsGraph builds the complete Euclidean graph over the given planar
// points, vertex i named vid(i).
func pointsGraph(t *testing.T, pts [][2]float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			d := math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			require.NoError(t, g.AddEdge(vid(i), vid(j), d))
		}
	}

	return g
}

// vid formats a zero-padded vertex ID so lexicographic and numeric order agree.
func vid(i int) string { return fmt.Sprintf("V%02d", i) }

// newOracle is a shorthand for tests that exercise stages directly.
func newOracle(t *testing.T, g *core.Graph) *dijkstra.Oracle {
	t.Helper()
	o, err := dijkstra.NewOracle(g)
	require.NoError(t, err)

	return o
}

// bruteForceOptimum computes the exact optimal tour weight of a complete
// graph by trying every permutation with the first vertex fixed. Usable as
// a test oracle up to ~9 vertices.
func bruteForceOptimum(t *testing.T, g *core.Graph) float64 {
	t.Helper()
	vertices := g.Vertices()
	n := len(vertices)
	require.GreaterOrEqual(t, n, 2)

	rest := vertices[1:]
	best := math.Inf(1)

	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			total, err := tourWeight(g, vertices[0], rest)
			require.NoError(t, err)
			if total < best {
				best = total
			}

			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}

// tourWeight sums the cycle start -> rest... -> start.
func tourWeight(g *core.Graph, start string, rest []string) (float64, error) {
	var total float64
	cur := start
	for _, v := range rest {
		w, err := g.Weight(cur, v)
		if err != nil {
			return 0, err
		}
		total += w
		cur = v
	}
	w, err := g.Weight(cur, start)
	if err != nil {
		return 0, err
	}

	return total + w, nil
}
