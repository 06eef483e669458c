package gen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
)

// ErrTooFewVertices indicates a constructor was asked for fewer vertices
// than the family supports.
var ErrTooFewVertices = errors.New("gen: too few vertices")

// DefaultEdgeWeight is the weight assigned when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// minVertices is the smallest graph any constructor emits.
const minVertices = 1

// coordSpan is the side length of the square Euclidean points are drawn
// from.
const coordSpan = 100.0

// WeightFn produces an edge weight from the constructor's RNG. It must be
// deterministic for a fixed seed and must return a non-negative value.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeight returns a WeightFn that always yields value.
func ConstantWeight(value float64) WeightFn {
	return func(*rand.Rand) float64 { return value }
}

// UniformWeight returns a WeightFn sampling uniformly in [lo, hi).
func UniformWeight(lo, hi float64) WeightFn {
	return func(rng *rand.Rand) float64 { return lo + rng.Float64()*(hi-lo) }
}

// Options configures the randomized constructors.
type Options struct {
	// Seed feeds the constructor's private RNG.
	Seed int64

	// Weight draws edge weights for Complete. Euclidean ignores it, since
	// its weights are the planar distances.
	Weight WeightFn
}

// Option represents a functional option for the constructors.
type Option func(*Options)

// WithSeed fixes the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWeightFn overrides the edge-weight distribution of Complete.
func WithWeightFn(fn WeightFn) Option {
	return func(o *Options) { o.Weight = fn }
}

// DefaultOptions returns seed 1 and the constant unit weight.
func DefaultOptions() Options {
	return Options{Seed: 1, Weight: ConstantWeight(DefaultEdgeWeight)}
}

// Example returns the fixed six-vertex complete metric graph with vertices
// "0".."5". Its minimum spanning tree weighs 17, its optimal tour 23, and
// tour construction on it yields the cycle 0-3-4-5-1-2-0 of weight 24.
func Example() *core.Graph {
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
		// The edge list is loop-free and duplicate-free, so AddEdge cannot
		// fail here.
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			panic(fmt.Sprintf("gen: example graph: %v", err))
		}
	}

	return g
}

// Complete builds the complete simple graph K_n with weights drawn from the
// configured WeightFn. Vertex IDs are zero-padded indices ("V00", "V01",
// ...) so lexicographic and numeric order agree.
//
// Complexity: O(n²).
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < minVertices {
		return nil, fmt.Errorf("gen: Complete(%d): %w", n, ErrTooFewVertices)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	g := core.NewGraph()
	ids := vertexIDs(g, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(ids[i], ids[j], cfg.Weight(rng)); err != nil {
				return nil, fmt.Errorf("gen: Complete: edge %s-%s: %w", ids[i], ids[j], err)
			}
		}
	}

	return g, nil
}

// Euclidean builds a complete graph over n uniformly random points in the
// [0,100) square, weighted by planar distance. Each vertex carries its
// coordinates in Metadata under "x" and "y".
//
// The output always satisfies the triangle inequality.
// Complexity: O(n²).
func Euclidean(n int, opts ...Option) (*core.Graph, error) {
	if n < minVertices {
		return nil, fmt.Errorf("gen: Euclidean(%d): %w", n, ErrTooFewVertices)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	g := core.NewGraph()
	ids := vertexIDs(g, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i] = rng.Float64()*coordSpan, rng.Float64()*coordSpan
		v, err := g.Vertex(ids[i])
		if err != nil {
			return nil, err
		}
		v.Metadata["x"], v.Metadata["y"] = xs[i], ys[i]
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
			if err := g.AddEdge(ids[i], ids[j], d); err != nil {
				return nil, fmt.Errorf("gen: Euclidean: edge %s-%s: %w", ids[i], ids[j], err)
			}
		}
	}

	return g, nil
}

// vertexIDs inserts n zero-padded vertex IDs into g and returns them in
// index order. The pad width grows with n so ordering stays lexicographic.
func vertexIDs(g *core.Graph, n int) []string {
	width := 1
	for p := 10; p < n; p *= 10 {
		width++
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("V%0*d", width, i)
		// IDs are never empty, so insertion cannot fail.
		_ = g.AddVertex(ids[i])
	}

	return ids
}
