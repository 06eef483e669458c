package gen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrykCzartowski/combinatorial-optimization/christofides"
	"github.com/PatrykCzartowski/combinatorial-optimization/gen"
)

func TestExample(t *testing.T) {
	g := gen.Example()

	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 15, g.EdgeCount())
	assert.True(t, g.IsComplete())
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5"}, g.Vertices())

	w, err := g.Weight("4", "5")
	require.NoError(t, err)
	assert.InDelta(t, 2, w, 0)
}

func TestComplete(t *testing.T) {
	g, err := gen.Complete(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount())
	assert.True(t, g.IsComplete())
	assert.InDelta(t, 10, g.TotalWeight(), 1e-9)
}

func TestComplete_CustomWeights(t *testing.T) {
	g, err := gen.Complete(6,
		gen.WithSeed(3),
		gen.WithWeightFn(gen.UniformWeight(1, 10)))
	require.NoError(t, err)

	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.Less(t, e.Weight, 10.0)
	}
}

func TestComplete_TooFew(t *testing.T) {
	_, err := gen.Complete(0)
	require.ErrorIs(t, err, gen.ErrTooFewVertices)
}

func TestComplete_Deterministic(t *testing.T) {
	first, err := gen.Complete(8, gen.WithSeed(9), gen.WithWeightFn(gen.UniformWeight(0, 1)))
	require.NoError(t, err)
	again, err := gen.Complete(8, gen.WithSeed(9), gen.WithWeightFn(gen.UniformWeight(0, 1)))
	require.NoError(t, err)

	assert.Equal(t, first.Edges(), again.Edges())
}

func TestEuclidean(t *testing.T) {
	g, err := gen.Euclidean(12, gen.WithSeed(4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.VertexCount())
	assert.True(t, g.IsComplete())

	// Coordinates are recorded and consistent with the edge weights.
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		require.NoError(t, err)
		x, ok := v.Metadata["x"].(float64)
		require.True(t, ok)
		y, ok := v.Metadata["y"].(float64)
		require.True(t, ok)
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 100.0)
		assert.GreaterOrEqual(t, y, 0.0)
		assert.Less(t, y, 100.0)
	}
	vertices := g.Vertices()
	a, err := g.Vertex(vertices[0])
	require.NoError(t, err)
	b, err := g.Vertex(vertices[1])
	require.NoError(t, err)
	want := math.Hypot(
		a.Metadata["x"].(float64)-b.Metadata["x"].(float64),
		a.Metadata["y"].(float64)-b.Metadata["y"].(float64))
	got, err := g.Weight(vertices[0], vertices[1])
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

func TestEuclidean_IsMetric(t *testing.T) {
	g, err := gen.Euclidean(10, gen.WithSeed(6))
	require.NoError(t, err)

	ok, violation, err := christofides.CheckTriangleInequality(g, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, violation)
}

func TestEuclidean_TooFew(t *testing.T) {
	_, err := gen.Euclidean(-1)
	require.ErrorIs(t, err, gen.ErrTooFewVertices)
}
