package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
)

// buildSquare constructs the 4-vertex square A-B-C-D-A with weights 1..4.
func buildSquare() *core.Graph {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("C", "D", 3)
	_ = g.AddEdge("D", "A", 4)

	return g
}

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()

	// Empty ID is rejected.
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	// First insert succeeds, second is an idempotent no-op.
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_ValidationAndSymmetry(t *testing.T) {
	g := core.NewGraph()

	// Invalid inputs.
	assert.ErrorIs(t, g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "A", 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge("A", "B", -2), core.ErrNegativeWeight)

	// Valid edge auto-creates both endpoints.
	require.NoError(t, g.AddEdge("A", "B", 2.5))
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))

	// Weight lookup is symmetric.
	wAB, err := g.Weight("A", "B")
	require.NoError(t, err)
	wBA, err := g.Weight("B", "A")
	require.NoError(t, err)
	assert.Equal(t, wAB, wBA)
	assert.Equal(t, 2.5, wAB)

	// Duplicate edges are rejected in either orientation.
	assert.ErrorIs(t, g.AddEdge("A", "B", 3), core.ErrDuplicateEdge)
	assert.ErrorIs(t, g.AddEdge("B", "A", 3), core.ErrDuplicateEdge)

	// Missing edge lookup.
	_, err = g.Weight("A", "Z")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestEnumeration_SortedAndCanonical(t *testing.T) {
	g := buildSquare()

	// Vertices sorted lexicographically.
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	// Edges appear once each, canonical From < To, sorted by (From, To).
	edges := g.Edges()
	require.Len(t, edges, 4)
	want := []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "D", Weight: 4},
		{From: "B", To: "C", Weight: 2},
		{From: "C", To: "D", Weight: 3},
	}
	assert.Equal(t, want, edges)

	// Neighbors are rooted at the queried vertex and sorted by neighbor ID.
	nbrs, err := g.Neighbors("D")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "D", To: "A", Weight: 4},
		{From: "D", To: "C", Weight: 3},
	}, nbrs)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestCounts_Degree_TotalWeight(t *testing.T) {
	g := buildSquare()

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 10.0, g.TotalWeight())

	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	_, err = g.Degree("nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestIsComplete(t *testing.T) {
	// The square is not complete (missing diagonals).
	g := buildSquare()
	assert.False(t, g.IsComplete())

	// Add the diagonals: now K4.
	require.NoError(t, g.AddEdge("A", "C", 5))
	require.NoError(t, g.AddEdge("B", "D", 5))
	assert.True(t, g.IsComplete())
}

func TestClone_IndependentStructure(t *testing.T) {
	g := buildSquare()
	c := g.Clone()

	// Clone starts equal.
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.Edges(), c.Edges())

	// Mutating the clone leaves the original untouched.
	require.NoError(t, c.AddEdge("A", "C", 9))
	assert.True(t, c.HasEdge("A", "C"))
	assert.False(t, g.HasEdge("A", "C"))
}
