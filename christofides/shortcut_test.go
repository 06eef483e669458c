package christofides_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrykCzartowski/combinatorial-optimization/christofides"
	"github.com/PatrykCzartowski/combinatorial-optimization/core"
)

func TestShortcut(t *testing.T) {
	cases := []struct {
		name    string
		circuit []string
		want    []string
	}{
		{"empty", nil, nil},
		{"single vertex", []string{"A"}, []string{"A"}},
		{"no repeats", []string{"A", "B", "C", "A"}, []string{"A", "B", "C", "A"}},
		{"skips revisits", []string{"0", "3", "4", "5", "1", "0", "2", "0"}, []string{"0", "3", "4", "5", "1", "2", "0"}},
		{"collapses runs", []string{"A", "B", "A", "C", "A", "B", "A"}, []string{"A", "B", "C", "A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, christofides.Shortcut(tc.circuit))
		})
	}
}

func TestValidateCycle(t *testing.T) {
	vertices := []string{"A", "B", "C"}

	require.NoError(t, christofides.ValidateCycle([]string{"A", "B", "C", "A"}, vertices))

	cases := []struct {
		name  string
		cycle []string
	}{
		{"too short", []string{"A", "B", "A"}},
		{"not closed", []string{"A", "B", "C", "B"}},
		{"repeated vertex", []string{"A", "B", "B", "A"}},
		{"foreign vertex", []string{"A", "B", "Z", "A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := christofides.ValidateCycle(tc.cycle, vertices)
			require.ErrorIs(t, err, christofides.ErrBrokenCycle)
			require.ErrorIs(t, err, christofides.ErrInvariant)
		})
	}
}

func TestCycleWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1.5))
	require.NoError(t, g.AddEdge("B", "C", 2.5))
	require.NoError(t, g.AddEdge("C", "A", 3))

	w, err := christofides.CycleWeight(g, []string{"A", "B", "C", "A"})
	require.NoError(t, err)
	assert.InDelta(t, 7, w, 1e-9)

	_, err = christofides.CycleWeight(g, []string{"A", "C", "B", "Z"})
	require.ErrorIs(t, err, christofides.ErrIncompleteCycle)
	require.ErrorIs(t, err, christofides.ErrPrecondition)
}
