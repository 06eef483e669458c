package christofides

import (
	"fmt"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
)

// Shortcut collapses an Eulerian circuit into a Hamiltonian cycle by
// keeping only the first occurrence of each vertex and then closing the
// cycle back to the start.
//
// Under the triangle inequality each skip replaces a detour with a direct
// edge of no greater weight, so the cycle never weighs more than the
// circuit; without the metric precondition the cycle is still valid but the
// weight bound is void.
//
// An empty circuit yields nil; a single-vertex circuit yields the
// degenerate one-entry cycle.
//
// Complexity: O(len(circuit)).
func Shortcut(circuit []string) []string {
	if len(circuit) == 0 {
		return nil
	}
	if len(circuit) == 1 {
		return []string{circuit[0]}
	}

	seen := make(map[string]bool, len(circuit))
	cycle := make([]string, 0, len(circuit))
	for _, v := range circuit {
		if !seen[v] {
			seen[v] = true
			cycle = append(cycle, v)
		}
	}

	// Close the cycle explicitly.
	return append(cycle, cycle[0])
}

// ValidateCycle checks that cycle is an explicitly closed Hamiltonian cycle
// over exactly the given vertex set: n+1 entries, first == last, and every
// vertex appearing exactly once among the first n.
// Returns ErrBrokenCycle on any violation.
// Complexity: O(n).
func ValidateCycle(cycle []string, vertices []string) error {
	n := len(vertices)
	if len(cycle) != n+1 {
		return fmt.Errorf("%w: got %d entries, want %d", ErrBrokenCycle, len(cycle), n+1)
	}
	if cycle[0] != cycle[n] {
		return fmt.Errorf("%w: cycle is not closed (%q != %q)", ErrBrokenCycle, cycle[0], cycle[n])
	}
	seen := make(map[string]bool, n)
	for _, v := range cycle[:n] {
		if seen[v] {
			return fmt.Errorf("%w: vertex %q repeated", ErrBrokenCycle, v)
		}
		seen[v] = true
	}
	for _, v := range vertices {
		if !seen[v] {
			return fmt.Errorf("%w: vertex %q missing", ErrBrokenCycle, v)
		}
	}

	return nil
}

// CycleWeight sums the graph weights along the closed cycle, stabilized to
// 1e-9. A consecutive pair without a direct graph edge yields
// ErrIncompleteCycle: shortcutting assumed a completeness the input lacks.
// Complexity: O(n).
func CycleWeight(g *core.Graph, cycle []string) (float64, error) {
	var sum float64
	for i := 0; i+1 < len(cycle); i++ {
		w, err := g.Weight(cycle[i], cycle[i+1])
		if err != nil {
			return 0, fmt.Errorf("%w: %s-%s", ErrIncompleteCycle, cycle[i], cycle[i+1])
		}
		sum += w
	}

	return round1e9(sum), nil
}
