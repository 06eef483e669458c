package christofides

import "fmt"

// EulerianCircuit returns a closed walk through m that starts and ends at
// start and uses every edge occurrence exactly once (Hierholzer's
// algorithm).
//
// The implementation is iterative, with an explicit stack of the partially
// walked tour and a used marker per edge occurrence, so deep circuits never
// risk recursion limits. A per-vertex cursor skips consumed occurrences, so
// the whole extraction runs in O(E).
//
// Failure conditions, all ErrNotEulerian (internal invariant failures,
// reported to the caller rather than worked around):
//   - some vertex has odd degree,
//   - start carries no edges while the multigraph has edges,
//   - the edge-bearing vertices are not connected (detected by unconsumed
//     occurrences after the walk).
//
// A multigraph with zero edges yields the single-vertex walk [start].
//
// Complexity: O(V + E) time, O(V + E) space.
func EulerianCircuit(m *Multigraph, start string) ([]string, error) {
	// 1) Degree parity must hold for every vertex.
	for _, v := range m.Vertices() {
		if m.Degree(v)%2 == 1 {
			return nil, fmt.Errorf("%w: vertex %q has odd degree %d", ErrNotEulerian, v, m.Degree(v))
		}
	}
	if m.EdgeCount() == 0 {
		return []string{start}, nil
	}
	if m.Degree(start) == 0 {
		return nil, fmt.Errorf("%w: start vertex %q has no incident edges", ErrNotEulerian, start)
	}

	// 2) Walk: the stack holds the partially built tour; whenever the top
	//    vertex has an unused incident occurrence we follow it, otherwise
	//    the vertex is finished and moves to the circuit.
	used := make([]bool, len(m.edges))
	cursor := make(map[string]int, len(m.adj))
	circuit := make([]string, 0, m.EdgeCount()+1)
	stack := []string{start}

	for len(stack) > 0 {
		u := stack[len(stack)-1]

		// Advance this vertex's cursor past consumed occurrences.
		incident := m.adj[u]
		for cursor[u] < len(incident) && used[incident[cursor[u]]] {
			cursor[u]++
		}

		if cursor[u] == len(incident) {
			// No unused edges remain at u: backtrack.
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]

			continue
		}

		// Consume one occurrence and descend into its far endpoint.
		idx := incident[cursor[u]]
		used[idx] = true
		stack = append(stack, m.edges[idx].other(u))
	}

	// 3) A connected Eulerian multigraph is consumed entirely; leftovers
	//    mean the edge-bearing vertices were disconnected.
	if len(circuit) != m.EdgeCount()+1 {
		return nil, fmt.Errorf("%w: %d of %d edge occurrences unreachable from %q",
			ErrNotEulerian, m.EdgeCount()+1-len(circuit), m.EdgeCount(), start)
	}

	return circuit, nil
}
