// Package christofides builds an approximate metric-TSP tour through the
// Christofides construction:
//
//  1. Minimum Spanning Tree over the full graph (mst package).
//  2. Greedy nearest-available matching of the MST's odd-degree vertices,
//     over a derived complete subgraph whose weights fall back to
//     shortest-path distances (dijkstra package).
//  3. Eulerian multigraph assembly: tree edges plus matching edges, with
//     absent matching edges expanded into their shortest paths.
//  4. Eulerian circuit extraction (iterative Hierholzer).
//  5. Hamiltonian shortcutting: skip revisited vertices, close the cycle.
//
// Mathematical guarantee:
//
//	For a complete graph with metric weights and a true minimum-weight
//	perfect matching in step 2, the tour length is at most 1.5 · OPT.
//	This implementation deliberately uses a greedy matching heuristic
//	rather than an exact blossom matching: the tour
//	stays valid (the multigraph is still Eulerian and the shortcut still
//	never lengthens it), but the formal 1.5 factor is not guaranteed under
//	the heuristic. See Match for details.
//
// Failure taxonomy, two distinct kinds discriminable with errors.Is:
//
//	ErrPrecondition - the input violates what the algorithm needs: the
//	  graph is disconnected, or strict metric verification was requested
//	  and the triangle inequality fails. The caller may retry without the
//	  strict check, explicitly accepting that the approximation bound no
//	  longer holds.
//	ErrInvariant - an upstream stage broke an internal guarantee (odd
//	  odd-set cardinality, odd multigraph degree, non-Eulerian multigraph,
//	  incomplete shortcut cycle). These indicate implementation defects,
//	  never bad input, and are surfaced rather than worked around.
//
// All failures abort the pipeline immediately; no partial cycle is returned.
//
// BuildTour is the single externally callable operation; the Result also
// carries every intermediate artifact (tree, matching, multigraph, circuit)
// for diagnostic reporting by presentation layers.
//
// Complexity: O(V·(V+E) log V) dominated by the all-pairs oracle on sparse
// inputs; O(V²) MST + O(k²) matching + O(E) Hierholzer + O(V) shortcut on
// complete metric instances.
package christofides
