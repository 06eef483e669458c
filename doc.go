// Package combinatorialoptimization approximates the metric travelling
// salesman problem with the Christofides pipeline.
//
// The module is organized as a small set of focused packages:
//
//   - core:         weighted undirected graphs (thread-safe, deterministic
//     enumeration)
//   - dijkstra:     single-source shortest paths and a memoized all-pairs
//     oracle, plus the triangle-inequality diagnostic
//   - mst:          Prim's and Kruskal's minimum spanning trees
//   - christofides: the tour pipeline itself (MST, odd-vertex matching,
//     Eulerian multigraph, Hierholzer circuit, shortcutting)
//   - gen:          graph generators for experiments and tests
//   - graphio:      JSON and TOML graph files, tour export
//
// The command line entry point lives in cmd/christofides.
//
// Start with christofides.BuildTour: it accepts a connected *core.Graph
// and returns the tour with every intermediate artifact. On inputs whose
// weights satisfy the triangle inequality the tour weighs at most a
// constant factor more than the optimum.
package combinatorialoptimization
