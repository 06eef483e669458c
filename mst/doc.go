// Package mst computes minimum spanning trees over the weighted undirected
// core.Graph, via either Prim's or Kruskal's algorithm.
//
// Both algorithms return the same total weight (matroid-greedy optimality);
// the edge sets may differ only among equal-weight ties, and both
// implementations break ties deterministically, so repeated runs always
// produce identical trees.
//
// The result is a SpanningTree artifact: the chosen edges, their total
// weight, and per-vertex degrees. The Christofides pipeline consumes the
// degrees to find the odd-degree vertex set, whose even cardinality is the
// parity invariant the rest of the construction rests on.
//
// Complexity:
//
//	Prim:    O(E log V) with an edge min-heap.
//	Kruskal: O(E log E + α(V)·E) with union-find (path compression + rank).
//
// Errors:
//
//	ErrNilGraph      - nil graph.
//	ErrDisconnected  - no spanning tree covers all vertices.
//	ErrEmptyRoot     - Prim invoked without a root vertex.
//	ErrUnknownMethod - Compute dispatch with an unrecognized method name.
package mst
