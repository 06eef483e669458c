// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// graphs, an all-pairs memoizing Oracle on top of it, and the
// triangle-inequality diagnostic that the Christofides pipeline uses as its
// metric precondition.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap
// priority queue with a "lazy decrease-key" strategy: shorter rediscoveries
// push duplicate heap entries and stale ones are skipped on pop.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per source.
//   - Space: O(V + E).
//
// Unreachable vertices carry distance math.Inf(1) in the returned map; the
// Oracle converts that into ErrNoPath so callers cannot mistake a missing
// path for a huge-but-finite one.
//
// The triangle-inequality check enumerates ordered triples (u, v, w) of
// distinct vertices in lexicographic order over shortest-path distances and
// reports the first triple with dist(u,w) > dist(u,v) + dist(v,w) + eps.
// Under that check a complete graph is metric, which is what makes the
// Eulerian-shortcut step of Christofides weight-non-increasing.
package dijkstra
