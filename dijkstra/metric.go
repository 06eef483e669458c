package dijkstra

// TriangleViolation describes the first ordered triple (U, V, W) found where
// the direct shortest-path distance U→W exceeds the detour through V.
type TriangleViolation struct {
	// U, V, W are the triple's vertices: U→W direct versus U→V→W.
	U, V, W string

	// Direct is the shortest-path distance U→W.
	Direct float64

	// Detour is dist(U,V) + dist(V,W).
	Detour float64
}

// CheckTriangleInequality verifies that shortest-path distances in the
// Oracle's graph satisfy the triangle inequality within an absolute
// tolerance eps (pass DefaultEpsilon unless you have a reason not to).
//
// Every ordered triple (u, v, w) of distinct vertices is checked in
// lexicographic order, and the first violating triple is returned; the scan
// stops there, so repeated runs on the same graph always report the same
// violation. A connected graph is required: an unreachable pair surfaces as
// ErrNoPath rather than being skipped.
//
// Returns (true, nil, nil) when the inequality holds for all triples.
//
// Complexity: O(V · (V+E) log V) to fill the oracle cache, then O(V³) for
// the triple scan.
func CheckTriangleInequality(o *Oracle, eps float64) (bool, *TriangleViolation, error) {
	vertices := o.g.Vertices()

	// Enumerate ordered triples of distinct vertices in sorted-ID order.
	for _, u := range vertices {
		for _, v := range vertices {
			if v == u {
				continue
			}
			for _, w := range vertices {
				if w == u || w == v {
					continue
				}
				direct, err := o.Distance(u, w)
				if err != nil {
					return false, nil, err
				}
				duv, err := o.Distance(u, v)
				if err != nil {
					return false, nil, err
				}
				dvw, err := o.Distance(v, w)
				if err != nil {
					return false, nil, err
				}
				if direct > duv+dvw+eps {
					return false, &TriangleViolation{
						U: u, V: v, W: w,
						Direct: direct,
						Detour: duv + dvw,
					}, nil
				}
			}
		}
	}

	return true, nil, nil
}
