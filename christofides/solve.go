package christofides

import (
	"errors"
	"fmt"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
	"github.com/PatrykCzartowski/combinatorial-optimization/dijkstra"
	"github.com/PatrykCzartowski/combinatorial-optimization/mst"
)

// BuildTour runs the full Christofides pipeline on g and returns the
// Hamiltonian cycle with its weight and every intermediate artifact.
//
// Degenerate inputs, handled before the pipeline proper:
//   - zero vertices  -> ErrNoVertices ("no tour" is explicit, never implied),
//   - one vertex     -> the degenerate single-vertex cycle of weight 0.
//
// Preconditions, checked before any stage runs:
//   - the graph must be connected (ErrDisconnected),
//   - with WithMetricCheck, shortest-path distances must satisfy the
//     triangle inequality within Epsilon (ErrNotMetric). Without the strict
//     check the pipeline still runs on non-metric input and produces a
//     valid cycle, but the 1.5× guarantee is void.
//
// Every failure aborts immediately; no partial cycle is ever returned.
//
// Complexity: see the package documentation.
func BuildTour(g *core.Graph, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Degenerate inputs.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return Result{}, ErrNoVertices
	}
	root := cfg.Root
	if root == "" {
		root = vertices[0]
	}
	if !g.HasVertex(root) {
		return Result{}, fmt.Errorf("christofides: root %q: %w", root, core.ErrVertexNotFound)
	}
	if len(vertices) == 1 {
		return Result{Cycle: []string{vertices[0]}, Weight: 0}, nil
	}

	// 2) Connectivity precondition; the oracle is shared by every later
	//    stage, so its cache is not wasted work.
	oracle, err := dijkstra.NewOracle(g)
	if err != nil {
		return Result{}, err
	}
	connected, err := oracle.Connected()
	if err != nil {
		return Result{}, err
	}
	if !connected {
		return Result{}, ErrDisconnected
	}

	// 3) Optional strict metric precondition.
	if cfg.VerifyMetric {
		ok, violation, verr := dijkstra.CheckTriangleInequality(oracle, cfg.Epsilon)
		if verr != nil {
			return Result{}, verr
		}
		if !ok {
			return Result{}, fmt.Errorf("%w: dist(%s,%s)=%g > dist(%s,%s)+dist(%s,%s)=%g",
				ErrNotMetric,
				violation.U, violation.W, violation.Direct,
				violation.U, violation.V, violation.V, violation.W, violation.Detour)
		}
	}

	// 4) Stage 1: minimum spanning tree.
	tree, err := mst.Compute(g, mst.WithMethod(cfg.MSTMethod), mst.WithRoot(root))
	if err != nil {
		if errors.Is(err, mst.ErrDisconnected) {
			return Result{}, ErrDisconnected
		}

		return Result{}, err
	}

	// 5) Stage 2: greedy matching of the odd-degree vertices.
	matching, err := Match(g, oracle, tree.OddVertices())
	if err != nil {
		return Result{}, err
	}

	// 6) Stage 3: Eulerian multigraph assembly (even-degree postcondition
	//    asserted inside).
	multi, err := Assemble(g, oracle, tree, matching)
	if err != nil {
		return Result{}, err
	}

	// 7) Stage 4: Eulerian circuit.
	circuit, err := EulerianCircuit(multi, root)
	if err != nil {
		return Result{}, err
	}

	// 8) Stage 5: Hamiltonian shortcut, then validate and weigh the cycle.
	cycle := Shortcut(circuit)
	if err = ValidateCycle(cycle, vertices); err != nil {
		return Result{}, err
	}
	weight, err := CycleWeight(g, cycle)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Cycle:      cycle,
		Weight:     weight,
		Tree:       tree,
		Matching:   matching,
		Multigraph: multi,
		Circuit:    circuit,
	}, nil
}

// CheckTriangleInequality is the independent metric diagnostic: callable
// before, or instead of, BuildTour. Disconnected graphs surface as
// ErrDisconnected, since no metric statement can be made about them.
// Complexity: O(V³) after the all-pairs cache fills.
func CheckTriangleInequality(g *core.Graph, eps float64) (bool, *dijkstra.TriangleViolation, error) {
	if g == nil {
		return false, nil, ErrNilGraph
	}
	oracle, err := dijkstra.NewOracle(g)
	if err != nil {
		return false, nil, err
	}
	ok, violation, err := dijkstra.CheckTriangleInequality(oracle, eps)
	if err != nil {
		if errors.Is(err, dijkstra.ErrNoPath) {
			return false, nil, ErrDisconnected
		}

		return false, nil, err
	}

	return ok, violation, nil
}
