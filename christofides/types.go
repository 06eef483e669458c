// This file declares the pipeline's error taxonomy, Options, Matching and
// Result types.
package christofides

import (
	"errors"
	"fmt"
	"math"

	"github.com/PatrykCzartowski/combinatorial-optimization/dijkstra"
	"github.com/PatrykCzartowski/combinatorial-optimization/mst"
)

// Kind sentinels: every concrete pipeline failure wraps exactly one of
// these, so callers can classify with errors.Is without enumerating causes.
var (
	// ErrPrecondition marks failures of the algorithm's input requirements.
	ErrPrecondition = errors.New("christofides: precondition violated")

	// ErrInvariant marks broken internal guarantees between stages; these
	// signal implementation defects, not malformed input.
	ErrInvariant = errors.New("christofides: internal invariant failure")
)

// Concrete sentinel errors.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to the pipeline.
	ErrNilGraph = errors.New("christofides: graph is nil")

	// ErrNoVertices indicates the graph is empty: there is no tour to build.
	ErrNoVertices = errors.New("christofides: graph has no vertices")

	// ErrDisconnected indicates the graph cannot be spanned or some vertex
	// pair has no path.
	ErrDisconnected = fmt.Errorf("%w: graph is disconnected", ErrPrecondition)

	// ErrNotMetric indicates strict verification found a triangle-inequality
	// violation before the pipeline ran.
	ErrNotMetric = fmt.Errorf("%w: triangle inequality unsatisfied", ErrPrecondition)

	// ErrIncompleteCycle indicates a shortcut cycle edge is absent from the
	// graph, i.e. the input was not complete enough to close the tour.
	ErrIncompleteCycle = fmt.Errorf("%w: cycle edge missing from graph", ErrPrecondition)

	// ErrOddMatchingSet indicates the odd-degree vertex set had odd
	// cardinality, which the handshake parity argument forbids.
	ErrOddMatchingSet = fmt.Errorf("%w: odd-degree vertex set has odd cardinality", ErrInvariant)

	// ErrOddDegree indicates a multigraph vertex ended up with odd degree
	// after assembly.
	ErrOddDegree = fmt.Errorf("%w: multigraph vertex has odd degree", ErrInvariant)

	// ErrNotEulerian indicates circuit extraction met a multigraph whose
	// degree parity or connectivity does not admit an Eulerian circuit.
	ErrNotEulerian = fmt.Errorf("%w: multigraph is not Eulerian", ErrInvariant)

	// ErrBrokenCycle indicates the shortcut cycle does not visit every
	// vertex exactly once.
	ErrBrokenCycle = fmt.Errorf("%w: shortcut cycle does not cover all vertices", ErrInvariant)
)

// roundScale controls final weight stabilization precision (1e-9), so
// reported tour weights do not drift across platforms.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Pair is one matched edge between two odd-degree vertices, U < V
// lexicographically. Weight is the derived subgraph weight: the direct graph
// edge when present, otherwise the shortest-path distance.
type Pair struct {
	U, V   string
	Weight float64
}

// Matching is a set of disjoint Pairs covering the odd-degree vertex set.
type Matching []Pair

// TotalWeight returns the sum of the chosen pair weights.
// Complexity: O(k).
func (m Matching) TotalWeight() float64 {
	var sum float64
	for _, p := range m {
		sum += p.Weight
	}

	return round1e9(sum)
}

// Options configures a BuildTour run.
type Options struct {
	// Root is the vertex the tour starts and ends at. When empty, the
	// lexicographically smallest vertex is used.
	Root string

	// MSTMethod selects the spanning-tree algorithm (mst.MethodPrim or
	// mst.MethodKruskal).
	MSTMethod string

	// VerifyMetric runs the triangle-inequality check as a strict
	// precondition before any pipeline stage.
	VerifyMetric bool

	// Epsilon is the absolute tolerance of the metric check.
	Epsilon float64
}

// Option represents a functional option for configuring BuildTour.
type Option func(*Options)

// WithRoot fixes the start/closure vertex of the cycle.
func WithRoot(id string) Option {
	return func(o *Options) { o.Root = id }
}

// WithMSTMethod selects the spanning-tree algorithm.
func WithMSTMethod(method string) Option {
	return func(o *Options) { o.MSTMethod = method }
}

// WithMetricCheck enables strict triangle-inequality verification; a
// violation aborts the run with ErrNotMetric before computation proceeds.
func WithMetricCheck() Option {
	return func(o *Options) { o.VerifyMetric = true }
}

// WithEpsilon overrides the metric-check tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// DefaultOptions returns Options with Prim's MST, automatic root, no strict
// metric verification, and the standard 1e-9 tolerance.
func DefaultOptions() Options {
	return Options{
		MSTMethod: mst.MethodPrim,
		Epsilon:   dijkstra.DefaultEpsilon,
	}
}

// Result is the pipeline output: the Hamiltonian cycle plus every
// intermediate artifact for diagnostic consumers.
//
// Cycle has n+1 entries for n ≥ 2 vertices, with Cycle[0] == Cycle[n] ==
// the root; a single-vertex graph yields the degenerate one-entry cycle.
type Result struct {
	// Cycle is the Hamiltonian tour, explicitly closed.
	Cycle []string

	// Weight is the total cycle weight, rounded to 1e-9.
	Weight float64

	// Tree is the minimum spanning tree of stage 1.
	Tree *mst.SpanningTree

	// Matching pairs the tree's odd-degree vertices (stage 2).
	Matching Matching

	// Multigraph is the Eulerian multigraph of stage 3.
	Multigraph *Multigraph

	// Circuit is the Eulerian circuit of stage 4, before shortcutting.
	Circuit []string
}
