// Package gen constructs weighted undirected graphs for experiments,
// examples and tests.
//
// Three families are provided:
//
//   - Example: the fixed six-vertex complete metric instance used across
//     the documentation and test suites.
//   - Complete: K_n with weights drawn from a configurable WeightFn.
//     Arbitrary weight functions need not produce metric instances.
//   - Euclidean: a complete graph over random planar points,
//     weighted by planar distance. Euclidean instances always satisfy the
//     triangle inequality, which makes them the natural input family for
//     tour construction.
//
// All constructors are deterministic for a fixed seed: vertex IDs are
// zero-padded indices and edges are emitted in lexicographic pair order.
package gen
