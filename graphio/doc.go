// Package graphio reads and writes weighted undirected graphs and computed
// tours.
//
// Two on-disk formats are supported, selected by file extension:
//
//   - .json: an object with "vertices" and "edges" arrays,
//   - .toml: the same shape as TOML tables.
//
// Both formats round-trip: a graph written by this package decodes to an
// equal graph. Tours are written as JSON only.
package graphio
