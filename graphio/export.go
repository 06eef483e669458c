package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/PatrykCzartowski/combinatorial-optimization/christofides"
	"github.com/PatrykCzartowski/combinatorial-optimization/core"
)

// tourDoc is the wire shape of a computed tour.
type tourDoc struct {
	Cycle          []string `json:"cycle"`
	Weight         float64  `json:"weight"`
	TreeWeight     float64  `json:"tree_weight"`
	MatchingWeight float64  `json:"matching_weight"`
	CircuitLength  int      `json:"circuit_length"`
}

// toDoc flattens a graph into the shared wire shape: all vertices listed
// explicitly, edges in canonical sorted order.
func toDoc(g *core.Graph) graphDoc {
	vertices := g.Vertices()
	edges := g.Edges()
	doc := graphDoc{
		Vertices: make([]vertexDoc, len(vertices)),
		Edges:    make([]edgeDoc, len(edges)),
	}
	for i, id := range vertices {
		doc.Vertices[i] = vertexDoc{ID: id}
	}
	for i, e := range edges {
		doc.Edges[i] = edgeDoc{From: e.From, To: e.To, Weight: e.Weight}
	}

	return doc
}

// WriteJSON encodes g as indented JSON and writes it to w. The output
// re-imports with ReadJSON for round-trip processing.
func WriteJSON(g *core.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDoc(g)); err != nil {
		return fmt.Errorf("graphio: encode json: %w", err)
	}

	return nil
}

// WriteTOML encodes g as TOML and writes it to w.
func WriteTOML(g *core.Graph, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(toDoc(g)); err != nil {
		return fmt.Errorf("graphio: encode toml: %w", err)
	}

	return nil
}

// Export writes the graph to a file at path, choosing the encoder by
// extension the same way Import does.
func Export(g *core.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	defer f.Close()

	switch ext(path) {
	case ".json":
		return WriteJSON(g, f)
	case ".toml":
		return WriteTOML(g, f)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// WriteTour encodes a tour result as indented JSON: the cycle, its weight,
// and summary figures of the intermediate artifacts.
func WriteTour(res christofides.Result, w io.Writer) error {
	doc := tourDoc{
		Cycle:         res.Cycle,
		Weight:        res.Weight,
		CircuitLength: len(res.Circuit),
	}
	if res.Tree != nil {
		doc.TreeWeight = res.Tree.Weight
	}
	doc.MatchingWeight = res.Matching.TotalWeight()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode tour: %w", err)
	}

	return nil
}
