package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
)

// ErrUnknownFormat indicates an Import path whose extension is neither
// .json nor .toml.
var ErrUnknownFormat = errors.New("graphio: unknown file format")

// graphDoc is the shared wire shape of both formats.
type graphDoc struct {
	Vertices []vertexDoc `json:"vertices" toml:"vertices"`
	Edges    []edgeDoc   `json:"edges" toml:"edges"`
}

type vertexDoc struct {
	ID string `json:"id" toml:"id"`
}

type edgeDoc struct {
	From   string  `json:"from" toml:"from"`
	To     string  `json:"to" toml:"to"`
	Weight float64 `json:"weight" toml:"weight"`
}

// ReadJSON decodes a JSON graph from r.
//
// The input must be an object with "vertices" and "edges" arrays:
//
//	{
//	  "vertices": [{"id": "a"}, {"id": "b"}],
//	  "edges": [{"from": "a", "to": "b", "weight": 2.5}]
//	}
//
// The "vertices" array may be omitted when every vertex appears in an edge;
// listing a vertex explicitly is how isolated vertices are represented.
//
// ReadJSON returns an error if the JSON is malformed or if an edge violates
// the graph constraints (empty endpoint, self-loop, negative weight, or a
// duplicate pair). Errors wrap the core sentinel with the offending edge
// for context. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*core.Graph, error) {
	var doc graphDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode json: %w", err)
	}

	return buildGraph(doc)
}

// ReadTOML decodes a TOML graph from r; the document shape mirrors the JSON
// format with [[vertices]] and [[edges]] tables.
func ReadTOML(r io.Reader) (*core.Graph, error) {
	var doc graphDoc
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode toml: %w", err)
	}

	return buildGraph(doc)
}

// Import reads the graph file at path, choosing the decoder by extension.
// Unrecognized extensions yield ErrUnknownFormat.
func Import(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	switch ext(path) {
	case ".json":
		return ReadJSON(f)
	case ".toml":
		return ReadTOML(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// ext normalizes a path's extension for format dispatch.
func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// buildGraph validates the decoded document and assembles the graph.
func buildGraph(doc graphDoc) (*core.Graph, error) {
	g := core.NewGraph()
	for _, v := range doc.Vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", v.ID, err)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: edge %s-%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}
