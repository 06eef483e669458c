package graphio_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrykCzartowski/combinatorial-optimization/christofides"
	"github.com/PatrykCzartowski/combinatorial-optimization/core"
	"github.com/PatrykCzartowski/combinatorial-optimization/gen"
	"github.com/PatrykCzartowski/combinatorial-optimization/graphio"
)

func TestReadJSON(t *testing.T) {
	in := `{
	  "vertices": [{"id": "a"}, {"id": "b"}, {"id": "c"}, {"id": "lonely"}],
	  "edges": [
	    {"from": "a", "to": "b", "weight": 1.5},
	    {"from": "b", "to": "c", "weight": 2},
	    {"from": "a", "to": "c", "weight": 3}
	  ]
	}`

	g, err := graphio.ReadJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "lonely"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())

	w, err := g.Weight("a", "b")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, w, 0)
}

func TestReadJSON_ImplicitVertices(t *testing.T) {
	in := `{"edges": [{"from": "x", "to": "y", "weight": 4}]}`

	g, err := graphio.ReadJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, g.Vertices())
}

func TestReadJSON_InvalidEdges(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"malformed", `{"edges": [`, nil},
		{"self loop", `{"edges": [{"from": "a", "to": "a", "weight": 1}]}`, core.ErrLoopNotAllowed},
		{"negative weight", `{"edges": [{"from": "a", "to": "b", "weight": -1}]}`, core.ErrNegativeWeight},
		{"empty endpoint", `{"edges": [{"from": "", "to": "b", "weight": 1}]}`, core.ErrEmptyVertexID},
		{"duplicate", `{"edges": [{"from": "a", "to": "b", "weight": 1}, {"from": "b", "to": "a", "weight": 2}]}`, core.ErrDuplicateEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.ReadJSON(strings.NewReader(tc.in))
			require.Error(t, err)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestReadTOML(t *testing.T) {
	in := `
[[vertices]]
id = "a"

[[edges]]
from = "a"
to = "b"
weight = 2.5
`

	g, err := graphio.ReadTOML(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, g.Vertices())

	w, err := g.Weight("a", "b")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, w, 0)
}

func TestRoundTripJSON(t *testing.T) {
	g := gen.Example()

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteJSON(g, &buf))
	back, err := graphio.ReadJSON(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestRoundTripTOML(t *testing.T) {
	g := gen.Example()

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteTOML(g, &buf))
	back, err := graphio.ReadTOML(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestImportExportFiles(t *testing.T) {
	g := gen.Example()
	dir := t.TempDir()

	for _, name := range []string{"graph.json", "graph.toml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, graphio.Export(g, path))
		back, err := graphio.Import(path)
		require.NoError(t, err, name)
		assert.Equal(t, g.Edges(), back.Edges(), name)
	}
}

func TestImport_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.csv")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	_, err := graphio.Import(path)
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)
	assert.ErrorIs(t, graphio.Export(gen.Example(), path), graphio.ErrUnknownFormat)
}

func TestImport_MissingFile(t *testing.T) {
	_, err := graphio.Import(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestWriteTour(t *testing.T) {
	res, err := christofides.BuildTour(gen.Example())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteTour(res, &buf))

	var doc struct {
		Cycle          []string `json:"cycle"`
		Weight         float64  `json:"weight"`
		TreeWeight     float64  `json:"tree_weight"`
		MatchingWeight float64  `json:"matching_weight"`
		CircuitLength  int      `json:"circuit_length"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, res.Cycle, doc.Cycle)
	assert.InDelta(t, 24, doc.Weight, 1e-9)
	assert.InDelta(t, 17, doc.TreeWeight, 1e-9)
	assert.InDelta(t, 9, doc.MatchingWeight, 1e-9)
	assert.Equal(t, 8, doc.CircuitLength)
}
