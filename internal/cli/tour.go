package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/PatrykCzartowski/combinatorial-optimization/christofides"
	"github.com/PatrykCzartowski/combinatorial-optimization/graphio"
	"github.com/PatrykCzartowski/combinatorial-optimization/mst"
)

// newTourCmd creates the tour command.
func newTourCmd() *cobra.Command {
	var (
		root    string
		method  string
		strict  bool
		epsilon float64
		output  string
	)

	cmd := &cobra.Command{
		Use:   "tour [graph.{json,toml}]",
		Short: "Compute an approximate travelling-salesman tour",
		Long: `Compute an approximate travelling-salesman tour of the given graph file.

The graph must be connected; for the approximation guarantee it should also
be metric (use 'check' or --strict). The tour, its weight, and summary
figures of the intermediate artifacts are written as JSON to stdout or to
the --output file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(cmd.Context(), args[0], tourParams{
				root:    root,
				method:  method,
				strict:  strict,
				epsilon: epsilon,
				output:  output,
			})
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", "start vertex (default: smallest ID)")
	cmd.Flags().StringVarP(&method, "mst", "m", mst.MethodPrim, "spanning-tree algorithm: prim, kruskal")
	cmd.Flags().BoolVar(&strict, "strict", false, "verify the triangle inequality before computing")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 1e-9, "metric-check tolerance")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

type tourParams struct {
	root    string
	method  string
	strict  bool
	epsilon float64
	output  string
}

func runTour(ctx context.Context, path string, p tourParams) error {
	logger := loggerFromContext(ctx)

	g, err := graphio.Import(path)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "path", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	opts := []christofides.Option{
		christofides.WithMSTMethod(p.method),
		christofides.WithEpsilon(p.epsilon),
	}
	if p.root != "" {
		opts = append(opts, christofides.WithRoot(p.root))
	}
	if p.strict {
		opts = append(opts, christofides.WithMetricCheck())
	}

	start := time.Now()
	res, err := christofides.BuildTour(g, opts...)
	if err != nil {
		return err
	}
	treeWeight := 0.0
	if res.Tree != nil {
		treeWeight = res.Tree.Weight
	}
	logger.Info("tour computed",
		"weight", res.Weight,
		"tree", treeWeight,
		"matching", res.Matching.TotalWeight(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	logger.Debug("cycle", "order", strings.Join(res.Cycle, " -> "))

	out := os.Stdout
	if p.output != "" {
		f, ferr := os.Create(p.output)
		if ferr != nil {
			return fmt.Errorf("create %s: %w", p.output, ferr)
		}
		defer f.Close()
		out = f
	}

	return graphio.WriteTour(res, out)
}
