package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PatrykCzartowski/combinatorial-optimization/core"
	"github.com/PatrykCzartowski/combinatorial-optimization/gen"
	"github.com/PatrykCzartowski/combinatorial-optimization/graphio"
)

// Generator families accepted by the gen command.
const (
	familyExample   = "example"
	familyComplete  = "complete"
	familyEuclidean = "euclidean"
)

// newGenCmd creates the gen command.
func newGenCmd() *cobra.Command {
	var (
		family string
		n      int
		seed   int64
		lo, hi float64
	)

	cmd := &cobra.Command{
		Use:   "gen [output.{json,toml}]",
		Short: "Generate a graph and write it to a file",
		Long: `Generate a graph and write it to the given file, format chosen by
extension.

Families:
  example    the fixed six-vertex metric instance
  complete   K_n with uniform random weights in [--lo, --hi)
  euclidean  complete graph over random planar points (metric)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd.Context(), args[0], family, n, seed, lo, hi)
		},
	}

	cmd.Flags().StringVarP(&family, "family", "f", familyEuclidean, "graph family: example, complete, euclidean")
	cmd.Flags().IntVarP(&n, "vertices", "n", 8, "vertex count (complete, euclidean)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed")
	cmd.Flags().Float64Var(&lo, "lo", 1, "minimum edge weight (complete)")
	cmd.Flags().Float64Var(&hi, "hi", 100, "maximum edge weight (complete)")

	return cmd
}

func runGen(ctx context.Context, path, family string, n int, seed int64, lo, hi float64) error {
	logger := loggerFromContext(ctx)

	var (
		g   *core.Graph
		err error
	)
	switch family {
	case familyExample:
		g = gen.Example()
	case familyComplete:
		g, err = gen.Complete(n, gen.WithSeed(seed), gen.WithWeightFn(gen.UniformWeight(lo, hi)))
	case familyEuclidean:
		g, err = gen.Euclidean(n, gen.WithSeed(seed))
	default:
		return fmt.Errorf("unknown family %q (want example, complete, or euclidean)", family)
	}
	if err != nil {
		return err
	}

	if err := graphio.Export(g, path); err != nil {
		return err
	}
	logger.Info("graph written", "path", path, "family", family,
		"vertices", g.VertexCount(), "edges", g.EdgeCount())

	return nil
}
