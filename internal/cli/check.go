package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PatrykCzartowski/combinatorial-optimization/christofides"
	"github.com/PatrykCzartowski/combinatorial-optimization/graphio"
)

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	var epsilon float64

	cmd := &cobra.Command{
		Use:   "check [graph.{json,toml}]",
		Short: "Verify the triangle inequality over shortest-path distances",
		Long: `Verify that the graph's shortest-path distances satisfy the triangle
inequality within the given tolerance. The command exits non-zero when a
violation is found or the graph is disconnected, so it composes in shell
pipelines before 'tour'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args[0], epsilon)
		},
	}

	cmd.Flags().Float64Var(&epsilon, "epsilon", 1e-9, "absolute tolerance")

	return cmd
}

func runCheck(ctx context.Context, path string, epsilon float64) error {
	logger := loggerFromContext(ctx)

	g, err := graphio.Import(path)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "path", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	ok, violation, err := christofides.CheckTriangleInequality(g, epsilon)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("triangle inequality violated: d(%s,%s)=%g exceeds d(%s,%s)+d(%s,%s)=%g",
			violation.U, violation.W, violation.Direct,
			violation.U, violation.V, violation.V, violation.W, violation.Detour)
	}
	logger.Info("metric instance", "vertices", g.VertexCount(), "epsilon", epsilon)

	return nil
}
