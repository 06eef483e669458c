package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PatrykCzartowski/combinatorial-optimization/dijkstra"
	"github.com/PatrykCzartowski/combinatorial-optimization/graphio"
	"github.com/PatrykCzartowski/combinatorial-optimization/mst"
)

// newInfoCmd creates the info command.
func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [graph.{json,toml}]",
		Short: "Print structural facts about a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), args[0])
		},
	}

	return cmd
}

func runInfo(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	g, err := graphio.Import(path)
	if err != nil {
		return err
	}

	oracle, err := dijkstra.NewOracle(g)
	if err != nil {
		return err
	}
	connected, err := oracle.Connected()
	if err != nil {
		return err
	}

	fmt.Printf("vertices:   %d\n", g.VertexCount())
	fmt.Printf("edges:      %d\n", g.EdgeCount())
	fmt.Printf("weight:     %g\n", g.TotalWeight())
	fmt.Printf("complete:   %t\n", g.IsComplete())
	fmt.Printf("connected:  %t\n", connected)

	if !connected {
		logger.Warn("graph is disconnected; no tour exists")

		return nil
	}

	tree, err := mst.Compute(g)
	if err != nil {
		return err
	}
	fmt.Printf("mst weight: %g\n", tree.Weight)
	fmt.Printf("odd degree: %d\n", len(tree.OddVertices()))

	return nil
}
