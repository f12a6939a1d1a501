// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/parboruvka/builder"
	"github.com/katalvlaran/parboruvka/graphio"
)

func newGenerateCmd(o *options) *cobra.Command {
	var (
		seed      int64
		maxWeight int64
	)
	cmd := &cobra.Command{
		Use:   "generate <V> <E> [output]",
		Short: "Generate a random connected graph",
		Long: `Generate a random connected graph with V vertices and E >= V-1 edges.
A bare output name is written under <dataset_dir>/generated; without an output
the graph is printed to stdout.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("vertices %q: %w", args[0], err)
			}
			e, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("edges %q: %w", args[1], err)
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			g, err := builder.Build(builder.RandomConnected(v, e),
				builder.WithSeed(seed), builder.WithMaxWeight(maxWeight))
			if err != nil {
				return err
			}
			if len(args) == 2 {
				return graphio.Write(cmd.OutOrStdout(), g)
			}

			path := graphio.OutputPath(cfg.DatasetDir, args[2])
			if err := graphio.WriteFile(path, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (V=%d E=%d seed=%d)\n", path, v, e, seed)

			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default: current time)")
	cmd.Flags().Int64Var(&maxWeight, "max-weight", 1000, "Weights are drawn from [1, max-weight]")

	return cmd
}
