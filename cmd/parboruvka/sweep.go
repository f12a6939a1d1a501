// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parboruvka/core"
	"github.com/katalvlaran/parboruvka/resultlog"
	"github.com/katalvlaran/parboruvka/serial"
)

// ErrOracleMismatch reports a distributed weight differing from Kruskal's.
var ErrOracleMismatch = errors.New("distributed weight differs from the serial oracle")

func newSweepCmd(o *options) *cobra.Command {
	var (
		workers  []int
		strategy string
	)
	cmd := &cobra.Command{
		Use:   "sweep <glob>",
		Short: "Run every matching graph across several worker counts",
		Long: `Run every graph matching a doublestar glob (e.g. "datasets/**/*.txt")
serially and once per worker count, check each distributed weight against the
serial oracle and log every run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.SweepWorkers = workers
			}
			if cmd.Flags().Changed("strategy") {
				cfg.Strategy = strategy
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			paths, err := doublestar.FilepathGlob(args[0])
			if err != nil {
				return fmt.Errorf("glob %q: %w", args[0], err)
			}
			if len(paths) == 0 {
				return fmt.Errorf("glob %q matched no files", args[0])
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			graphs, err := loadAll(ctx, paths)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			var records []resultlog.Record
			for i, path := range paths {
				g := graphs[i]
				oracle, err := serial.Kruskal(g)
				if err != nil {
					return err
				}
				out, err := compute(ctx, cfg, g, true)
				if err != nil {
					return err
				}
				out.record.FileName = filepath.Base(path)
				records = append(records, out.record)
				fmt.Fprintf(w, "%s V=%d E=%d weight=%d serial %s\n",
					out.record.FileName, g.VertexCount(), g.EdgeCount(), oracle.Weight, out.record.Elapsed)

				for _, n := range cfg.SweepWorkers {
					run := cfg
					run.Workers = n
					out, err := compute(ctx, run, g, false)
					if err != nil {
						return fmt.Errorf("%s with %d workers: %w", path, n, err)
					}
					out.record.FileName = filepath.Base(path)
					if out.record.TotalWeight != oracle.Weight {
						return fmt.Errorf("%s with %d workers: %d != %d: %w",
							path, n, out.record.TotalWeight, oracle.Weight, ErrOracleMismatch)
					}
					records = append(records, out.record)
					fmt.Fprintf(w, "  workers=%d %s rounds=%d %s\n", n, out.record.Strategy, out.rounds, out.record.Elapsed)
				}
			}

			if cfg.LogResults {
				return appendRecords(ctx, cfg.ResultsDB, records...)
			}

			return nil
		},
	}
	cmd.Flags().IntSliceVar(&workers, "workers", []int{1, 2, 4, 8}, "Worker counts to try")
	cmd.Flags().StringVar(&strategy, "strategy", "flat", "Combine strategy: flat or tree")

	return cmd
}

// loadAll parses paths concurrently, keeping their order.
func loadAll(ctx context.Context, paths []string) ([]*core.Graph, error) {
	graphs := make([]*core.Graph, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, err := loadGraph(path)
			if err != nil {
				return err
			}
			glog.V(1).Infof("sweep: loaded %s (V=%d E=%d)", path, g.VertexCount(), g.EdgeCount())
			graphs[i] = g
			return nil
		})
	}

	return graphs, eg.Wait()
}
