// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parboruvka/boruvka"
	"github.com/katalvlaran/parboruvka/config"
	"github.com/katalvlaran/parboruvka/core"
	"github.com/katalvlaran/parboruvka/graphio"
	"github.com/katalvlaran/parboruvka/resultlog"
	"github.com/katalvlaran/parboruvka/serial"
)

type runFlags struct {
	workers   int
	strategy  string
	tieBreak  string
	partition string
	serial    bool
	verify    bool
	compress  bool
}

func newRunCmd(o *options) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run <graph_file>",
		Short: "Compute the minimum spanning tree of a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runOne(ctx, cmd.OutOrStdout(), cfg, args[0], f.serial)
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.workers, "workers", "n", 1, "Number of workers")
	fl.StringVar(&f.strategy, "strategy", "flat", "Combine strategy: flat or tree")
	fl.StringVar(&f.tieBreak, "tie-break", "incumbent", "Equal-weight rule: incumbent or lowest-id")
	fl.StringVar(&f.partition, "partition", "remainder-last", "Edge partitioning: remainder-last or balanced")
	fl.BoolVar(&f.serial, "serial", false, "Run the serial Borůvka oracle instead")
	fl.BoolVar(&f.verify, "verify", false, "Verify replica digests after every round")
	fl.BoolVar(&f.compress, "compress", false, "Compress messages with zstd")

	return cmd
}

// apply copies explicitly set flags over cfg.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fl.Changed("tie-break") {
		cfg.TieBreak = f.tieBreak
	}
	if fl.Changed("partition") {
		cfg.Partition = f.partition
	}
	if fl.Changed("verify") {
		cfg.VerifyReplicas = f.verify
	}
	if fl.Changed("compress") {
		cfg.Compress = f.compress
	}
}

// loadGraph parses a graph file; .xml and .graphml go through the XML importer.
func loadGraph(path string) (*core.Graph, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".graphml":
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		g, err := graphio.ParseGraphML(fh)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return g, nil
	default:
		return graphio.ParseFile(path)
	}
}

// outcome is what gets printed and logged for one run.
type outcome struct {
	record     resultlog.Record
	rounds     int
	reason     string
	components int
	messages   int64
	bytes      int64
}

func runOne(ctx context.Context, w io.Writer, cfg config.Config, name string, useSerial bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	path := graphio.Resolve(cfg.DatasetDir, name)
	g, err := loadGraph(path)
	if err != nil {
		return err
	}

	out, err := compute(ctx, cfg, g, useSerial)
	if err != nil {
		return err
	}
	out.record.FileName = filepath.Base(path)
	printOutcome(w, out)

	if cfg.LogResults {
		return appendRecords(ctx, cfg.ResultsDB, out.record)
	}

	return nil
}

// compute runs one variant on g and times it.
func compute(ctx context.Context, cfg config.Config, g *core.Graph, useSerial bool) (outcome, error) {
	if useSerial {
		var sopts []serial.Option
		if cfg.TieBreak == boruvka.TieBreakLowestID.String() {
			sopts = append(sopts, serial.WithLowestID())
		}
		start := time.Now()
		f, err := serial.Boruvka(g, sopts...)
		if err != nil {
			return outcome{}, err
		}
		return outcome{
			record: resultlog.Record{
				Variant:     resultlog.VariantSerial,
				Workers:     1,
				Strategy:    "serial",
				Elapsed:     time.Since(start),
				TotalWeight: f.Weight,
				Edges:       len(f.Edges),
				Spanning:    f.Spanning(),
			},
			rounds:     f.Rounds,
			reason:     "done",
			components: f.Components,
		}, nil
	}

	opts, cleanup, err := cfg.EngineOptions()
	if err != nil {
		return outcome{}, err
	}
	defer cleanup()

	start := time.Now()
	res, err := boruvka.Run(ctx, g, opts...)
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		record: resultlog.Record{
			Variant:     resultlog.VariantDistributed,
			Workers:     res.Workers,
			Strategy:    res.Strategy.String(),
			Elapsed:     time.Since(start),
			TotalWeight: res.TotalWeight,
			Edges:       res.Accepted,
			Spanning:    res.Spanning,
		},
		rounds:     res.Rounds,
		reason:     res.Reason.String(),
		components: res.Components,
		messages:   res.Messages,
		bytes:      res.Bytes,
	}, nil
}

func printOutcome(w io.Writer, out outcome) {
	r := out.record
	fmt.Fprintf(w, "file:      %s\n", r.FileName)
	fmt.Fprintf(w, "variant:   %s (%d workers, %s)\n", r.Variant, r.Workers, r.Strategy)
	fmt.Fprintf(w, "weight:    %s\n", humanize.Comma(r.TotalWeight))
	fmt.Fprintf(w, "edges:     %s\n", humanize.Comma(int64(r.Edges)))
	fmt.Fprintf(w, "rounds:    %d (%s)\n", out.rounds, out.reason)
	if !r.Spanning {
		fmt.Fprintf(w, "result:    spanning forest with %d components\n", out.components)
	}
	if out.messages > 0 {
		fmt.Fprintf(w, "messages:  %s (%s)\n", humanize.Comma(out.messages), humanize.Bytes(uint64(out.bytes)))
	}
	fmt.Fprintf(w, "elapsed:   %s\n", r.Elapsed.Round(time.Microsecond))
}

func appendRecords(ctx context.Context, dbPath string, records ...resultlog.Record) error {
	l, err := resultlog.Open(dbPath)
	if err != nil {
		return err
	}
	defer l.Close()
	for _, r := range records {
		if _, err := l.Append(ctx, r); err != nil {
			return err
		}
	}

	return nil
}
