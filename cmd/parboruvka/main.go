// SPDX-License-Identifier: MIT

// Package main provides the parboruvka CLI: compute minimum spanning trees
// serially or on a pool of workers, generate random graphs, sweep datasets
// and inspect the results log.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parboruvka/config"
)

// Version is the current CLI version.
var Version = "0.3.0"

// options collects the flags shared by every command.
type options struct {
	configPath string
	resultsDB  string
	datasetDir string
	noLog      bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "parboruvka",
		Short:         "parboruvka - distributed Borůvka minimum spanning trees",
		Long:          `parboruvka computes the minimum spanning tree (or forest) of a weighted undirected graph with Borůvka's algorithm, serially or split across cooperating workers.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&o.resultsDB, "results-db", "", "SQLite results log (default from config)")
	pf.StringVar(&o.datasetDir, "dataset-dir", "", "Directory searched for graphs (default from config)")
	pf.BoolVar(&o.noLog, "no-log", false, "Do not append to the results log")
	// glog flags (-v, -logtostderr, ...) on every command
	pf.AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		newRunCmd(o),
		newGenerateCmd(o),
		newSweepCmd(o),
		newHistoryCmd(o),
	)

	return root
}

// load resolves the configuration file and the shared flag overrides.
func (o *options) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("results-db") {
		cfg.ResultsDB = o.resultsDB
	}
	if cmd.Flags().Changed("dataset-dir") {
		cfg.DatasetDir = o.datasetDir
	}
	if o.noLog {
		cfg.LogResults = false
	}

	return cfg, nil
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		glog.Errorf("parboruvka: %v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
