// SPDX-License-Identifier: MIT

// Package config loads run settings from YAML and turns them into engine
// options. Command-line flags override values after loading.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/parboruvka/boruvka"
	"github.com/katalvlaran/parboruvka/comm"
	"github.com/katalvlaran/parboruvka/partition"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds everything a run needs besides the graph.
type Config struct {
	Workers        int    `yaml:"workers"`
	Strategy       string `yaml:"strategy"`
	TieBreak       string `yaml:"tie_break"`
	Partition      string `yaml:"partition"`
	VerifyReplicas bool   `yaml:"verify_replicas"`
	Compress       bool   `yaml:"compress"`

	// DatasetDir is searched for input graphs and receives generated ones.
	DatasetDir string `yaml:"dataset_dir"`
	ResultsDB  string `yaml:"results_db"`
	LogResults bool   `yaml:"log_results"`

	// SweepWorkers lists the pool sizes tried by a sweep.
	SweepWorkers []int `yaml:"sweep_workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Workers:      1,
		Strategy:     boruvka.StrategyFlat.String(),
		TieBreak:     boruvka.TieBreakIncumbent.String(),
		Partition:    partition.PolicyRemainderLast.String(),
		DatasetDir:   "datasets",
		ResultsDB:    "logs/results.db",
		LogResults:   true,
		SweepWorkers: []int{1, 2, 4, 8},
	}
}

// Load reads path over Default. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalid)
	}
	if _, err := boruvka.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := boruvka.ParseTieBreak(c.TieBreak); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := partition.ParsePolicy(c.Partition); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, n := range c.SweepWorkers {
		if n <= 0 {
			return fmt.Errorf("sweep_workers contains %d: %w", n, ErrInvalid)
		}
	}

	return nil
}

// EngineOptions converts c into boruvka options. The returned cleanup
// releases the compression codec, if any, and is never nil.
func (c Config) EngineOptions() ([]boruvka.Option, func(), error) {
	noop := func() {}
	if err := c.Validate(); err != nil {
		return nil, noop, err
	}
	strategy, _ := boruvka.ParseStrategy(c.Strategy)
	tb, _ := boruvka.ParseTieBreak(c.TieBreak)
	policy, _ := partition.ParsePolicy(c.Partition)

	opts := []boruvka.Option{
		boruvka.WithWorkers(c.Workers),
		boruvka.WithStrategy(strategy),
		boruvka.WithTieBreak(tb),
		boruvka.WithPartitionPolicy(policy),
	}
	if c.VerifyReplicas {
		opts = append(opts, boruvka.WithReplicaCheck())
	}
	if !c.Compress {
		return opts, noop, nil
	}

	z, err := comm.NewZstdCodec(nil)
	if err != nil {
		return nil, noop, fmt.Errorf("config: %w", err)
	}

	return append(opts, boruvka.WithCodec(z)), z.Close, nil
}
