// SPDX-License-Identifier: MIT
package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parboruvka/boruvka"
	"github.com/katalvlaran/parboruvka/config"
	"github.com/katalvlaran/parboruvka/core"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parboruvka.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "flat", cfg.Strategy)
	assert.Equal(t, []int{1, 2, 4, 8}, cfg.SweepWorkers)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
workers: 6
strategy: tree
tie_break: lowest-id
verify_replicas: true
compress: true
dataset_dir: /data/graphs
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, "tree", cfg.Strategy)
	assert.Equal(t, "lowest-id", cfg.TieBreak)
	assert.True(t, cfg.VerifyReplicas)
	assert.True(t, cfg.Compress)
	assert.Equal(t, "/data/graphs", cfg.DatasetDir)
	assert.Equal(t, "remainder-last", cfg.Partition, "untouched keys keep defaults")
	assert.Equal(t, "logs/results.db", cfg.ResultsDB)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "workers: [1\n"))
	assert.Error(t, err)

	for _, body := range []string{
		"workers: 0\n",
		"strategy: ring\n",
		"tie_break: coin\n",
		"partition: striped\n",
		"sweep_workers: [1, -2]\n",
	} {
		_, err := config.Load(writeFile(t, body))
		assert.ErrorIs(t, err, config.ErrInvalid, body)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 3
	cfg.Strategy = "tree"
	cfg.VerifyReplicas = true
	cfg.Compress = true

	opts, cleanup, err := cfg.EngineOptions()
	require.NoError(t, err)
	defer cleanup()

	g := core.MustGraph(3, []core.Edge{
		{Src: 0, Dest: 1, Weight: 2},
		{Src: 1, Dest: 2, Weight: 2},
		{Src: 0, Dest: 2, Weight: 1},
	})
	res, err := boruvka.Run(context.Background(), g, opts...)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Workers)
	assert.Equal(t, boruvka.StrategyTree, res.Strategy)
	assert.EqualValues(t, 3, res.TotalWeight)

	cfg.Workers = -1
	_, cleanup, err = cfg.EngineOptions()
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.NotNil(t, cleanup)
}
