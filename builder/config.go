// SPDX-License-Identifier: MIT
// Package: parboruvka/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil      (no randomness unless seeded)
//   • weightFn  = nil      (see weight below)
//   • maxWeight = 1000     (upper bound of the default random weights)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/parboruvka/core"
)

// Deterministic defaults.
const (
	defaultMaxWeight   = int64(1000) // random weights are drawn from [1, 1000]
	defaultConstWeight = int64(1)    // weight when nothing else is configured
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Explicit weight generator; nil selects the default policy.
	weightFn WeightFn
	// Upper bound for default random weights.
	maxWeight int64
}

// newBuilderConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{maxWeight: defaultMaxWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one edge weight:
//   - weightFn(rng) when a WeightFn is configured;
//   - uniform in [1, maxWeight] when an RNG is configured;
//   - defaultConstWeight otherwise.
func (c builderConfig) weight() int64 {
	switch {
	case c.weightFn != nil:
		return c.weightFn(c.rng)
	case c.rng != nil:
		return 1 + c.rng.Int63n(c.maxWeight)
	default:
		return defaultConstWeight
	}
}

// draft is the mutable graph under construction.
type draft struct {
	vertices int
	edges    []core.Edge
}

// grow reserves n fresh vertices and returns the id of the first one.
func (d *draft) grow(n int) int {
	base := d.vertices
	d.vertices += n

	return base
}

// add appends the edge u-v with a weight drawn from cfg.
func (d *draft) add(u, v int, cfg builderConfig) {
	d.edges = append(d.edges, core.Edge{Src: u, Dest: v, Weight: cfg.weight()})
}
