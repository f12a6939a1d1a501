// SPDX-License-Identifier: MIT
// Package: parboruvka/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstWeight gives every edge weight w.
func WithConstWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithMaxWeight sets the upper bound of the default random weights [1, m].
// Panics if m < 1.
func WithMaxWeight(m int64) BuilderOption {
	if m < 1 {
		panic("builder: WithMaxWeight(m<1)")
	}
	return func(c *builderConfig) {
		c.maxWeight = m
	}
}
