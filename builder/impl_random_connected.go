// SPDX-License-Identifier: MIT
// Package: parboruvka/builder
//
// impl_random_connected.go: RandomConnected(v, e), a random connected graph.
//
// Model:
//   • A chain of edges (i, i+1), i = 0..v-2, guarantees connectivity.
//   • The remaining e-(v-1) edges join uniformly random distinct endpoints,
//     normalised to src < dest. Parallel edges may occur.
//   • Weights follow builderConfig.weight (uniform [1, 1000] by default).
//
// Contract:
//   • v ≥ 1 (else ErrTooFewVertices).
//   • e ≥ v-1 (else ErrTooFewEdges).
//   • An RNG is required (else ErrNeedRandSource).
//   • v = 1 admits no edge without a self-loop: e > 0 there is ErrConstructFailed.
//
// Complexity: O(v + e) expected.
//
// Determinism:
//   • Chain first, then random edges, each drawn as (src, dest, weight).

package builder

import "fmt"

const (
	methodRandomConnected = "RandomConnected"
	minRandomVertices     = 1
)

// RandomConnected returns a Constructor that appends a connected graph with
// v vertices and exactly e edges.
func RandomConnected(v, e int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if v < minRandomVertices {
			return fmt.Errorf("%s: v=%d < min=%d: %w", methodRandomConnected, v, minRandomVertices, ErrTooFewVertices)
		}
		if e < v-1 {
			return fmt.Errorf("%s: e=%d < v-1=%d: %w", methodRandomConnected, e, v-1, ErrTooFewEdges)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}
		if v == 1 && e > 0 {
			return fmt.Errorf("%s: %d edges on one vertex need self-loops: %w", methodRandomConnected, e, ErrConstructFailed)
		}

		base := d.grow(v)
		for i := 0; i+1 < v; i++ {
			d.add(base+i, base+i+1, cfg)
		}
		for k := v - 1; k < e; k++ {
			src, dest := cfg.rng.Intn(v), cfg.rng.Intn(v)
			for src == dest {
				dest = cfg.rng.Intn(v)
			}
			if src > dest {
				src, dest = dest, src
			}
			d.add(base+src, base+dest, cfg)
		}

		return nil
	}
}
