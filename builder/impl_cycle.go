// SPDX-License-Identifier: MIT
// Package: parboruvka/builder
//
// impl_cycle.go: Cycle(n), the simple cycle C_n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges (i, (i+1)%n) for i = 0..n-1, in that order.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends an n-vertex cycle.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := d.grow(n)
		for i := 0; i < n; i++ {
			d.add(base+i, base+(i+1)%n, cfg)
		}

		return nil
	}
}
