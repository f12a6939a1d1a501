// SPDX-License-Identifier: MIT
// Package: parboruvka/builder
//
// impl_path.go: Path(n), the simple path P_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits edges (i, i+1) for i = 0..n-2, in that order.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that appends an n-vertex path.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := d.grow(n)
		for i := 0; i+1 < n; i++ {
			d.add(base+i, base+i+1, cfg)
		}

		return nil
	}
}
