// SPDX-License-Identifier: MIT
// Package: parboruvka/builder
//
// impl_star.go: Star(n), one center joined to n-1 leaves.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The center is the first vertex; edges (center, leaf) in leaf order.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends an n-vertex star.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := d.grow(n)
		for leaf := 1; leaf < n; leaf++ {
			d.add(center, center+leaf, cfg)
		}

		return nil
	}
}
