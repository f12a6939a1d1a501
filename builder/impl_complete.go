// SPDX-License-Identifier: MIT
// Package: parboruvka/builder
//
// impl_complete.go: Complete(n), the complete graph K_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every unordered pair {i, j}, i < j, in lexicographic order.
//
// Complexity: O(n²).

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends K_n.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := d.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.add(base+i, base+j, cfg)
			}
		}

		return nil
	}
}
