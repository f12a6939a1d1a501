// SPDX-License-Identifier: MIT
// Package: parboruvka/builder
//
// impl_grid.go: Grid(rows, cols), the rows×cols lattice.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r, c) has id r*cols+c (row-major).
//   • For each (r, c) in row-major order emit Right then Bottom if present.
//
// Complexity: O(rows*cols).

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := d.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := base + r*cols + c
				if c+1 < cols {
					d.add(id, id+1, cfg)
				}
				if r+1 < rows {
					d.add(id, id+cols, cfg)
				}
			}
		}

		return nil
	}
}
