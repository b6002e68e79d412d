// SPDX-License-Identifier: MIT
// Package: community/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ MinGridDim (else ErrTooFewVertices).
//   • Vertices appended row-major: cell (r,c) is base + r*cols + c.
//   • For each cell emit Right then Bottom neighbor if present.
//   • Directed graphs get both orientations so neighborhoods stay symmetric.

package builder

import "fmt"

// Grid returns a Constructor that appends a rows×cols orthogonal grid.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base := d.addVertices(rows * cols)
		cell := func(r, c int) int { return base + r*cols + c }

		link := func(u, v int) {
			d.addEdge(u, v, cfg)
			if d.directed {
				d.addEdge(v, u, cfg)
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					link(cell(r, c), cell(r, c+1))
				}
				if r+1 < rows {
					link(cell(r, c), cell(r+1, c))
				}
			}
		}

		return nil
	}
}
