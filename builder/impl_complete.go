// SPDX-License-Identifier: MIT
// Package: community/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   • Undirected: one edge per unordered pair i<j.
//   • Directed: both i → j and j → i for every i<j.
//   • Never emits loops.

package builder

import "fmt"

// Complete returns a Constructor that appends the complete simple graph K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		base := d.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.addEdge(base+i, base+j, cfg)
				if d.directed {
					d.addEdge(base+j, base+i, cfg)
				}
			}
		}

		return nil
	}
}
