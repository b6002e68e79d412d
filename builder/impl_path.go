// SPDX-License-Identifier: MIT
// Package: community/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ MinPathNodes (else ErrTooFewVertices).
//   • Appends n vertices; emits edges i → i+1 for i = 0..n-2.

package builder

import "fmt"

// Path returns a Constructor that appends a simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		base := d.addVertices(n)
		for i := 0; i+1 < n; i++ {
			d.addEdge(base+i, base+i+1, cfg)
		}

		return nil
	}
}
