// SPDX-License-Identifier: MIT
// Package: community/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Appends n vertices; emits edges i → (i+1)%n in ascending i.
//   • On directed graphs the ring is oriented one way.

package builder

import "fmt"

// Cycle returns a Constructor that appends an n-vertex simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		base := d.addVertices(n)
		for i := 0; i < n; i++ {
			d.addEdge(base+i, base+(i+1)%n, cfg)
		}

		return nil
	}
}
