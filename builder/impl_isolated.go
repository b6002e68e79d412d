// SPDX-License-Identifier: MIT
// Package: community/builder
//
// impl_isolated.go — implementation of Isolated(n) constructor.

package builder

import "fmt"

// Isolated returns a Constructor that appends n vertices without edges.
// Complexity: O(1).
func Isolated(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < MinIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodIsolated, n, MinIsolatedNodes, ErrTooFewVertices)
		}
		d.addVertices(n)

		return nil
	}
}
