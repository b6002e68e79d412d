// SPDX-License-Identifier: MIT
// Package: community/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ MinStarNodes (else ErrTooFewVertices).
//   • The first appended vertex is the center; edges center → leaf in
//     ascending leaf order.

package builder

import "fmt"

// Star returns a Constructor that appends a star with one center and n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		center := d.addVertices(n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			d.addEdge(center, leaf, cfg)
		}

		return nil
	}
}
