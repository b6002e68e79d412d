// SPDX-License-Identifier: MIT
// Package: community/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1, n2 ≥ MinPartitionSize (else ErrTooFewVertices).
//   • Appends the left side first, then the right side.
//   • Emits left → right for every pair, left-major.

package builder

import "fmt"

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}
		left := d.addVertices(n1)
		right := d.addVertices(n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				d.addEdge(left+i, right+j, cfg)
			}
		}

		return nil
	}
}
