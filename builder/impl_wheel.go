// SPDX-License-Identifier: MIT
// Package: community/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ MinWheelNodes (else ErrTooFewVertices).
//   • First appended vertex is the hub; the remaining n-1 form a rim cycle.
//   • Emission order: rim edges r → r+1 (wrapping), then hub → r.

package builder

import "fmt"

// Wheel returns a Constructor that appends W_n = C_{n-1} + hub.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		hub := d.addVertices(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			d.addEdge(hub+1+i, hub+1+(i+1)%rim, cfg)
		}
		for i := 0; i < rim; i++ {
			d.addEdge(hub, hub+1+i, cfg)
		}

		return nil
	}
}
