// SPDX-License-Identifier: MIT
// Package: community/builder
//
// impl_connect.go — connectors between vertices that already exist.
//
// Contract:
//   • Vertex indices refer to the draft built so far (global, 0-based).
//   • Out-of-range indices return ErrVertexOutOfRange.
//   • Loop on a graph without WithLoops is rejected later by core.NewGraph
//     (core.ErrLoopNotAllowed, wrapped by BuildGraph).

package builder

import "fmt"

// Bridge returns a Constructor that adds one edge u → v between existing vertices.
// Complexity: O(1).
func Bridge(u, v int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if u < 0 || u >= d.n || v < 0 || v >= d.n {
			return fmt.Errorf("%s: (%d,%d) with %d vertices: %w", MethodBridge, u, v, d.n, ErrVertexOutOfRange)
		}
		d.addEdge(u, v, cfg)

		return nil
	}
}

// Loop returns a Constructor that adds a self-loop at an existing vertex v.
// Complexity: O(1).
func Loop(v int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if v < 0 || v >= d.n {
			return fmt.Errorf("%s: %d with %d vertices: %w", MethodLoop, v, d.n, ErrVertexOutOfRange)
		}
		d.addEdge(v, v, cfg)

		return nil
	}
}
