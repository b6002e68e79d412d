// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only query facade over an immutable Graph.
// Policy:
//   - No locking: a Graph never changes after NewGraph returns.
//   - Vertex ids outside [0,n) are caller errors and panic on slice indexing.
//   - Every exported function documents complexity.

package core

// VertexCount returns n.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of input edges (loops and parallels included).
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports whether edges are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops were permitted at construction.
// Complexity: O(1).
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges were permitted at construction.
// Complexity: O(1).
func (g *Graph) Multigraph() bool { return g.allowMulti }

// TotalWeight returns the sum of all edge weights, each edge counted once
// regardless of directedness, loops included once.
// Complexity: O(1).
func (g *Graph) TotalWeight() float64 { return g.totalWeight }

// Strength returns the weighted degree of v on the requested side.
//
// Directed graphs: Out sums arcs leaving v, In sums arcs entering v; a loop
// contributes once to each. Undirected graphs: both sides return the total
// incident weight with a loop counted twice.
//
// Complexity: O(1).
func (g *Graph) Strength(v int, dir Direction) float64 {
	if dir == In {
		return g.strengthIn[v]
	}

	return g.strengthOut[v]
}

// SelfWeight returns the summed weight of the loops at v, 0 when there are none.
// Complexity: O(1).
func (g *Graph) SelfWeight(v int) float64 { return g.selfWeight[v] }

// Out returns the arcs leaving v. On undirected graphs this is every incident
// edge, a loop listed once. The slice is shared and must not be modified.
// Complexity: O(1).
func (g *Graph) Out(v int) []Arc { return g.out[v] }

// In returns the arcs entering v; the arc's To field holds the source vertex.
// On undirected graphs In(v) is the same slice as Out(v).
// The slice is shared and must not be modified.
// Complexity: O(1).
func (g *Graph) In(v int) []Arc { return g.in[v] }

// Degree returns the number of adjacency entries on each side of v.
// Complexity: O(1).
func (g *Graph) Degree(v int) (in, out int) {
	return len(g.in[v]), len(g.out[v])
}

// Edges returns a copy of the input edges in input order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Stats produces a snapshot of configuration flags and sizes.
// Complexity: O(E) for the loop count.
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		AllowsMulti: g.allowMulti,
		VertexCount: g.n,
		EdgeCount:   len(g.edges),
		TotalWeight: g.totalWeight,
	}
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}

	return stats
}
