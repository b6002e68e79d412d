// Package core provides the immutable, index-addressed weighted Graph that the
// partition and modularity packages read from.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops), which carry the internal weight of vertices that
//     stand for collapsed communities
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Non-negative float64 weights on every edge
//
// Vertices are the integers 0..n-1. Everything the modularity evaluator asks
// of a graph is precomputed by NewGraph:
//
//	TotalWeight()            // Σ w(e), each edge once
//	Strength(v, Out|In)      // weighted out/in degree
//	SelfWeight(v)            // Σ loop weight at v
//	Out(v), In(v)            // adjacency for connection-weight scans
//
// Degree conventions:
//
//	directed:   Σ_v Strength(v,Out) = Σ_v Strength(v,In) = TotalWeight()
//	undirected: Strength(v,Out) = Strength(v,In), Σ_v Strength(v,·) = 2·TotalWeight()
//
// An undirected loop of weight w adds 2w to the strength of its vertex and w
// to its SelfWeight; a directed loop adds w to both strengths and w to
// SelfWeight.
//
// Concurrency:
//
//	A Graph is never mutated after NewGraph returns; concurrent readers need no
//	synchronisation.
//
// Errors:
//
//	ErrNegativeVertexCount – n < 0
//	ErrVertexOutOfRange    – edge endpoint outside [0,n)
//	ErrBadWeight           – negative, NaN or infinite weight
//	ErrLoopNotAllowed      – self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges are disabled
package core
