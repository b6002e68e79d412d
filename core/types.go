// SPDX-License-Identifier: MIT
// Package core defines the immutable weighted Graph consumed by the
// partition and modularity packages, together with its functional options
// and sentinel errors.
//
// Vertices are dense integers 0..n-1. A Graph is fully built by NewGraph and
// never mutated afterwards, so any number of goroutines may query it without
// locking.
//
// Errors:
//
//	ErrNegativeVertexCount - n < 0 passed to NewGraph.
//	ErrVertexOutOfRange    - an edge endpoint is outside [0,n).
//	ErrBadWeight           - an edge weight is negative, NaN or infinite.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNegativeVertexCount indicates NewGraph was called with n < 0.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0,n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was supplied when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was supplied when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Direction selects the in- or out- side of a vertex for strength queries.
// On undirected graphs both directions answer the same value.
type Direction uint8

const (
	// Out selects edges leaving a vertex.
	Out Direction = iota
	// In selects edges entering a vertex.
	In
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == In {
		return "in"
	}

	return "out"
}

// Edge is an input edge From→To with a non-negative Weight.
// For undirected graphs the orientation is irrelevant.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Arc is one adjacency entry: the opposite endpoint and the edge weight.
type Arc struct {
	To     int
	Weight float64
}

// GraphOption configures a Graph before its edges are ingested.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or bidirectional (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an immutable, index-addressed weighted graph.
//
// out[v] lists arcs leaving v and in[v] lists arcs entering v. For undirected
// graphs in and out share the same backing slices and every edge {u,v} appears
// in both out[u] and out[v]; a loop appears once.
//
// strengthOut/strengthIn, selfWeight and totalWeight are precomputed during
// construction. Undirected strength counts a loop twice so that the strengths
// sum to 2*TotalWeight.
type Graph struct {
	// Configuration flags
	directed   bool
	allowLoops bool
	allowMulti bool

	// Storage
	n     int
	edges []Edge
	out   [][]Arc
	in    [][]Arc

	// Derived weights
	strengthOut []float64
	strengthIn  []float64
	selfWeight  []float64
	totalWeight float64
}

// GraphStats is a read-only snapshot of flags and sizes.
type GraphStats struct {
	Directed    bool
	AllowsLoops bool
	AllowsMulti bool
	VertexCount int
	EdgeCount   int
	LoopCount   int
	TotalWeight float64
}
