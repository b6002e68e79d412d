// SPDX-License-Identifier: MIT
// Package core: Graph construction.
//
// NewGraph validates every edge, then lays out adjacency and precomputes the
// weighted degrees in one pass, so all later queries are O(1) or return a
// slice already in memory.

package core

import (
	"fmt"
	"math"
)

const methodNewGraph = "NewGraph"

// NewGraph builds an immutable Graph over vertices 0..n-1 from edges.
// By default the graph is undirected with no loops and no multi-edges.
//
// Edges are validated in input order and the first violation is returned,
// wrapped with the offending index:
//
//	NewGraph: edge 3 (1→4): core: vertex out of range
//
// Complexity: O(n + E) time and space.
func NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNewGraph, n, ErrNegativeVertexCount)
	}

	g := &Graph{n: n}
	for _, opt := range opts {
		opt(g)
	}

	// Validate everything before allocating adjacency.
	var seen map[[2]int]struct{}
	if !g.allowMulti {
		seen = make(map[[2]int]struct{}, len(edges))
	}
	for i, e := range edges {
		if err := g.validateEdge(e, seen); err != nil {
			return nil, fmt.Errorf("%s: edge %d (%d→%d): %w", methodNewGraph, i, e.From, e.To, err)
		}
	}

	g.edges = make([]Edge, len(edges))
	copy(g.edges, edges)
	g.layout()

	return g, nil
}

// validateEdge checks endpoints, weight and the loop/multi-edge policies.
// seen is nil when multi-edges are allowed.
func (g *Graph) validateEdge(e Edge, seen map[[2]int]struct{}) error {
	if e.From < 0 || e.From >= g.n || e.To < 0 || e.To >= g.n {
		return ErrVertexOutOfRange
	}
	if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
		return fmt.Errorf("weight %g: %w", e.Weight, ErrBadWeight)
	}
	if e.From == e.To && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if seen != nil {
		key := [2]int{e.From, e.To}
		if !g.directed && key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if _, dup := seen[key]; dup {
			return ErrMultiEdgeNotAllowed
		}
		seen[key] = struct{}{}
	}

	return nil
}

// layout fills adjacency, strengths, self weights and the total weight.
func (g *Graph) layout() {
	g.strengthOut = make([]float64, g.n)
	g.selfWeight = make([]float64, g.n)

	// Count first so every adjacency list is allocated exactly once.
	outDeg := make([]int, g.n)
	inDeg := make([]int, g.n)
	for _, e := range g.edges {
		outDeg[e.From]++
		if g.directed {
			inDeg[e.To]++
		} else if e.From != e.To {
			outDeg[e.To]++
		}
	}

	g.out = make([][]Arc, g.n)
	for v := range g.out {
		g.out[v] = make([]Arc, 0, outDeg[v])
	}
	if g.directed {
		g.strengthIn = make([]float64, g.n)
		g.in = make([][]Arc, g.n)
		for v := range g.in {
			g.in[v] = make([]Arc, 0, inDeg[v])
		}
	} else {
		g.strengthIn = g.strengthOut
		g.in = g.out
	}

	for _, e := range g.edges {
		u, v, w := e.From, e.To, e.Weight
		g.totalWeight += w
		if u == v {
			g.selfWeight[u] += w
		}

		g.out[u] = append(g.out[u], Arc{To: v, Weight: w})
		g.strengthOut[u] += w

		if g.directed {
			g.in[v] = append(g.in[v], Arc{To: u, Weight: w})
			g.strengthIn[v] += w
			continue
		}
		// Undirected: mirror non-loops; a loop adds its weight a second time
		// to the strength but only one adjacency entry.
		if u != v {
			g.out[v] = append(g.out[v], Arc{To: u, Weight: w})
		}
		g.strengthOut[v] += w
	}
}
