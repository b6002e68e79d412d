// SPDX-License-Identifier: MIT
// Package: community/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Probes the graph
//     mode, resolves cfg, runs cons in order on a draft, then hands the draft
//     to core.NewGraph.
//   - Every topology constructor appends a fresh block of vertices, so
//     composing constructors yields their disjoint union; Bridge and Loop wire
//     vertices that already exist.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/community/core"
)

// Constructor applies a deterministic mutation to the draft using the
// resolved builderConfig. Constructors MUST validate parameters early and
// return sentinel errors, and MUST NOT panic.
type Constructor func(d *draft, cfg builderConfig) error

// draft accumulates vertices and edges before the immutable core.Graph is built.
type draft struct {
	directed bool // mode probed from gopts
	loops    bool // mode probed from gopts

	n     int
	edges []core.Edge
}

// addVertices appends k vertices and returns the index of the first one.
func (d *draft) addVertices(k int) int {
	first := d.n
	d.n += k

	return first
}

// addEdge appends u→v with a weight drawn from cfg.
func (d *draft) addEdge(u, v int, cfg builderConfig) {
	d.edges = append(d.edges, core.Edge{From: u, To: v, Weight: cfg.weightFn(cfg.rng)})
}

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and builds a core.Graph with graph options gopts.
// Constructor and core errors are wrapped with "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor + O(V+E) for core.NewGraph.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// An empty graph carries the mode flags constructors need to branch on.
	probe, err := core.NewGraph(0, nil, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	d := &draft{directed: probe.Directed(), loops: probe.Looped()}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(d.n, d.edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
