// SPDX-License-Identifier: MIT
// Package: community/partition
//
// partition.go — constructors and from-scratch aggregate computation.

package partition

import (
	"fmt"

	"github.com/katalvlaran/community/core"
)

const (
	methodNew               = "New"
	methodNewFromMembership = "NewFromMembership"
)

// New returns the singleton partition of g: vertex v is alone in community v.
// Complexity: O(n + E).
func New(g *core.Graph) (*Partition, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilGraph)
	}
	membership := make([]int, g.VertexCount())
	for v := range membership {
		membership[v] = v
	}
	p := &Partition{graph: g, membership: membership}
	p.rebuild(len(membership))

	return p, nil
}

// NewFromMembership returns a partition of g following membership, which must
// hold one community id in [0,n) per vertex. The community count is
// max(id)+1; ids below it that no vertex uses become empty communities.
// The slice is copied.
// Complexity: O(n + E).
func NewFromMembership(g *core.Graph, membership []int) (*Partition, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodNewFromMembership, ErrNilGraph)
	}
	if len(membership) != g.VertexCount() {
		return nil, fmt.Errorf("%s: len=%d, vertices=%d: %w",
			methodNewFromMembership, len(membership), g.VertexCount(), ErrMembershipLength)
	}

	nComms := 0
	for v, c := range membership {
		if c < 0 {
			return nil, fmt.Errorf("%s: vertex %d has community %d: %w",
				methodNewFromMembership, v, c, ErrNegativeCommunity)
		}
		if c >= len(membership) {
			return nil, fmt.Errorf("%s: vertex %d has community %d, vertices=%d: %w",
				methodNewFromMembership, v, c, len(membership), ErrCommunityOutOfRange)
		}
		if c >= nComms {
			nComms = c + 1
		}
	}

	p := &Partition{graph: g, membership: append([]int(nil), membership...)}
	p.rebuild(nComms)

	return p, nil
}

// rebuild recomputes every aggregate from the membership over nComms
// community slots. Caller holds the write lock or owns p exclusively.
func (p *Partition) rebuild(nComms int) {
	p.csize = make([]int, nComms)
	p.totalWeightIn = make([]float64, nComms)
	p.totalWeightFrom = make([]float64, nComms)
	p.totalWeightTo = make([]float64, nComms)
	p.totalWeightInAll = 0

	g := p.graph
	for v, c := range p.membership {
		p.csize[c]++
		p.totalWeightFrom[c] += g.Strength(v, core.Out)
		p.totalWeightTo[c] += g.Strength(v, core.In)
	}
	for _, e := range g.Edges() {
		if c := p.membership[e.From]; c == p.membership[e.To] {
			p.totalWeightIn[c] += e.Weight
			p.totalWeightInAll += e.Weight
		}
	}
}

// Graph returns the graph this partition is defined over.
func (p *Partition) Graph() *core.Graph { return p.graph }

// Read runs fn while holding the read side of the partition lock. Every
// aggregate fn observes belongs to one committed state, and MoveNode calls
// from other goroutines wait until fn returns. fn must not call MoveNode,
// AddEmptyCommunity, RenumberCommunities or Read on the same partition:
// read locks are not reentrant, and a nested Read deadlocks as soon as a
// writer is waiting.
func (p *Partition) Read(fn func()) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	fn()
}
