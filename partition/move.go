// SPDX-License-Identifier: MIT
// Package: community/partition
//
// move.go — write side: committing moves, community slots, renumbering.

package partition

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/community/core"
)

// MoveNode moves v into community c and updates every aggregate touched by
// the move. Moving v into its current community is a no-op.
//
// Internal weight bookkeeping, with s = SelfWeight(v):
//
//	directed:   old loses WeightToComm(v,old)+WeightFromComm(v,old)-s
//	            new gains WeightToComm(v,new)+WeightFromComm(v,new)+s
//	undirected: old loses WeightToComm(v,old)
//	            new gains WeightToComm(v,new)+s
//
// The loop is counted once by both connection weights while v sits in old,
// and by neither while v is still outside new.
//
// Panics if v or c is out of range. Takes the write lock.
// Complexity: O(deg(v)).
func (p *Partition) MoveNode(v, c int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.checkVertex(v)
	p.checkCommunity(c)

	old := p.membership[v]
	if old == c {
		return
	}

	g := p.graph
	s := g.SelfWeight(v)
	toOld, toNew := p.WeightToComm(v, old), p.WeightToComm(v, c)

	var loss, gain float64
	if g.Directed() {
		fromOld, fromNew := p.WeightFromComm(v, old), p.WeightFromComm(v, c)
		loss = toOld + fromOld - s
		gain = toNew + fromNew + s
	} else {
		loss = toOld
		gain = toNew + s
	}

	kOut, kIn := g.Strength(v, core.Out), g.Strength(v, core.In)

	p.totalWeightIn[old] -= loss
	p.totalWeightFrom[old] -= kOut
	p.totalWeightTo[old] -= kIn
	p.csize[old]--

	p.totalWeightIn[c] += gain
	p.totalWeightFrom[c] += kOut
	p.totalWeightTo[c] += kIn
	p.csize[c]++

	p.totalWeightInAll += gain - loss
	p.membership[v] = c
}

// AddEmptyCommunity appends an empty community slot and returns its id.
// Takes the write lock.
// Complexity: O(1) amortized.
func (p *Partition) AddEmptyCommunity() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.csize = append(p.csize, 0)
	p.totalWeightIn = append(p.totalWeightIn, 0)
	p.totalWeightFrom = append(p.totalWeightFrom, 0)
	p.totalWeightTo = append(p.totalWeightTo, 0)

	return len(p.csize) - 1
}

// EmptyCommunity returns the lowest id of a community without vertices.
// Complexity: O(NCommunities).
func (p *Partition) EmptyCommunity() (int, bool) {
	for c, size := range p.csize {
		if size == 0 {
			return c, true
		}
	}

	return 0, false
}

// RenumberCommunities relabels communities 0..k-1 by decreasing size, ties
// broken by the lowest member vertex, and drops empty slots. Aggregates are
// recomputed from scratch, which also clears floating-point drift left by
// long move sequences. Takes the write lock.
// Complexity: O(n + E + k log k).
func (p *Partition) RenumberCommunities() {
	p.mu.Lock()
	defer p.mu.Unlock()

	first := make([]int, len(p.csize))
	for c := range first {
		first[c] = -1
	}
	for v, c := range p.membership {
		if first[c] < 0 {
			first[c] = v
		}
	}

	live := make([]int, 0, len(p.csize))
	for c, size := range p.csize {
		if size > 0 {
			live = append(live, c)
		}
	}
	sort.Slice(live, func(i, j int) bool {
		a, b := live[i], live[j]
		if p.csize[a] != p.csize[b] {
			return p.csize[a] > p.csize[b]
		}

		return first[a] < first[b]
	})

	relabel := make([]int, len(p.csize))
	for newID, oldID := range live {
		relabel[oldID] = newID
	}
	for v, c := range p.membership {
		p.membership[v] = relabel[c]
	}
	p.rebuild(len(live))
}

func (p *Partition) checkVertex(v int) {
	if v < 0 || v >= len(p.membership) {
		panic(fmt.Sprintf("partition: vertex %d out of range [0,%d)", v, len(p.membership)))
	}
}

func (p *Partition) checkCommunity(c int) {
	if c < 0 || c >= len(p.csize) {
		panic(fmt.Sprintf("partition: community %d out of range [0,%d)", c, len(p.csize)))
	}
}
