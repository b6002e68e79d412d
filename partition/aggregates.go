// SPDX-License-Identifier: MIT
// Package: community/partition
//
// aggregates.go — read side of the community aggregate store.
//
// None of these methods lock; see Partition and Read. Ids out of range panic
// on slice indexing.

package partition

// Membership returns the community of v.
// Complexity: O(1).
func (p *Partition) Membership(v int) int { return p.membership[v] }

// MembershipSlice returns a copy of the full membership.
// Complexity: O(n).
func (p *Partition) MembershipSlice() []int {
	return append([]int(nil), p.membership...)
}

// NCommunities returns the number of community slots, empty ones included.
// Complexity: O(1).
func (p *Partition) NCommunities() int { return len(p.csize) }

// CSize returns the number of vertices in community c.
// Complexity: O(1).
func (p *Partition) CSize(c int) int { return p.csize[c] }

// TotalWeightInComm returns the weight of edges with both endpoints in c.
// Complexity: O(1).
func (p *Partition) TotalWeightInComm(c int) float64 { return p.totalWeightIn[c] }

// TotalWeightFromComm returns the out-strength summed over the vertices of c.
// Complexity: O(1).
func (p *Partition) TotalWeightFromComm(c int) float64 { return p.totalWeightFrom[c] }

// TotalWeightToComm returns the in-strength summed over the vertices of c.
// Complexity: O(1).
func (p *Partition) TotalWeightToComm(c int) float64 { return p.totalWeightTo[c] }

// TotalWeightInAllComms returns Σ_c TotalWeightInComm(c).
// Complexity: O(1).
func (p *Partition) TotalWeightInAllComms() float64 { return p.totalWeightInAll }

// WeightToComm returns the weight of edges from v into community c. When c is
// v's own community a loop at v is included once. On undirected graphs this
// equals WeightFromComm.
// Complexity: O(deg(v)).
func (p *Partition) WeightToComm(v, c int) float64 {
	var w float64
	for _, a := range p.graph.Out(v) {
		if p.membership[a.To] == c {
			w += a.Weight
		}
	}

	return w
}

// WeightFromComm returns the weight of edges from community c into v, with
// the same loop convention as WeightToComm.
// Complexity: O(deg(v)).
func (p *Partition) WeightFromComm(v, c int) float64 {
	var w float64
	for _, a := range p.graph.In(v) {
		if p.membership[a.To] == c {
			w += a.Weight
		}
	}

	return w
}

// Members returns the vertices of community c in ascending order.
// Complexity: O(n).
func (p *Partition) Members(c int) []int {
	p.checkCommunity(c)
	out := make([]int, 0, p.csize[c])
	for v, m := range p.membership {
		if m == c {
			out = append(out, v)
		}
	}

	return out
}
