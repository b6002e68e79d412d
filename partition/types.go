// SPDX-License-Identifier: MIT
// Package: community/partition
//
// types.go — Partition state and sentinel errors.
//
// Error policy:
//   - Construction problems (nil graph, wrong membership length, negative
//     community ids) are returned as sentinels wrapped with %w.
//   - Ids out of range on an existing Partition are contract violations and
//     panic; continuing with inconsistent aggregates would silently corrupt
//     every later evaluation.

package partition

import (
	"errors"
	"sync"

	"github.com/katalvlaran/community/core"
)

var (
	// ErrNilGraph indicates a nil *core.Graph was passed to a constructor.
	ErrNilGraph = errors.New("partition: graph is nil")

	// ErrMembershipLength indicates the membership slice does not have one
	// entry per vertex.
	ErrMembershipLength = errors.New("partition: membership length does not match vertex count")

	// ErrNegativeCommunity indicates a negative community id in a membership slice.
	ErrNegativeCommunity = errors.New("partition: negative community id")

	// ErrCommunityOutOfRange indicates a community id ≥ the vertex count in a
	// membership slice; n vertices never need more than n communities.
	ErrCommunityOutOfRange = errors.New("partition: community id out of range")
)

// Partition assigns every vertex of a graph to exactly one community and
// keeps, per community, the aggregates the modularity evaluator reads:
//
//	csize[c]           vertices in c
//	totalWeightIn[c]   Σ w(e) over edges with both endpoints in c (loops once)
//	totalWeightFrom[c] Σ Strength(v, Out) over v in c
//	totalWeightTo[c]   Σ Strength(v, In) over v in c
//
// The aggregates are maintained incrementally by MoveNode and always match
// the current membership.
//
// mu implements a single-writer/multiple-reader discipline: MoveNode and
// RenumberCommunities take the write side, Read takes the read side. The
// individual getters do not lock; call them inside Read (or from the only
// goroutine that owns the Partition) so that every value observed belongs to
// the same committed state.
type Partition struct {
	mu sync.RWMutex

	graph      *core.Graph
	membership []int

	csize            []int
	totalWeightIn    []float64
	totalWeightFrom  []float64
	totalWeightTo    []float64
	totalWeightInAll float64
}
