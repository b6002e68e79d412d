// SPDX-License-Identifier: MIT
// Package: community/modularity
//
// types.go — consumer-side interfaces, options and sentinel errors.

package modularity

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/community/core"
)

var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("modularity: graph is nil")

	// ErrNilAggregates indicates New was called without community aggregates.
	ErrNilAggregates = errors.New("modularity: aggregates are nil")

	// ErrGraphMismatch indicates the aggregates were built over another graph.
	ErrGraphMismatch = errors.New("modularity: aggregates belong to a different graph")
)

// Graph is the read-only graph view the evaluator needs.
type Graph interface {
	TotalWeight() float64
	Directed() bool
	Strength(v int, dir core.Direction) float64
	SelfWeight(v int) float64
}

// Aggregates is the read side of a community aggregate store. Every value
// must reflect the same committed membership for the duration of a call.
type Aggregates interface {
	Membership(v int) int
	NCommunities() int
	CSize(c int) int
	WeightToComm(v, c int) float64
	WeightFromComm(v, c int) float64
	TotalWeightInComm(c int) float64
	TotalWeightToComm(c int) float64
	TotalWeightFromComm(c int) float64
}

// QualityFunction is an objective a local-moving optimizer can drive.
// Modularity is one implementation.
type QualityFunction interface {
	DiffMove(v, newComm int) float64
	Quality() float64
}

// CommunityTerm is the share of one community in the total quality.
type CommunityTerm struct {
	Community int
	Size      int
	Internal  float64 // weight of edges inside the community
	From      float64 // out-strength summed over members
	To        float64 // in-strength summed over members

	// Contribution sums to Quality over all communities.
	Contribution float64
}

// Option configures a Modularity at construction.
type Option func(*Modularity)

// WithLogger routes debug traces of every evaluation to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("modularity: WithLogger(nil)")
	}

	return func(m *Modularity) { m.logger = l }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
