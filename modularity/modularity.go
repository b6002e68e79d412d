// SPDX-License-Identifier: MIT
// Package: community/modularity
//
// modularity.go — incremental and global modularity.

package modularity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/community/core"
)

var _ QualityFunction = (*Modularity)(nil)

// Modularity evaluates the modularity objective over a graph and the
// aggregates of a partition of it. It holds no mutable state.
type Modularity struct {
	graph  Graph
	aggs   Aggregates
	logger *slog.Logger
}

// graphOwner is implemented by aggregate stores that know their graph,
// such as *partition.Partition.
type graphOwner interface {
	Graph() *core.Graph
}

// New returns an evaluator over g and the community aggregates p.
// When p reports the graph it was built over, that graph must be g.
func New(g Graph, p Aggregates, opts ...Option) (*Modularity, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	if p == nil {
		return nil, fmt.Errorf("New: %w", ErrNilAggregates)
	}
	if owner, ok := p.(graphOwner); ok && Graph(owner.Graph()) != g {
		return nil, fmt.Errorf("New: %w", ErrGraphMismatch)
	}
	m := &Modularity{graph: g, aggs: p, logger: discardLogger()}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// DiffMove returns the change in Quality if v moved from its current
// community to newComm, all other vertices staying put. It returns exactly 0
// when newComm is v's community or the graph carries no weight.
//
// Ids out of range are contract violations; the Aggregates implementation
// decides how they fail.
//
// Complexity: O(deg(v)) through WeightToComm/WeightFromComm.
func (m *Modularity) DiffMove(v, newComm int) float64 {
	g, p := m.graph, m.aggs

	directed := g.Directed()
	totalWeight := g.TotalWeight()
	if !directed {
		totalWeight *= 2
	}
	if totalWeight == 0 {
		return 0
	}
	oldComm := p.Membership(v)
	if newComm == oldComm {
		return 0
	}

	wToOld, wFromOld := p.WeightToComm(v, oldComm), p.WeightFromComm(v, oldComm)
	wToNew, wFromNew := p.WeightToComm(v, newComm), p.WeightFromComm(v, newComm)
	kOut, kIn := g.Strength(v, core.Out), g.Strength(v, core.In)
	self := g.SelfWeight(v)

	kOutOld, kInOld := p.TotalWeightFromComm(oldComm), p.TotalWeightToComm(oldComm)
	kOutNew, kInNew := p.TotalWeightFromComm(newComm), p.TotalWeightToComm(newComm)

	// v's own strength is still inside old and not yet inside new.
	diffOld := (wToOld - kOut*kInOld/totalWeight) +
		(wFromOld - kIn*kOutOld/totalWeight)
	diffNew := (wToNew + self - kOut*(kInNew+kIn)/totalWeight) +
		(wFromNew + self - kIn*(kOutNew+kOut)/totalWeight)

	norm := g.TotalWeight()
	if !directed {
		norm *= 2
	}
	diff := (diffNew - diffOld) / norm

	if m.logger.Enabled(context.Background(), slog.LevelDebug) {
		m.logger.Debug("diff_move",
			slog.Int("vertex", v),
			slog.Int("from", oldComm),
			slog.Int("to", newComm),
			slog.Float64("w_to_old", wToOld),
			slog.Float64("w_to_new", wToNew),
			slog.Float64("self", self),
			slog.Float64("diff", diff),
		)
	}

	return diff
}

// Quality returns the modularity of the current partition; 0 when the graph
// carries no weight. Empty communities contribute nothing.
// Complexity: O(#communities).
func (m *Modularity) Quality() float64 {
	totalWeight := m.graph.TotalWeight()
	if totalWeight == 0 {
		return 0
	}
	directed := m.graph.Directed()

	var mod float64
	for c, n := 0, m.aggs.NCommunities(); c < n; c++ {
		mod += m.term(c, totalWeight, directed)
	}

	scale := 1.0
	if !directed {
		scale = 2
	}
	q := scale * mod / (scale * totalWeight)

	if m.logger.Enabled(context.Background(), slog.LevelDebug) {
		m.logger.Debug("quality",
			slog.Int("communities", m.aggs.NCommunities()),
			slog.Float64("total_weight", totalWeight),
			slog.Bool("directed", directed),
			slog.Float64("quality", q),
		)
	}

	return q
}

// Breakdown splits Quality into one term per community slot, empty slots
// included, in community order.
// Complexity: O(#communities).
func (m *Modularity) Breakdown() []CommunityTerm {
	totalWeight := m.graph.TotalWeight()
	directed := m.graph.Directed()

	n := m.aggs.NCommunities()
	terms := make([]CommunityTerm, n)
	for c := 0; c < n; c++ {
		terms[c] = CommunityTerm{
			Community: c,
			Size:      m.aggs.CSize(c),
			Internal:  m.aggs.TotalWeightInComm(c),
			From:      m.aggs.TotalWeightFromComm(c),
			To:        m.aggs.TotalWeightToComm(c),
		}
		if totalWeight != 0 {
			terms[c].Contribution = m.term(c, totalWeight, directed) / totalWeight
		}
	}

	return terms
}

// term is community c's share of the unnormalised sum: in − from·to/(k·m)
// with k = 1 for directed graphs and 4 for undirected ones, where from and
// to each count every undirected edge from both ends.
func (m *Modularity) term(c int, totalWeight float64, directed bool) float64 {
	if m.aggs.CSize(c) == 0 {
		return 0
	}
	expected := m.aggs.TotalWeightFromComm(c) * m.aggs.TotalWeightToComm(c) / totalWeight
	if !directed {
		expected /= 4
	}

	return m.aggs.TotalWeightInComm(c) - expected
}
