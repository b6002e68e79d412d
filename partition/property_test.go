package partition_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/community/partition"
)

// sameAggregates reports whether p matches a from-scratch rebuild of its membership.
func sameAggregates(p *partition.Partition) bool {
	want, err := partition.NewFromMembership(p.Graph(), p.MembershipSlice())
	if err != nil {
		return false
	}
	near := func(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }
	for c := 0; c < p.NCommunities(); c++ {
		var size int
		var in, from, to float64
		if c < want.NCommunities() {
			size = want.CSize(c)
			in, from, to = want.TotalWeightInComm(c), want.TotalWeightFromComm(c), want.TotalWeightToComm(c)
		}
		if p.CSize(c) != size || !near(p.TotalWeightInComm(c), in) ||
			!near(p.TotalWeightFromComm(c), from) || !near(p.TotalWeightToComm(c), to) {
			return false
		}
	}

	return near(p.TotalWeightInAllComms(), want.TotalWeightInAllComms())
}

// TestAggregateInvariants checks that incremental bookkeeping never drifts
// from the membership, whatever the graph and move sequence.
func TestAggregateInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("moves keep aggregates equal to a rebuild", prop.ForAll(
		func(seed int64, n int, directed bool, moves int) bool {
			g := randomGraph(t, seed, n, directed)
			p, err := partition.New(g)
			if err != nil {
				return false
			}
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < moves; i++ {
				p.MoveNode(rng.Intn(n), rng.Intn(p.NCommunities()))
			}

			return sameAggregates(p)
		},
		gen.Int64(),
		gen.IntRange(1, 30),
		gen.Bool(),
		gen.IntRange(0, 200),
	))

	properties.Property("renumbering preserves the grouping", prop.ForAll(
		func(seed int64, n int) bool {
			g := randomGraph(t, seed, n, false)
			rng := rand.New(rand.NewSource(seed))
			membership := make([]int, n)
			for v := range membership {
				membership[v] = rng.Intn(n)
			}
			p, err := partition.NewFromMembership(g, membership)
			if err != nil {
				return false
			}
			p.RenumberCommunities()

			for c := 0; c < p.NCommunities(); c++ {
				if p.CSize(c) == 0 || (c > 0 && p.CSize(c) > p.CSize(c-1)) {
					return false
				}
			}
			for u := 0; u < n; u++ {
				for v := 0; v < n; v++ {
					if (membership[u] == membership[v]) != (p.Membership(u) == p.Membership(v)) {
						return false
					}
				}
			}

			return sameAggregates(p)
		},
		gen.Int64(),
		gen.IntRange(1, 30),
	))

	properties.TestingRun(t)
}
