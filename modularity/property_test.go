package modularity_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gonum.org/v1/gonum/floats/scalar"
)

// TestModularityLaws checks the relations between DiffMove, Quality and
// Breakdown on random graphs, memberships and move sequences.
func TestModularityLaws(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	genFixture := gopter.CombineGens(
		gen.Int64(),
		gen.IntRange(1, 25),
		gen.Float64Range(0, 1),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	).Map(func(vs []interface{}) fixture {
		return fixture{
			seed:     vs[0].(int64),
			n:        vs[1].(int),
			p:        vs[2].(float64),
			directed: vs[3].(bool),
			loops:    vs[4].(bool),
			multi:    vs[5].(bool),
		}
	})

	properties.Property("no-op moves are exactly neutral", prop.ForAll(
		func(f fixture, k int) bool {
			p, m := newEvaluator(t, f.build(t), randomMembership(f.seed, f.n, k))
			for v := 0; v < f.n; v++ {
				if m.DiffMove(v, p.Membership(v)) != 0 {
					return false
				}
			}

			return true
		},
		genFixture,
		gen.IntRange(1, 6),
	))

	properties.Property("diff equals the committed quality delta", prop.ForAll(
		func(f fixture, k, moves int) bool {
			p, m := newEvaluator(t, f.build(t), randomMembership(f.seed, f.n, k))
			p.AddEmptyCommunity()
			rng := rand.New(rand.NewSource(f.seed))
			for i := 0; i < moves; i++ {
				v, c := rng.Intn(f.n), rng.Intn(p.NCommunities())
				before := m.Quality()
				diff := m.DiffMove(v, c)
				p.MoveNode(v, c)
				if !scalar.EqualWithinAbsOrRel(diff, m.Quality()-before, lawTol, lawTol) {
					return false
				}
			}

			return true
		},
		genFixture,
		gen.IntRange(1, 6),
		gen.IntRange(1, 40),
	))

	properties.Property("quality matches the dense reference", prop.ForAll(
		func(f fixture, k int) bool {
			g := f.build(t)
			membership := randomMembership(f.seed, f.n, k)
			_, m := newEvaluator(t, g, membership)

			return scalar.EqualWithinAbsOrRel(m.Quality(), bruteForceQuality(g, membership), refTol, refTol)
		},
		genFixture,
		gen.IntRange(1, 6),
	))

	properties.Property("breakdown sums to quality", prop.ForAll(
		func(f fixture, k int) bool {
			p, m := newEvaluator(t, f.build(t), randomMembership(f.seed, f.n, k))
			var sum float64
			for _, term := range m.Breakdown() {
				if term.Size != p.CSize(term.Community) {
					return false
				}
				sum += term.Contribution
			}

			return math.Abs(sum-m.Quality()) <= 1e-12
		},
		genFixture,
		gen.IntRange(1, 6),
	))

	properties.Property("renumbering leaves quality unchanged", prop.ForAll(
		func(f fixture, k int) bool {
			p, m := newEvaluator(t, f.build(t), randomMembership(f.seed, f.n, k))
			before := m.Quality()
			p.RenumberCommunities()

			return scalar.EqualWithinAbsOrRel(before, m.Quality(), refTol, refTol)
		},
		genFixture,
		gen.IntRange(1, 6),
	))

	properties.TestingRun(t)
}
