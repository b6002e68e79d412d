package modularity_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/community/builder"
	"github.com/katalvlaran/community/core"
	"github.com/katalvlaran/community/modularity"
	"github.com/katalvlaran/community/partition"
)

// fixture describes a seeded random weighted graph.
type fixture struct {
	seed     int64
	n        int
	p        float64
	directed bool
	loops    bool // adds loops (undirected) or allows them (directed)
	multi    bool // doubles a few edges
}

func (f fixture) build(t testing.TB) *core.Graph {
	t.Helper()
	gopts := []core.GraphOption{core.WithDirected(f.directed)}
	if f.loops {
		gopts = append(gopts, core.WithLoops())
	}
	if f.multi {
		gopts = append(gopts, core.WithMultiEdges())
	}

	cons := []builder.Constructor{builder.RandomSparse(f.n, f.p)}
	if f.loops && !f.directed {
		for v := 0; v < f.n; v += 3 {
			cons = append(cons, builder.Loop(v))
		}
	}
	if f.multi && f.n > 1 {
		for v := 0; v+1 < f.n; v += 5 {
			cons = append(cons, builder.Bridge(v, v+1), builder.Bridge(v, v+1))
		}
	}

	g, err := builder.BuildGraph(gopts,
		[]builder.BuilderOption{builder.WithSeed(f.seed), builder.WithUniformWeight(0.25, 4)},
		cons...)
	require.NoError(t, err)

	return g
}

// randomMembership spreads n vertices over min(k, n) communities.
func randomMembership(seed int64, n, k int) []int {
	if k > n {
		k = n
	}
	rng := rand.New(rand.NewSource(seed))
	membership := make([]int, n)
	for v := range membership {
		membership[v] = rng.Intn(k)
	}

	return membership
}

func newEvaluator(t testing.TB, g *core.Graph, membership []int) (*partition.Partition, *modularity.Modularity) {
	t.Helper()
	p, err := partition.NewFromMembership(g, membership)
	require.NoError(t, err)
	m, err := modularity.New(g, p)
	require.NoError(t, err)

	return p, m
}

// bruteForceQuality evaluates Q = 1/M Σ_ij [A_ij − k_i^out k_j^in / M] δ(c_i, c_j)
// over a dense adjacency matrix. Undirected graphs use M = 2m and store a loop
// as A_ii = 2w.
func bruteForceQuality(g *core.Graph, membership []int) float64 {
	n := g.VertexCount()
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	for _, e := range g.Edges() {
		a[e.From][e.To] += e.Weight
		if !g.Directed() {
			a[e.To][e.From] += e.Weight
		}
	}

	kOut := make([]float64, n)
	kIn := make([]float64, n)
	var total float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			kOut[i] += a[i][j]
			kIn[j] += a[i][j]
			total += a[i][j]
		}
	}
	if total == 0 {
		return 0
	}

	var q float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if membership[i] == membership[j] {
				q += a[i][j] - kOut[i]*kIn[j]/total
			}
		}
	}

	return q / total
}
