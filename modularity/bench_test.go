// Package modularity_test provides benchmarks for incremental and global evaluation.
package modularity_test

import (
	"testing"
)

// BenchmarkDiffMove probes one move per vertex on a 2k-vertex sparse graph.
func BenchmarkDiffMove(b *testing.B) {
	const n = 2_000
	g := fixture{seed: 1, n: n, p: 0.005}.build(b)
	p, m := newEvaluator(b, g, randomMembership(1, n, 50))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := i % n
		_ = m.DiffMove(v, (p.Membership(v)+1)%p.NCommunities())
	}
}

// BenchmarkQuality sums 50 community terms.
func BenchmarkQuality(b *testing.B) {
	const n = 2_000
	g := fixture{seed: 1, n: n, p: 0.005}.build(b)
	_, m := newEvaluator(b, g, randomMembership(1, n, 50))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Quality()
	}
}

// BenchmarkMoveNode commits and reverts a move, the write side of a local-moving pass.
func BenchmarkMoveNode(b *testing.B) {
	const n = 2_000
	g := fixture{seed: 1, n: n, p: 0.005}.build(b)
	p, _ := newEvaluator(b, g, randomMembership(1, n, 50))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := i % n
		old := p.Membership(v)
		p.MoveNode(v, (old+1)%p.NCommunities())
		p.MoveNode(v, old)
	}
}
