// Package community is the evaluation core of local-moving community
// detection (Louvain/Leiden style): it scores a partition of a weighted graph
// under modularity and predicts, in O(deg(v)), how that score changes when a
// single vertex changes community.
//
// What is inside?
//
//	A small, deterministic library built from four packages:
//		• core        — immutable indexed weighted graph: strengths, self weights, total weight
//		• partition   — membership + per-community aggregates, committed moves, RW discipline
//		• modularity  — Quality, DiffMove and a per-community Breakdown
//		• builder     — composable fixtures (cycles, cliques, random graphs, bridges, loops)
//
// Quick ASCII example:
//
//	  0           4
//	  │ \       / │
//	  │  2 ─── 3  │
//	  │ /       \ │
//	  1           5
//
//	two triangles joined by the bridge 2–3: with communities {0,1,2} and
//	{3,4,5} the modularity is 5/14 ≈ 0.357, and moving 2 across would cost
//	≈ 0.235.
//
//	g, _ := builder.BuildGraph(nil, nil,
//		builder.Complete(3), builder.Complete(3), builder.Bridge(2, 3))
//	p, _ := partition.NewFromMembership(g, []int{0, 0, 0, 1, 1, 1})
//	q, _ := modularity.New(g, p)
//	q.Quality()      // 0.357…
//	q.DiffMove(2, 1) // −0.234…
//
// The outer optimisation loop (visit order, aggregation between passes,
// refinement) is left to callers; they drive DiffMove and commit the winning
// move with partition.MoveNode.
//
//	go get github.com/katalvlaran/community
package community
