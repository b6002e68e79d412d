// Package partition holds the community structure over a core.Graph: the
// vertex→community membership and the per-community aggregates that
// incremental quality evaluation reads.
//
// A Partition keeps, for every community c, its vertex count, the weight of
// edges inside c, and the out- and in-strength summed over its vertices. It
// also answers per-vertex connection queries (weight from v into c, from c
// into v) by scanning v's adjacency once.
//
// Moves are committed with MoveNode, which updates every affected aggregate in
// O(deg(v)), so aggregates always match the membership:
//
//	p, _ := partition.New(g)   // singleton communities
//	p.MoveNode(3, p.Membership(2))
//
// Concurrency: one writer (MoveNode, AddEmptyCommunity, RenumberCommunities)
// and many readers. Readers that need several aggregates from one committed
// state wrap them in Read:
//
//	p.Read(func() {
//		delta = q.DiffMove(v, c)
//	})
package partition
