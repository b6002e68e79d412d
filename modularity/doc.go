// Package modularity evaluates the modularity of a vertex partition and the
// change in modularity caused by moving a single vertex, without recomputing
// the global score.
//
// The evaluator reads two collaborators through small interfaces:
//
//   - Graph: total weight, directedness, per-vertex strength and self weight
//     (satisfied by *core.Graph);
//   - Aggregates: membership, per-community totals and per-vertex connection
//     weights (satisfied by *partition.Partition).
//
// Definitions, with m the total edge weight (each edge once):
//
//	undirected:  Q = 1/(2m) · Σ_c [ 2·in_c − from_c·to_c/(2m) ]
//	directed:    Q = 1/m    · Σ_c [ in_c − from_c·to_c/m ]
//
// where in_c is the weight inside c and from_c, to_c are the out- and
// in-strength summed over c. A graph with no weight has Q = 0 everywhere.
//
// DiffMove(v, c) costs two community lookups plus the O(deg(v)) connection
// scans of the Aggregates; Quality costs O(#communities). Neither mutates
// anything, so concurrent calls over a partition nobody is moving are safe.
// When another goroutine commits moves, wrap evaluations in the partition's
// read lock:
//
//	p.Read(func() { delta = q.DiffMove(v, c) })
package modularity
