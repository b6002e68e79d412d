// SPDX-License-Identifier: MIT
// Package: community/builder
//
// constants.go — method tags and minimum sizes shared by constructors.

package builder

// Method tags prefix constructor errors for context.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodIsolated          = "Isolated"
	MethodRandomSparse      = "RandomSparse"
	MethodBridge            = "Bridge"
	MethodLoop              = "Loop"
)

// Minimum sizes.
const (
	// MinCycleNodes is the smallest ring without loops or multi-edges.
	MinCycleNodes = 3
	// MinPathNodes is the smallest path with at least one edge.
	MinPathNodes = 2
	// MinStarNodes is one center plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes is a center plus a triangle rim.
	MinWheelNodes = 4
	// MinCompleteNodes allows the trivial K_1.
	MinCompleteNodes = 1
	// MinPartitionSize is the smallest side of a complete bipartite graph.
	MinPartitionSize = 1
	// MinGridDim is the smallest grid side.
	MinGridDim = 1
	// MinIsolatedNodes is the smallest block of edgeless vertices.
	MinIsolatedNodes = 1
	// MinRandomSparseNodes is the smallest random graph.
	MinRandomSparseNodes = 1
)

// Probability domain for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
