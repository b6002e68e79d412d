// SPDX-License-Identifier: MIT
// Package: community/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j); allow self-loops iff the graph allows loops.
//
// Contract:
//   - n ≥ MinRandomSparseNodes (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc; one Bernoulli draw per trial,
//     followed by one weight draw per accepted edge.

package builder

import "fmt"

// RandomSparse returns a Constructor that appends an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// accept is deterministic for p ∈ {0,1} and needs no RNG there.
		accept := func() bool {
			switch p {
			case MinProbability:
				return false
			case MaxProbability:
				return true
			default:
				return rng.Float64() < p
			}
		}

		base := d.addVertices(n)
		for i := 0; i < n; i++ {
			start := i + 1
			if d.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j && !d.loops {
					continue
				}
				if accept() {
					d.addEdge(base+i, base+j, cfg)
				}
			}
		}

		return nil
	}
}
