// SPDX-License-Identifier: MIT
// Package: community/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w ("Cycle: n=2 < min=3: ...").
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, ...)
// is smaller than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrVertexOutOfRange indicates a connector (Bridge, Loop) referenced a
// vertex that no earlier constructor added.
var ErrVertexOutOfRange = errors.New("builder: vertex out of range")

// ErrConstructFailed indicates the build could not proceed (e.g., a nil
// constructor was passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")
