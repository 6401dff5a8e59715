// SPDX-License-Identifier: MIT

package builder

import "errors"

// Sentinel errors for builder constructors.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrBadWeightRange indicates WithWeightRange(lo, hi) with lo < 0 or hi < lo.
	ErrBadWeightRange = errors.New("builder: invalid weight range")

	// ErrNeedRandSource indicates a stochastic constructor used without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrConstructFailed wraps a nil constructor or an AddEdge failure.
	ErrConstructFailed = errors.New("builder: construction failed")
)
