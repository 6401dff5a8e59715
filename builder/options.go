// SPDX-License-Identifier: MIT
//
// options.go — functional options for the builder package.
//
// Option constructors panic on nil functions (programmer error); invalid
// numeric ranges are recorded and surfaced by BuildGraph as sentinels.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDFn sets the vertex ID generator. Panics on nil.
func WithIDFn(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDFn(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new seeded *rand.Rand. Use it in tests to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-flight distance generator. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithWeightRange draws distances uniformly from [lo, hi]. Without an RNG
// every flight gets lo. Requires 0 ≤ lo ≤ hi.
func WithWeightRange(lo, hi int64) BuilderOption {
	return func(c *builderConfig) {
		if lo < 0 || hi < lo {
			c.err = fmt.Errorf("%w: [%d,%d]", ErrBadWeightRange, lo, hi)
			return
		}
		c.weightFn = uniformWeight(lo, hi)
	}
}
