// SPDX-License-Identifier: MIT
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = SymbolNumberIDFn("v")  ("v0","v1",...)
//   • rng      = nil                     (no randomness unless seeded)
//   • weightFn = constant 1

package builder

import "math/rand"

const defaultConstWeight = int64(1)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn func(*rand.Rand) int64

	// err records an invalid option; BuildGraph returns it before any work.
	err error
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     SymbolNumberIDFn(defaultIDPrefix),
		rng:      nil,
		weightFn: constWeight(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
