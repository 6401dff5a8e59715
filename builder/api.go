// SPDX-License-Identifier: MIT
//
// api.go — BuildGraph orchestrator and the Constructor contract.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

// Constructor adds cities and flights to g using cfg.
// Constructors must be deterministic for a fixed cfg and must not reorder
// flights they have already inserted.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a fresh core.Graph with gopts, resolves the builder
// configuration from bopts and applies every constructor in order.
// The first failure aborts the build and is returned as-is.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	g := core.NewGraph(gopts...)
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("%w: constructor #%d is nil", ErrConstructFailed, i)
		}
		if err := c(g, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// addFlight inserts one flight with a generated distance and wraps failures.
func addFlight(g *core.Graph, cfg builderConfig, method string, from, to string) error {
	if err := g.AddEdge(from, to, cfg.weightFn(cfg.rng)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s): %w: %w", method, from, to, ErrConstructFailed, err)
	}

	return nil
}
