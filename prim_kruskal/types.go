// SPDX-License-Identifier: MIT

// File: types.go
// Role: sentinel errors, method selection and the Compute dispatcher.

package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/flightnet/core"
)

// Sentinel errors for MST computation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("prim_kruskal: graph is nil")

	// ErrEmptyGraph indicates an MST request on a graph with no cities.
	// errors.Is also matches core.ErrEmptyGraph.
	ErrEmptyGraph = fmt.Errorf("prim_kruskal: %w", core.ErrEmptyGraph)

	// ErrEmptyRoot indicates that Prim was given an empty root city.
	ErrEmptyRoot = errors.New("prim_kruskal: empty root city")

	// ErrCityNotFound is core.ErrCityNotFound, returned for an unknown root.
	ErrCityNotFound = core.ErrCityNotFound

	// ErrTotalOverflow indicates that the spanning tree is valid but its total
	// weight exceeds math.MaxInt64.
	ErrTotalOverflow = errors.New("prim_kruskal: total weight overflows int64")

	// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")
)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all flights and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run.
//
//	Method – MethodPrim (default) or MethodKruskal.
//	Root   – start city for Prim; "" means the first-inserted city. Unused by Kruskal.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting city for Prim; ignored by Kruskal.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Prim rooted at the first city.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   "",
	}
}

// Compute applies opts over DefaultOptions and runs the selected algorithm.
//
//   - MethodPrim with Root "": MinimumSpanningTree(g).
//   - MethodPrim with Root r:  Prim(g, r).
//   - MethodKruskal:           Kruskal(g).
//   - anything else:           ErrUnknownMethod.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodPrim:
		if cfg.Root == "" {
			return MinimumSpanningTree(g)
		}
		return Prim(g, cfg.Root)
	case MethodKruskal:
		return Kruskal(g)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// TotalWeight sums the weights of edges. A sum above math.MaxInt64
// returns (math.MaxInt64, ErrTotalOverflow).
func TotalWeight(edges []core.Edge) (int64, error) {
	var total int64
	for _, e := range edges {
		if e.Weight > math.MaxInt64-total {
			return math.MaxInt64, fmt.Errorf("%w: %d edges", ErrTotalOverflow, len(edges))
		}
		total += e.Weight
	}

	return total, nil
}
