// SPDX-License-Identifier: MIT

// File: types.go
// Role: options, errors and Result for depth-first walks.

package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start city does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start city not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a city is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after every descendant of a city has
	// been explored (post-order), before it is appended to Result.Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start city. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbour before recursing.
	// Return false to skip it.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts from every unvisited city in insertion order,
	// covering every connected component.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit, no filtering and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbours for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal makes DFS cover every component (forest traversal).
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records cities in the sequence they finished (post-order).
	Order []string

	// Depth maps each visited city to its depth in its DFS tree.
	Depth map[string]int

	// Parent maps each city to the city it was discovered from.
	// Tree roots do not appear.
	Parent map[string]string

	// Roots lists the city each DFS tree was started from, in order.
	Roots []string

	// SkippedNeighbors counts neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}
