// SPDX-License-Identifier: MIT

// File: types.go
// Role: Options, results and sentinel errors for Dijkstra runs.

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/flightnet/core"
)

// Infinity is the distance returned alongside ErrUnreachable and
// ErrDistanceOverflow. A route of exactly this length is still a valid result.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrCityNotFound is core.ErrCityNotFound; both names match with errors.Is.
	ErrCityNotFound = core.ErrCityNotFound

	// ErrUnreachable indicates that both cities exist but no path joins them.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrDistanceOverflow indicates that a route exists but every route is
	// longer than math.MaxInt64.
	ErrDistanceOverflow = errors.New("dijkstra: route distance overflows int64")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a Dijkstra run.
//
// Target      – if non-empty, the run stops as soon as Target is settled.
// MaxDistance – cities farther than this are never settled. Default Infinity.
type Options struct {
	Target      string
	MaxDistance int64

	// err records an invalid option; surfaced by Dijkstra.
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no target and no distance cap.
func DefaultOptions() Options {
	return Options{
		Target:      "",
		MaxDistance: Infinity,
	}
}

// WithTarget stops the search once target is settled. Settling is final
// because every weight is non-negative.
func WithTarget(target string) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithMaxDistance caps the explored radius. Negative values make Dijkstra
// return ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// Result holds the settled part of a Dijkstra run.
//
// Dist and Prev contain only settled cities with an exact distance: with
// WithTarget or WithMaxDistance some reachable cities may be absent.
// Prev[v] == u means the shortest known route to v arrives from u; the
// source has no Prev entry. Overflow lists settled cities whose every
// route is longer than math.MaxInt64; they are absent from Dist and Prev.
type Result struct {
	Source   string
	Dist     map[string]int64
	Prev     map[string]string
	Overflow map[string]bool
}

// DistanceTo returns the settled distance to id, or (Infinity, false).
func (r *Result) DistanceTo(id string) (int64, bool) {
	d, ok := r.Dist[id]
	if !ok {
		return Infinity, false
	}

	return d, true
}

// PathTo reconstructs the route from the source to dest, both included.
// Returns ErrDistanceOverflow for an overflowed dest and ErrUnreachable if
// dest was not settled.
func (r *Result) PathTo(dest string) ([]string, error) {
	if r.Overflow[dest] {
		return nil, fmt.Errorf("%w: %q from %q", ErrDistanceOverflow, dest, r.Source)
	}
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, dest, r.Source)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Route is a shortest route between two cities.
type Route struct {
	Cities   []string
	Distance int64
}
