// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/flightnet/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph   *core.Graph
	opts    Options
	visited *bitset.BitSet
	res     *Result
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every component, starting trees at unvisited cities in insertion order;
// otherwise it starts only from startID. Neighbours are explored in
// edge-list order.
//
// Returns the partial Result together with a context or hook error.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	start, ok := g.Vertex(startID)
	if !o.FullTraversal && !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.CityCount()
	w := &walker{
		graph:   g,
		opts:    o,
		visited: bitset.New(uint(n)),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	if !o.FullTraversal {
		w.res.Roots = append(w.res.Roots, start.ID())
		return w.res, w.traverse(start, 0)
	}
	for i := 0; i < n; i++ {
		if w.visited.Test(uint(i)) {
			continue
		}
		v := g.VertexAt(i)
		w.res.Roots = append(w.res.Roots, v.ID())
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits v at depth, recursing into unvisited neighbours.
func (w *walker) traverse(v *core.Vertex, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited.Set(uint(v.Index()))
	w.res.Depth[v.ID()] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v.ID()); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", v.ID(), err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, e := range v.Edges() {
			nbr, _ := w.graph.Vertex(e.To)
			if w.visited.Test(uint(nbr.Index())) {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr.ID()) {
				w.res.SkippedNeighbors++
				continue
			}
			w.res.Parent[nbr.ID()] = v.ID()
			if err := w.traverse(nbr, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v.ID()); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", v.ID(), err)
		}
	}
	w.res.Order = append(w.res.Order, v.ID())

	return nil
}
