// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/flightnet/core"
)

// BreadthFirstSearch returns the cities reachable from start in FIFO visit
// order: start first, then its neighbours in edge-list order, and so on.
// An unknown start (or a nil graph) yields an empty, non-nil slice.
func BreadthFirstSearch(g *core.Graph, start string) []string {
	res, err := BFS(g, start)
	if err != nil {
		return []string{}
	}

	return res.Order
}

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     *core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited *bitset.BitSet
	res     *Result
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
//
// A city is marked visited when it is enqueued, so each reachable city is
// enqueued, visited and reported exactly once. An unknown startID yields an
// empty Result and no error.
//
// Returns ErrGraphNil, ErrOptionViolation, the context error on
// cancellation, or any wrapped OnVisit error. On error the partial Result
// is still returned.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.CityCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: bitset.New(uint(n)),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	start, ok := g.Vertex(startID)
	if !ok {
		return w.res, nil
	}
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue
// and adds it to the queue.
func (w *walker) enqueue(v *core.Vertex, d int, parent *core.Vertex) {
	w.visited.Set(uint(v.Index()))
	w.res.Depth[v.ID()] = d
	if parent != nil {
		w.res.Parent[v.ID()] = parent.ID()
	}
	w.opts.OnEnqueue(v.ID(), d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the city in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v.ID())
	if err := w.opts.OnVisit(item.v.ID(), item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.v.ID(), err)
	}

	return nil
}

// enqueueNeighbors walks item's edge list in order, applies filtering and
// MaxDepth, and enqueues each unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range item.v.Edges() {
		nbr, _ := w.graph.Vertex(e.To)
		if w.visited.Test(uint(nbr.Index())) {
			continue
		}
		if !w.opts.FilterNeighbor(item.v.ID(), nbr.ID()) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v)
	}
}
