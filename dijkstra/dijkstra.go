// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/flightnet/core"
)

// noPrev marks a vertex with no predecessor.
const noPrev = -1

// Dijkstra computes shortest distances from source to every reachable city.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance).
//  3. g must contain source and, if set, the target (ErrCityNotFound).
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	src, ok := g.Vertex(source)
	if !ok {
		return nil, fmt.Errorf("%w: source %q", ErrCityNotFound, source)
	}
	target := noPrev
	if cfg.Target != "" {
		tv, ok := g.Vertex(cfg.Target)
		if !ok {
			return nil, fmt.Errorf("%w: target %q", ErrCityNotFound, cfg.Target)
		}
		target = tv.Index()
	}

	r := newRunner(g, cfg, src.Index(), target)
	r.process()

	return r.result(source), nil
}

// ShortestDistance returns the length of the shortest route between cityA
// and cityB.
//
//   - cityA == cityB (known city): 0, no traversal.
//   - unknown city: ErrCityNotFound.
//   - no route: (Infinity, ErrUnreachable).
//   - every route is longer than math.MaxInt64: (Infinity, ErrDistanceOverflow).
func ShortestDistance(g *core.Graph, cityA, cityB string) (int64, error) {
	if err := checkPair(g, cityA, cityB); err != nil {
		return Infinity, err
	}
	if cityA == cityB {
		return 0, nil
	}

	res, err := Dijkstra(g, cityA, WithTarget(cityB))
	if err != nil {
		return Infinity, err
	}
	if res.Overflow[cityB] {
		return Infinity, fmt.Errorf("%w: %q from %q", ErrDistanceOverflow, cityB, cityA)
	}
	d, ok := res.DistanceTo(cityB)
	if !ok {
		return Infinity, fmt.Errorf("%w: %q from %q", ErrUnreachable, cityB, cityA)
	}

	return d, nil
}

// ShortestPath returns the cities along a shortest route from cityA to
// cityB together with its distance. Errors match ShortestDistance.
func ShortestPath(g *core.Graph, cityA, cityB string) (*Route, error) {
	if err := checkPair(g, cityA, cityB); err != nil {
		return nil, err
	}
	if cityA == cityB {
		return &Route{Cities: []string{cityA}, Distance: 0}, nil
	}

	res, err := Dijkstra(g, cityA, WithTarget(cityB))
	if err != nil {
		return nil, err
	}
	if res.Overflow[cityB] {
		return nil, fmt.Errorf("%w: %q from %q", ErrDistanceOverflow, cityB, cityA)
	}
	path, err := res.PathTo(cityB)
	if err != nil {
		return nil, err
	}

	return &Route{Cities: path, Distance: res.Dist[cityB]}, nil
}

// checkPair validates the graph and both endpoints of a query.
func checkPair(g *core.Graph, cityA, cityB string) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, id := range []string{cityA, cityB} {
		if !g.HasCity(id) {
			return fmt.Errorf("%w: %q", ErrCityNotFound, id)
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
//
// dist[v] is meaningful only once reached has bit v; Infinity is a valid
// distance. A sum above math.MaxInt64 saturates to Infinity and sets the
// overflow bit, which ranks the entry behind every exact distance.
type runner struct {
	g        *core.Graph    // read-only within Dijkstra
	cfg      Options        // resolved options
	target   int            // target index or noPrev
	dist     []int64        // index → best known distance
	prev     []int          // index → predecessor index
	reached  *bitset.BitSet // vertices with a tentative distance
	overflow *bitset.BitSet // vertices whose best distance saturated
	settled  *bitset.BitSet // finalized vertices
	pq       nodePQ         // lazy min-heap
}

func newRunner(g *core.Graph, cfg Options, source, target int) *runner {
	n := uint(g.CityCount())
	r := &runner{
		g:        g,
		cfg:      cfg,
		target:   target,
		dist:     make([]int64, n),
		prev:     make([]int, n),
		reached:  bitset.New(n),
		overflow: bitset.New(n),
		settled:  bitset.New(n),
		pq:       make(nodePQ, 0, n),
	}
	for i := range r.prev {
		r.prev[i] = noPrev
	}
	r.reached.Set(uint(source))
	heap.Push(&r.pq, nodeItem{index: source, dist: 0})

	return r
}

// process pops the closest unsettled vertex, settles it and relaxes its
// edges, until the heap empties, the target settles, or MaxDistance is passed.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := uint(item.index)
		if r.settled.Test(u) {
			continue // stale entry
		}
		if item.dist > r.cfg.MaxDistance {
			return
		}
		r.settled.Set(u)
		if item.index == r.target {
			return
		}
		r.relax(item.index)
	}
}

// relax improves tentative distances of u's neighbours.
func (r *runner) relax(u int) {
	du, uOver := r.dist[u], r.overflow.Test(uint(u))
	for _, e := range r.g.VertexAt(u).Edges() {
		nv, _ := r.g.Vertex(e.To)
		v := uint(nv.Index())
		if r.settled.Test(v) {
			continue
		}
		nd, over := du+e.Weight, uOver
		if e.Weight > Infinity-du {
			nd, over = Infinity, true
		}
		if nd > r.cfg.MaxDistance {
			continue
		}
		if r.reached.Test(v) && !less(nd, over, r.dist[v], r.overflow.Test(v)) {
			continue
		}
		r.reached.Set(v)
		r.overflow.SetTo(v, over)
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{index: int(v), dist: nd, over: over})
	}
}

// less orders (distance, saturated) pairs: exact distances come first.
func less(d1 int64, over1 bool, d2 int64, over2 bool) bool {
	if over1 != over2 {
		return over2
	}

	return d1 < d2
}

// result exports the settled vertices keyed by city ID.
func (r *runner) result(source string) *Result {
	n := r.settled.Count()
	res := &Result{
		Source:   source,
		Dist:     make(map[string]int64, n),
		Prev:     make(map[string]string, n),
		Overflow: make(map[string]bool),
	}
	for i, ok := r.settled.NextSet(0); ok; i, ok = r.settled.NextSet(i + 1) {
		id := r.g.VertexAt(int(i)).ID()
		if r.overflow.Test(i) {
			res.Overflow[id] = true
			continue
		}
		res.Dist[id] = r.dist[i]
		if p := r.prev[i]; p != noPrev {
			res.Prev[id] = r.g.VertexAt(p).ID()
		}
	}

	return res
}

// nodeItem is a heap entry: a vertex index and the distance it was pushed with.
type nodeItem struct {
	index int
	dist  int64
	over  bool // dist saturated at Infinity
}

// nodePQ is a min-heap of nodeItem ordered by (over, dist).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	return less(pq[i].dist, pq[i].over, pq[j].dist, pq[j].over)
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
