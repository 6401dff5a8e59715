// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/flightnet/core"
)

// MinimumSpanningTree runs Prim from the first city ever inserted into g.
//
// The result spans only that city's connected component; cities in other
// components are left out without an error. Use Kruskal for a spanning
// forest of the whole network.
//
// Errors: ErrNilGraph, ErrEmptyGraph.
func MinimumSpanningTree(g *core.Graph) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	root, ok := g.First()
	if !ok {
		return nil, 0, ErrEmptyGraph
	}

	return Prim(g, root)
}

// Prim computes a minimum spanning tree of root's connected component by
// growing outwards from root with a min-heap of candidate edges.
//
// Error Conditions:
//   - ErrNilGraph     : g is nil.
//   - ErrEmptyGraph   : g has no cities.
//   - ErrEmptyRoot    : root is "".
//   - ErrCityNotFound : root is not a city of g.
//   - ErrTotalOverflow: total weight exceeds int64 (tree still returned).
//
// Steps:
//  1. Validate inputs.
//  2. Mark root visited and push its edges.
//  3. Pop the lightest edge (ties: earliest pushed). If its far end is
//     already visited the entry is stale: discard it. Otherwise emit the
//     edge, mark the far end and push its edges to unvisited cities.
//  4. Stop when the heap is empty.
//
// Edges are emitted in the order they join the tree, oriented from the tree
// side (From) to the newly reached city (To). If the total overflows int64
// the tree is still returned, with total math.MaxInt64 and ErrTotalOverflow.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root string) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Empty() {
		return nil, 0, ErrEmptyGraph
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	start, ok := g.Vertex(root)
	if !ok {
		return nil, 0, fmt.Errorf("%w: root %q", ErrCityNotFound, root)
	}

	var (
		n       = g.CityCount()
		visited = bitset.New(uint(n))
		mst     = make([]core.Edge, 0, n-1)
		pq      = &edgePQ{}
		seq     int
	)
	push := func(v *core.Vertex) {
		for _, e := range v.Edges() {
			to, _ := g.Vertex(e.To)
			if visited.Test(uint(to.Index())) {
				continue
			}
			heap.Push(pq, edgeItem{edge: e, to: to, seq: seq})
			seq++
		}
	}

	visited.Set(uint(start.Index()))
	push(start)
	for pq.Len() > 0 {
		item := heap.Pop(pq).(edgeItem)
		if visited.Test(uint(item.to.Index())) {
			continue // stale
		}
		visited.Set(uint(item.to.Index()))
		mst = append(mst, item.edge)
		push(item.to)
	}
	total, err := TotalWeight(mst)

	return mst, total, err
}

// edgeItem is a candidate edge with its far endpoint and push sequence.
type edgeItem struct {
	edge core.Edge
	to   *core.Vertex
	seq  int
}

// edgePQ implements heap.Interface for a min-heap of edgeItem, ordered by
// Weight and then by push sequence so that equal weights pop FIFO.
type edgePQ []edgeItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}
	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(edgeItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
