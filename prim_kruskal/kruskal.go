// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/flightnet/core"
)

// Kruskal computes a minimum spanning forest of g: one minimum spanning
// tree per connected component, V - C edges for C components.
//
// Error Conditions:
//   - ErrNilGraph   : g is nil.
//   - ErrEmptyGraph : g has no cities.
//   - ErrTotalOverflow : the forest is returned but its total exceeds int64.
//
// Steps:
//  1. Take every flight once via g.Flights() (insertion order).
//  2. Stable-sort by weight so equal weights keep insertion order.
//  3. Union-find with path halving and union by rank; keep an edge iff it
//     joins two different sets. Stop early at V-1 edges.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Empty() {
		return nil, 0, ErrEmptyGraph
	}

	edges := g.Flights()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	n := g.CityCount()
	ds := newDisjointSet(n)
	forest := make([]core.Edge, 0, n-1)
	for _, e := range edges {
		u, _ := g.Vertex(e.From)
		v, _ := g.Vertex(e.To)
		if !ds.union(u.Index(), v.Index()) {
			continue
		}
		forest = append(forest, e)
		if len(forest) == n-1 {
			break
		}
	}

	total, err := TotalWeight(forest)

	return forest, total, err
}

// disjointSet is a union-find over dense vertex indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the set representative of u, halving the path as it goes.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; false if they were already one set.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
