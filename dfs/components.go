// SPDX-License-Identifier: MIT

package dfs

import (
	"github.com/katalvlaran/flightnet/core"
)

// Components partitions the cities of g into connected components.
// Components are ordered by their first-inserted city, and cities inside a
// component keep insertion order. An empty graph yields an empty slice.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]string, error) {
	res, err := DFS(g, "", WithFullTraversal())
	if err != nil {
		return nil, err
	}

	slot := make(map[string]int, len(res.Roots)) // city → component index
	for i, r := range res.Roots {
		slot[r] = i
	}
	var find func(id string) int
	find = func(id string) int {
		if i, ok := slot[id]; ok {
			return i
		}
		i := find(res.Parent[id])
		slot[id] = i
		return i
	}

	comps := make([][]string, len(res.Roots))
	for _, id := range g.Order() {
		i := find(id)
		comps[i] = append(comps[i], id)
	}

	return comps, nil
}
