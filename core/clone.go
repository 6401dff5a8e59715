// SPDX-License-Identifier: MIT
//
// File: clone.go
// Role: Deep copies of a Graph.

package core

// Clone returns a deep copy of the Graph: vertices keep their Index, edge
// lists and the flight log keep their order, and the logger is shared.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		vertices: make(map[string]*Vertex, len(g.vertices)),
		order:    make([]*Vertex, len(g.order)),
		flights:  make([]*Edge, 0, len(g.flights)),
		logger:   g.logger,
	}
	copies := make(map[*Edge]*Edge, 2*len(g.flights))
	for i, v := range g.order {
		nv := &Vertex{id: v.id, index: v.index, edges: make([]*Edge, len(v.edges))}
		for j, e := range v.edges {
			ne := *e
			nv.edges[j] = &ne
			copies[e] = &ne
		}
		clone.order[i] = nv
		clone.vertices[nv.id] = nv
	}
	for _, e := range g.flights {
		clone.flights = append(clone.flights, copies[e])
	}

	return clone
}
