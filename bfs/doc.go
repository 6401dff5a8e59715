// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over the flight network,
// returning visit order, hop counts and parent links.
//
// What
//
//   - BreadthFirstSearch(g, start) []string is the plain traversal: strict
//     FIFO, visited set seeded with start, neighbours taken in each city's
//     edge-list order. Cities in other components are omitted.
//   - BFS(g, start, opts...) is the same walk with hooks and limits and a
//     Result carrying Order, Depth and Parent.
//
// Determinism
//
//	core.Graph keeps edge lists in insertion order and BFS enqueues in that
//	order, so the visit sequence is fully reproducible for a given network.
//
// Complexity (V = cities, E = flights)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, the maps of Result and a bitset of visited
//     vertex indices.
//
// Usage
//
//	order := bfs.BreadthFirstSearch(g, "Chicago")
//
//	res, err := bfs.BFS(
//	    g, "Chicago",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "Phoenix" }),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()           if the context is cancelled mid-walk.
//   - Wrapped OnVisit errors.
//
// An unknown start city is not an error: the walk is simply empty.
package bfs
