// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// flight network.
//
// Overview:
//
//   - Dijkstra(g, source, opts...) settles every city reachable from source
//     in order of increasing distance and returns a Result with distances and
//     predecessors.
//   - ShortestDistance(g, a, b) answers a single query and stops as soon as b
//     is settled. ShortestPath(g, a, b) also returns the cities on the route.
//
// Notes on implementation choices:
//
//   - Vertices are addressed by core.Vertex.Index, so tentative distances live
//     in a slice and the settled set in a bitset.
//   - We use a "lazy" decrease-key strategy: improved distances are pushed as
//     new heap entries and stale entries are skipped when popped.
//   - Early termination on the target is sound only because core.Graph
//     rejects negative weights.
//   - Reached cities are tracked in their own bitset, so a route of exactly
//     math.MaxInt64 is a normal result. Longer sums saturate and are ranked
//     behind every exact distance.
//
// Error handling:
//
//   - ErrNilGraph:       nil graph.
//   - ErrCityNotFound:   unknown source, target or query city (same value as
//     core.ErrCityNotFound).
//   - ErrUnreachable:    both cities exist, no route joins them. The distance
//     returned alongside is Infinity.
//   - ErrDistanceOverflow: a route exists but all routes are longer than
//     math.MaxInt64; the distance returned alongside is Infinity.
//   - ErrBadMaxDistance: WithMaxDistance(d) with d < 0.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holding up to E stale entries.
//
// Example:
//
//	d, err := dijkstra.ShortestDistance(g, "Chicago", "San Francisco")
//	switch {
//	case errors.Is(err, dijkstra.ErrUnreachable):
//	    // no route
//	case err != nil:
//	    // unknown city
//	}
package dijkstra
