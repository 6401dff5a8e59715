// SPDX-License-Identifier: MIT

// Package core provides the flight network Graph: an undirected, weighted
// graph of cities keyed by name, built one flight at a time.
//
// The Graph G = (V,E) keeps a small, strict set of invariants:
//
//   - Every flight u-v with distance w is stored as two directed halves,
//     u→v in u's edge list and v→u in v's edge list, both with weight w.
//   - No self-loops (u ≠ v).
//   - At most one flight between any two cities.
//   - All weights are ≥ 0.
//   - A city that was never named in a flight has no vertex and no edges.
//
// Vertices are created lazily by AddEdge and receive a dense Index in
// insertion order (0..V-1). Algorithms in sibling packages (dijkstra,
// prim_kruskal, bfs) use that Index to keep their visited sets in a bitset.
// A *Vertex exposes ID, Index and copies of its Edges only, so the
// invariants below cannot be broken from outside the package.
//
// Core Methods:
//
//	// Mutation
//	AddEdge(from, to string, weight int64) error   // O(deg(from))
//
//	// Query
//	HasCity(id string) bool                        // O(1)
//	HasEdge(from, to string) bool                  // O(deg(from))
//	Vertex(id string) (*Vertex, bool)              // O(1), read-only view
//	VertexAt(index int) *Vertex                    // O(1), read-only view
//	Neighbors(id string) ([]Edge, error)           // O(deg), edge-list order
//	Cities() []string                              // O(V·log V), natural order
//	Order() []string                               // O(V), insertion order
//	Flights() []Edge                               // O(E), insertion order
//	CityCount() int, FlightCount() int             // O(1)
//
//	// Diagnostics
//	Format(w io.Writer) error, String(), Print()   // O(V+E)
//	Clone() *Graph                                 // O(V+E)
//
// Errors:
//
//	ErrEmptyCityID    – zero-length city ID
//	ErrNegativeWeight – weight < 0
//	ErrLoopNotAllowed – from == to
//	ErrDuplicateEdge  – a flight between the two cities already exists
//	ErrCityNotFound   – query on a city the graph does not know
//	ErrEmptyGraph     – operation needs at least one city
//
// A Graph is not safe for concurrent mutation. Callers sharing one instance
// across goroutines must serialize access around the whole Graph.
package core
