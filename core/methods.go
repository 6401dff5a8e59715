// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Flight insertion and read-only queries.
// Determinism:
//   - Neighbors() and Flights() follow insertion order.
//   - Cities() is sorted in natural order; Order() is insertion order.

package core

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/zap"
)

// AddEdge inserts a flight between from and to with the given distance.
// Both directed halves are appended: from→to to from's edge list and
// to→from to to's edge list. Unknown cities are created on first use.
//
// Returns ErrEmptyCityID, ErrNegativeWeight, ErrLoopNotAllowed or
// ErrDuplicateEdge (wrapped with the offending cities) and leaves the graph
// untouched in every failure case.
//
// Steps:
//  1. Validate IDs, weight, loop.
//  2. Reject if the cities are already connected in either direction.
//  3. Ensure both vertices exist.
//  4. Append forward and reverse halves.
//
// Complexity: O(deg(from)) for the duplicate scan.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if err := g.validateFlight(from, to, weight); err != nil {
		g.logger.Debug("flight rejected",
			zap.String("from", from),
			zap.String("to", to),
			zap.Int64("distance", weight),
			zap.Error(err),
		)
		return err
	}

	src := g.ensureVertex(from)
	dst := g.ensureVertex(to)
	fwd := &Edge{From: from, To: to, Weight: weight}
	src.edges = append(src.edges, fwd)
	dst.edges = append(dst.edges, &Edge{From: to, To: from, Weight: weight})
	g.flights = append(g.flights, fwd)

	return nil
}

// validateFlight checks every rejection rule without mutating g.
func (g *Graph) validateFlight(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyCityID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s-%s distance=%d", ErrNegativeWeight, from, to, weight)
	}
	if from == to {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}
	// Either direction counts as the same flight.
	if g.HasEdge(from, to) || g.HasEdge(to, from) {
		return fmt.Errorf("%w: %s-%s", ErrDuplicateEdge, from, to)
	}

	return nil
}

// ensureVertex returns the vertex for id, creating it with the next Index.
func (g *Graph) ensureVertex(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{id: id, index: len(g.order)}
	g.vertices[id] = v
	g.order = append(g.order, v)

	return v
}

// HasCity reports whether the graph knows the city.
// Complexity: O(1).
func (g *Graph) HasCity(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// HasEdge reports whether a from→to half exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	v, ok := g.vertices[from]
	if !ok {
		return false
	}
	for _, e := range v.edges {
		if e.To == to {
			return true
		}
	}

	return false
}

// Vertex returns the read-only view of id.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// VertexAt returns the vertex with the given Index, or nil when out of range.
func (g *Graph) VertexAt(index int) *Vertex {
	if index < 0 || index >= len(g.order) {
		return nil
	}

	return g.order[index]
}

// Neighbors returns copies of the outgoing edges of id in edge-list order.
// Returns ErrCityNotFound for unknown cities.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, id)
	}
	return v.Edges(), nil
}

// Cities returns all city IDs sorted in natural order ("Gate 2" < "Gate 10").
// Complexity: O(V·log V).
func (g *Graph) Cities() []string {
	ids := g.Order()
	sort.Slice(ids, func(i, j int) bool { return natural.Less(ids[i], ids[j]) })

	return ids
}

// Order returns all city IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Order() []string {
	ids := make([]string, len(g.order))
	for i, v := range g.order {
		ids[i] = v.id
	}

	return ids
}

// First returns the first city ever inserted.
func (g *Graph) First() (string, bool) {
	if len(g.order) == 0 {
		return "", false
	}

	return g.order[0].id, true
}

// Flights returns the forward half of every flight in insertion order, i.e.
// exactly the (from, to, weight) triples accepted by AddEdge.
// Complexity: O(E).
func (g *Graph) Flights() []Edge {
	out := make([]Edge, len(g.flights))
	for i, e := range g.flights {
		out[i] = *e
	}

	return out
}

// CityCount returns the number of vertices. O(1).
func (g *Graph) CityCount() int {
	return len(g.order)
}

// FlightCount returns the number of logical flights (half the stored edges). O(1).
func (g *Graph) FlightCount() int {
	return len(g.flights)
}

// Empty reports whether the graph has no cities.
func (g *Graph) Empty() bool {
	return len(g.order) == 0
}
