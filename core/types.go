// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and NewGraph.

package core

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCityID indicates that a city identifier is the empty string.
	ErrEmptyCityID = errors.New("core: city ID is empty")

	// ErrNegativeWeight indicates a flight with a distance below zero.
	ErrNegativeWeight = errors.New("core: negative flight distance")

	// ErrLoopNotAllowed indicates a flight from a city to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a flight between two cities that are already connected.
	ErrDuplicateEdge = errors.New("core: flight already exists")

	// ErrCityNotFound indicates an operation referenced a city the graph does not know.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrEmptyGraph indicates an operation that needs at least one city.
	ErrEmptyGraph = errors.New("core: graph is empty")
)

// Edge is one directed half of a flight.
//
// The graph is undirected, so every flight is stored twice: From→To in the
// source's edge list and To→From in the destination's, with equal Weight.
type Edge struct {
	// From is the city this half leaves.
	From string

	// To is the city this half arrives at.
	To string

	// Weight is the flight distance. Never negative.
	Weight int64
}

// String renders the edge as "[From, To]".
func (e Edge) String() string {
	return "[" + e.From + ", " + e.To + "]"
}

// Vertex is a read-only view of a city and its outgoing edges. Vertices
// are created by AddEdge; the zero Vertex is not attached to any Graph.
type Vertex struct {
	id    string
	index int
	edges []*Edge // outgoing halves in insertion order
}

// ID returns the city name; unique within its Graph.
func (v *Vertex) ID() string { return v.id }

// Index returns the dense insertion position of the vertex (0..V-1).
func (v *Vertex) Index() int { return v.index }

// Degree returns the number of outgoing edges.
func (v *Vertex) Degree() int { return len(v.edges) }

// Edges returns copies of the outgoing halves in insertion order.
// Complexity: O(deg).
func (v *Vertex) Edges() []Edge {
	out := make([]Edge, len(v.edges))
	for i, e := range v.edges {
		out[i] = *e
	}

	return out
}

// String renders the vertex as its city ID.
func (v *Vertex) String() string {
	return v.id
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithLogger attaches a logger used for diagnostics such as rejected
// insertions. A nil logger is ignored.
func WithLogger(logger *zap.Logger) GraphOption {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Graph is an undirected, weighted graph of cities.
//
// vertices is the only lookup structure; order mirrors Vertex.Index so that
// order[v.index] == v for every vertex.
type Graph struct {
	vertices map[string]*Vertex // city ID → Vertex
	order    []*Vertex          // insertion order, indexed by Vertex.index
	flights  []*Edge            // forward halves in insertion order
	logger   *zap.Logger
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
