// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees of the flight network.
//
// Given the undirected, weighted network G = (V, E), a minimum spanning tree
// of a connected component is a set of flights that connects every city of
// that component, has no cycle, and has the smallest possible total
// distance.
//
// Algorithms Provided
//
//   - MinimumSpanningTree(g) ([]core.Edge, int64, error)
//     Prim rooted at the first city inserted into g. Covers only that
//     city's connected component; other components are omitted, which is
//     documented behavior rather than an error.
//
//   - Prim(g, root) ([]core.Edge, int64, error)
//     Grows a tree from root. A min-heap holds candidate edges ordered by
//     distance, equal distances in push order. Entries whose far city is
//     already in the tree are discarded when popped (lazy deletion).
//     Time O(E log E), space O(V + E).
//
//   - Kruskal(g) ([]core.Edge, int64, error)
//     Sorts all flights (stable, so ties keep insertion order) and merges
//     components with union-find. Returns a minimum spanning forest when g
//     is disconnected. Time O(E log E + α(V)·E).
//
//   - Compute(g, opts...) dispatches on MSTOptions.Method.
//
// Both algorithms use core.Vertex.Index for their visited sets, so no
// per-call maps keyed by city name are built.
//
// Errors:
//
//	ErrNilGraph      – g is nil
//	ErrEmptyGraph    – g has no cities (also matches core.ErrEmptyGraph)
//	ErrEmptyRoot     – Prim with root ""
//	ErrCityNotFound  – Prim with an unknown root (same value as core.ErrCityNotFound)
//	ErrUnknownMethod – Compute with an unsupported Method
package prim_kruskal
