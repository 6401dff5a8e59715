// SPDX-License-Identifier: MIT

// Package flightnet models an airline route network as an undirected,
// weighted graph of cities and answers the questions one asks of it.
//
// What is in the box?
//
//	core/          — Graph, Vertex, Edge: flights inserted one at a time,
//	                 both directed halves stored, invalid flights rejected
//	dijkstra/      — shortest distance and route between two cities
//	prim_kruskal/  — minimum spanning tree (Prim) and spanning forest (Kruskal)
//	bfs/           — breadth-first traversal in level order
//	dfs/           — depth-first traversal and connected components
//	builder/       — deterministic network generators for tests and benchmarks
//	netfile/       — YAML, HCL and JSON network files
//	cmd/flightnet  — command-line front end
//
// Quick start
//
//	g := core.NewGraph()
//	_ = g.AddEdge("Chicago", "New York", 10)
//	_ = g.AddEdge("Chicago", "Los Angeles", 20)
//	_ = g.AddEdge("Los Angeles", "San Francisco", 60)
//
//	d, _ := dijkstra.ShortestDistance(g, "Chicago", "San Francisco") // 80
//	mst, total, _ := prim_kruskal.MinimumSpanningTree(g)             // 3 flights, 90
//	order := bfs.BreadthFirstSearch(g, "Chicago")
//
// Weights are non-negative int64 distances. A Graph is not safe for
// concurrent mutation; callers sharing one must serialize access.
package flightnet
