// SPDX-License-Identifier: MIT

// Package builder assembles deterministic flight networks for tests,
// benchmarks and the demo CLI.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a core.Graph,
// resolves the builder configuration and runs each Constructor in order:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightRange(1, 100)},
//	    builder.RandomConnected(50, 80),
//	)
//
// Constructors:
//
//	Path(n)                 – v0—v1—…—v(n-1)
//	Star(n)                 – hub "Center" with n-1 spokes
//	Complete(n)             – every unordered pair once
//	RandomConnected(n, k)   – random spanning tree plus k extra flights
//
// Determinism: the same options, seed and constructor order always yield the
// same graph, including insertion order.
package builder
