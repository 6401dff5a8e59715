// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/flightnet/bfs"
	"github.com/katalvlaran/flightnet/builder"
)

func BenchmarkBreadthFirstSearch(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)},
		builder.RandomConnected(5000, 15000))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.BreadthFirstSearch(g, "v0")
	}
}
