// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/flightnet/builder"
	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/prim_kruskal"
)

func network(t testing.TB, flights ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, f := range flights {
		require.NoError(t, g.AddEdge(f.From, f.To, f.Weight))
	}

	return g
}

// buildTriangle: A—B(1), B—C(2), A—C(3). MST = {A—B, B—C}, weight 3.
func buildTriangle(t testing.TB) *core.Graph {
	return network(t,
		core.Edge{From: "A", To: "B", Weight: 1},
		core.Edge{From: "B", To: "C", Weight: 2},
		core.Edge{From: "A", To: "C", Weight: 3},
	)
}

func fmtEdges(edges []core.Edge) string {
	return fmt.Sprint(edges)
}

// pairs normalizes edges into "min-max" keys.
func pairs(edges []core.Edge) map[string]bool {
	out := make(map[string]bool, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		out[u+"-"+v] = true
	}

	return out
}

func TestMinimumSpanningTree_Hub(t *testing.T) {
	g := network(t, core.Edge{From: "Chicago", To: "New York", Weight: 10})

	mst, total, err := prim_kruskal.MinimumSpanningTree(g)
	require.NoError(t, err)
	assert.Equal(t, "[[Chicago, New York]]", fmtEdges(mst))
	assert.Equal(t, int64(10), total)

	require.NoError(t, g.AddEdge("Los Angeles", "Chicago", 20))
	require.NoError(t, g.AddEdge("Phoenix", "Chicago", 40))
	mst, total, err = prim_kruskal.MinimumSpanningTree(g)
	require.NoError(t, err)
	assert.Equal(t, "[[Chicago, New York] [Chicago, Los Angeles] [Chicago, Phoenix]]", fmtEdges(mst))
	assert.Equal(t, int64(70), total)
	sum, err := prim_kruskal.TotalWeight(mst)
	require.NoError(t, err)
	assert.Equal(t, total, sum)
}

func TestMST_TotalOverflow(t *testing.T) {
	g := network(t,
		core.Edge{From: "A", To: "B", Weight: math.MaxInt64},
		core.Edge{From: "B", To: "C", Weight: math.MaxInt64},
	)
	want := "[[A, B] [B, C]]"

	mst, total, err := prim_kruskal.MinimumSpanningTree(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrTotalOverflow)
	assert.Equal(t, want, fmtEdges(mst))
	assert.Equal(t, int64(math.MaxInt64), total)

	forest, total, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrTotalOverflow)
	assert.Equal(t, want, fmtEdges(forest))
	assert.Equal(t, int64(math.MaxInt64), total)

	single, err := prim_kruskal.TotalWeight(mst[:1])
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), single)
}

func TestMinimumSpanningTree_Errors(t *testing.T) {
	_, _, err := prim_kruskal.MinimumSpanningTree(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	edges, total, err := prim_kruskal.MinimumSpanningTree(core.NewGraph())
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestPrim_Validation(t *testing.T) {
	g := buildTriangle(t)

	_, _, err := prim_kruskal.Prim(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	_, _, err = prim_kruskal.Prim(g, "Z")
	assert.ErrorIs(t, err, prim_kruskal.ErrCityNotFound)
	assert.ErrorIs(t, err, core.ErrCityNotFound)

	_, _, err = prim_kruskal.Prim(nil, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	_, _, err = prim_kruskal.Prim(core.NewGraph(), "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)
}

func TestPrim_Triangle(t *testing.T) {
	mst, total, err := prim_kruskal.Prim(buildTriangle(t), "C")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, mst, 2)
	assert.Equal(t, map[string]bool{"A-B": true, "B-C": true}, pairs(mst))
}

func TestKruskal_Triangle(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal(buildTriangle(t))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, map[string]bool{"A-B": true, "B-C": true}, pairs(mst))
}

func TestDisconnected(t *testing.T) {
	g := network(t,
		core.Edge{From: "A", To: "B", Weight: 4},
		core.Edge{From: "B", To: "C", Weight: 1},
		core.Edge{From: "X", To: "Y", Weight: 7},
	)

	// Prim covers the root component only.
	mst, total, err := prim_kruskal.MinimumSpanningTree(g)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"A-B": true, "B-C": true}, pairs(mst))
	assert.Equal(t, int64(5), total)

	mst, total, err = prim_kruskal.Prim(g, "Y")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: "Y", To: "X", Weight: 7}}, mst)
	assert.Equal(t, int64(7), total)

	// Kruskal spans every component.
	forest, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, forest, 3)
	assert.Equal(t, int64(12), total)
}

func TestPrim_StaleEntriesDiscarded(t *testing.T) {
	// C is pushed twice (via A and via B); the heavier entry must be dropped.
	g := network(t,
		core.Edge{From: "A", To: "C", Weight: 9},
		core.Edge{From: "A", To: "B", Weight: 1},
		core.Edge{From: "B", To: "C", Weight: 2},
	)
	mst, total, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}, mst)
	assert.Equal(t, int64(3), total)
}

func TestCompute(t *testing.T) {
	g := buildTriangle(t)

	_, total, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	mst, _, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot("C"))
	require.NoError(t, err)
	assert.Equal(t, "C", mst[0].From)

	_, total, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// bruteForceMST enumerates every (V-1)-subset of flights and returns the
// lightest one that spans all cities.
func bruteForceMST(g *core.Graph) int64 {
	flights := g.Flights()
	n := g.CityCount()
	best := int64(math.MaxInt64)

	var choose func(start int, picked []core.Edge)
	choose = func(start int, picked []core.Edge) {
		if len(picked) == n-1 {
			if spans(g, picked) {
				if w, err := prim_kruskal.TotalWeight(picked); err == nil && w < best {
					best = w
				}
			}
			return
		}
		for i := start; i < len(flights); i++ {
			choose(i+1, append(picked, flights[i]))
		}
	}
	choose(0, make([]core.Edge, 0, n-1))

	return best
}

// spans reports whether edges connect every city of g.
func spans(g *core.Graph, edges []core.Edge) bool {
	parent := make(map[string]string)
	var find func(string) string
	find = func(u string) string {
		p, ok := parent[u]
		if !ok || p == u {
			return u
		}
		r := find(p)
		parent[u] = r
		return r
	}
	for _, e := range edges {
		parent[find(e.From)] = find(e.To)
	}
	root := find(g.Order()[0])
	for _, id := range g.Order() {
		if find(id) != root {
			return false
		}
	}

	return true
}

func TestMST_MatchesBruteForce(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4, 5, 6} {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightRange(1, 20)},
			builder.Complete(5),
		)
		require.NoError(t, err)

		want := bruteForceMST(g)
		mst, total, err := prim_kruskal.MinimumSpanningTree(g)
		require.NoError(t, err)
		assert.Len(t, mst, g.CityCount()-1, "seed %d", seed)
		assert.True(t, spans(g, mst), "seed %d", seed)
		assert.Equal(t, want, total, "seed %d: prim", seed)

		_, kTotal, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.Equal(t, want, kTotal, "seed %d: kruskal", seed)
	}
}

func TestMST_MatchesGonum(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightRange(1, 100)},
		builder.RandomConnected(60, 120),
	)
	require.NoError(t, err)

	oracle := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, f := range g.Flights() {
		u, _ := g.Vertex(f.From)
		v, _ := g.Vertex(f.To)
		oracle.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(u.Index()),
			T: simple.Node(v.Index()),
			W: float64(f.Weight),
		})
	}
	want := path.Prim(simple.NewWeightedUndirectedGraph(0, math.Inf(1)), oracle)

	mst, total, err := prim_kruskal.MinimumSpanningTree(g)
	require.NoError(t, err)
	assert.Len(t, mst, g.CityCount()-1)
	assert.Equal(t, want, float64(total))

	_, kTotal, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, total, kTotal)
}
