// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/flightnet/bfs"
	"github.com/katalvlaran/flightnet/builder"
	"github.com/katalvlaran/flightnet/core"
)

// network builds a graph from from/to pairs, all with distance 1.
func network(t testing.TB, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1], 1); err != nil {
			t.Fatalf("AddEdge(%s, %s): %v", p[0], p[1], err)
		}
	}

	return g
}

// TestBreadthFirstSearch_Hub checks start first, then neighbours in insertion order.
func TestBreadthFirstSearch_Hub(t *testing.T) {
	g := network(t,
		[2]string{"Chicago", "New York"},
		[2]string{"Chicago", "Los Angeles"},
		[2]string{"Chicago", "San Francisco"},
	)
	got := bfs.BreadthFirstSearch(g, "Chicago")
	want := []string{"Chicago", "New York", "Los Angeles", "San Francisco"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BreadthFirstSearch mismatch (-want +got):\n%s", diff)
	}
}

// TestBreadthFirstSearch_LevelOrder ensures FIFO rather than lexicographic order.
func TestBreadthFirstSearch_LevelOrder(t *testing.T) {
	g := network(t,
		[2]string{"A", "Z"},
		[2]string{"A", "B"},
		[2]string{"Z", "C"},
		[2]string{"B", "D"},
		[2]string{"C", "E"},
	)
	got := bfs.BreadthFirstSearch(g, "A")
	want := []string{"A", "Z", "B", "C", "D", "E"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("level order mismatch (-want +got):\n%s", diff)
	}
}

// TestBreadthFirstSearch_UnknownStart returns an empty, non-nil slice.
func TestBreadthFirstSearch_UnknownStart(t *testing.T) {
	g := network(t, [2]string{"A", "B"})
	got := bfs.BreadthFirstSearch(g, "Nowhere")
	if got == nil || len(got) != 0 {
		t.Errorf("unknown start: got %#v; want empty non-nil slice", got)
	}
	if got := bfs.BreadthFirstSearch(nil, "A"); got == nil || len(got) != 0 {
		t.Errorf("nil graph: got %#v; want empty non-nil slice", got)
	}
	if got := bfs.BreadthFirstSearch(core.NewGraph(), "A"); got == nil || len(got) != 0 {
		t.Errorf("empty graph: got %#v; want empty non-nil slice", got)
	}
}

// TestBreadthFirstSearch_Components omits cities of other components.
func TestBreadthFirstSearch_Components(t *testing.T) {
	g := network(t,
		[2]string{"A", "B"},
		[2]string{"X", "Y"},
		[2]string{"B", "C"},
	)
	if diff := cmp.Diff([]string{"A", "B", "C"}, bfs.BreadthFirstSearch(g, "A")); diff != "" {
		t.Errorf("component A (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Y", "X"}, bfs.BreadthFirstSearch(g, "Y")); diff != "" {
		t.Errorf("component Y (-want +got):\n%s", diff)
	}
}

// TestBreadthFirstSearch_VisitsOnce checks exactly-once coverage on random networks.
func TestBreadthFirstSearch_VisitsOnce(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomConnected(40, 60))
		if err != nil {
			t.Fatal(err)
		}
		order := bfs.BreadthFirstSearch(g, "v0")
		if len(order) != g.CityCount() {
			t.Fatalf("seed %d: visited %d of %d cities", seed, len(order), g.CityCount())
		}
		seen := make(map[string]bool, len(order))
		for _, id := range order {
			if seen[id] {
				t.Fatalf("seed %d: %s visited twice", seed, id)
			}
			seen[id] = true
		}
	}
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := network(t, [2]string{"A", "B"})
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	res, err := bfs.BFS(g, "missing")
	if err != nil || len(res.Order) != 0 {
		t.Errorf("missing start: got %v, %v; want empty result, nil", res.Order, err)
	}
}

// TestBFS_DepthAndParent covers Depth, Parent and PathTo on a cycle.
func TestBFS_DepthAndParent(t *testing.T) {
	// A–B–C–D–A
	g := network(t,
		[2]string{"A", "B"},
		[2]string{"B", "C"},
		[2]string{"C", "D"},
		[2]string{"D", "A"},
	)
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	wantDepth := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if diff := cmp.Diff(wantDepth, res.Depth); diff != "" {
		t.Errorf("Depth (-want +got):\n%s", diff)
	}
	wantParent := map[string]string{"B": "A", "D": "A", "C": "B"}
	if diff := cmp.Diff(wantParent, res.Parent); diff != "" {
		t.Errorf("Parent (-want +got):\n%s", diff)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, path); diff != "" {
		t.Errorf("PathTo(C) (-want +got):\n%s", diff)
	}
	if _, err := res.PathTo("Z"); !errors.Is(err, bfs.ErrNotReached) {
		t.Errorf("PathTo(Z): want ErrNotReached, got %v", err)
	}
}

// TestBFS_MaxDepth limits exploration to the given hop count.
func TestBFS_MaxDepth(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	if err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"v0", "v1", "v2"}, res.Order); diff != "" {
		t.Errorf("MaxDepth(2) (-want +got):\n%s", diff)
	}
}

// TestBFS_FilterNeighbor skips a pruned city and everything behind it.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := network(t,
		[2]string{"Hub", "A"},
		[2]string{"Hub", "B"},
		[2]string{"B", "C"},
	)
	res, err := bfs.BFS(g, "Hub", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "B" }))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Hub", "A"}, res.Order); diff != "" {
		t.Errorf("filter (-want +got):\n%s", diff)
	}
}

// TestBFS_Hooks verifies hook order and OnVisit abort.
func TestBFS_Hooks(t *testing.T) {
	g := network(t, [2]string{"A", "B"}, [2]string{"A", "C"})

	var enqueued []string
	stop := errors.New("stop")
	res, err := bfs.BFS(g, "A",
		bfs.WithOnEnqueue(func(id string, _ int) { enqueued = append(enqueued, id) }),
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "B" {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, enqueued); diff != "" {
		t.Errorf("enqueue order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A", "B"}, res.Order); diff != "" {
		t.Errorf("partial order (-want +got):\n%s", diff)
	}
}

// TestBFS_Cancel stops on a cancelled context.
func TestBFS_Cancel(t *testing.T) {
	g := network(t, [2]string{"A", "B"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
