package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hubwalk/bfs"
	"github.com/katalvlaran/hubwalk/core"
)

// chain builds 0→1→…→n-1 with unit weights.
func chain(n int) *core.Graph {
	g := core.NewGraph(core.WithLoops())
	for i := 0; i+1 < n; i++ {
		_ = g.AddEdge(core.NodeID(i), core.NodeID(i+1), 1)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "0"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	_ = g.AddVertex("0")
	if _, err := bfs.BFS(g, "0", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("0")
	res, err := bfs.BFS(g, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, res.Order)
	assert.Equal(t, 0, res.Depth["0"])
	assert.Equal(t, "0", res.Start)
}

// TestBFS_Directed checks that edges are followed only From→To.
func TestBFS_Directed(t *testing.T) {
	g := chain(4)

	res, err := bfs.BFS(g, "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, res.Order)
	_, ok := res.Reached("0")
	assert.False(t, ok)

	res, err = bfs.BFS(g, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, res.Order)
	d, ok := res.Reached("3")
	assert.True(t, ok)
	assert.Equal(t, 3, d)
}

// TestBFS_Layers covers the hub fan-out shape and checks depths.
func TestBFS_Layers(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_ = g.AddEdge("0", "0", 0.1) // hub self-loop
	_ = g.AddEdge("0", "1", 0.1)
	_ = g.AddEdge("0", "10", 0.1)
	_ = g.AddEdge("1", "2", 0.1)
	_ = g.AddEdge("10", "2", 0.1)
	_ = g.AddEdge("2", "0", 1)

	res, err := bfs.BFS(g, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "10", "2"}, res.Order)
	assert.Equal(t, map[string]int{"0": 0, "1": 1, "10": 1, "2": 2}, res.Depth)
	assert.Equal(t, "1", res.Parent["2"], "first discovery wins")

	path, err := res.PathTo("2")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, path)
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(3)
	// depth = 1 should only visit 0,1
	if res, _ := bfs.BFS(g, "0", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"0", "1"}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, "0", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"0", "1", "2"}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, "0", bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []string{"0", "1", "2"}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_StopAt ends the search once the target is discovered.
func TestBFS_StopAt(t *testing.T) {
	g := chain(100)

	res, err := bfs.BFS(g, "0", bfs.WithStopAt("5"))
	require.NoError(t, err)
	d, ok := res.Reached("5")
	require.True(t, ok)
	assert.Equal(t, 5, d)
	_, ok = res.Reached("6")
	assert.False(t, ok)

	// start equals target
	res, err = bfs.BFS(g, "3", bfs.WithStopAt("3"))
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, res.Order)
	assert.Len(t, res.Depth, 1)
}

// TestBFS_FilterNeighbor shows how filtering prunes light edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("0", "1", 1)
	_ = g.AddEdge("1", "2", 0.001)
	res, _ := bfs.BFS(g, "0",
		bfs.WithFilterNeighbor(func(_, _ string, w float64) bool {
			return w >= 0.01
		}),
	)
	assert.Equal(t, []string{"0", "1"}, res.Order)
}

// TestBFS_OnVisit asserts the hook fires in order and its error aborts the search.
func TestBFS_OnVisit(t *testing.T) {
	g := chain(3)

	var vis []string
	_, err := bfs.BFS(g, "0", bfs.WithOnVisit(func(id string, d int) error {
		vis = append(vis, fmt.Sprintf("%s@%d", id, d))
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"0@0", "1@1", "2@2"}, vis)

	boom := errors.New("boom")
	_, err = bfs.BFS(g, "0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "1" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("0")
	res, _ := bfs.BFS(g, "0")
	if path, _ := res.PathTo("0"); !reflect.DeepEqual(path, []string{"0"}) {
		t.Errorf("PathTo start: got %v; want [0]", path)
	}
	_, err := res.PathTo("9")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, "0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := chain(50)
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, "0"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
