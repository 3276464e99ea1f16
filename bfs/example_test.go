package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hubwalk/bfs"
	"github.com/katalvlaran/hubwalk/core"
)

// ExampleBFS walks a small hub-and-spoke graph: leaves 4 and 5 point up to
// the hubs, hubs point at each other and at the mids.
func ExampleBFS() {
	g := core.NewGraph(core.WithLoops())
	edges := [][2]string{
		{"0", "1"}, {"0", "2"},
		{"1", "0"}, {"1", "3"},
		{"2", "4"}, {"3", "5"},
		{"4", "0"}, {"5", "1"},
	}
	for _, e := range edges {
		_ = g.AddEdge(e[0], e[1], 1)
	}

	res, err := bfs.BFS(g, "4")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	path, _ := res.PathTo("5")
	fmt.Println(path, res.Depth["5"])
	// Output:
	// [4 0 1 2 3 5]
	// [4 0 1 3 5] 4
}

// ExampleWithStopAt stops as soon as the target is discovered.
func ExampleWithStopAt() {
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		_ = g.AddEdge(core.NodeID(i), core.NodeID(i+1), 0.5)
	}

	res, _ := bfs.BFS(g, "0", bfs.WithStopAt("3"))
	hops, ok := res.Reached("3")
	fmt.Println(hops, ok, len(res.Depth))
	// Output:
	// 3 true 4
}
