package core_test

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/hubwalk/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// Adding edges auto-adds vertices; edges are one-way.
	_ = g.AddEdge("0", "1", 0.1)
	_ = g.AddEdge("0", "2", 1)
	_ = g.AddEdge("2", "0", 1)

	nb, _ := g.Neighbors("0")
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Neighbors of 0:", nb)
	fmt.Println("Edge 1→0 exists?", g.HasEdge("1", "0"))
	fmt.Println("Edges:", g.EdgeCount())

	// Output:
	// Vertices: [0 1 2]
	// Neighbors of 0: [1 2]
	// Edge 1→0 exists? false
	// Edges: 3
}

// ExampleGraph_MarshalJSON shows the on-disk shape shared with the evaluator.
func ExampleGraph_MarshalJSON() {
	g := core.NewGraph()
	_ = g.AddEdge("1", "0", 0.5)
	_ = g.AddEdge("1", "2", 0.5)
	_ = g.AddVertex("0")
	_ = g.AddEdge("2", "1", 1)

	raw, _ := json.MarshalIndent(g, "", "  ")
	fmt.Println(string(raw))

	// Output:
	// {
	//   "0": {},
	//   "1": {
	//     "0": 0.5,
	//     "2": 0.5
	//   },
	//   "2": {
	//     "1": 1
	//   }
	// }
}
