package constraints_test

import (
	"fmt"

	"github.com/katalvlaran/hubwalk/constraints"
	"github.com/katalvlaran/hubwalk/core"
)

func ExampleVerify() {
	g := core.NewGraph()
	_ = g.AddEdge("0", "1", 1)
	_ = g.AddEdge("0", "2", 1)
	_ = g.AddEdge("1", "0", 12)

	r := constraints.Verify(g, constraints.Limits{NodeCount: 3, MaxEdgesPerNode: 1, MaxTotalEdges: 10})
	fmt.Println(r.OK())
	for _, v := range r.Violations {
		fmt.Printf("%s: %s\n", v.Category, v.Message)
	}
	// Output:
	// false
	// node_edges: node 0 has 2 edges, exceeding limit of 1
	// weight_range: edge 1 -> 0 has invalid weight 12
}
