// Package dijkstra computes cheapest paths over the directed, weighted
// hubwalk graph.
//
// Costs come from a CostFunc applied to each edge. WeightCost uses the raw
// weight. TransitionCost turns weights into random-walk transition
// probabilities and takes −ln, so the cheapest path is the path a weighted
// random walk is most likely to follow, and exp(−dist) is its probability.
//
// Options:
//
//   - Source(id): starting vertex, required.
//   - WithReturnPath(): also return the predecessor map; see PathTo.
//   - WithMaxDistance(x): do not expand vertices farther than x.
//   - WithCost(fn): edge cost function.
//
// Errors:
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound for bad inputs.
//   - ErrNegativeCost when the cost function yields a negative or NaN cost.
//   - WithMaxDistance and WithCost panic on meaningless arguments.
//
// Complexity: O((V + E) log V) time, O(V + E) space with a lazy
// decrease-key min-heap.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source("0"),
//	    dijkstra.WithCost(dijkstra.TransitionCost),
//	    dijkstra.WithReturnPath(),
//	)
//	if err != nil {
//	    return err
//	}
//	p := math.Exp(-dist["42"])      // probability of the likeliest walk 0→42
//	path := dijkstra.PathTo(prev, "0", "42")
package dijkstra
