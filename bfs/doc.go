// Package bfs provides breadth-first search over a directed core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex,
//     following out-edges only (edge From→To).
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → hops from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook; returning an error aborts the search.
//   - WithStopAt ends the search once a target is discovered.
//   - WithFilterNeighbor skips edges by endpoint or weight.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//	A random walker can only reach vertices that are reachable along
//	out-edges, and never in fewer steps than the BFS hop count. The score
//	package uses both facts as a cheap structural diagnostic.
//
// Determinism
//
//	core.Graph.Neighbors returns ids in core order (numeric first), and BFS
//	enqueues neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Graph.Neighbors fails for any vertex.
//   - ctx.Err()               on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
