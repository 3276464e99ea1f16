// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy of the Graph: flags, vertices and weighted edges.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		edgeCount:  g.edgeCount,
		adjacency:  make(map[string]map[string]float64, len(g.adjacency)),
	}
	for from, out := range g.adjacency {
		inner := make(map[string]float64, len(out))
		for to, w := range out {
			inner[to] = w
		}
		clone.adjacency[from] = inner
	}

	return clone
}
