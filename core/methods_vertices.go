// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in CompareIDs order.
//
// Concurrency:
//   - Catalog and adjacency share g.mu.

package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex bootstraps the adjacency bucket for id. Caller holds g.mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]float64)
	}
}

// HasVertex reports whether id exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Vertices returns all vertex IDs in CompareIDs order.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	SortIDs(ids)

	return ids
}

// OutDegree returns the number of outgoing edges of id (0 if id is absent).
// Complexity: O(1).
func (g *Graph) OutDegree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// MaxOutDegree returns the vertex with the most outgoing edges and that
// count. Ties resolve to the smallest ID; an empty graph yields ("", 0).
// Complexity: O(V·log V).
func (g *Graph) MaxOutDegree() (string, int) {
	var (
		best    string
		bestDeg = -1
	)
	for _, id := range g.Vertices() {
		if d := g.OutDegree(id); d > bestDeg {
			best, bestDeg = id, d
		}
	}
	if bestDeg < 0 {
		return "", 0
	}

	return best, bestDeg
}
