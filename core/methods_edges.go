// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors() and Edges() follow CompareIDs order (source first, then target).
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge sets the directed edge from→to to weight w, creating missing
// endpoints. An existing edge has its weight overwritten and the edge count
// is unchanged.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrBadWeight if w is NaN.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if math.IsNaN(w) {
		return fmt.Errorf("AddEdge(%s→%s): %w", from, to, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(from)
	g.ensureVertex(to)
	if _, exists := g.adjacency[from][to]; !exists {
		g.edgeCount++
	}
	g.adjacency[from][to] = w

	return nil
}

// RemoveEdge deletes the edge from→to.
// Returns ErrEdgeNotFound if it does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adjacency[from][to]; !ok {
		return fmt.Errorf("RemoveEdge(%s→%s): %w", from, to, ErrEdgeNotFound)
	}
	delete(g.adjacency[from], to)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[from][to]

	return w, ok
}

// Neighbors returns the targets of id's outgoing edges in CompareIDs order.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	out, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("Neighbors(%s): %w", id, ErrVertexNotFound)
	}
	ids := make([]string, 0, len(out))
	for to := range out {
		ids = append(ids, to)
	}
	g.mu.RUnlock()
	SortIDs(ids)

	return ids, nil
}

// EdgeCount returns the number of directed edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns a snapshot of every edge ordered by (From, To).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	edges := make([]Edge, 0, g.edgeCount)
	for from, out := range g.adjacency {
		for to, w := range out {
			edges = append(edges, Edge{From: from, To: to, Weight: w})
		}
	}
	g.mu.RUnlock()
	sort.Slice(edges, func(i, j int) bool {
		if c := CompareIDs(edges[i].From, edges[j].From); c != 0 {
			return c < 0
		}
		return CompareIDs(edges[i].To, edges[j].To) < 0
	})

	return edges
}
