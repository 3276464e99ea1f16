// Package core defines the directed weighted Graph and its Edge value type.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a NaN weight. Out-of-range but finite weights are
	// accepted and left to the constraints package.
	ErrBadWeight = errors.New("core: weight is NaN")

	// ErrDecode indicates a graph document that is not an object of objects
	// with numeric weights.
	ErrDecode = errors.New("core: malformed graph document")
)

// Edge is a value snapshot of one directed edge.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the unnormalised transition weight.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the vertex catalog for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[string]map[string]float64, n)
		}
	}
}

// Graph is a directed weighted graph keyed by string vertex IDs.
//
// adjacency[from][to] = weight. Every vertex owns a (possibly empty) inner
// map, so vertex presence is key presence in adjacency.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	allowLoops bool // allow self-loops

	edgeCount int
	adjacency map[string]map[string]float64
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.adjacency == nil {
		g.adjacency = make(map[string]map[string]float64)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
