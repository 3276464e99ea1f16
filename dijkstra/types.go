package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeCost indicates that the cost function produced a negative
	// or NaN cost for some edge.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNilCost indicates a nil CostFunc.
	ErrNilCost = errors.New("dijkstra: cost function is nil")
)

// CostFunc maps an edge to its traversal cost. w is the edge weight and
// total the sum of the walkable weights leaving the edge's source.
type CostFunc func(w, total float64) float64

// WeightCost uses the raw edge weight as cost.
func WeightCost(w, _ float64) float64 { return w }

// TransitionCost is −ln(w/total): the negative log of the probability that
// a weighted random walk at the source takes this edge. Summed along a path
// it gives −ln of the path's probability, so the cheapest path is the most
// likely one. Edges a walk can never take (w ≤ 0, NaN or infinite) cost +Inf;
// Dijkstra sums only walkable weights into total, so w ≤ total.
func TransitionCost(w, total float64) float64 {
	if !Walkable(w) || total <= 0 {
		return math.Inf(1)
	}
	return -math.Log(math.Min(w/total, 1))
}

// Walkable reports whether a random walk can follow an edge of weight w.
func Walkable(w float64) bool {
	return w > 0 && !math.IsInf(w, 1) && !math.IsNaN(w)
}

// Options configures Dijkstra.
type Options struct {
	Source      string   // starting vertex ID
	ReturnPath  bool     // whether to return the predecessor map
	MaxDistance float64  // vertices farther than this are not expanded
	Cost        CostFunc // edge cost; WeightCost by default
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the explored distance. Panics on a negative or NaN
// value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithCost sets the edge cost function. Panics on nil.
func WithCost(fn CostFunc) Option {
	if fn == nil {
		panic(ErrNilCost.Error())
	}
	return func(o *Options) {
		o.Cost = fn
	}
}

// DefaultOptions returns the defaults for source: no path, no distance cap,
// raw weights as costs.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
		Cost:        WeightCost,
	}
}
