package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hubwalk/core"
)

// Dijkstra computes the cheapest distance from Options.Source to every
// vertex of g along directed out-edges.
//
// Returns:
//
//   - dist: vertex ID → cost of the cheapest path (+Inf if unreachable).
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means the cheapest path to v ends with u→v; "" for the
//     source and for unreachable vertices.
//
// Validation order: ErrEmptySource, ErrNilGraph, ErrVertexNotFound. A cost
// function returning a negative or NaN value fails with ErrNegativeCost.
//
// Ties are broken by vertex order (core.CompareIDs), so the result is
// deterministic.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		totals:  make(map[string]float64),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the vertex sequence source…target from prev. It returns
// nil when target was not reached.
func PathTo(prev map[string]string, source, target string) []string {
	if target == source {
		return []string{source}
	}
	if prev[target] == "" {
		return nil
	}
	var rev []string
	for v := target; v != ""; v = prev[v] {
		rev = append(rev, v)
		if v == source {
			break
		}
	}
	if rev[len(rev)-1] != source {
		return nil
	}
	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	totals  map[string]float64 // out-weight sums, filled lazily
	pq      nodePQ
}

func (r *runner) init(vertices []string) {
	inf := math.Inf(1)
	for _, v := range vertices {
		r.dist[v] = inf
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unfinished vertex until the heap is empty or the
// closest entry lies beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every out-neighbour of u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}
	total := r.outWeight(u, neighbors)

	for _, v := range neighbors {
		w, _ := r.g.Weight(u, v)
		c := r.options.Cost(w, total)
		if c < 0 || math.IsNaN(c) {
			return fmt.Errorf("%w: edge %s→%s weight=%g cost=%g", ErrNegativeCost, u, v, w, c)
		}
		if math.IsInf(c, 1) {
			continue
		}

		d := r.dist[u] + c
		if d > r.options.MaxDistance || d >= r.dist[v] {
			continue
		}
		r.dist[v] = d
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: d})
	}

	return nil
}

func (r *runner) outWeight(u string, neighbors []string) float64 {
	if t, ok := r.totals[u]; ok {
		return t
	}
	var t float64
	for _, v := range neighbors {
		if w, _ := r.g.Weight(u, v); Walkable(w) {
			t += w
		}
	}
	r.totals[u] = t
	return t
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem by distance, then by vertex order. Old
// entries are left in place and skipped when popped (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return core.CompareIDs(pq[i].id, pq[j].id) < 0
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
