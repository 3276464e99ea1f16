// Package score computes a structural diagnostic of a graph against recorded
// query outcomes: for each query, is its target reachable from the walk's
// starting vertex, in how many hops at best, and how likely is the likeliest
// weighted walk that gets there.
//
// No random walk is simulated. Reachability is necessary for a walk to
// succeed, and the BFS hop count is a lower bound on its path length.
package score

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/hubwalk/bfs"
	"github.com/katalvlaran/hubwalk/core"
	"github.com/katalvlaran/hubwalk/dijkstra"
	"github.com/katalvlaran/hubwalk/results"
)

// Options tunes Score.
type Options struct {
	// MaxDepth bounds the hop count; 0 means unlimited.
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth"`
}

// Metrics summarises one graph against one set of records.
type Metrics struct {
	// Queries is the number of records given.
	Queries int `json:"queries"`
	// Scored counts records with a non-empty path.
	Scored int `json:"scored"`
	// Reachable counts scored records whose target is reachable from Path[0].
	Reachable int `json:"reachable"`
	// ReachableRate is Reachable / Scored, or 0 when nothing was scored.
	ReachableRate float64 `json:"reachable_rate"`
	// MeanHops is the mean BFS distance over reachable records.
	MeanHops float64 `json:"mean_hops"`
	// MeanWalkProb is the mean, over reachable records, of the probability
	// of the single likeliest weighted walk from start to target.
	MeanWalkProb float64 `json:"mean_walk_prob"`

	// PriorSuccessRate and PriorMeanPathLength restate the recorded walks.
	PriorSuccessRate    float64 `json:"prior_success_rate"`
	PriorMeanPathLength float64 `json:"prior_mean_path_length"`
}

// Score evaluates g against recs. One BFS and one Dijkstra over transition
// costs are run per distinct start vertex. A start or target absent from g
// counts as unreachable.
//
// Complexity: O(S·(V + E) log V + R) for S distinct starts and R records.
func Score(ctx context.Context, g *core.Graph, recs []results.Record, opts Options) (Metrics, error) {
	if g == nil {
		return Metrics{}, fmt.Errorf("score: %w", bfs.ErrGraphNil)
	}

	prior := results.Summarize(recs)
	m := Metrics{
		Queries:             len(recs),
		PriorSuccessRate:    prior.SuccessRate,
		PriorMeanPathLength: prior.MeanPathLength,
	}

	trees := make(map[string]*bfs.BFSResult)
	likely := make(map[string]map[string]float64)
	hops, prob := 0, 0.0
	for _, r := range recs {
		start := r.Start()
		if start == "" {
			continue
		}
		m.Scored++
		if !g.HasVertex(start) {
			continue
		}

		tree, ok := trees[start]
		if !ok {
			var err error
			tree, err = bfs.BFS(g, start, bfs.WithContext(ctx), bfs.WithMaxDepth(opts.MaxDepth))
			if err != nil {
				return Metrics{}, fmt.Errorf("score: bfs from %q: %w", start, err)
			}
			trees[start] = tree
		}
		d, ok := tree.Reached(r.Target)
		if !ok {
			continue
		}
		m.Reachable++
		hops += d

		cost, ok := likely[start]
		if !ok {
			var err error
			cost, _, err = dijkstra.Dijkstra(g, dijkstra.Source(start), dijkstra.WithCost(dijkstra.TransitionCost))
			if err != nil {
				return Metrics{}, fmt.Errorf("score: walk costs from %q: %w", start, err)
			}
			likely[start] = cost
		}
		prob += math.Exp(-cost[r.Target])
	}

	if m.Scored > 0 {
		m.ReachableRate = float64(m.Reachable) / float64(m.Scored)
	}
	if m.Reachable > 0 {
		m.MeanHops = float64(hops) / float64(m.Reachable)
		m.MeanWalkProb = prob / float64(m.Reachable)
	}
	return m, nil
}
