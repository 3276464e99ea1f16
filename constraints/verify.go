package constraints

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/hubwalk/core"
)

// Verify runs all four checks against g and collects every finding. Unlike
// a first-failure check, a graph that fails several categories reports all
// of them. g is never mutated.
//
// Complexity: O(V + E) plus O(V log V) for the ordered vertex walk.
func Verify(g *core.Graph, limits Limits) Report {
	r := Report{
		Limits:     limits,
		Nodes:      g.VertexCount(),
		Edges:      g.EdgeCount(),
		Violations: make([]Violation, 0),
		CheckedAt:  time.Now(),
	}
	_, r.MaxOutDegree = g.MaxOutDegree()

	if r.Edges > limits.MaxTotalEdges {
		r.Violations = append(r.Violations, Violation{
			Category: TotalEdges,
			Got:      float64(r.Edges),
			Limit:    float64(limits.MaxTotalEdges),
			Message:  fmt.Sprintf("graph has %d edges, exceeding limit of %d", r.Edges, limits.MaxTotalEdges),
		})
	}

	vertices := g.Vertices()
	for _, id := range vertices {
		if d := g.OutDegree(id); d > limits.MaxEdgesPerNode {
			r.Violations = append(r.Violations, Violation{
				Category: NodeEdges,
				Node:     id,
				Got:      float64(d),
				Limit:    float64(limits.MaxEdgesPerNode),
				Message:  fmt.Sprintf("node %s has %d edges, exceeding limit of %d", id, d, limits.MaxEdgesPerNode),
			})
		}
	}

	r.Missing, r.Unexpected = diffNodeSet(g, vertices, limits.NodeCount)
	if len(r.Missing) > 0 || len(r.Unexpected) > 0 {
		r.Violations = append(r.Violations, Violation{
			Category: NodeSet,
			Got:      float64(r.Nodes),
			Limit:    float64(limits.NodeCount),
			Message: fmt.Sprintf("graph has %d nodes, should have %d (%d missing, %d unexpected)",
				r.Nodes, limits.NodeCount, len(r.Missing), len(r.Unexpected)),
		})
	}

	for _, e := range g.Edges() {
		if !validWeight(e.Weight) {
			r.Violations = append(r.Violations, Violation{
				Category: WeightRange,
				Node:     e.From,
				Target:   e.To,
				Got:      e.Weight,
				Limit:    MaxWeight,
				Message:  fmt.Sprintf("edge %s -> %s has invalid weight %g", e.From, e.To, e.Weight),
			})
		}
	}

	return r
}

// validWeight reports MinWeight < w ≤ MaxWeight; NaN fails both comparisons.
func validWeight(w float64) bool {
	return w > MinWeight && w <= MaxWeight && !math.IsNaN(w)
}

// diffNodeSet compares the vertex ids against "0".."n-1". Both results are
// in core id order.
func diffNodeSet(g *core.Graph, vertices []string, n int) (missing, unexpected []string) {
	for i := 0; i < n; i++ {
		if id := core.NodeID(i); !g.HasVertex(id) {
			missing = append(missing, id)
		}
	}
	for _, id := range vertices {
		if idx, ok := core.ParseNodeID(id); !ok || idx >= n || core.NodeID(idx) != id {
			unexpected = append(unexpected, id)
		}
	}
	return missing, unexpected
}

// Check verifies g and logs one warning per failed category. It returns
// Report.OK() and never blocks: callers decide whether to proceed.
func Check(logger *slog.Logger, g *core.Graph, limits Limits) bool {
	r := Verify(g, limits)
	Log(logger, r)
	return r.OK()
}

// maxLoggedNodes caps the id lists attached to a warning.
const maxLoggedNodes = 10

// Log writes r to logger: an info line on success, otherwise one warning
// per failed category.
func Log(logger *slog.Logger, r Report) {
	if logger == nil {
		logger = slog.Default()
	}
	if r.OK() {
		logger.Info("graph satisfies constraints",
			"nodes", r.Nodes,
			"edges", r.Edges,
			"max_out_degree", r.MaxOutDegree,
		)
		return
	}

	for _, c := range r.Categories() {
		vs := r.ByCategory(c)
		attrs := []any{
			"category", c.String(),
			"violations", len(vs),
			"detail", vs[0].Message,
		}
		switch c {
		case NodeEdges, WeightRange:
			nodes := make([]string, 0, maxLoggedNodes)
			for _, v := range vs {
				if len(nodes) == maxLoggedNodes {
					break
				}
				nodes = append(nodes, v.Node)
			}
			attrs = append(attrs, "nodes", nodes)
		case NodeSet:
			attrs = append(attrs, "missing", head(r.Missing), "unexpected", head(r.Unexpected))
		}
		logger.Warn("constraint violated", attrs...)
	}
}

func head(ids []string) []string {
	if len(ids) > maxLoggedNodes {
		return ids[:maxLoggedNodes]
	}
	return ids
}
