// Package metrics records the gauges of one optimisation run in a private
// Prometheus registry and exports them in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/hubwalk/constraints"
	"github.com/katalvlaran/hubwalk/core"
	"github.com/katalvlaran/hubwalk/score"
)

// Graph labels.
const (
	GraphInitial   = "initial"
	GraphOptimized = "optimized"
)

// Registry holds all metrics of a run.
type Registry struct {
	// Graph shape
	GraphNodes        *prometheus.GaugeVec
	GraphEdges        *prometheus.GaugeVec
	GraphMaxOutDegree *prometheus.GaugeVec

	// Constraint checks
	ConstraintsOK        prometheus.Gauge
	ConstraintViolations *prometheus.GaugeVec

	// Structural score
	ScoreReachableRate *prometheus.GaugeVec
	ScoreMeanHops      *prometheus.GaugeVec
	ScoreMeanWalkProb  *prometheus.GaugeVec

	// Run
	RunInfo              *prometheus.GaugeVec
	BuildDuration        prometheus.Gauge
	LastSuccessTimestamp prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a Registry backed by a fresh prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initGraphMetrics()
	r.initRunMetrics()
	return r
}

func (r *Registry) initGraphMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hubwalk_graph_nodes",
			Help: "Number of vertices in the graph",
		},
		[]string{"graph"},
	)

	r.GraphEdges = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hubwalk_graph_edges",
			Help: "Number of directed edges in the graph",
		},
		[]string{"graph"},
	)

	r.GraphMaxOutDegree = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hubwalk_graph_max_out_degree",
			Help: "Largest out-degree of any vertex",
		},
		[]string{"graph"},
	)

	r.ScoreReachableRate = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hubwalk_score_reachable_rate",
			Help: "Fraction of recorded queries whose target is reachable from the walk start",
		},
		[]string{"graph"},
	)

	r.ScoreMeanHops = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hubwalk_score_mean_hops",
			Help: "Mean BFS hop count over reachable queries",
		},
		[]string{"graph"},
	)

	r.ScoreMeanWalkProb = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hubwalk_score_mean_walk_probability",
			Help: "Mean probability of the likeliest weighted walk over reachable queries",
		},
		[]string{"graph"},
	)
}

func (r *Registry) initRunMetrics() {
	r.ConstraintsOK = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hubwalk_constraints_ok",
			Help: "1 if the optimized graph passed every constraint check, 0 otherwise",
		},
	)

	r.ConstraintViolations = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hubwalk_constraint_violations",
			Help: "Number of constraint violations by category",
		},
		[]string{"category"},
	)

	r.RunInfo = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hubwalk_run_info",
			Help: "Identity of the run; always 1",
		},
		[]string{"run_id", "strategy", "seed"},
	)

	r.BuildDuration = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hubwalk_build_duration_seconds",
			Help: "Wall time spent constructing the optimized graph",
		},
	)

	r.LastSuccessTimestamp = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hubwalk_last_success_timestamp_seconds",
			Help: "Unix time at which the optimized graph was saved",
		},
	)
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// RecordGraph sets the shape gauges for label.
func (r *Registry) RecordGraph(label string, g *core.Graph) {
	_, maxDeg := g.MaxOutDegree()
	r.GraphNodes.WithLabelValues(label).Set(float64(g.VertexCount()))
	r.GraphEdges.WithLabelValues(label).Set(float64(g.EdgeCount()))
	r.GraphMaxOutDegree.WithLabelValues(label).Set(float64(maxDeg))
}

// RecordReport sets the constraint gauges. Every category is exported, so
// a passing run shows explicit zeros.
func (r *Registry) RecordReport(rep constraints.Report) {
	for _, c := range []constraints.Category{
		constraints.TotalEdges,
		constraints.NodeEdges,
		constraints.NodeSet,
		constraints.WeightRange,
	} {
		r.ConstraintViolations.WithLabelValues(c.String()).Set(float64(len(rep.ByCategory(c))))
	}
	if rep.OK() {
		r.ConstraintsOK.Set(1)
	} else {
		r.ConstraintsOK.Set(0)
	}
}

// RecordScore sets the score gauges for label.
func (r *Registry) RecordScore(label string, m score.Metrics) {
	r.ScoreReachableRate.WithLabelValues(label).Set(m.ReachableRate)
	r.ScoreMeanHops.WithLabelValues(label).Set(m.MeanHops)
	r.ScoreMeanWalkProb.WithLabelValues(label).Set(m.MeanWalkProb)
}

// RecordRun sets the run identity and build duration.
func (r *Registry) RecordRun(runID, strategy string, seed int64, build time.Duration) {
	r.RunInfo.WithLabelValues(runID, strategy, strconv.FormatInt(seed, 10)).Set(1)
	r.BuildDuration.Set(build.Seconds())
}

// MarkSuccess stamps the completion time.
func (r *Registry) MarkSuccess(at time.Time) {
	r.LastSuccessTimestamp.Set(float64(at.Unix()))
}

// WriteTextfile writes every metric to path atomically, creating the parent
// directory if needed.
func (r *Registry) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("metrics: create dir for %s: %w", path, err)
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
