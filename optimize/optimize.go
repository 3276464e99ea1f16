// Package optimize runs one offline optimisation: load the initial graph and
// the recorded query results, build a fresh graph with the configured
// strategy, check it against the structural limits, score both graphs and
// save the result.
package optimize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/hubwalk/builder"
	"github.com/katalvlaran/hubwalk/config"
	"github.com/katalvlaran/hubwalk/constraints"
	"github.com/katalvlaran/hubwalk/core"
	"github.com/katalvlaran/hubwalk/metrics"
	"github.com/katalvlaran/hubwalk/results"
	"github.com/katalvlaran/hubwalk/score"
)

// ErrConstraintViolation is returned in strict mode when the built graph
// fails a constraint check. Nothing is saved.
var ErrConstraintViolation = errors.New("optimize: graph violates constraints")

// Summary describes a completed run.
type Summary struct {
	RunID    string        `json:"run_id"`
	Seed     int64         `json:"seed"`
	Strategy string        `json:"strategy"`
	Tiers    builder.Tiers `json:"tiers"`
	Output   string        `json:"output"`

	Initial   constraints.Report `json:"initial"`
	Optimized constraints.Report `json:"optimized"`

	InitialScore   score.Metrics `json:"initial_score"`
	OptimizedScore score.Metrics `json:"optimized_score"`

	BuildTime time.Duration `json:"build_time"`
}

// Run executes the pipeline described by cfg. I/O and JSON syntax failures
// are fatal. A results file of unknown layout and a failure to score the
// initial graph are logged and skipped. Constraint violations are logged and the graph is saved anyway,
// unless cfg.Strict is set.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) (Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	strategy, err := builder.ParseStrategy(cfg.Strategy)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		RunID:    uuid.NewString(),
		Seed:     resolveSeed(cfg.Seed),
		Strategy: strategy.String(),
		Output:   cfg.Output,
	}
	if strategy.Tiered() {
		sum.Tiers = cfg.Tiers(strategy)
	}
	logger = logger.With("run_id", sum.RunID)
	logger.Info("starting run",
		"strategy", sum.Strategy,
		"seed", sum.Seed,
		"seed_from_clock", cfg.Seed == 0,
		"num_nodes", cfg.NumNodes,
	)

	logger.Info("loading initial graph", "path", cfg.InitialGraph)
	initial, err := core.LoadGraph(cfg.InitialGraph)
	if err != nil {
		return Summary{}, fmt.Errorf("optimize: %w", err)
	}

	logger.Info("loading query results", "path", cfg.Results)
	recs, err := results.Load(cfg.Results)
	switch {
	case errors.Is(err, results.ErrShape):
		// results only feed the score; an unknown layout is not fatal
		logger.Warn("unrecognised results layout; scoring without records", "path", cfg.Results, "error", err)
		recs = nil
	case err != nil:
		return Summary{}, fmt.Errorf("optimize: %w", err)
	}
	logger.Debug("loaded inputs", "initial_edges", initial.EdgeCount(), "queries", len(recs))

	logger.Info("optimizing graph")
	started := time.Now()
	g, err := builder.Build(strategy, cfg.NumNodes, cfg.Tiers(strategy), buildOptions(cfg, sum.Seed)...)
	if err != nil {
		return Summary{}, fmt.Errorf("optimize: %w", err)
	}
	sum.BuildTime = time.Since(started)

	limits := cfg.Limits()
	sum.Initial = constraints.Verify(initial, limits)
	sum.Optimized = constraints.Verify(g, limits)
	constraints.Log(logger, sum.Optimized)
	if !sum.Optimized.OK() {
		if cfg.Strict {
			return sum, fmt.Errorf("%w: %v", ErrConstraintViolation, sum.Optimized.Categories())
		}
		logger.Warn("optimized graph does not meet the constraints; the evaluator will reject it")
	}

	opts := score.Options{MaxDepth: cfg.ScoreMaxDepth}
	if sum.InitialScore, err = score.Score(ctx, initial, recs, opts); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Summary{}, fmt.Errorf("optimize: score initial: %w", ctxErr)
		}
		logger.Warn("could not score initial graph", "error", err)
		sum.InitialScore = score.Metrics{}
	}
	if sum.OptimizedScore, err = score.Score(ctx, g, recs, opts); err != nil {
		return Summary{}, fmt.Errorf("optimize: score optimized: %w", err)
	}
	logger.Info("scored graphs",
		"initial_reachable_rate", sum.InitialScore.ReachableRate,
		"optimized_reachable_rate", sum.OptimizedScore.ReachableRate,
		"optimized_mean_hops", sum.OptimizedScore.MeanHops,
	)

	logger.Info("saving optimized graph", "path", cfg.Output)
	if err = core.SaveGraph(cfg.Output, g); err != nil {
		return Summary{}, fmt.Errorf("optimize: %w", err)
	}

	if cfg.MetricsFile != "" {
		if err = writeMetrics(cfg.MetricsFile, sum, initial, g); err != nil {
			return Summary{}, fmt.Errorf("optimize: %w", err)
		}
		logger.Debug("wrote metrics", "path", cfg.MetricsFile)
	}

	logger.Info("done", "edges", g.EdgeCount(), "build_time", sum.BuildTime)
	return sum, nil
}

// VerifyFile loads the graph at path and checks it against limits. Only I/O
// and parse failures are errors.
func VerifyFile(path string, limits constraints.Limits, logger *slog.Logger) (constraints.Report, error) {
	if err := limits.Validate(); err != nil {
		return constraints.Report{}, err
	}
	g, err := core.LoadGraph(path)
	if err != nil {
		return constraints.Report{}, fmt.Errorf("verify: %w", err)
	}
	r := constraints.Verify(g, limits)
	constraints.Log(logger, r)
	return r, nil
}

// resolveSeed keeps an explicit seed and derives one from the clock for 0.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func buildOptions(cfg config.Config, seed int64) []builder.BuilderOption {
	opts := []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithHubSelfLoops(cfg.HubSelfLoops),
	}
	if cfg.ClosedChain {
		opts = append(opts, builder.WithClosedChain())
	}
	return opts
}

func writeMetrics(path string, sum Summary, initial, optimized *core.Graph) error {
	reg := metrics.NewRegistry()
	reg.RecordGraph(metrics.GraphInitial, initial)
	reg.RecordGraph(metrics.GraphOptimized, optimized)
	reg.RecordReport(sum.Optimized)
	reg.RecordScore(metrics.GraphInitial, sum.InitialScore)
	reg.RecordScore(metrics.GraphOptimized, sum.OptimizedScore)
	reg.RecordRun(sum.RunID, sum.Strategy, sum.Seed, sum.BuildTime)
	reg.MarkSuccess(time.Now())
	return reg.WriteTextfile(path)
}
