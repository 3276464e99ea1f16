package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/hubwalk/config"
	"github.com/katalvlaran/hubwalk/optimize"
)

func newCmdOptimize(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Build, check and save the optimized graph (default action).",
		Example: `  hubwalk optimize --strategy hub-weighted-visitall --seed 42
  hubwalk optimize --config hubwalk.yaml --metrics-file out/hubwalk.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOptimize(cmd, stdout, stderr)
		},
	}
	addOptimizeFlags(cmd.Flags())
	return cmd
}

// addOptimizeFlags registers the run flags. The root command carries them
// too, since optimize is its default action.
func addOptimizeFlags(fs *pflag.FlagSet) {
	d := config.Default()
	fs.String("initial-graph", d.InitialGraph, "initial graph JSON")
	fs.String("results", d.Results, "recorded query results JSON")
	fs.StringP("output", "o", d.Output, "where to write the optimized graph")
	fs.StringP("strategy", "s", d.Strategy, "construction strategy, see 'hubwalk strategies'")
	fs.Int("hub-size", d.HubSize, "hub tier size, 0 for the strategy default")
	fs.Int("leaf-size", d.LeafSize, "leaf tier size, 0 for the strategy default")
	fs.Int64("seed", d.Seed, "random seed, 0 derives one from the clock")
	fs.Bool("closed-chain", d.ClosedChain, "link the last leaf of a chain back to a hub")
	fs.Bool("hub-self-loops", d.HubSelfLoops, "allow hubs to link to themselves")
	fs.Bool("strict", d.Strict, "fail without saving when the graph violates a constraint")
	fs.Int("score-max-depth", d.ScoreMaxDepth, "hop bound for the reachability score, 0 for none")
	fs.String("metrics-file", d.MetricsFile, "write Prometheus metrics to this textfile")
	fs.Bool(flagJSON, false, "print the run summary as JSON")
	fs.Bool(flagDumpConfig, false, "print the effective configuration as YAML and exit")
}

func runOptimize(cmd *cobra.Command, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if dump, _ := cmd.Flags().GetBool(flagDumpConfig); dump {
		return cfg.WriteYAML(stdout)
	}

	logger, err := newLogger(stderr, cfg)
	if err != nil {
		return err
	}

	sum, err := optimize.Run(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}
	_, err = io.WriteString(stdout, renderSummary(sum)+"\n")
	return err
}
