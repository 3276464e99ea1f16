package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hubwalk/config"
)

// Flags that are not configuration keys.
const (
	flagConfig     = "config"
	flagJSON       = "json"
	flagDumpConfig = "dump-config"
)

func newCmdRoot(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hubwalk",
		Short: "Build a tiered hub/mid/leaf query graph for random-walk evaluation.",
		Long: `hubwalk replaces the initial query graph with one built from a hub, mid and
leaf tier partition of the node ids, so that random walks keep returning to
a small set of well connected hubs.

Configuration is read from flags, HUBWALK_* environment variables and an
optional YAML file (--config), in that order of precedence.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOptimize(cmd, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	d := config.Default()
	pf := cmd.PersistentFlags()
	pf.String(flagConfig, "", "path to a YAML config file")
	pf.String("log-level", d.LogLevel, "log level: debug, info, warn or error")
	pf.String("log-format", d.LogFormat, "log format: text or json")
	pf.Int("num-nodes", d.NumNodes, "number of nodes the graph must contain")
	pf.Int("max-edges-per-node", d.MaxEdgesPerNode, "maximum out-degree of any node")
	pf.Int("max-total-edges", d.MaxTotalEdges, "maximum number of edges in the graph")

	addOptimizeFlags(cmd.Flags())

	cmd.AddCommand(
		newCmdOptimize(stdout, stderr),
		newCmdVerify(stdout, stderr),
		newCmdStrategies(stdout),
	)
	return cmd
}

// loadConfig binds every configuration flag of cmd, local or inherited, to a
// fresh viper instance and resolves the Config. Validation is left to the
// caller.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := viper.New()
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || !isConfigFlag(f.Name) {
			return
		}
		bindErr = v.BindPFlag(flagKey(f.Name), f)
	})
	if bindErr != nil {
		return config.Config{}, bindErr
	}

	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	return config.Read(v, path)
}

func isConfigFlag(name string) bool {
	switch name {
	case flagConfig, flagJSON, flagDumpConfig, "help":
		return false
	}
	return true
}

// flagKey maps a flag name onto its config key: max-total-edges → max_total_edges.
func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// newLogger writes to w at the configured level and format.
func newLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), nil
}
