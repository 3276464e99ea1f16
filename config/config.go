// Package config resolves the run configuration of hubwalk from defaults, an
// optional YAML file, HUBWALK_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hubwalk/builder"
	"github.com/katalvlaran/hubwalk/constraints"
)

// EnvPrefix is prepended to every environment key, e.g. HUBWALK_SEED.
const EnvPrefix = "HUBWALK"

// Default file locations, relative to the working directory.
const (
	DefaultInitialGraph = "data/initial_graph.json"
	DefaultResults      = "data/initial_results.json"
	DefaultOutput       = "candidate_submission/optimized_graph.json"
)

// ErrInvalidConfig indicates a configuration rejected by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// validate is a singleton validator instance
var validate = validator.New()

// Config is the complete run configuration.
type Config struct {
	InitialGraph string `mapstructure:"initial_graph" yaml:"initial_graph" validate:"required"`
	Results      string `mapstructure:"results"       yaml:"results"       validate:"required"`
	Output       string `mapstructure:"output"        yaml:"output"        validate:"required"`

	NumNodes        int `mapstructure:"num_nodes"          yaml:"num_nodes"          validate:"min=4"`
	MaxEdgesPerNode int `mapstructure:"max_edges_per_node" yaml:"max_edges_per_node" validate:"min=1"`
	MaxTotalEdges   int `mapstructure:"max_total_edges"    yaml:"max_total_edges"    validate:"min=1"`

	Strategy     string `mapstructure:"strategy"       yaml:"strategy"       validate:"required"`
	HubSize      int    `mapstructure:"hub_size"       yaml:"hub_size"       validate:"min=0"`
	LeafSize     int    `mapstructure:"leaf_size"      yaml:"leaf_size"      validate:"min=0"`
	Seed         int64  `mapstructure:"seed"           yaml:"seed"`
	ClosedChain  bool   `mapstructure:"closed_chain"   yaml:"closed_chain"`
	HubSelfLoops bool   `mapstructure:"hub_self_loops" yaml:"hub_self_loops"`

	Strict        bool   `mapstructure:"strict"          yaml:"strict"`
	ScoreMaxDepth int    `mapstructure:"score_max_depth" yaml:"score_max_depth" validate:"min=0"`
	MetricsFile   string `mapstructure:"metrics_file"    yaml:"metrics_file"`

	LogLevel  string `mapstructure:"log_level"  yaml:"log_level"  validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" validate:"oneof=text json"`
}

// Default returns the configuration of the evaluation harness: 500 nodes,
// 3 edges per node, 1000 edges in total, hub-weighted strategy.
func Default() Config {
	return Config{
		InitialGraph:    DefaultInitialGraph,
		Results:         DefaultResults,
		Output:          DefaultOutput,
		NumNodes:        constraints.DefaultNodeCount,
		MaxEdgesPerNode: constraints.DefaultMaxEdgesPerNode,
		MaxTotalEdges:   constraints.DefaultMaxTotalEdges,
		Strategy:        builder.DefaultStrategy.String(),
		HubSelfLoops:    true,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// SetDefaults registers every key of Default on v, which also makes the
// keys visible to AutomaticEnv during Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("initial_graph", d.InitialGraph)
	v.SetDefault("results", d.Results)
	v.SetDefault("output", d.Output)
	v.SetDefault("num_nodes", d.NumNodes)
	v.SetDefault("max_edges_per_node", d.MaxEdgesPerNode)
	v.SetDefault("max_total_edges", d.MaxTotalEdges)
	v.SetDefault("strategy", d.Strategy)
	v.SetDefault("hub_size", d.HubSize)
	v.SetDefault("leaf_size", d.LeafSize)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("closed_chain", d.ClosedChain)
	v.SetDefault("hub_self_loops", d.HubSelfLoops)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("score_max_depth", d.ScoreMaxDepth)
	v.SetDefault("metrics_file", d.MetricsFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
}

// Load resolves a Config from v and validates it. Flags must already be bound
// to v. If path is non-empty the YAML file there is read; a missing file is
// an error.
func Load(v *viper.Viper, path string) (Config, error) {
	cfg, err := Read(v, path)
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read resolves a Config from v like Load, without validating it. Commands
// that use only part of the configuration check that part themselves.
func Read(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Validate checks field ranges, the strategy name and the tier split.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	s, err := builder.ParseStrategy(c.Strategy)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !s.Tiered() {
		return nil
	}

	t := c.Tiers(s)
	switch {
	case t.Hub < 2:
		return fmt.Errorf("%w: hub_size %d: need at least 2 hubs", ErrInvalidConfig, t.Hub)
	case !c.HubSelfLoops && t.Hub < 3:
		return fmt.Errorf("%w: hub_size %d: need at least 3 hubs without hub self-loops", ErrInvalidConfig, t.Hub)
	case t.Leaf < 1:
		return fmt.Errorf("%w: leaf_size %d: need at least 1 leaf", ErrInvalidConfig, t.Leaf)
	case t.Mid(c.NumNodes) < 1:
		return fmt.Errorf("%w: hub_size %d + leaf_size %d leave no mid tier in %d nodes",
			ErrInvalidConfig, t.Hub, t.Leaf, c.NumNodes)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Report the first failing field
	e := validationErrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalidConfig, e.Field())
	case "min":
		return fmt.Errorf("%w: %s must be at least %s, got %v", ErrInvalidConfig, e.Field(), e.Param(), e.Value())
	case "oneof":
		return fmt.Errorf("%w: %s must be one of [%s], got %q", ErrInvalidConfig, e.Field(), e.Param(), e.Value())
	default:
		return fmt.Errorf("%w: %s failed %q", ErrInvalidConfig, e.Field(), e.Tag())
	}
}

// Limits returns the structural bounds for the constraint validator.
func (c Config) Limits() constraints.Limits {
	return constraints.Limits{
		NodeCount:       c.NumNodes,
		MaxEdgesPerNode: c.MaxEdgesPerNode,
		MaxTotalEdges:   c.MaxTotalEdges,
	}
}

// Tiers returns the configured partition, with zero sizes replaced by the
// strategy's defaults.
func (c Config) Tiers(s builder.Strategy) builder.Tiers {
	t := s.DefaultTiers()
	if c.HubSize > 0 {
		t.Hub = c.HubSize
	}
	if c.LeafSize > 0 {
		t.Leaf = c.LeafSize
	}
	return t
}

// WriteYAML dumps the effective configuration.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode yaml: %w", err)
	}
	return enc.Close()
}
