package main

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hubwalk/optimize"
)

var errViolations = errors.New("graph violates constraints")

func newCmdVerify(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [graph.json]",
		Short: "Check a graph file against the structural limits.",
		Long: `verify loads a graph and reports every violated constraint: total edge
count, per-node out-degree, node id set and edge weight range. It exits
non-zero when any check fails. Without an argument the configured output
path is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(stderr, cfg)
			if err != nil {
				return err
			}

			path := cfg.Output
			if len(args) == 1 {
				path = args[0]
			}
			r, err := optimize.VerifyFile(path, cfg.Limits(), logger)
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				if err = enc.Encode(r); err != nil {
					return err
				}
			} else if _, err = io.WriteString(stdout, renderReport(path, r)+"\n"); err != nil {
				return err
			}

			if !r.OK() {
				return errViolations
			}
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "graph checked when no argument is given")
	cmd.Flags().Bool(flagJSON, false, "print the report as JSON")
	return cmd
}
