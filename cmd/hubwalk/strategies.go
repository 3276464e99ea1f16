package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hubwalk/builder"
	"github.com/katalvlaran/hubwalk/constraints"
)

// strategyNotes: hubs always take 2 hubs and 1 mid; leaf edges weigh 1.
var strategyNotes = map[builder.Strategy]string{
	builder.HubWeightedStrategy:         "decay weights; mids take 2 uniform targets, leaves 1 hub or mid",
	builder.HubUniformStrategy:          "hub-weighted shape with unit weights",
	builder.HubCycleStrategy:            "unit weights; mids draw hub:mid:leaf 3:1:1, leaves form a chain",
	builder.HubWeightedCycleStrategy:    "decay weights; mids draw hub:mid:leaf 3:1:1, leaves form a chain",
	builder.HubWeightedVisitAllStrategy: "hub-weighted with mids forced onto distinct leaves",
	builder.PathStrategy:                "bidirectional path, no randomness",
}

func newCmdStrategies(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the construction strategies.",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			n := constraints.DefaultNodeCount
			for _, s := range builder.Strategies() {
				tiers := "-"
				if s.Tiered() {
					t := s.DefaultTiers()
					tiers = fmt.Sprintf("%d/%d/%d", t.Hub, t.Mid(n), t.Leaf)
				}
				name := styles.Key.Render(fmt.Sprintf("%-22s", s))
				if _, err := fmt.Fprintf(stdout, "%s %-11s %s\n", name, tiers, strategyNotes[s]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
