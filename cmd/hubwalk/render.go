package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hubwalk/constraints"
	"github.com/katalvlaran/hubwalk/optimize"
	"github.com/katalvlaran/hubwalk/score"
)

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

var styles = struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Muted lipgloss.Style
	OK    lipgloss.Style
	Warn  lipgloss.Style
	Fail  lipgloss.Style
	Box   lipgloss.Style
}{
	Title: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Key:   lipgloss.NewStyle().Foreground(colorAccent),
	Muted: lipgloss.NewStyle().Foreground(colorMuted),
	OK:    lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
	Warn:  lipgloss.NewStyle().Foreground(colorWarning),
	Fail:  lipgloss.NewStyle().Bold(true).Foreground(colorError),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1),
}

// renderSummary formats a completed run for the terminal.
func renderSummary(sum optimize.Summary) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("hubwalk optimize") + "\n")
	row(&b, "run", styles.Muted.Render(sum.RunID))
	row(&b, "strategy", sum.Strategy)
	row(&b, "seed", fmt.Sprint(sum.Seed))
	if sum.Tiers.Hub > 0 {
		row(&b, "tiers", fmt.Sprintf("hub %d  mid %d  leaf %d",
			sum.Tiers.Hub, sum.Tiers.Mid(sum.Optimized.Limits.NodeCount), sum.Tiers.Leaf))
	}
	row(&b, "graph", fmt.Sprintf("%d nodes  %d edges  max out-degree %d",
		sum.Optimized.Nodes, sum.Optimized.Edges, sum.Optimized.MaxOutDegree))
	row(&b, "constraints", status(sum.Optimized))
	row(&b, "reachable", fmt.Sprintf("%s → %s", rate(sum.InitialScore), rate(sum.OptimizedScore)))
	row(&b, "mean hops", fmt.Sprintf("%.2f → %.2f", sum.InitialScore.MeanHops, sum.OptimizedScore.MeanHops))
	row(&b, "walk prob", fmt.Sprintf("%.4f → %.4f", sum.InitialScore.MeanWalkProb, sum.OptimizedScore.MeanWalkProb))
	row(&b, "prior success", fmt.Sprintf("%.1f%%", 100*sum.OptimizedScore.PriorSuccessRate))
	row(&b, "saved", sum.Output)
	row(&b, "build time", sum.BuildTime.String())
	return styles.Box.Render(strings.TrimRight(b.String(), "\n"))
}

// renderReport formats a verify result, one line per violated category.
func renderReport(path string, r constraints.Report) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("hubwalk verify") + "\n")
	row(&b, "graph", path)
	row(&b, "nodes", fmt.Sprintf("%d of %d", r.Nodes, r.Limits.NodeCount))
	row(&b, "edges", fmt.Sprintf("%d of %d", r.Edges, r.Limits.MaxTotalEdges))
	row(&b, "max out-degree", fmt.Sprintf("%d of %d", r.MaxOutDegree, r.Limits.MaxEdgesPerNode))
	row(&b, "constraints", status(r))
	for _, c := range r.Categories() {
		vs := r.ByCategory(c)
		b.WriteString(fmt.Sprintf("  %s %s: %s\n",
			styles.Fail.Render("✗"), c, styles.Warn.Render(summarizeViolations(vs))))
	}
	return styles.Box.Render(strings.TrimRight(b.String(), "\n"))
}

func row(b *strings.Builder, key, value string) {
	b.WriteString(styles.Key.Render(fmt.Sprintf("%-14s", key)) + " " + value + "\n")
}

func status(r constraints.Report) string {
	if r.OK() {
		return styles.OK.Render("✓ ok")
	}
	return styles.Fail.Render(fmt.Sprintf("✗ %d violations", len(r.Violations)))
}

func rate(m score.Metrics) string {
	return fmt.Sprintf("%.1f%%", 100*m.ReachableRate)
}

// summarizeViolations shows the first message and how many more follow.
func summarizeViolations(vs []constraints.Violation) string {
	if len(vs) == 0 {
		return ""
	}
	if len(vs) == 1 {
		return vs[0].Message
	}
	return fmt.Sprintf("%s (and %d more)", vs[0].Message, len(vs)-1)
}
