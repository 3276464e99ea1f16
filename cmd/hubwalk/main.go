// Command hubwalk builds an optimized query graph from the initial graph and
// recorded query results, checks it against the evaluator's structural
// limits and saves it for submission.
//
//	hubwalk                          # optimize with defaults
//	hubwalk --strategy hub-cycle --seed 7 --closed-chain
//	hubwalk verify candidate_submission/optimized_graph.json
//	hubwalk strategies
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCmdRoot(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
