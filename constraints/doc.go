// Package constraints is the advisory validator for submitted graphs.
//
// Four checks are run by Verify:
//
//   - total_edges:  sum of out-degrees ≤ Limits.MaxTotalEdges
//   - node_edges:   every out-degree ≤ Limits.MaxEdgesPerNode
//   - node_set:     vertex ids are exactly "0".."Limits.NodeCount-1"
//   - weight_range: every weight w satisfies 0 < w ≤ 10
//
// Findings are values, not errors. Check logs a warning per failed category
// and returns false, leaving the decision to proceed to the caller.
package constraints
