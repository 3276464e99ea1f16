// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel-wrapped error with the method name as
// prefix when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that the node count n is ≥ min.
// Complexity: O(1) time and space.
func validateMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}

// validateRNG ensures a stochastic constructor received an RNG.
// Complexity: O(1) time and space.
func validateRNG(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// validateHubSampling checks the hub tier against the self-loop policy: a
// hub that may not pick itself needs two other hubs.
func validateHubSampling(method string, t Tiers, cfg builderConfig) error {
	if !cfg.hubSelfLoops && t.Hub < minHub+1 {
		return fmt.Errorf("%s: hub=%d < min=%d without hub self-loops: %w",
			method, t.Hub, minHub+1, ErrTierSizes)
	}

	return nil
}

// validateOddsSupport checks that the tri-modal distribution puts mass on at
// least two vertices, so two distinct draws are possible.
func validateOddsSupport(method string, n int, t Tiers, odds TierOdds) error {
	support := 0
	if odds.Hub > 0 {
		support += t.Hub
	}
	if odds.Mid > 0 {
		support += t.Mid(n)
	}
	if odds.Leaf > 0 {
		support += t.Leaf
	}
	if support < midEdges {
		return fmt.Errorf("%s: odds %v leave %d drawable vertices: %w", method, odds, support, ErrTierSizes)
	}

	return nil
}
