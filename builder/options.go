// SPDX-License-Identifier: MIT
// Package: hubwalk/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTierOdds sets the relative odds hub:mid:leaf used by the cycle
// strategies when a mid vertex draws its targets. Each class's odds are
// spread uniformly over its members. Panics on negative or non-finite odds,
// or when all three are zero.
// Complexity: O(1).
func WithTierOdds(hub, mid, leaf float64) BuilderOption {
	for _, v := range []float64{hub, mid, leaf} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("builder: WithTierOdds(%g,%g,%g): odds must be finite and ≥ 0", hub, mid, leaf))
		}
	}
	if hub+mid+leaf == 0 {
		panic("builder: WithTierOdds(0,0,0)")
	}
	return func(c *builderConfig) {
		c.odds = TierOdds{Hub: hub, Mid: mid, Leaf: leaf}
	}
}

// WithHubSelfLoops controls whether a hub may draw itself as one of its two
// hub targets. Enabled by default; disabling requires at least three hubs.
// Complexity: O(1).
func WithHubSelfLoops(allow bool) BuilderOption {
	return func(c *builderConfig) {
		c.hubSelfLoops = allow
	}
}

// WithClosedChain makes the last leaf of a chain strategy jump back to a
// uniformly chosen hub instead of a mid vertex.
// Complexity: O(1).
func WithClosedChain() BuilderOption {
	return func(c *builderConfig) {
		c.closedChain = true
	}
}
