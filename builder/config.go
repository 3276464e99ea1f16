// SPDX-License-Identifier: MIT
// Package: hubwalk/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn         = DefaultIDFn   ("0","1","2",...)
//   • rng          = nil           (stochastic strategies return ErrNeedRandSource)
//   • weightFn     = DecayWeight   (weighted strategies only)
//   • odds         = 3:1:1         (hub:mid:leaf)
//   • hubSelfLoops = true
//   • closedChain  = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Target-dependent weight for weighted strategies.
	weightFn TargetWeightFn

	// Tri-modal odds for mid-tier target draws.
	odds TierOdds
	// Hubs may pick themselves among their hub targets.
	hubSelfLoops bool
	// Last chain leaf points to a hub instead of a mid vertex.
	closedChain bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:         DefaultIDFn,
		rng:          nil,
		weightFn:     DecayWeight,
		odds:         DefaultTierOdds(),
		hubSelfLoops: true,
		closedChain:  false,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
