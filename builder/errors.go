// SPDX-License-Identifier: MIT
// Package: hubwalk/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: hub=%d < min=%d: %w", methodHubWeighted, h, minHub, ErrTierSizes)
//   • Algorithms never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that the node count is smaller than the
// minimum the requested strategy needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTierSizes indicates a hub/mid/leaf partition that cannot satisfy the
// strategy's sampling rules (e.g. fewer than two hubs to draw two distinct
// hub targets from, or an empty mid tier).
var ErrTierSizes = errors.New("builder: invalid tier sizes")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error during composition, such
// as a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownStrategy indicates a strategy name or value outside the known set.
var ErrUnknownStrategy = errors.New("builder: unknown strategy")
