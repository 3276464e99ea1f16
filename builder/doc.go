// Package builder constructs candidate graphs for the random-walk evaluator
// from a fixed, hand-designed heuristic: a hub-and-spoke topology over a
// tiered partition of the vertex index space.
//
// The package offers the following key components:
//
//   - Strategies (Strategy, Build):
//     – HubWeighted (default), HubUniform, HubCycle, HubWeightedCycle,
//     HubWeightedVisitAll, Path.
//   - Composition primitives:
//     – Constructor:   func(*core.Graph, builderConfig) error.
//     – BuildGraph:    resolve options once, apply constructors in order.
//     – BuilderOption: WithSeed, WithRand, WithIDScheme, WithTargetWeight,
//     WithDecayScale, WithTierOdds, WithHubSelfLoops, WithClosedChain.
//   - Tiers: hub [0,h), mid [h,n-l), leaf [n-l,n).
//   - Weight transforms (TargetWeightFn):
//     – DecayWeight:       exp(-x/10)/10, the default for weighted strategies.
//     – ExpDecayWeightFn:  exp(-x/s)/s for any scale s > 0.
//     – ConstantWeightFn:  fixed positive value.
//
// Guarantees:
//
//   - Reproducible: the RNG is always injected; equal seeds give equal graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTierSizes, ErrNeedRandSource, ...) for invalid build
//     parameters, wrapped with the constructor name.
//   - For n=500 and default tiers every strategy stays within 3 out-edges
//     per vertex and 1000 edges in total.
//
// Structural limits are not enforced here; see package constraints.
package builder
