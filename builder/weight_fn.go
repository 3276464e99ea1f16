// Package builder provides the target-dependent weight functions used by the
// weighted strategies.
package builder

import (
	"fmt"
	"math"
)

// TargetWeightFn maps a target vertex index to an edge weight. It must be a
// pure function of its input so that seeded builds stay reproducible.
type TargetWeightFn func(target int) float64

// DecayWeight is the default weighted-strategy transform exp(-x/10)/10.
// It is strictly decreasing in x, so lower-indexed targets (the hubs) receive
// the larger share of a walker's transition probability.
//
// Range: (0, 0.1] for x ≥ 0 until float64 underflow near x ≈ 7400.
// Complexity: O(1).
func DecayWeight(x int) float64 {
	return math.Exp(-float64(x)/DefaultDecayScale) / DefaultDecayScale
}

// ExpDecayWeightFn returns exp(-x/scale)/scale. Panics if scale ≤ 0 or is
// not finite.
// Complexity: O(1) time, O(1) space.
func ExpDecayWeightFn(scale float64) TargetWeightFn {
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		panic(fmt.Sprintf("ExpDecayWeightFn: scale must be finite and > 0, got %g", scale))
	}

	return func(x int) float64 {
		return math.Exp(-float64(x)/scale) / scale
	}
}

// ConstantWeightFn returns a TargetWeightFn that always yields value.
// Panics if value ≤ 0.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value float64) TargetWeightFn {
	if value <= 0 || math.IsNaN(value) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(int) float64 { return value }
}

// unitWeight is the weight policy of unweighted strategies.
func unitWeight(int) float64 { return UnitWeight }

// WithTargetWeight overrides the transform used by weighted strategies.
// Complexity: O(1).
func WithTargetWeight(fn TargetWeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithTargetWeight(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithDecayScale sets weights to exp(-x/scale)/scale via ExpDecayWeightFn.
// Complexity: O(1).
func WithDecayScale(scale float64) BuilderOption {
	return WithTargetWeight(ExpDecayWeightFn(scale))
}
