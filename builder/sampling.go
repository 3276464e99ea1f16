// SPDX-License-Identifier: MIT
// Package: hubwalk/builder
//
// sampling.go — RNG primitives shared by the tiered strategies.
//
// Determinism:
//   - Every helper consumes the RNG in a fixed order; same seed ⇒ same draws.
//   - math/rand.Rand is NOT goroutine-safe. Builders run single-threaded.

package builder

import "math/rand"

// uniformInt returns an integer drawn uniformly from [lo, hi). Requires hi > lo.
// Complexity: O(1).
func uniformInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

// sampleDistinct draws k distinct integers uniformly from [lo, hi) using
// Floyd's algorithm. The result order is the insertion order of the draws.
// Requires 0 ≤ k ≤ hi-lo.
//
// Complexity: O(k) expected time, O(k) space.
func sampleDistinct(rng *rand.Rand, lo, hi, k int) []int {
	n := hi - lo
	out := make([]int, 0, k)
	seen := make(map[int]struct{}, k)
	var j, t int
	for j = n - k; j < n; j++ {
		t = rng.Intn(j + 1)
		if _, dup := seen[t]; dup {
			t = j
		}
		seen[t] = struct{}{}
		out = append(out, lo+t)
	}

	return out
}

// sampleDistinctExcluding draws k distinct integers from [lo, hi) \ {skip}.
// Requires lo ≤ skip < hi and k ≤ hi-lo-1.
// Complexity: O(k).
func sampleDistinctExcluding(rng *rand.Rand, lo, hi, skip, k int) []int {
	out := sampleDistinct(rng, lo, hi-1, k)
	for i, v := range out {
		if v >= skip {
			out[i] = v + 1
		}
	}

	return out
}

// tierSampler draws vertex indices from the tri-modal distribution: a class
// is chosen with probability proportional to odds × class size, then a
// member uniformly within it. This equals the per-vertex categorical
// distribution p(i) = odds(class(i)) / Σ odds(class(j)).
type tierSampler struct {
	hubLo, hubN   int
	midLo, midN   int
	leafLo, leafN int

	hubMass  float64
	midMass  float64
	leafMass float64
}

// newTierSampler prepares a sampler over [0, n) for the given tiers and odds.
func newTierSampler(n int, t Tiers, odds TierOdds) tierSampler {
	midLo, midHi := t.MidRange(n)
	leafLo, _ := t.LeafRange(n)

	return tierSampler{
		hubLo: 0, hubN: t.Hub,
		midLo: midLo, midN: midHi - midLo,
		leafLo: leafLo, leafN: t.Leaf,
		hubMass:  odds.Hub * float64(t.Hub),
		midMass:  odds.Mid * float64(midHi-midLo),
		leafMass: odds.Leaf * float64(t.Leaf),
	}
}

// draw returns one vertex index.
// Complexity: O(1).
func (s tierSampler) draw(rng *rand.Rand) int {
	u := rng.Float64() * (s.hubMass + s.midMass + s.leafMass)
	switch {
	case u < s.hubMass:
		return s.hubLo + rng.Intn(s.hubN)
	case u < s.hubMass+s.midMass:
		return s.midLo + rng.Intn(s.midN)
	default:
		if s.leafMass == 0 {
			// Float rounding at the upper edge; fall back to the last class with mass.
			if s.midMass > 0 {
				return s.midLo + rng.Intn(s.midN)
			}
			return s.hubLo + rng.Intn(s.hubN)
		}
		return s.leafLo + rng.Intn(s.leafN)
	}
}

// drawPair returns two distinct indices; the second draw is repeated until
// it differs from the first.
func (s tierSampler) drawPair(rng *rand.Rand) (int, int) {
	fst := s.draw(rng)
	snd := s.draw(rng)
	for snd == fst {
		snd = s.draw(rng)
	}

	return fst, snd
}
