// SPDX-License-Identifier: MIT
// Package: hubwalk/builder
//
// tiers.go — the hub / mid / leaf partition of the vertex index space.
//
// For n vertices and Tiers{Hub: h, Leaf: l}:
//
//	class 3 (hub)  [0, h)        three edges: two hubs + one mid
//	class 2 (mid)  [h, n-l)      two edges, broad targets
//	class 1 (leaf) [n-l, n)      one edge back up, or a forward chain
//
// Blocks are contiguous by construction, so "lower index" and "closer to a
// hub" coincide; DecayWeight relies on that.

package builder

import "fmt"

// Tiers sizes the hub and leaf classes; the mid class takes the remainder.
type Tiers struct {
	Hub  int `json:"hub"  yaml:"hub"`
	Leaf int `json:"leaf" yaml:"leaf"`
}

// DefaultTiers returns the 50-hub / 50-leaf partition.
func DefaultTiers() Tiers {
	return Tiers{Hub: DefaultHubSize, Leaf: DefaultLeafSize}
}

// VisitAllTiers returns the 50-hub / 100-leaf partition used by
// HubWeightedVisitAll.
func VisitAllTiers() Tiers {
	return Tiers{Hub: DefaultHubSize, Leaf: VisitAllLeafSize}
}

// Mid returns the size of the mid class for n vertices.
func (t Tiers) Mid(n int) int {
	return n - t.Hub - t.Leaf
}

// HubRange returns the half-open index range of the hub class.
func (t Tiers) HubRange() (lo, hi int) { return 0, t.Hub }

// MidRange returns the half-open index range of the mid class.
func (t Tiers) MidRange(n int) (lo, hi int) { return t.Hub, n - t.Leaf }

// LeafRange returns the half-open index range of the leaf class.
func (t Tiers) LeafRange(n int) (lo, hi int) { return n - t.Leaf, n }

// Class returns the class number (3 hub, 2 mid, 1 leaf) of index i, or 0 if
// i is outside [0, n).
func (t Tiers) Class(n, i int) int {
	switch {
	case i < 0 || i >= n:
		return 0
	case i < t.Hub:
		return 3
	case i < n-t.Leaf:
		return 2
	default:
		return 1
	}
}

// validate checks that every class is large enough for the sampling rules.
func (t Tiers) validate(method string, n int) error {
	if t.Hub < minHub {
		return fmt.Errorf("%s: hub=%d < min=%d: %w", method, t.Hub, minHub, ErrTierSizes)
	}
	if t.Leaf < minLeaf {
		return fmt.Errorf("%s: leaf=%d < min=%d: %w", method, t.Leaf, minLeaf, ErrTierSizes)
	}
	if mid := t.Mid(n); mid < minMid {
		return fmt.Errorf("%s: mid=%d (n=%d, hub=%d, leaf=%d) < min=%d: %w",
			method, mid, n, t.Hub, t.Leaf, minMid, ErrTierSizes)
	}

	return nil
}

// TierOdds are the relative odds of drawing a hub, mid or leaf vertex.
type TierOdds struct {
	Hub  float64
	Mid  float64
	Leaf float64
}

// DefaultTierOdds returns 3:1:1.
func DefaultTierOdds() TierOdds {
	return TierOdds{Hub: DefaultHubOdds, Mid: DefaultMidOdds, Leaf: DefaultLeafOdds}
}
