// SPDX-License-Identifier: MIT
// Package: hubwalk/builder
//
// impl_tiered.go — the shared hub/mid/leaf construction behind every Hub*
// strategy. A tieredPlan fixes three choices (weighting, mid rule, leaf
// rule); the exported constructors in impl_hub.go are plans.
//
// Contract:
//   - Tiers must leave ≥ 2 hubs, ≥ 1 mid and ≥ 1 leaf (else ErrTierSizes).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Graph must allow loops (hubs and mids can draw themselves).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - RNG consumption order: hubs asc, [visit-all assignment], mids asc, leaves asc.
//
// Complexity:
//   - Time: O(n) vertices + O(3·hub + 2·mid + leaf) edges.
//   - Space: O(leaf) for the visit-all assignment.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hubwalk/core"
)

// midRule selects how a mid vertex picks its two targets.
type midRule int

const (
	// midUniform: two distinct targets uniformly from [0, n).
	midUniform midRule = iota
	// midTriModal: two distinct targets from the hub:mid:leaf odds.
	midTriModal
)

// leafRule selects the single out-edge of a leaf.
type leafRule int

const (
	// leafUniform: one target uniformly from the hub and mid classes.
	leafUniform leafRule = iota
	// leafChain: i → i+1; the last leaf jumps to a mid (or hub) vertex.
	leafChain
)

// tieredPlan is one member of the Hub* strategy family.
type tieredPlan struct {
	method   string
	weighted bool
	mid      midRule
	leaf     leafRule
	visitAll bool
}

// constructor binds the plan to a size and partition.
func (p tieredPlan) constructor(n int, t Tiers) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := p.validate(g, cfg, n, t); err != nil {
			return err
		}
		if err := addVertices(g, cfg, p.method, n); err != nil {
			return err
		}

		weight := TargetWeightFn(unitWeight)
		if p.weighted {
			weight = cfg.weightFn
		}

		b := tieredBuild{plan: p, g: g, cfg: cfg, n: n, t: t, weight: weight}
		if err := b.hubs(); err != nil {
			return err
		}
		if err := b.mids(); err != nil {
			return err
		}

		return b.leaves()
	}
}

// validate runs every precondition before the graph is touched.
func (p tieredPlan) validate(g *core.Graph, cfg builderConfig, n int, t Tiers) error {
	if err := validateMin(p.method, n, minHub+minMid+minLeaf); err != nil {
		return err
	}
	if err := t.validate(p.method, n); err != nil {
		return err
	}
	if err := validateRNG(p.method, cfg); err != nil {
		return err
	}
	if err := validateHubSampling(p.method, t, cfg); err != nil {
		return err
	}
	if p.mid == midTriModal {
		if err := validateOddsSupport(p.method, n, t, cfg.odds); err != nil {
			return err
		}
	}
	if !g.Looped() {
		return fmt.Errorf("%s: graph must allow self-loops: %w", p.method, ErrConstructFailed)
	}

	return nil
}

// tieredBuild carries the per-call state of one construction.
type tieredBuild struct {
	plan   tieredPlan
	g      *core.Graph
	cfg    builderConfig
	n      int
	t      Tiers
	weight TargetWeightFn
}

// edge adds u→v weighted by the plan's policy.
func (b *tieredBuild) edge(u, v int) error {
	return addEdge(b.g, b.cfg, b.plan.method, u, v, b.weight(v))
}

// hubs: each hub gets two distinct hub targets and one uniform mid target.
func (b *tieredBuild) hubs() error {
	rng := b.cfg.rng
	hubLo, hubHi := b.t.HubRange()
	midLo, midHi := b.t.MidRange(b.n)

	var targets []int
	for i := hubLo; i < hubHi; i++ {
		if b.cfg.hubSelfLoops {
			targets = sampleDistinct(rng, hubLo, hubHi, hubToHubEdges)
		} else {
			targets = sampleDistinctExcluding(rng, hubLo, hubHi, i, hubToHubEdges)
		}
		targets = append(targets, uniformInt(rng, midLo, midHi))
		for _, v := range targets {
			if err := b.edge(i, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// mids: each mid vertex gets two distinct targets per the plan's rule; in
// visit-all mode a random subset is first bound to distinct leaves.
func (b *tieredBuild) mids() error {
	rng := b.cfg.rng
	midLo, midHi := b.t.MidRange(b.n)

	var forced map[int]int
	if b.plan.visitAll {
		forced = b.assignLeaves()
	}
	var sampler tierSampler
	if b.plan.mid == midTriModal {
		sampler = newTierSampler(b.n, b.t, b.cfg.odds)
	}

	var fst, snd int
	for i := midLo; i < midHi; i++ {
		if leaf, ok := forced[i]; ok {
			fst = leaf
			snd = uniformInt(rng, 0, b.n)
			for snd == fst {
				snd = uniformInt(rng, 0, b.n)
			}
		} else if b.plan.mid == midTriModal {
			fst, snd = sampler.drawPair(rng)
		} else {
			pair := sampleDistinct(rng, 0, b.n, midEdges)
			fst, snd = pair[0], pair[1]
		}
		if err := b.edge(i, fst); err != nil {
			return err
		}
		if err := b.edge(i, snd); err != nil {
			return err
		}
	}

	return nil
}

// assignLeaves maps min(mid, leaf) randomly chosen mid vertices to distinct
// leaves, taken in ascending leaf order.
func (b *tieredBuild) assignLeaves() map[int]int {
	midLo, midHi := b.t.MidRange(b.n)
	leafLo, _ := b.t.LeafRange(b.n)

	k := b.t.Leaf
	if mid := midHi - midLo; mid < k {
		k = mid
	}
	sources := sampleDistinct(b.cfg.rng, midLo, midHi, k)
	forced := make(map[int]int, k)
	for j, src := range sources {
		forced[src] = leafLo + j
	}

	return forced
}

// leaves: one edge each, uniform upward or along the chain. Leaf edges
// always carry UnitWeight.
func (b *tieredBuild) leaves() error {
	rng := b.cfg.rng
	hubLo, hubHi := b.t.HubRange()
	midLo, midHi := b.t.MidRange(b.n)
	leafLo, leafHi := b.t.LeafRange(b.n)

	var v int
	for i := leafLo; i < leafHi; i++ {
		switch {
		case b.plan.leaf == leafUniform:
			v = uniformInt(rng, hubLo, midHi)
		case i < leafHi-1:
			v = i + 1
		case b.cfg.closedChain:
			v = uniformInt(rng, hubLo, hubHi)
		default:
			v = uniformInt(rng, midLo, midHi)
		}
		if err := addEdge(b.g, b.cfg, b.plan.method, i, v, UnitWeight); err != nil {
			return err
		}
	}

	return nil
}
