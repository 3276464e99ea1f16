// SPDX-License-Identifier: MIT
// Package: hubwalk/builder
//
// impl_hub.go - the five Hub* constructors. Each is a tieredPlan; see
// impl_tiered.go for the shared contract.
//
//	                weights          mid targets     leaf edge
//	HubUniform      1                uniform [0,n)   uniform hub∪mid
//	HubCycle        1                hub:mid:leaf    chain
//	HubWeighted     DecayWeight(v)   uniform [0,n)   uniform hub∪mid
//	HubWeightedCycle DecayWeight(v)  hub:mid:leaf    chain
//	HubWeightedVisitAll DecayWeight(v) uniform + forced leaf  uniform hub∪mid
//
// Leaf edges are always weight 1.

package builder

// HubUniform builds the unweighted hub-and-spoke topology.
func HubUniform(n int, t Tiers) Constructor {
	return tieredPlan{method: methodHubUniform, mid: midUniform, leaf: leafUniform}.constructor(n, t)
}

// HubCycle builds the unweighted topology whose leaves form a forward chain.
// The last leaf jumps to a mid vertex, so the chain is a path rather than a
// cycle unless WithClosedChain is set.
func HubCycle(n int, t Tiers) Constructor {
	return tieredPlan{method: methodHubCycle, mid: midTriModal, leaf: leafChain}.constructor(n, t)
}

// HubWeighted builds the hub-and-spoke topology with hub and mid edges
// weighted by the target transform (DecayWeight unless overridden).
func HubWeighted(n int, t Tiers) Constructor {
	return tieredPlan{method: methodHubWeighted, weighted: true, mid: midUniform, leaf: leafUniform}.constructor(n, t)
}

// HubWeightedCycle is HubCycle with weighted hub and mid edges.
func HubWeightedCycle(n int, t Tiers) Constructor {
	return tieredPlan{method: methodHubWeightedCycle, weighted: true, mid: midTriModal, leaf: leafChain}.constructor(n, t)
}

// HubWeightedVisitAll is HubWeighted where min(mid, leaf) randomly chosen mid
// vertices each point at a distinct leaf, so walks can reach every leaf.
func HubWeightedVisitAll(n int, t Tiers) Constructor {
	return tieredPlan{
		method:   methodHubWeightedVisitAll,
		weighted: true,
		mid:      midUniform,
		leaf:     leafUniform,
		visitAll: true,
	}.constructor(n, t)
}
