// Package builder defines shared constants used by the tiered graph builders,
// ensuring consistent defaults and validation across all strategies.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodPath                = "Path"
	methodHubUniform          = "HubUniform"
	methodHubCycle            = "HubCycle"
	methodHubWeighted         = "HubWeighted"
	methodHubWeightedCycle    = "HubWeightedCycle"
	methodHubWeightedVisitAll = "HubWeightedVisitAll"
	methodBuildGraph          = "BuildGraph"
)

//-----------------------------------------------------------------------------
// Tier defaults
//-----------------------------------------------------------------------------

// DefaultHubSize is the number of class-3 (hub) vertices, ids [0, 50).
const DefaultHubSize = 50

// DefaultLeafSize is the number of class-1 (leaf) vertices for every strategy
// except HubWeightedVisitAll.
const DefaultLeafSize = 50

// VisitAllLeafSize is the leaf tier size used by HubWeightedVisitAll.
const VisitAllLeafSize = 100

//-----------------------------------------------------------------------------
// Fan-out per tier
//-----------------------------------------------------------------------------

const (
	// hubToHubEdges is the number of distinct hub targets per hub.
	hubToHubEdges = 2
	// midEdges is the number of distinct targets per mid vertex.
	midEdges = 2
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

const (
	// minPathNodes: vertex 0 fans out to 1, 2 and 3.
	minPathNodes = 4
	// minHub: two distinct hub targets must exist.
	minHub = 2
	// minMid: every hub needs a mid target.
	minMid = 1
	// minLeaf: a tiered graph always has a leaf tier.
	minLeaf = 1
)

//-----------------------------------------------------------------------------
// Weights
//-----------------------------------------------------------------------------

// UnitWeight is the constant weight of unweighted strategies and of leaf
// edges in every tiered strategy.
const UnitWeight = 1.0

// pathSplitWeight is the weight of each of the two edges of an inner path vertex.
const pathSplitWeight = 0.5

// DefaultDecayScale is the divisor in exp(-x/scale)/scale.
const DefaultDecayScale = 10.0

// Default tri-modal odds for mid-tier targets (hub:mid:leaf).
const (
	DefaultHubOdds  = 3.0
	DefaultMidOdds  = 1.0
	DefaultLeafOdds = 1.0
)
