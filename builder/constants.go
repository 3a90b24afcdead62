// Package builder shared constants: canonical method names for error
// context, clamp bounds, and the documented approximation budgets.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodSmallWorld is the canonical name for the SmallWorld constructor.
	MethodSmallWorld = "SmallWorld"
	// MethodScaleFree is the canonical name for the ScaleFree constructor.
	MethodScaleFree = "ScaleFree"
	// MethodClustered is the canonical name for the Clustered constructor.
	MethodClustered = "Clustered"
)

//-----------------------------------------------------------------------------
// Approximation budgets and fixed sub-parameters
//-----------------------------------------------------------------------------

// RewireRetryLimit bounds candidate redraws when rewiring a lattice link
// away from self-loops and duplicates. Exhausting the budget accepts the
// last candidate as-is; this observed behavior is part of the contract
// (callers tolerate the rare duplicate/loop link) and must not be "fixed"
// by raising the limit or rejecting the edge.
const RewireRetryLimit = 50

// ClusterRewireProb is the fixed small rewire probability applied inside
// each cluster's small-world sub-lattice by the Clustered constructor.
const ClusterRewireProb = 0.1

// MinScaleFreeCore is the smallest seed clique for preferential attachment:
// two linked nodes, so the degree bag is never empty when growth begins.
const MinScaleFreeCore = 2

//-----------------------------------------------------------------------------
// Probability bounds (clamp targets, inclusive)
//-----------------------------------------------------------------------------

// MinProbability is the lower clamp bound for probability parameters.
const MinProbability = 0.0

// MaxProbability is the upper clamp bound for probability parameters.
const MaxProbability = 1.0
