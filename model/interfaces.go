package model

// ActionID identifies an action accepted by a StateModel. The zero value is
// never a valid action id produced by a real transition; NoAction is the
// sentinel used by nodes that were not reached through any action (the root
// of a search).
type ActionID uint32

// NoAction is the sentinel action id carried by a root node, mirroring the
// original implementation's ActionType::invalid_action_id.
const NoAction ActionID = ^ActionID(0)

// StateModel is the transition model the search core explores: it knows how
// to enumerate applicable actions, compute successors, and answer goal
// queries, but never anything about novelty, width, or reward — those are
// separate collaborators (FeatureSet, RewardFunc, the auxiliary heuristics)
// so that a single StateModel can be reused across different search
// configurations.
//
// S is the concrete state representation; it is opaque to this module
// beyond the operations below. HashState/StatesEqual let the engines use S
// as a hash-map/closed-list key without requiring S itself to be comparable
// or to implement a particular interface.
type StateModel[S any] interface {
	// Init returns the initial state of the problem.
	Init() S

	// ApplicableActions enumerates the actions applicable in state in
	// canonical order. When enforceConstraints is false the model should
	// relax whatever domain-specific applicability constraints it
	// otherwise enforces (see ProcessConfig.ZeroCrossingControl).
	ApplicableActions(state S, enforceConstraints bool) []ActionID

	// Next returns the state reached by applying action in state. Action
	// must have been returned by ApplicableActions(state, ...).
	Next(state S, action ActionID) S

	// Goal reports whether state satisfies the overall goal condition.
	Goal(state S) bool

	// GoalAtIndex reports whether state satisfies the subgoal_idx-th of the
	// NumSubgoals() atomic goal conditions that jointly define Goal.
	GoalAtIndex(state S, subgoalIdx int) bool

	// NumSubgoals returns the number of atomic subgoals tracked
	// individually by GoalAtIndex.
	NumSubgoals() int

	// TupleIndexSize returns the size of the ground-atom index (the
	// get_tuple_index() of the original), used to size novelty-2 tables
	// when auto-configuring SBFWS's novelty levels.
	TupleIndexSize() int

	// ClockTime returns the value of the model's horizon clock variable in
	// state (the "clock_time()" variable of spec.md §6). SBFWS compares
	// this against its configured horizon to decide terminal nodes.
	ClockTime(state S) float64

	// HashState returns a hash of state suitable for closed-list and
	// open-list membership bucketing. Two equal states (per StatesEqual)
	// must hash equal.
	HashState(state S) uint64

	// StatesEqual reports whether a and b are the same state.
	StatesEqual(a, b S) bool
}

// FeatureVector is the opaque per-state feature valuation produced by a
// FeatureSet; it is compared by value and hashed by the novelty package, but
// otherwise never interpreted by the search core.
type FeatureVector []FeatureValue

// FeatureValue is a single finite-domain feature value.
type FeatureValue int32

// FeatureSet evaluates a state into the feature vector novelty is computed
// against.
type FeatureSet[S any] interface {
	// Evaluate returns the feature vector for state.
	Evaluate(state S) FeatureVector

	// UsesExtraFeatures reports whether this feature set includes
	// synthetic/derived features beyond the raw state variables; novelty
	// evaluators may size their tables differently when this is true.
	UsesExtraFeatures() bool
}

// RewardFunc evaluates the external, possibly absent, reward signal SBFWS
// accumulates along a path. A nil RewardFunc means "no reward function
// configured" (spec.md §4.4: node.R stays 0 in that case).
type RewardFunc[S any] interface {
	Evaluate(state S) float64
}

// UnsatGoalHeuristic counts the number of currently-unsatisfied subgoals
// (#g) in a state.
type UnsatGoalHeuristic[S any] interface {
	Evaluate(state S) uint32
}

// L0Heuristic counts trivial numeric landmarks not yet achieved in a state;
// consumed as a black-box alternative to simulation-based #r computation.
type L0Heuristic[S any] interface {
	Evaluate(state S) uint32
}

// L2NormHeuristic computes a ball-geodesic index used as a third,
// alternative #r strategy.
type L2NormHeuristic[S any] interface {
	BallGeodesicIndex(state S) uint32
}
