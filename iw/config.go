package iw

import "github.com/wbfs/search/novelty"

// Config mirrors the enumerated options of spec.md §4.2. Zero value is not
// meaningful; build one with DefaultConfig and functional Options, the way
// the teacher's dijkstra.DefaultOptions/dijkstra.Option pair works.
type Config[S any] struct {
	// Complete: if true, do not stop once every subgoal has been
	// individually reached; keep exploring until state-space exhaustion.
	// No default: DefaultConfig takes it as an argument, since "complete"
	// is a per-call mode, not a global config key.
	Complete bool

	// MaxWidth is the simulation's maximum novelty width; must be 1 or 2.
	MaxWidth int

	// GoalDirected: when true, the extracted R set is restricted to atoms
	// lying on paths to satisfied subgoals. Default: false
	// (lookahead.iw.goal_directed).
	GoalDirected bool

	// EnforceStateConstraints: passed through to the state model's
	// ApplicableActions; when false, a model.ZCCGuard disables zero-
	// crossing control for the scope of Run. Default: true
	// (lookahead.iw.enforce_state_constraints).
	EnforceStateConstraints bool

	// RSetLoader, if non-nil, supplies the R set instead of computing it
	// (lookahead.iw.from_file: the original reads a path; file I/O is out
	// of scope here per spec.md §1, so the host supplies the already-
	// parsed tuples instead). Default: nil.
	RSetLoader func() ([]novelty.Tuple1, error)

	// FilterRSet: if true, GoalBallFilter (if set) is applied to the
	// final R set before it is returned. Default: false
	// (lookahead.iw.filter).
	FilterRSet bool

	// GoalBallFilter implements the goal-ball filter heuristic applied
	// when FilterRSet is true; nil is a no-op filter.
	GoalBallFilter func(tuples []novelty.Tuple1) []novelty.Tuple1

	// LogSearch: if true, Visited (if set) is invoked for every generated
	// node. Default: false (lookahead.iw.log).
	LogSearch bool

	// Visited, when LogSearch is true, is called once per generated node
	// in generation order, in place of the original's JSON trace dump
	// (trace serialization is out of scope per spec.md §1/§6).
	Visited func(node *Node[S])
}

// Option configures a Config via functional options.
type Option[S any] func(*Config[S])

// DefaultConfig returns a Config with the documented defaults and the
// given max width / completeness, which have no sensible default of their
// own (every caller must pick a width and a mode).
func DefaultConfig[S any](maxWidth int, complete bool) Config[S] {
	return Config[S]{
		Complete:                complete,
		MaxWidth:                maxWidth,
		GoalDirected:            false,
		EnforceStateConstraints: true,
		FilterRSet:              false,
		LogSearch:               false,
	}
}

// WithGoalDirected sets GoalDirected.
func WithGoalDirected[S any](v bool) Option[S] {
	return func(c *Config[S]) { c.GoalDirected = v }
}

// WithEnforceStateConstraints sets EnforceStateConstraints.
func WithEnforceStateConstraints[S any](v bool) Option[S] {
	return func(c *Config[S]) { c.EnforceStateConstraints = v }
}

// WithRSetLoader sets RSetLoader.
func WithRSetLoader[S any](loader func() ([]novelty.Tuple1, error)) Option[S] {
	return func(c *Config[S]) { c.RSetLoader = loader }
}

// WithFilterRSet enables the goal-ball filter and sets the filter function.
func WithFilterRSet[S any](filter func(tuples []novelty.Tuple1) []novelty.Tuple1) Option[S] {
	return func(c *Config[S]) {
		c.FilterRSet = true
		c.GoalBallFilter = filter
	}
}

// WithLogSearch enables the Visited hook.
func WithLogSearch[S any](visited func(node *Node[S])) Option[S] {
	return func(c *Config[S]) {
		c.LogSearch = true
		c.Visited = visited
	}
}

// Apply applies opts to cfg in order.
func (c *Config[S]) Apply(opts ...Option[S]) {
	for _, opt := range opts {
		opt(c)
	}
}
