package sbfws

import "math"

// Config mirrors the enumerated SBFWS configuration keys of spec.md §6/§4.4.
// Build one with DefaultConfig and functional Options, the same pattern
// package iw uses.
type Config[S any] struct {
	// Prune: when true, handle_unprocessed_node drops nodes instead of
	// spilling them into QREST on the last novelty queue. Default: false
	// (bfws.prune).
	Prune bool

	// LazyIW1: when true, a non-empty Q1 is always drained before QWGR1 is
	// even looked at. Default: true (bfws.lazy_iw_1).
	LazyIW1 bool

	// MaxGenerations bounds total node creation; Run stops once reached.
	// Default: 10000 (bfws.max_generations).
	MaxGenerations int

	// Discount is the per-depth reward discount factor (lookahead.bfws.discount).
	// Default: 1.0.
	Discount float64

	// Horizon is the clock-time threshold beyond which a node is terminal
	// (spec.md §6's "Global horizon time"). Default: +Inf (no horizon).
	Horizon float64

	// NoveltyLevels, if nonzero, overrides auto-configuration and must be
	// 2 or 3. Zero means "auto" (spec.md's novelty_levels == -1).
	NoveltyLevels int

	// ExpectedRSize feeds the novelty-levels auto-configuration cost
	// estimate: a rough expected cardinality of a node's R set.
	ExpectedRSize int

	// EnforceStateConstraints passes through to ApplicableActions during
	// expansion. Default: true.
	EnforceStateConstraints bool

	// LogSearch and Visited mirror package iw's hook, substituting for the
	// original's JSON trace dump (out of scope per spec.md §1/§6).
	LogSearch bool
	Visited   func(node *SearchNode[S])
}

// Option configures a Config via functional options.
type Option[S any] func(*Config[S])

// DefaultConfig returns the documented defaults.
func DefaultConfig[S any]() Config[S] {
	return Config[S]{
		Prune:                   false,
		LazyIW1:                 true,
		MaxGenerations:          10000,
		Discount:                1.0,
		Horizon:                 math.Inf(1),
		NoveltyLevels:           0,
		ExpectedRSize:           10,
		EnforceStateConstraints: true,
		LogSearch:               false,
	}
}

// WithPrune sets Prune.
func WithPrune[S any](v bool) Option[S] { return func(c *Config[S]) { c.Prune = v } }

// WithMaxGenerations sets MaxGenerations.
func WithMaxGenerations[S any](n int) Option[S] { return func(c *Config[S]) { c.MaxGenerations = n } }

// WithDiscount sets Discount.
func WithDiscount[S any](d float64) Option[S] { return func(c *Config[S]) { c.Discount = d } }

// WithHorizon sets Horizon.
func WithHorizon[S any](h float64) Option[S] { return func(c *Config[S]) { c.Horizon = h } }

// WithNoveltyLevels overrides auto-configuration; v must be 2 or 3 (checked
// at New, not here).
func WithNoveltyLevels[S any](v int) Option[S] { return func(c *Config[S]) { c.NoveltyLevels = v } }

// WithLogSearch enables the Visited hook.
func WithLogSearch[S any](visited func(node *SearchNode[S])) Option[S] {
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
