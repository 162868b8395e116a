package sbfws

import (
	"fmt"

	"github.com/wbfs/search/iw"
	"github.com/wbfs/search/model"
	"github.com/wbfs/search/novelty"
)

// RelevantSetStrategy selects how #r (the relevant-atom count) is computed
// for a node, per spec.md §4.3.
type RelevantSetStrategy uint8

const (
	// RelevantSetNone disables #r entirely: GetHashR always returns 0 and
	// forces w_gr to GTOne with novelty infinite, effectively turning off
	// the (#g,#r) queues.
	RelevantSetNone RelevantSetStrategy = iota
	// RelevantSetL0 delegates to the L0 numeric-landmark heuristic.
	RelevantSetL0
	// RelevantSetG0 delegates to the L2-norm ball-geodesic index.
	RelevantSetG0
	// RelevantSetSimulation computes #r via an inner IW simulation
	// (compute_R). It is not the zero value of RelevantSetStrategy
	// (RelevantSetNone is), so a HeuristicConfig selects it by name.
	RelevantSetSimulation
)

// RComputationStrategy controls when compute_R recomputes a node's
// RelevantAtomSet from scratch (running a fresh IW simulation) versus
// inheriting and updating the parent's.
type RComputationStrategy uint8

const (
	// RSeed recomputes only for nodes with no parent (pure seed-state R).
	RSeed RComputationStrategy = iota
	// RSeedAndGDecreasers additionally recomputes for any node that
	// strictly decreases #g relative to its parent.
	RSeedAndGDecreasers
)

// Heuristic is SBFWSHeuristic (spec.md §4.3): the orchestrator of #g, #r,
// w_g and w_gr evaluation for SearchNodes, owning the novelty-oracle tables
// keyed by composite node type.
type Heuristic[S any] struct {
	m        model.StateModel[S]
	features model.FeatureSet[S]
	l0       model.L0Heuristic[S]
	l2       model.L2NormHeuristic[S]

	strategy  RelevantSetStrategy
	rStrategy RComputationStrategy

	simulationWidth    int
	completeSimulation bool

	// wgOracles[level-1][unachieved] and wgrOracles[level-1][indexed-type]
	// are created lazily, one fresh oracle per (level, type) the first
	// time that type is seen — mirroring the original's on-demand map
	// population rather than pre-sizing every possible type.
	wgOracles  [2]map[int]novelty.Oracle
	wgrOracles [2]map[int]novelty.Oracle

	indexer *NoveltyIndexer
}

// HeuristicConfig configures a new Heuristic.
type HeuristicConfig[S any] struct {
	L0 model.L0Heuristic[S]
	L2 model.L2NormHeuristic[S]

	Strategy           RelevantSetStrategy
	RStrategy          RComputationStrategy
	SimulationWidth    int
	CompleteSimulation bool
}

// NewHeuristic builds a Heuristic over m/features per cfg. SimulationWidth
// must be 1 or 2 when Strategy is RelevantSetSimulation.
func NewHeuristic[S any](m model.StateModel[S], features model.FeatureSet[S], cfg HeuristicConfig[S]) (*Heuristic[S], error) {
	if cfg.Strategy == RelevantSetSimulation && cfg.SimulationWidth != 1 && cfg.SimulationWidth != 2 {
		return nil, fmt.Errorf("sbfws: %w: got %d", model.ErrUnsupportedMaxWidth, cfg.SimulationWidth)
	}
	return &Heuristic[S]{
		m:                  m,
		features:           features,
		l0:                 cfg.L0,
		l2:                 cfg.L2,
		strategy:           cfg.Strategy,
		rStrategy:          cfg.RStrategy,
		simulationWidth:    cfg.SimulationWidth,
		completeSimulation: cfg.CompleteSimulation,
		wgOracles:          [2]map[int]novelty.Oracle{make(map[int]novelty.Oracle), make(map[int]novelty.Oracle)},
		wgrOracles:         [2]map[int]novelty.Oracle{make(map[int]novelty.Oracle), make(map[int]novelty.Oracle)},
		indexer:            NewNoveltyIndexer(),
	}, nil
}

// Reset empties every oracle table owned by this heuristic (spec.md §5:
// "Resetting the heuristic resets every owned table.").
func (h *Heuristic[S]) Reset() {
	for lvl := 0; lvl < 2; lvl++ {
		for _, o := range h.wgOracles[lvl] {
			o.Reset()
		}
		for _, o := range h.wgrOracles[lvl] {
			o.Reset()
		}
	}
}

// ComputeUnachieved returns #g: the number of currently-unsatisfied
// subgoals in node's state.
func (h *Heuristic[S]) ComputeUnachieved(state S) int {
	n := 0
	for i := 0; i < h.m.NumSubgoals(); i++ {
		if !h.m.GoalAtIndex(state, i) {
			n++
		}
	}
	return n
}

func (h *Heuristic[S]) wgOracleFor(level int, unachieved int) novelty.Oracle {
	table := h.wgOracles[level-1]
	o, ok := table[unachieved]
	if !ok {
		o = novelty.NewEvaluator(level)
		table[unachieved] = o
	}
	return o
}

func (h *Heuristic[S]) wgrOracleFor(level int, typ int) novelty.Oracle {
	table := h.wgrOracles[level-1]
	o, ok := table[typ]
	if !ok {
		o = novelty.NewEvaluator(level)
		table[typ] = o
	}
	return o
}

// EvaluateWG evaluates node at novelty level (1 or 2) against the
// #g-partitioned oracle tables and updates node.WG (spec.md §4.3's
// "Classification update"). A level-2 call leaves a node already classified
// One unchanged; every other call overwrites node.WG with this call's result,
// so evaluating the same node at level 1 twice can turn One into GTOne.
func (h *Heuristic[S]) EvaluateWG(node *SearchNode[S], level int) {
	if level == 2 && node.WG == model.WidthOne {
		return
	}
	oracle := h.wgOracleFor(level, node.Unachieved)
	nov := h.evaluateAgainst(oracle, node, level, func(n *SearchNode[S]) int { return n.Unachieved })

	switch level {
	case 1:
		if nov == 1 {
			node.WG = model.WidthOne
		} else {
			node.WG = model.WidthGTOne
		}
	case 2:
		if nov == 2 {
			node.WG = model.WidthTwo
		} else {
			node.WG = model.WidthGTTwo
		}
	}
}

// EvaluateWGR evaluates node at novelty level (1 or 2) against the
// (#g,#r)-partitioned oracle tables and updates node.WGR. node.HashR must
// already be computed (via GetHashR) before calling this.
func (h *Heuristic[S]) EvaluateWGR(node *SearchNode[S], level int) {
	if h.strategy == RelevantSetNone {
		// GetHashR already forced WGR to GTOne; #r is disabled, so no
		// oracle lookup should ever promote this node back to One/Two.
		return
	}
	if level == 2 && node.WGR == model.WidthOne {
		return
	}
	typ := h.indexer.Index(node.Unachieved, node.HashR)
	oracle := h.wgrOracleFor(level, typ)
	nov := h.evaluateAgainst(oracle, node, level, func(n *SearchNode[S]) int {
		return h.indexer.Index(n.Unachieved, n.HashR)
	})

	switch level {
	case 1:
		if nov == 1 {
			node.WGR = model.WidthOne
		} else {
			node.WGR = model.WidthGTOne
		}
	case 2:
		if nov == 2 {
			node.WGR = model.WidthTwo
		} else {
			node.WGR = model.WidthGTTwo
		}
	}
}

// evaluateAgainst evaluates node's feature vector against oracle at width,
// using the parent-aware two-argument form when node has a parent whose
// composite type (per typeOf) equals node's own.
func (h *Heuristic[S]) evaluateAgainst(oracle novelty.Oracle, node *SearchNode[S], width int, typeOf func(*SearchNode[S]) int) int {
	fv := h.features.Evaluate(node.State)
	if node.Parent != nil && typeOf(node.Parent) == typeOf(node) {
		parentFV := h.features.Evaluate(node.Parent.State)
		return oracle.EvaluatePair(fv, parentFV, width)
	}
	return oracle.Evaluate(fv, width)
}

// GetHashR computes and caches #r on node per the configured
// RelevantSetStrategy, returning it. Also, under RelevantSetNone, forces
// node.WGR to GTOne so the (#g,#r) queues are effectively disabled for this
// node, per spec.md §4.3.
func (h *Heuristic[S]) GetHashR(node *SearchNode[S]) (uint32, error) {
	switch h.strategy {
	case RelevantSetNone:
		node.HashR = 0
		node.WGR = model.WidthGTOne
		return 0, nil
	case RelevantSetL0:
		if h.l0 == nil {
			node.HashR = 0
			return 0, nil
		}
		node.HashR = h.l0.Evaluate(node.State)
		return node.HashR, nil
	case RelevantSetG0:
		if h.l2 == nil {
			node.HashR = 0
			return 0, nil
		}
		node.HashR = h.l2.BallGeodesicIndex(node.State)
		return node.HashR, nil
	default: // RelevantSetSimulation
		n, err := h.computeR(node)
		if err != nil {
			return 0, err
		}
		node.HashR = uint32(n)
		return node.HashR, nil
	}
}

// computeR is compute_R (spec.md §4.3): recursive along the parent chain,
// bounded by per-node caching on RelevantAtoms.
func (h *Heuristic[S]) computeR(node *SearchNode[S]) (int, error) {
	if node.RelevantAtoms != nil {
		return node.RelevantAtoms.NumReached(), nil
	}

	recompute := !node.HasParent()
	if h.rStrategy == RSeedAndGDecreasers {
		recompute = recompute || node.DecreasesUnachievedSubgoals()
	}

	if recompute {
		engine, err := iw.New[S](h.m, h.features, iw.DefaultConfig[S](h.simulationWidth, h.completeSimulation))
		if err != nil {
			return 0, err
		}
		result, err := engine.Run(node.State)
		if err != nil {
			return 0, err
		}
		helper := NewAtomsetHelper(result.RSet)
		ras := NewRelevantAtomSet(helper)
		ras.Init(h.features.Evaluate(node.State))
		node.Helper = helper
		node.RelevantAtoms = ras
		return ras.NumReached(), nil
	}

	if _, err := h.computeR(node.Parent); err != nil {
		return 0, err
	}
	clone := node.Parent.RelevantAtoms.Clone()
	node.Helper = node.Parent.Helper
	fv := h.features.Evaluate(node.State)
	if node.DecreasesUnachievedSubgoals() {
		clone.Init(fv)
	} else {
		clone.Update(fv)
	}
	node.RelevantAtoms = clone
	return clone.NumReached(), nil
}
