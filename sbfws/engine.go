package sbfws

import (
	"fmt"
	"math"

	"github.com/wbfs/search/model"
	"github.com/wbfs/search/pqueue"
)

// Engine is SBFWSEngine (spec.md §4.4): the top-level best-first search
// over a model.StateModel[S], scheduling nodes across Q1/QWGR1/QWGR2/QREST
// and delegating per-node #g/#r/novelty evaluation to a Heuristic.
type Engine[S any] struct {
	m        model.StateModel[S]
	features model.FeatureSet[S]
	reward   model.RewardFunc[S] // nil ⇒ node.R stays 0
	heur     *Heuristic[S]
	cfg      Config[S]

	noveltyLevels int
	genOrder      uint32
	generated     int

	closed *pqueue.Set[*SearchNode[S]]
	q1     *pqueue.Queue[*SearchNode[S]]
	qwgr1  *pqueue.Queue[*SearchNode[S]]
	qwgr2  *pqueue.Queue[*SearchNode[S]] // nil if noveltyLevels == 2
	qrest  *pqueue.Queue[*SearchNode[S]]

	best     *SearchNode[S]
	solution *SearchNode[S]
	stats    Stats
}

// Stats exposes which queue produced each processed node, supplementing
// spec.md's distilled API the way iw.Stats supplements IWEngine's — useful
// for asserting, e.g., that QWGR2 actually contributed a processed node in
// a width-2-required scenario.
type Stats struct {
	ProcessedViaQ1    int
	ProcessedViaQWGR1 int
	ProcessedViaQWGR2 int
	ProcessedViaQREST int
}

// Stats returns the per-queue processed-node counters accumulated so far.
func (e *Engine[S]) Stats() Stats { return e.stats }

// New validates cfg, auto-configures novelty_levels if unset, and returns
// an Engine ready to Run.
func New[S any](m model.StateModel[S], features model.FeatureSet[S], reward model.RewardFunc[S], heur *Heuristic[S], cfg Config[S]) (*Engine[S], error) {
	levels := cfg.NoveltyLevels
	if levels == 0 {
		levels = autoNoveltyLevels(m, cfg)
	} else if levels != 2 && levels != 3 {
		return nil, fmt.Errorf("sbfws: %w: got %d", model.ErrUnsupportedNoveltyLevels, levels)
	}

	hashOf := func(n *SearchNode[S]) uint64 { return m.HashState(n.State) }
	equalOf := func(a, b *SearchNode[S]) bool { return m.StatesEqual(a.State, b.State) }

	e := &Engine[S]{
		m:             m,
		features:      features,
		reward:        reward,
		heur:          heur,
		cfg:           cfg,
		noveltyLevels: levels,
		closed:        pqueue.NewSet[*SearchNode[S]](hashOf, equalOf),
		q1:            pqueue.NewQueue[*SearchNode[S]](lessQ1[S], hashOf, equalOf),
		qwgr1:         pqueue.NewQueue[*SearchNode[S]](lessQWGR[S], hashOf, equalOf),
		qrest:         pqueue.NewQueue[*SearchNode[S]](lessGenOrder[S], hashOf, equalOf),
	}
	if levels == 3 {
		e.qwgr2 = pqueue.NewQueue[*SearchNode[S]](lessQWGR[S], hashOf, equalOf)
	}
	return e, nil
}

// autoNoveltyLevels implements spec.md §4.4's cost-estimate formula.
func autoNoveltyLevels[S any](m model.StateModel[S], cfg Config[S]) int {
	numAtoms := float64(m.TupleIndexSize())
	estimate := float64(m.NumSubgoals()) * float64(cfg.ExpectedRSize) * (numAtoms*numAtoms + numAtoms) / (8 * 1024 * 1024)
	if estimate > 2048 {
		return 2
	}
	return 3
}

// lessQ1 orders Q1 by unachieved ascending, then g ascending, then a
// (vacuous within Q1, since every member already has WG == One) preference
// for WG == One, then gen_order ascending — written out in full per
// spec.md §4.4 rather than dropping the always-true branch.
func lessQ1[S any](a, b *SearchNode[S]) bool {
	if a.Unachieved != b.Unachieved {
		return a.Unachieved < b.Unachieved
	}
	if a.G != b.G {
		return a.G < b.G
	}
	aOne, bOne := a.WG == model.WidthOne, b.WG == model.WidthOne
	if aOne != bOne {
		return aOne
	}
	return a.GenOrder < b.GenOrder
}

// lessQWGR orders QWGR1/QWGR2 by w_gr ascending, then unachieved ascending,
// then R descending, then g ascending, then gen_order ascending.
//
// Within a (w_gr, unachieved) bucket the HIGHER-reward node is served first.
func lessQWGR[S any](a, b *SearchNode[S]) bool {
	if a.WGR != b.WGR {
		return a.WGR < b.WGR
	}
	if a.Unachieved != b.Unachieved {
		return a.Unachieved < b.Unachieved
	}
	if a.R != b.R {
		return a.R > b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.GenOrder < b.GenOrder
}

func lessGenOrder[S any](a, b *SearchNode[S]) bool { return a.GenOrder < b.GenOrder }

func (e *Engine[S]) nextGenOrder() (uint32, error) {
	if e.genOrder == ^uint32(0) {
		return 0, model.ErrGenOrderOverflow
	}
	e.genOrder++
	return e.genOrder, nil
}

// Result is the outcome of a Run.
type Result[S any] struct {
	Success  bool
	Plan     []model.ActionID
	BestNode *SearchNode[S]
}

// Run executes the search from seed per spec.md §4.4's main loop,
// processing one node at a time via processOneNode until termination.
func (e *Engine[S]) Run(seed S) (Result[S], error) {
	gen, err := e.nextGenOrder()
	if err != nil {
		return Result[S]{}, err
	}
	root := newRootNode[S](seed, gen)
	e.generated++
	root.Unachieved = e.heur.ComputeUnachieved(seed)
	if err := e.evaluateRewardAndUpdateBest(root); err != nil {
		return Result[S]{}, err
	}

	if e.m.Goal(seed) {
		e.solution = root
		return e.finish(), nil
	}
	if e.isTerminal(root) {
		return e.finish(), nil
	}
	if err := e.routeNewNode(root); err != nil {
		return Result[S]{}, err
	}

	for {
		ok, err := e.processOneNode()
		if err != nil {
			return Result[S]{}, err
		}
		if !ok {
			break
		}
		if e.solution != nil {
			break
		}
	}
	return e.finish(), nil
}

// processOneNode implements spec.md §4.4's process_one_node, returning
// false once the search is exhausted (all four queues empty) or the
// generation budget is spent.
func (e *Engine[S]) processOneNode() (bool, error) {
	if e.generated >= e.cfg.MaxGenerations {
		return false, nil
	}

	if e.cfg.LazyIW1 && !e.q1.Empty() {
		node := e.q1.Next()
		node.WG = model.WidthOne
		e.stats.ProcessedViaQ1++
		return true, e.processNode(node)
	}

	if !e.qwgr1.Empty() {
		node := e.qwgr1.Next()
		if _, err := e.heur.GetHashR(node); err != nil {
			return false, err
		}
		nov := e.evaluateWGRNovelty(node, 1)
		if node.Processed {
			return true, nil
		}
		if nov == 1 {
			e.stats.ProcessedViaQWGR1++
			return true, e.processNode(node)
		}
		return true, e.handleUnprocessedNode(node, e.noveltyLevels == 2)
	}

	if e.noveltyLevels == 3 && !e.qwgr2.Empty() {
		node := e.qwgr2.Next()
		nov := e.evaluateWGRNovelty(node, 2)
		if node.Processed {
			return true, nil
		}
		if nov == 2 {
			e.stats.ProcessedViaQWGR2++
			return true, e.processNode(node)
		}
		return true, e.handleUnprocessedNode(node, true)
	}

	if !e.qrest.Empty() {
		node := e.qrest.Next()
		if !node.Processed {
			e.stats.ProcessedViaQREST++
			return true, e.processNode(node)
		}
		return true, nil
	}

	return false, nil
}

// evaluateWGRNovelty evaluates node's w_gr at level and returns the raw
// novelty number the oracle produced (distinct from the WidthTag
// classification EvaluateWGR also records on the node).
func (e *Engine[S]) evaluateWGRNovelty(node *SearchNode[S], level int) int {
	before := node.WGR
	e.heur.EvaluateWGR(node, level)
	// The tag alone tells us whether this level's raw novelty equaled
	// `level`: WG/WGR only ever reaches WidthOne/WidthTwo when the oracle
	// reported exactly that width at this call.
	switch level {
	case 1:
		if node.WGR == model.WidthOne && before != model.WidthOne {
			return 1
		}
	case 2:
		if node.WGR == model.WidthTwo && before != model.WidthTwo {
			return 2
		}
	}
	return level + 1 // anything != level
}

// handleUnprocessedNode is spec.md §4.4's handle_unprocessed_node.
func (e *Engine[S]) handleUnprocessedNode(node *SearchNode[S], isLast bool) error {
	if isLast && !e.cfg.Prune {
		e.qrest.Insert(node)
	}
	return nil
}

// processNode is spec.md §4.4's process_node.
func (e *Engine[S]) processNode(node *SearchNode[S]) error {
	node.Processed = true
	e.closed.Put(node)
	return e.expandNode(node)
}

// expandNode is spec.md §4.4's expand_node.
func (e *Engine[S]) expandNode(node *SearchNode[S]) error {
	for _, action := range e.m.ApplicableActions(node.State, e.cfg.EnforceStateConstraints) {
		successor := e.m.Next(node.State, action)
		if e.alreadyGenerated(successor) {
			continue
		}

		gen, err := e.nextGenOrder()
		if err != nil {
			return err
		}
		child := newChildNode(successor, action, node, gen)
		e.generated++

		isGoal, err := e.createNode(child)
		if err != nil {
			return err
		}
		if isGoal {
			break
		}
	}
	return nil
}

func (e *Engine[S]) alreadyGenerated(state S) bool {
	probe := &SearchNode[S]{State: state}
	if e.closed.Contains(probe) || e.q1.Contains(probe) || e.qwgr1.Contains(probe) || e.qrest.Contains(probe) {
		return true
	}
	if e.qwgr2 != nil && e.qwgr2.Contains(probe) {
		return true
	}
	return false
}

// createNode is spec.md §4.4's create_node.
func (e *Engine[S]) createNode(node *SearchNode[S]) (bool, error) {
	if err := e.evaluateRewardAndUpdateBest(node); err != nil {
		return false, err
	}

	if e.m.Goal(node.State) {
		e.solution = node
		e.logVisited(node)
		return true, nil
	}
	if e.isTerminal(node) {
		e.logVisited(node)
		return false, nil
	}

	node.Unachieved = e.heur.ComputeUnachieved(node.State)
	if err := e.routeNewNode(node); err != nil {
		return false, err
	}
	return false, nil
}

// routeNewNode evaluates w_g at level 1 and inserts node into Q1 (if
// w_g == One) and always into QWGR1, plus QWGR2 when novelty_levels == 3.
func (e *Engine[S]) routeNewNode(node *SearchNode[S]) error {
	e.heur.EvaluateWG(node, 1)
	if node.WG == model.WidthOne {
		e.q1.Insert(node)
	}
	e.qwgr1.Insert(node)
	if e.noveltyLevels == 3 {
		e.qwgr2.Insert(node)
	}
	e.logVisited(node)
	return nil
}

func (e *Engine[S]) logVisited(node *SearchNode[S]) {
	if e.cfg.LogSearch && e.cfg.Visited != nil {
		e.cfg.Visited(node)
	}
}

// isTerminal reports whether node's clock time has reached the configured
// horizon.
func (e *Engine[S]) isTerminal(node *SearchNode[S]) bool {
	return e.m.ClockTime(node.State) >= e.cfg.Horizon
}

// evaluateRewardAndUpdateBest computes node.R per spec.md §4.4's "Reward
// evaluation" and then runs update_best_node.
func (e *Engine[S]) evaluateRewardAndUpdateBest(node *SearchNode[S]) error {
	if e.reward == nil {
		node.R = 0
	} else {
		node.R = math.Pow(e.cfg.Discount, float64(node.G)) * e.reward.Evaluate(node.State)
		if node.Parent != nil {
			node.R += node.Parent.R
		}
	}
	e.updateBestNode(node)
	return nil
}

// updateBestNode accepts node as the new best if current best is null, or
// if node.g < best.g OR node.R > best.R. This is not a lexicographic
// ordering and may oscillate; preserved verbatim per spec.md §9.
func (e *Engine[S]) updateBestNode(node *SearchNode[S]) {
	if e.best == nil || node.G < e.best.G || node.R > e.best.R {
		e.best = node
	}
}

func (e *Engine[S]) finish() Result[S] {
	target := e.solution
	if target == nil {
		target = e.best
	}
	return Result[S]{
		Success:  e.solution != nil,
		Plan:     e.extractPlan(target),
		BestNode: e.best,
	}
}

// extractPlan walks node's parent chain collecting actions, then reverses.
func (e *Engine[S]) extractPlan(node *SearchNode[S]) []model.ActionID {
	if node == nil {
		return nil
	}
	var actions []model.ActionID
	for n := node; n.HasParent(); n = n.Parent {
		actions = append(actions, n.Action)
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions
}
