package iw

import (
	"fmt"

	"github.com/wbfs/search/model"
	"github.com/wbfs/search/novelty"
	"github.com/wbfs/search/pqueue"
)

// Stats mirrors the per-novelty counters the original keeps alongside the
// search (not exposed in spec.md's distilled API but present in the
// original's run loop, where it drives trace output; here it is just a
// plain accessor instead of a trace-serialization stand-in).
type Stats struct {
	Width1Expanded    int
	Width1Generated   int
	Width2Expanded    int
	Width2Generated   int
	WidthGT2Generated int
}

// Engine runs IW simulations over a model.StateModel[S], per spec.md §4.2.
// One Engine instance is meant for a single Run call; construct a fresh one
// per simulation the way the original constructs a fresh lookahead driver
// per call site.
type Engine[S any] struct {
	m        model.StateModel[S]
	features model.FeatureSet[S]
	cfg      Config[S]

	oracle   novelty.CompoundOracle
	genOrder uint32
	stats    Stats

	// run-scoped state, populated by Run and retained for SeedNodes.
	optimalPaths []*Node[S]
	unreached    map[int]struct{}
}

// New validates cfg and returns an Engine ready to Run, mirroring the
// teacher's constructor-time validation (dijkstra.NewGraph-style fail-fast)
// rather than deferring the check into Run.
func New[S any](m model.StateModel[S], features model.FeatureSet[S], cfg Config[S]) (*Engine[S], error) {
	if cfg.MaxWidth != 1 && cfg.MaxWidth != 2 {
		return nil, fmt.Errorf("iw: %w: got %d", model.ErrUnsupportedMaxWidth, cfg.MaxWidth)
	}
	return &Engine[S]{
		m:        m,
		features: features,
		cfg:      cfg,
		oracle:   novelty.NewCompoundEvaluator(cfg.MaxWidth),
	}, nil
}

// Result is the outcome of a Run: spec.md §4.2's "(a) a best-reward node,
// (b) a set of R-relevant tuples, (c) a plan if all subgoals reached".
type Result[S any] struct {
	Success  bool
	Plan     []model.ActionID
	BestNode *Node[S]
	RSet     []novelty.Tuple1
}

// Stats returns the per-width expansion/generation counters accumulated by
// the most recent Run.
func (e *Engine[S]) Stats() Stats { return e.stats }

// SeedNodes returns, in subgoal index order, the first node along the
// search that satisfied each subgoal (nil where a subgoal was never
// reached). Supplements spec.md's distillation with the original's
// extract_seed_nodes accessor, used by callers that want per-subgoal
// witnesses rather than just the aggregate best node.
func (e *Engine[S]) SeedNodes() []*Node[S] {
	out := make([]*Node[S], len(e.optimalPaths))
	copy(out, e.optimalPaths)
	return out
}

func (e *Engine[S]) nextGenOrder() (uint32, error) {
	if e.genOrder == ^uint32(0) {
		return 0, model.ErrGenOrderOverflow
	}
	e.genOrder++
	return e.genOrder, nil
}

// Run executes the bounded-width breadth-first simulation of spec.md §4.2
// from seed. It never returns an error for search outcomes (state-space
// exhaustion is a normal result); the only errors are configuration/host
// failures (generation-order overflow, a RSetLoader failure).
func (e *Engine[S]) Run(seed S) (Result[S], error) {
	if e.cfg.RSetLoader != nil {
		tuples, err := e.cfg.RSetLoader()
		if err != nil {
			return Result[S]{}, fmt.Errorf("iw: loading R set: %w", err)
		}
		return Result[S]{Success: true, RSet: e.maybeFilter(tuples)}, nil
	}

	if !e.cfg.EnforceStateConstraints {
		guard := model.DeactivateZCC()
		defer guard.Release()
	}

	gen, err := e.nextGenOrder()
	if err != nil {
		return Result[S]{}, err
	}
	root := newRoot(seed, gen)
	rootFV := e.features.Evaluate(seed)
	root.W = e.oracle.Evaluate(rootFV, e.cfg.MaxWidth)
	e.recordVisited(root)

	e.optimalPaths = make([]*Node[S], e.m.NumSubgoals())
	e.unreached = make(map[int]struct{}, e.m.NumSubgoals())
	for i := 0; i < e.m.NumSubgoals(); i++ {
		if e.m.GoalAtIndex(seed, i) {
			e.optimalPaths[i] = root
		} else {
			e.unreached[i] = struct{}{}
		}
	}

	best := root
	if e.processNode(root, rootFV, &best) && len(e.unreached) == 0 {
		return e.finish(true, best), nil
	}

	open := [2]pqueue.FIFO[*nodeFV[S]]{}
	openNext := [2]pqueue.FIFO[*nodeFV[S]]{}
	open[0].Push(&nodeFV[S]{node: root, fv: rootFV})

	for !open[0].Empty() || !open[1].Empty() || !openNext[0].Empty() || !openNext[1].Empty() {
		for !open[0].Empty() || !open[1].Empty() {
			var cur *nodeFV[S]
			if !open[0].Empty() {
				cur = open[0].Pop()
				e.stats.Width1Expanded++
			} else {
				cur = open[1].Pop()
				e.stats.Width2Expanded++
			}

			for _, action := range e.m.ApplicableActions(cur.node.State, e.cfg.EnforceStateConstraints) {
				childState := e.m.Next(cur.node.State, action)
				gen, err := e.nextGenOrder()
				if err != nil {
					return Result[S]{}, err
				}
				child := newChild(childState, action, cur.node, gen)
				childFV := e.features.Evaluate(childState)
				child.W = e.oracle.EvaluatePair(childFV, cur.fv, e.cfg.MaxWidth)
				e.recordVisited(child)

				allReached := e.processNode(child, childFV, &best)
				if allReached && !e.cfg.Complete {
					return e.finish(true, best), nil
				}

				switch {
				case child.W == 1:
					openNext[0].Push(&nodeFV[S]{node: child, fv: childFV})
					e.stats.Width1Generated++
				case child.W == 2 && e.cfg.MaxWidth >= 2:
					openNext[1].Push(&nodeFV[S]{node: child, fv: childFV})
					e.stats.Width2Generated++
				default:
					e.stats.WidthGT2Generated++
				}
			}
		}
		open, openNext = openNext, [2]pqueue.FIFO[*nodeFV[S]]{}
	}

	success := len(e.unreached) == 0
	return e.finish(success, best), nil
}

// nodeFV pairs a Node with the feature vector it was evaluated against, so
// EvaluatePair can be offered the parent's vector without recomputing it.
type nodeFV[S any] struct {
	node *Node[S]
	fv   model.FeatureVector
}

// processNode implements process_node / process_node_complete. It returns
// true iff unreached is empty after processing node — the
// complete-mode branch deliberately never removes from e.unreached (spec.md
// §9: "preserve as written and flag"), so in complete mode this return value
// only ever reflects whatever was already true going in, mirroring the
// original's use of a variable it updates via an incomplete mid-iteration
// remove.
func (e *Engine[S]) processNode(node *Node[S], fv model.FeatureVector, best **Node[S]) bool {
	if !e.cfg.Complete {
		for i := range e.unreached {
			if e.m.GoalAtIndex(node.State, i) {
				if e.optimalPaths[i] == nil {
					e.optimalPaths[i] = node
				}
				node.R += 1.0
				delete(e.unreached, i)
			}
		}
	} else {
		// Complete mode: iterate every subgoal, record first-reaching nodes
		// and accumulate R, but do not mutate e.unreached. This means
		// len(e.unreached) == 0 can only become true here if it already was
		// before this call — preserved verbatim per the original's
		// behavior, not "fixed" to remove newly-satisfied indices.
		for i := 0; i < e.m.NumSubgoals(); i++ {
			if e.m.GoalAtIndex(node.State, i) {
				if e.optimalPaths[i] == nil {
					e.optimalPaths[i] = node
				}
				node.R += 1.0
			}
		}
	}

	if node.R > (*best).R {
		*best = node
	}

	return len(e.unreached) == 0
}

func (e *Engine[S]) recordVisited(node *Node[S]) {
	if e.cfg.LogSearch && e.cfg.Visited != nil {
		e.cfg.Visited(node)
	}
}

func (e *Engine[S]) maybeFilter(tuples []novelty.Tuple1) []novelty.Tuple1 {
	if e.cfg.FilterRSet && e.cfg.GoalBallFilter != nil {
		return e.cfg.GoalBallFilter(tuples)
	}
	return tuples
}

func (e *Engine[S]) finish(success bool, best *Node[S]) Result[S] {
	var rTuples []novelty.Tuple1
	e.oracle.MarkTuplesInWidth1Table(&rTuples)
	if e.cfg.GoalDirected {
		rTuples = e.restrictToGoalPaths(rTuples)
	}
	rTuples = e.maybeFilter(rTuples)

	return Result[S]{
		Success:  success,
		Plan:     e.extractPlan(best),
		BestNode: best,
		RSet:     rTuples,
	}
}

// restrictToGoalPaths implements the goal_directed option: restrict the R
// set to the width-1 tuples found along the chain from root to each
// recorded first-satisfying node, instead of every tuple seen anywhere
// during the simulation.
func (e *Engine[S]) restrictToGoalPaths(tuples []novelty.Tuple1) []novelty.Tuple1 {
	onPath := make(map[novelty.Tuple1]struct{})
	for _, n := range e.optimalPaths {
		for cur := n; cur != nil; cur = cur.Parent {
			fv := e.features.Evaluate(cur.State)
			for i, v := range fv {
				onPath[novelty.Tuple1{Index: int32(i), Value: v}] = struct{}{}
			}
		}
	}
	if len(onPath) == 0 {
		return tuples
	}
	restricted := tuples[:0:0]
	for _, t := range tuples {
		if _, ok := onPath[t]; ok {
			restricted = append(restricted, t)
		}
	}
	return restricted
}

// extractPlan walks node's parent chain collecting actions, then reverses,
// per spec.md §4.2 step 3.
func (e *Engine[S]) extractPlan(node *Node[S]) []model.ActionID {
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
