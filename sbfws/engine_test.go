package sbfws_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wbfs/search/model"
	"github.com/wbfs/search/sbfws"
)

func newHeuristic[S any](t *testing.T, m model.StateModel[S], features model.FeatureSet[S]) *sbfws.Heuristic[S] {
	t.Helper()
	h, err := sbfws.NewHeuristic[S](m, features, sbfws.HeuristicConfig[S]{
		Strategy:           sbfws.RelevantSetSimulation,
		RStrategy:          sbfws.RSeedAndGDecreasers,
		SimulationWidth:    1,
		CompleteSimulation: false,
	})
	require.NoError(t, err)
	return h
}

// --- trivial-goal model ---

type trivialState struct{}
type trivialModel struct{}

func (trivialModel) Init() trivialState                                    { return trivialState{} }
func (trivialModel) ApplicableActions(trivialState, bool) []model.ActionID { return nil }
func (trivialModel) Next(s trivialState, _ model.ActionID) trivialState    { return s }
func (trivialModel) Goal(trivialState) bool                                { return true }
func (trivialModel) GoalAtIndex(trivialState, int) bool                    { return true }
func (trivialModel) NumSubgoals() int                                      { return 1 }
func (trivialModel) TupleIndexSize() int                                   { return 1 }
func (trivialModel) ClockTime(trivialState) float64                        { return 0 }
func (trivialModel) HashState(trivialState) uint64                         { return 0 }
func (trivialModel) StatesEqual(trivialState, trivialState) bool           { return true }

type trivialFeatures struct{}

func (trivialFeatures) Evaluate(trivialState) model.FeatureVector { return model.FeatureVector{0} }
func (trivialFeatures) UsesExtraFeatures() bool                   { return false }

type constReward struct{ v float64 }

func (r constReward) Evaluate(trivialState) float64 { return r.v }

func TestEngine_TrivialGoal(t *testing.T) {
	m := trivialModel{}
	heur := newHeuristic[trivialState](t, m, trivialFeatures{})
	cfg := sbfws.DefaultConfig[trivialState]()
	e, err := sbfws.New[trivialState](m, trivialFeatures{}, constReward{v: 7}, heur, cfg)
	require.NoError(t, err)

	result, err := e.Run(m.Init())
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Empty(t, result.Plan)
	require.Equal(t, 7.0, result.BestNode.R)
}

// --- linear chain model: states 0..N, single action inc ---

const incAction model.ActionID = 1

type chainModel struct{ limit int }

func (m chainModel) Init() int { return 0 }
func (m chainModel) ApplicableActions(s int, _ bool) []model.ActionID {
	if s >= m.limit {
		return nil
	}
	return []model.ActionID{incAction}
}
func (chainModel) Next(s int, _ model.ActionID) int { return s + 1 }
func (m chainModel) Goal(s int) bool                { return s == m.limit }
func (m chainModel) GoalAtIndex(s int, _ int) bool  { return s == m.limit }
func (chainModel) NumSubgoals() int                 { return 1 }
func (chainModel) TupleIndexSize() int               { return 32 }
func (chainModel) ClockTime(s int) float64           { return float64(s) }
func (chainModel) HashState(s int) uint64            { return uint64(s) }
func (chainModel) StatesEqual(a, b int) bool         { return a == b }

type chainFeatures struct{}

func (chainFeatures) Evaluate(s int) model.FeatureVector {
	return model.FeatureVector{model.FeatureValue(s)}
}
func (chainFeatures) UsesExtraFeatures() bool { return false }

func TestEngine_LinearChain_ReachesGoal(t *testing.T) {
	m := chainModel{limit: 6}
	heur := newHeuristic[int](t, m, chainFeatures{})
	cfg := sbfws.DefaultConfig[int]()
	e, err := sbfws.New[int](m, chainFeatures{}, nil, heur, cfg)
	require.NoError(t, err)

	result, err := e.Run(m.Init())
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Len(t, result.Plan, 6)
}

func TestEngine_HorizonTermination(t *testing.T) {
	m := chainModel{limit: 9} // goal requires g >= 9
	heur := newHeuristic[int](t, m, chainFeatures{})
	cfg := sbfws.DefaultConfig[int]()
	cfg.Apply(sbfws.WithHorizon[int](3))
	e, err := sbfws.New[int](m, chainFeatures{}, nil, heur, cfg)
	require.NoError(t, err)

	result, err := e.Run(m.Init())
	require.NoError(t, err)
	require.False(t, result.Success)
}

func TestEngine_GenerationBudget(t *testing.T) {
	m := chainModel{limit: 100}
	heur := newHeuristic[int](t, m, chainFeatures{})
	cfg := sbfws.DefaultConfig[int]()
	cfg.Apply(sbfws.WithMaxGenerations[int](5))
	e, err := sbfws.New[int](m, chainFeatures{}, nil, heur, cfg)
	require.NoError(t, err)

	result, err := e.Run(m.Init())
	require.NoError(t, err)
	require.False(t, result.Success)
}

// --- width-2-required model ---
//
// State is a pair of bits (a, b). From (0,0), either bit can be set
// independently; the goal (1,1) is only reachable once BOTH individual
// bit-values have already appeared in the width-1 table from the other
// branch, so reaching it is never width-1-novel — only the joint pair is
// new.

type pairState struct{ a, b int }

type pairModel struct{}

const (
	setA model.ActionID = 1
	setB model.ActionID = 2
)

func (pairModel) Init() pairState { return pairState{0, 0} }
func (pairModel) ApplicableActions(s pairState, _ bool) []model.ActionID {
	var acts []model.ActionID
	if s.a == 0 {
		acts = append(acts, setA)
	}
	if s.b == 0 {
		acts = append(acts, setB)
	}
	return acts
}
func (pairModel) Next(s pairState, action model.ActionID) pairState {
	switch action {
	case setA:
		return pairState{1, s.b}
	case setB:
		return pairState{s.a, 1}
	}
	return s
}
func (pairModel) Goal(s pairState) bool              { return s.a == 1 && s.b == 1 }
func (pairModel) GoalAtIndex(s pairState, _ int) bool { return s.a == 1 && s.b == 1 }
func (pairModel) NumSubgoals() int                    { return 1 }
func (pairModel) TupleIndexSize() int                 { return 2 }
func (pairModel) ClockTime(pairState) float64         { return 0 }
func (pairModel) HashState(s pairState) uint64        { return uint64(s.a)<<1 | uint64(s.b) }
func (pairModel) StatesEqual(a, b pairState) bool     { return a == b }

type pairFeatures struct{}

func (pairFeatures) Evaluate(s pairState) model.FeatureVector {
	return model.FeatureVector{model.FeatureValue(s.a), model.FeatureValue(s.b)}
}
func (pairFeatures) UsesExtraFeatures() bool { return false }

func TestEngine_Width2Required_StillFindsGoal(t *testing.T) {
	// The (1,0)/(0,1) siblings make every width-1 tuple of (1,1) old by the
	// time it is reached from either branch. The goal test in create_node
	// runs before any novelty evaluation, so (1,1) is still found as soon
	// as a sibling is expanded, whatever its width.
	m := pairModel{}
	heur, err := sbfws.NewHeuristic[pairState](m, pairFeatures{}, sbfws.HeuristicConfig[pairState]{
		Strategy:           sbfws.RelevantSetSimulation,
		RStrategy:          sbfws.RSeedAndGDecreasers,
		SimulationWidth:    1,
		CompleteSimulation: false,
	})
	require.NoError(t, err)

	cfg := sbfws.DefaultConfig[pairState]()
	cfg.Apply(sbfws.WithNoveltyLevels[pairState](3))
	e, err := sbfws.New[pairState](m, pairFeatures{}, nil, heur, cfg)
	require.NoError(t, err)

	result, err := e.Run(m.Init())
	require.NoError(t, err)
	require.True(t, result.Success)
}

func TestEngine_RejectsUnsupportedNoveltyLevels(t *testing.T) {
	m := chainModel{limit: 1}
	heur := newHeuristic[int](t, m, chainFeatures{})
	cfg := sbfws.DefaultConfig[int]()
	cfg.Apply(sbfws.WithNoveltyLevels[int](4))
	_, err := sbfws.New[int](m, chainFeatures{}, nil, heur, cfg)
	require.ErrorIs(t, err, model.ErrUnsupportedNoveltyLevels)
}

func TestDefaultConfig_HorizonIsPositiveInfinity(t *testing.T) {
	require.True(t, math.IsInf(sbfws.DefaultConfig[int]().Horizon, 1)) // no horizon unless one is set
}
