package sbfws_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wbfs/search/model"
	"github.com/wbfs/search/sbfws"
)

// toyModel/toyFeatures below exist only to satisfy NewHeuristic's generic
// parameters; the tests in this file drive EvaluateWG/EvaluateWGR directly
// against hand-built SearchNodes rather than running a full search.

type toyModel struct{}

func (toyModel) Init() int                                  { return 0 }
func (toyModel) ApplicableActions(int, bool) []model.ActionID { return nil }
func (toyModel) Next(s int, _ model.ActionID) int            { return s }
func (toyModel) Goal(int) bool                               { return false }
func (toyModel) GoalAtIndex(int, int) bool                   { return false }
func (toyModel) NumSubgoals() int                            { return 1 }
func (toyModel) TupleIndexSize() int                         { return 8 }
func (toyModel) ClockTime(int) float64                       { return 0 }
func (toyModel) HashState(s int) uint64                      { return uint64(s) }
func (toyModel) StatesEqual(a, b int) bool                   { return a == b }

type toyFeatures struct{}

func (toyFeatures) Evaluate(s int) model.FeatureVector {
	return model.FeatureVector{model.FeatureValue(s)}
}
func (toyFeatures) UsesExtraFeatures() bool { return false }

func TestHeuristic_EvaluateWG_ClassifiesAndNeverDowngrades(t *testing.T) {
	h, err := sbfws.NewHeuristic[int](toyModel{}, toyFeatures{}, sbfws.HeuristicConfig[int]{
		Strategy: sbfws.RelevantSetNone,
	})
	require.NoError(t, err)

	root := &sbfws.SearchNode[int]{State: 1, GenOrder: 1, Unachieved: 1}
	h.EvaluateWG(root, 1)
	require.Equal(t, model.WidthOne, root.WG, "first vector seen at any oracle is always width-1 novel")

	// Same (#g,state) pair seen again under a fresh node of the same type:
	// not novel at width 1 anymore.
	again := &sbfws.SearchNode[int]{State: 1, GenOrder: 2, Unachieved: 1}
	h.EvaluateWG(again, 1)
	require.Equal(t, model.WidthGTOne, again.WG)

	// Evaluating at level 2 must never downgrade an existing One.
	h.EvaluateWG(root, 2)
	require.Equal(t, model.WidthOne, root.WG)
}

func TestHeuristic_EvaluateWG_Level2UsesIndependentOracle(t *testing.T) {
	// spec.md §9: the level-2 oracle for a given #g type is a distinct
	// instance from the level-1 oracle for the same type, so a value
	// already marked in the level-1 table is NOT automatically known to
	// the level-2 table — the level-2 oracle can independently find it
	// width-1-novel in its own table, which (nov==2)?Two:GTTwo then maps
	// to GTTwo rather than Two. This is preserved verbatim from the
	// original, not "fixed" into a shared table.
	h, err := sbfws.NewHeuristic[int](toyModel{}, toyFeatures{}, sbfws.HeuristicConfig[int]{
		Strategy: sbfws.RelevantSetNone,
	})
	require.NoError(t, err)

	n := &sbfws.SearchNode[int]{State: 42, GenOrder: 1, Unachieved: 3, WG: model.WidthGTOne}
	h.EvaluateWG(n, 2)
	require.Equal(t, model.WidthGTTwo, n.WG, "novel-at-width-1-only in the level-2 table classifies as GTTwo, not Two")
}

func TestHeuristic_GetHashR_NoneStrategyForcesGTOneAndDisablesWGR(t *testing.T) {
	h, err := sbfws.NewHeuristic[int](toyModel{}, toyFeatures{}, sbfws.HeuristicConfig[int]{
		Strategy: sbfws.RelevantSetNone,
	})
	require.NoError(t, err)

	n := &sbfws.SearchNode[int]{State: 5, GenOrder: 1, Unachieved: 0}
	hashR, err := h.GetHashR(n)
	require.NoError(t, err)
	require.Equal(t, uint32(0), hashR)
	require.Equal(t, model.WidthGTOne, n.WGR)

	h.EvaluateWGR(n, 1)
	require.Equal(t, model.WidthGTOne, n.WGR, "RelevantSetNone must keep w_gr pinned at GTOne")
}

func TestNoveltyIndexer_InjectiveForDistinctPairs(t *testing.T) {
	idx := sbfws.NewNoveltyIndexer()
	a := idx.Index(1, 10)
	b := idx.Index(1, 11)
	c := idx.Index(2, 10)
	require.NotEqual(t, a, b)
	require.NotEqual(t, a, c)
	require.Equal(t, a, idx.Index(1, 10), "same pair must map to the same id")
}
