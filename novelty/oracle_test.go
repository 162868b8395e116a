package novelty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wbfs/search/model"
	"github.com/wbfs/search/novelty"
)

func fv(values ...int32) model.FeatureVector {
	out := make(model.FeatureVector, len(values))
	for i, v := range values {
		out[i] = model.FeatureValue(v)
	}
	return out
}

func TestEvaluate_FirstVectorIsAlwaysNovel1(t *testing.T) {
	o := novelty.NewEvaluator(2)
	nov := o.Evaluate(fv(0, 0, 0), 2)
	require.Equal(t, 1, nov)
}

func TestEvaluate_RepeatedVectorIsNotNovel(t *testing.T) {
	o := novelty.NewEvaluator(2)
	o.Evaluate(fv(0, 0, 0), 2)
	nov := o.Evaluate(fv(0, 0, 0), 2)
	require.Equal(t, novelty.Infinite, nov)
}

func TestEvaluate_SingleChangedFeatureIsNovel1(t *testing.T) {
	o := novelty.NewEvaluator(2)
	o.Evaluate(fv(0, 0, 0), 2)
	nov := o.Evaluate(fv(1, 0, 0), 2)
	require.Equal(t, 1, nov)
}

func TestEvaluate_NewPairWithOldSinglesIsNovel2(t *testing.T) {
	o := novelty.NewEvaluator(2)
	// Seed individual values 0 and 1 at positions 0 and 1 respectively,
	// across two different vectors, so both (0,0) and (1,1) width-1
	// tuples are known, but never together.
	o.Evaluate(fv(0, 9), 2)
	o.Evaluate(fv(9, 1), 2)
	nov := o.Evaluate(fv(0, 1), 2)
	require.Equal(t, 2, nov)
}

func TestEvaluate_WidthOneOracleNeverChecksPairs(t *testing.T) {
	o := novelty.NewEvaluator(1)
	o.Evaluate(fv(0, 9), 1)
	o.Evaluate(fv(9, 1), 1)
	// Both individual values 0 (pos 0) and 1 (pos 1) were already seen, so
	// a width-1-only oracle reports no novelty even though the pair itself
	// is new (it never builds a width-2 table).
	nov := o.Evaluate(fv(0, 1), 1)
	require.Equal(t, novelty.Infinite, nov)
}

func TestEvaluatePair_SkipsUnchangedPositions(t *testing.T) {
	o := novelty.NewEvaluator(2)
	parent := fv(0, 0, 0)
	o.Evaluate(parent, 2)

	// Child differs only at position 2; the pair form should still detect
	// novelty exactly as the unpaired form would.
	child := fv(0, 0, 5)
	novPair := novelty.NewEvaluator(2)
	novPair.Evaluate(parent, 2)
	got := novPair.EvaluatePair(child, parent, 2)
	require.Equal(t, 1, got)
	require.Equal(t, o.Evaluate(child, 2), got)
}

func TestReset_ClearsTables(t *testing.T) {
	o := novelty.NewEvaluator(2)
	o.Evaluate(fv(0, 0), 2)
	o.Reset()
	nov := o.Evaluate(fv(0, 0), 2)
	require.Equal(t, 1, nov)
}

func TestMarkTuplesInWidth1Table(t *testing.T) {
	o := novelty.NewCompoundEvaluator(1)
	o.Evaluate(fv(3, 4), 1)

	var tuples []novelty.Tuple1
	o.MarkTuplesInWidth1Table(&tuples)
	require.Len(t, tuples, 2)
	require.Contains(t, tuples, novelty.Tuple1{Index: 0, Value: 3})
	require.Contains(t, tuples, novelty.Tuple1{Index: 1, Value: 4})
}
