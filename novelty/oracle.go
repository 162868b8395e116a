package novelty

import (
	"math"

	"github.com/wbfs/search/model"
)

// Infinite is the novelty value returned when no subtuple up to the
// requested width was new: "not novel within the widths considered".
const Infinite = math.MaxInt32

// Oracle is the NoveltyOracle collaborator of spec.md §4.1.
type Oracle interface {
	// Evaluate returns the novelty of fv against this oracle's tables at
	// width, marking every subtuple of size 1..width it examines.
	Evaluate(fv model.FeatureVector, width int) int

	// EvaluatePair is the parent-aware optimization: valid only when
	// parent was evaluated against the very same tables (i.e. the caller
	// keyed this oracle by the same composite type for both). It skips
	// re-examining subtuples composed entirely of positions unchanged
	// between parent and fv, since those were already marked when parent
	// itself was evaluated.
	EvaluatePair(fv, parent model.FeatureVector, width int) int

	// Reset empties every table owned by this oracle.
	Reset()
}

// CompoundOracle additionally exposes the width-1 table contents, used by
// IWEngine to extract the R set of tuples relevant to the subgoals reached
// during a simulation.
type CompoundOracle interface {
	Oracle

	// MarkTuplesInWidth1Table appends every width-1 tuple seen so far by
	// this oracle to *tuples.
	MarkTuplesInWidth1Table(tuples *[]Tuple1)
}

type oracle struct {
	maxWidth int
	table1   map[Tuple1]struct{}
	table2   map[Tuple2]struct{}
}

// NewEvaluator returns a fresh oracle able to evaluate novelty at widths
// 1..maxWidth. maxWidth must be 1 or 2; the caller (iw/sbfws) is responsible
// for surfacing model.ErrUnsupportedMaxWidth before reaching here.
func NewEvaluator(maxWidth int) Oracle {
	return newOracle(maxWidth)
}

// NewCompoundEvaluator is NewEvaluator plus width-1 table introspection.
func NewCompoundEvaluator(maxWidth int) CompoundOracle {
	return newOracle(maxWidth)
}

func newOracle(maxWidth int) *oracle {
	o := &oracle{maxWidth: maxWidth, table1: make(map[Tuple1]struct{})}
	if maxWidth >= 2 {
		o.table2 = make(map[Tuple2]struct{})
	}
	return o
}

func (o *oracle) Evaluate(fv model.FeatureVector, width int) int {
	return o.evaluate(fv, nil, width)
}

func (o *oracle) EvaluatePair(fv, parent model.FeatureVector, width int) int {
	return o.evaluate(fv, parent, width)
}

func (o *oracle) evaluate(fv, parent model.FeatureVector, width int) int {
	if width > o.maxWidth {
		width = o.maxWidth
	}
	novelty := Infinite

	if width >= 1 {
		if o.markWidth1(fv, parent) && novelty == Infinite {
			novelty = 1
		}
	}
	if width >= 2 {
		if o.markWidth2(fv, parent) && novelty == Infinite {
			novelty = 2
		}
	}
	return novelty
}

// markWidth1 marks every width-1 tuple of fv (or, when parent is non-nil,
// only those at positions that changed from parent) and reports whether any
// of them was previously unseen.
func (o *oracle) markWidth1(fv, parent model.FeatureVector) bool {
	var changed map[int]struct{}
	if parent != nil {
		changed = changedIndices(fv, parent)
	}
	newFound := false
	for _, t := range width1Tuples(fv) {
		if parent != nil {
			if _, ok := changed[int(t.Index)]; !ok {
				continue
			}
		}
		if _, seen := o.table1[t]; !seen {
			newFound = true
		}
		o.table1[t] = struct{}{}
	}
	return newFound
}

// markWidth2 marks every width-2 tuple of fv whose pair involves at least
// one changed position (or every pair, if parent is nil) and reports
// whether any of them was previously unseen.
func (o *oracle) markWidth2(fv, parent model.FeatureVector) bool {
	if o.table2 == nil {
		return false
	}
	var changed map[int]struct{}
	if parent != nil {
		changed = changedIndices(fv, parent)
	}
	newFound := false
	for _, t := range width2Tuples(fv) {
		if parent != nil {
			_, aChanged := changed[int(t.A.Index)]
			_, bChanged := changed[int(t.B.Index)]
			if !aChanged && !bChanged {
				continue
			}
		}
		if _, seen := o.table2[t]; !seen {
			newFound = true
		}
		o.table2[t] = struct{}{}
	}
	return newFound
}

func (o *oracle) Reset() {
	o.table1 = make(map[Tuple1]struct{})
	if o.table2 != nil {
		o.table2 = make(map[Tuple2]struct{})
	}
}

func (o *oracle) MarkTuplesInWidth1Table(tuples *[]Tuple1) {
	for t := range o.table1 {
		*tuples = append(*tuples, t)
	}
}
