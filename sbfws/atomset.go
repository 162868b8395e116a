package sbfws

import (
	"github.com/wbfs/search/model"
	"github.com/wbfs/search/novelty"
)

// AtomsetHelper holds the reference set of width-1 tuples an IW simulation
// judged relevant from some ancestor node, and its cardinality. Immutable
// after construction; many RelevantAtomSets may share one helper (spec.md
// §3: "holds a reference (shared, non-owning) to an AtomsetHelper").
type AtomsetHelper struct {
	tuples      []novelty.Tuple1
	numRelevant int
}

// NewAtomsetHelper builds a helper from the tuples an IW simulation
// reported relevant (typically iw.Result.RSet).
func NewAtomsetHelper(tuples []novelty.Tuple1) *AtomsetHelper {
	return &AtomsetHelper{tuples: tuples, numRelevant: len(tuples)}
}

// NumRelevant returns the total number of tuples tracked by this helper.
func (h *AtomsetHelper) NumRelevant() int { return h.numRelevant }

// RelevantAtomSet tracks, against one AtomsetHelper's reference tuples, how
// many have been reached along the path to some node so far. Init and
// Update differ in whether previously-reached bits are preserved: Init
// re-seeds from scratch (used when a node strictly decreases #g, spec.md
// §4.3's "inherit path"), Update is a monotonic OR.
type RelevantAtomSet struct {
	helper  *AtomsetHelper
	reached []bool
	count   int
}

// NewRelevantAtomSet allocates a RelevantAtomSet over helper with nothing
// reached yet.
func NewRelevantAtomSet(helper *AtomsetHelper) *RelevantAtomSet {
	return &RelevantAtomSet{helper: helper, reached: make([]bool, len(helper.tuples))}
}

// Helper returns the AtomsetHelper this set is tracking membership against.
func (r *RelevantAtomSet) Helper() *AtomsetHelper { return r.helper }

// NumReached returns #r: the count of reference tuples reached so far.
func (r *RelevantAtomSet) NumReached() int { return r.count }

// Init re-seeds the reached bits from scratch against fv: every reference
// tuple contained in fv is marked reached, every other one is cleared.
func (r *RelevantAtomSet) Init(fv model.FeatureVector) {
	r.count = 0
	for i, t := range r.helper.tuples {
		r.reached[i] = tupleContains(fv, t)
		if r.reached[i] {
			r.count++
		}
	}
}

// Update ORs newly-reached tuples into the existing reached bits (monotonic:
// never unmarks a previously-reached tuple).
func (r *RelevantAtomSet) Update(fv model.FeatureVector) {
	for i, t := range r.helper.tuples {
		if !r.reached[i] && tupleContains(fv, t) {
			r.reached[i] = true
			r.count++
		}
	}
}

// tupleContains reports whether fv carries the value t.Value at index
// t.Index.
func tupleContains(fv model.FeatureVector, t novelty.Tuple1) bool {
	idx := int(t.Index)
	return idx >= 0 && idx < len(fv) && fv[idx] == t.Value
}

// Clone returns an independent copy sharing this set's helper but owning
// its own membership vector, per spec.md §3's "Copy semantics produce an
// independent mutable membership vector sharing the helper."
func (r *RelevantAtomSet) Clone() *RelevantAtomSet {
	reached := make([]bool, len(r.reached))
	copy(reached, r.reached)
	return &RelevantAtomSet{helper: r.helper, reached: reached, count: r.count}
}
