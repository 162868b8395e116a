package novelty

import "github.com/wbfs/search/model"

// Tuple1 is a width-1 tuple: a single (feature index, feature value) pair.
type Tuple1 struct {
	Index int32
	Value model.FeatureValue
}

// Tuple2 is a width-2 tuple: an unordered pair of width-1 tuples with
// Index(A) < Index(B), so two feature vectors that agree on two positions
// always produce the same Tuple2 regardless of iteration order.
type Tuple2 struct {
	A, B Tuple1
}

// width1Tuples returns every (index, value) pair of fv.
func width1Tuples(fv model.FeatureVector) []Tuple1 {
	tuples := make([]Tuple1, len(fv))
	for i, v := range fv {
		tuples[i] = Tuple1{Index: int32(i), Value: v}
	}
	return tuples
}

// width2Tuples returns every unordered pair of distinct-index width-1
// tuples of fv.
func width2Tuples(fv model.FeatureVector) []Tuple2 {
	n := len(fv)
	tuples := make([]Tuple2, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			tuples = append(tuples, Tuple2{
				A: Tuple1{Index: int32(i), Value: fv[i]},
				B: Tuple1{Index: int32(j), Value: fv[j]},
			})
		}
	}
	return tuples
}

// changedIndices returns the set of positions at which fv and parent
// disagree. It assumes len(fv) == len(parent), which holds whenever both
// were produced by the same FeatureSet over states of the same problem.
func changedIndices(fv, parent model.FeatureVector) map[int]struct{} {
	changed := make(map[int]struct{})
	n := len(fv)
	if len(parent) < n {
		n = len(parent)
	}
	for i := 0; i < n; i++ {
		if fv[i] != parent[i] {
			changed[i] = struct{}{}
		}
	}
	// Positions of fv beyond parent's length count as changed (defensive:
	// the two feature sets should always agree in length in practice).
	for i := n; i < len(fv); i++ {
		changed[i] = struct{}{}
	}
	return changed
}
