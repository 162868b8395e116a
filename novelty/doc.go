// Package novelty implements the NoveltyOracle collaborator of spec.md §4.1:
// given a feature vector and a width k, it reports the smallest tuple size
// j <= k at which some j-subtuple of the vector's (index, value) pairs has
// not been seen before in this oracle's own tables, and marks every subtuple
// it examines along the way.
//
// A single Oracle instance owns tables for widths 1..maxWidth together, so
// NewEvaluator(2) used by a single IWEngine run naturally distinguishes
// novelty 1 from novelty 2 from "not novel within width 2" with one
// Evaluate call per node. SBFWS instead allocates one dedicated Oracle, with
// maxWidth equal to the level, per (level, composite type) bucket (spec.md §4.3);
// calling Evaluate(fv, k) on such an oracle with maxWidth==k still uses the
// same smallest-j-up-to-k logic, now scoped to that bucket's own tables —
// this is deliberate fidelity to the original C++ library's per-bucket
// evaluator allocation, not a simplification.
package novelty
