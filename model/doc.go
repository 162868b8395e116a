// Package model defines the external-collaborator interfaces shared by the
// iw and sbfws search engines, plus the small set of concrete value types
// (ActionID, FeatureVector, WidthTag) that flow between them.
//
// Everything in this package is a seam, not an implementation: the state
// representation, the action-applicability/effect engine, the
// novelty-feature evaluator, and the auxiliary heuristics (unsatisfied-goal
// counter, L0, L2-norm geodesic index, reward function) are all supplied by
// the host program. model only fixes the shape of that contract so iw and
// sbfws can be written once, against a generic state type S, and reused
// across problems.
//
//	host program  --[implements]-->  model.StateModel[S] / model.FeatureSet[S]  --[consumed by]-->  iw.Engine[S], sbfws.Engine[S]
package model
