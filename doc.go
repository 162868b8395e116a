// Package search is the core search engine of a reward-driven
// classical/hybrid automated planner.
//
// It ships two interacting best-first search algorithms over an abstract,
// host-supplied state type S:
//
//	iw/    — Iterated Width: layered breadth-first search pruned by
//	         width-1/width-2 novelty, used standalone and as the inner
//	         relevant-atom-set simulation package sbfws relies on.
//	sbfws/ — Simulated Best-First Width Search: a multi-queue best-first
//	         search driven by unachieved-subgoal counts (#g), relevant-atom
//	         counts (#r) and their novelty classification (w_g, w_gr).
//
// Supporting packages:
//
//	model/   — the StateModel, FeatureSet and auxiliary heuristic
//	           interfaces a host implements to plug a problem domain in.
//	novelty/ — width-1/width-2 novelty oracles shared by iw and sbfws.
//	pqueue/  — the generic priority queue, FIFO and hash-keyed set used by
//	           both search engines.
//
// The module ships no concrete StateModel; the only ones are the small toy
// models defined in the iw and sbfws test files.
//
// Problem loading, JSON encoding, CLI and trace serialization are not this
// module's concern: hosts drive iw.Engine and sbfws.Engine directly.
package search
