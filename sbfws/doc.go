// Package sbfws implements SBFWSEngine and its supporting collaborators
// (SearchNode, AtomsetHelper/RelevantAtomSet, SBFWSHeuristic, NoveltyIndexer)
// per spec.md §4.3-4.4: a best-first search over a model.StateModel[S] that
// prunes by (#g, #r) novelty across up to three priority queues, invoking
// package iw as a subroutine to compute each node's relevant-atom set.
//
// Unlike package iw, whose layers are plain pqueue.FIFOs, every queue here is
// a single priority structure built on pqueue.Queue (the dijkstra-derived
// heap idiom); the
// four-queue scheduler of SBFWSEngine is simply four instances of it with
// different comparators and, for Q1/QWGR1/QWGR2/QREST, a shared closed-list
// dedupe convention (Contains checks by state, not by node identity).
package sbfws
