// Package iw implements IWEngine (spec.md §4.2): a bounded-width (1 or 2),
// breadth-first simulation run from a seed state that records, for each of
// the state model's subgoals, the first node along the search that
// satisfies it, and extracts the set of width-1 tuples relevant to those
// subgoals for use as SBFWS's R set (spec.md §4.3).
//
// The search proceeds depth-layer by depth-layer using two plain FIFO
// queues (one per novelty level, pqueue.FIFO) that are swapped with their
// "next layer" counterparts once the current layer is drained — mirroring
// the teacher's two-queue BFS idiom (algorithms.BFS's frontier queue),
// generalized to two parallel frontiers instead of one.
package iw
