// Package pqueue provides a generic, heap-backed priority queue with
// attached membership tracking, generalizing the teacher's
// dijkstra.nodePQ/container-heap pattern (lazy-decrease-key binary heap) to
// an arbitrary item type and comparator, plus a plain hash/equality-keyed
// Set shared by closed lists and open-list "is this already pending"
// checks.
//
// Neither type is safe for concurrent use; the search core that owns them
// is single-threaded by design (spec.md §5).
package pqueue
