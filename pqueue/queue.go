package pqueue

import "container/heap"

// Queue is a binary-heap priority queue generalizing dijkstra.nodePQ: items
// are ordered by a caller-supplied Less (true means "a should be served
// before b"), and membership is tracked via an embedded Set so callers can
// cheaply ask "is a node with this state already pending here" the way
// SBFWS's is_open check does across its four open lists.
type Queue[T any] struct {
	h       *innerHeap[T]
	members *Set[T]
}

// NewQueue returns an empty Queue. less defines priority order; hashOf/
// equalOf back the membership Set used by Contains.
func NewQueue[T any](less func(a, b T) bool, hashOf func(T) uint64, equalOf func(a, b T) bool) *Queue[T] {
	return &Queue[T]{
		h:       &innerHeap[T]{less: less},
		members: NewSet[T](hashOf, equalOf),
	}
}

// Insert adds item to the queue.
func (q *Queue[T]) Insert(item T) {
	heap.Push(q.h, item)
	q.members.Put(item)
}

// Next removes and returns the highest-priority item. Panics if the queue
// is empty; callers must check Empty()/Len() first, mirroring the
// teacher's heap.Pop usage pattern.
func (q *Queue[T]) Next() T {
	item := heap.Pop(q.h).(T)
	q.members.Remove(item)
	return item
}

// Len returns the number of pending items.
func (q *Queue[T]) Len() int { return q.h.Len() }

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.h.Len() == 0 }

// Contains reports whether an item equal (per the queue's equalOf) to item
// is currently pending.
func (q *Queue[T]) Contains(item T) bool { return q.members.Contains(item) }

// Clear empties the queue.
func (q *Queue[T]) Clear() {
	q.h.items = nil
	q.members.Clear()
}

// innerHeap adapts Queue's slice + comparator to container/heap.Interface.
type innerHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *innerHeap[T]) Len() int           { return len(h.items) }
func (h *innerHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *innerHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *innerHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *innerHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}
