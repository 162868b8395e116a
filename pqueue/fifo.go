package pqueue

// FIFO is a plain first-in-first-out queue, used by IWEngine's per-depth-
// level open lists (spec.md §4.2: "open[1]"/"open[2]"), which need
// insertion-order draining within a layer, not priority ordering —
// equivalent to the teacher's lapkt::SimpleQueue, or to the plain
// slice-backed queue algorithms.BFS drains its frontier from.
type FIFO[T any] struct {
	items []T
}

// Push appends item to the back of the queue.
func (f *FIFO[T]) Push(item T) {
	f.items = append(f.items, item)
}

// Pop removes and returns the item at the front of the queue. Panics if
// empty; callers must check Empty() first.
func (f *FIFO[T]) Pop() T {
	item := f.items[0]
	f.items = f.items[1:]
	return item
}

// Empty reports whether the queue holds no items.
func (f *FIFO[T]) Empty() bool { return len(f.items) == 0 }

// Len returns the number of pending items.
func (f *FIFO[T]) Len() int { return len(f.items) }
