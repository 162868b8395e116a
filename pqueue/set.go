package pqueue

// Set is a hash/equality-keyed membership index: items are bucketed by a
// caller-supplied hash function and disambiguated within a bucket by a
// caller-supplied equality function, so the item type itself need not be
// comparable (Go map keys must be, but our items are graph-shaped and
// state-backed, so we roll our own bucketing instead of requiring that).
type Set[T any] struct {
	buckets map[uint64][]T
	hashOf  func(T) uint64
	equalOf func(a, b T) bool
	size    int
}

// NewSet returns an empty Set using hashOf/equalOf to bucket and
// disambiguate items.
func NewSet[T any](hashOf func(T) uint64, equalOf func(a, b T) bool) *Set[T] {
	return &Set[T]{
		buckets: make(map[uint64][]T),
		hashOf:  hashOf,
		equalOf: equalOf,
	}
}

// Contains reports whether an item equal to item (per equalOf) is present.
func (s *Set[T]) Contains(item T) bool {
	h := s.hashOf(item)
	for _, other := range s.buckets[h] {
		if s.equalOf(item, other) {
			return true
		}
	}
	return false
}

// Put inserts item, replacing any existing item the hash/equality functions
// consider the same.
func (s *Set[T]) Put(item T) {
	h := s.hashOf(item)
	bucket := s.buckets[h]
	for i, other := range bucket {
		if s.equalOf(item, other) {
			bucket[i] = item
			return
		}
	}
	s.buckets[h] = append(bucket, item)
	s.size++
}

// Remove deletes an item equal to item, if present.
func (s *Set[T]) Remove(item T) {
	h := s.hashOf(item)
	bucket := s.buckets[h]
	for i, other := range bucket {
		if s.equalOf(item, other) {
			bucket[i] = bucket[len(bucket)-1]
			s.buckets[h] = bucket[:len(bucket)-1]
			s.size--
			return
		}
	}
}

// Len returns the number of items currently tracked.
func (s *Set[T]) Len() int { return s.size }

// Clear empties the set.
func (s *Set[T]) Clear() {
	s.buckets = make(map[uint64][]T)
	s.size = 0
}
