package pqueue

import "golang.org/x/exp/constraints"

// Queue is an unordered, slice-backed priority queue.
//
// The zero value is ready to use. Queue is not safe for concurrent use.
type Queue[K comparable, P constraints.Ordered, V any] struct {
	entries []Entry[K, P, V]
}

// New returns an empty Queue.
func New[K comparable, P constraints.Ordered, V any]() *Queue[K, P, V] {
	return &Queue[K, P, V]{}
}

// NewWithCapacity returns an empty Queue with room for n entries.
func NewWithCapacity[K comparable, P constraints.Ordered, V any](n int) *Queue[K, P, V] {
	return &Queue[K, P, V]{entries: make([]Entry[K, P, V], 0, n)}
}

// IsEmpty reports whether the queue holds no entry. O(1).
func (q *Queue[K, P, V]) IsEmpty() bool { return len(q.entries) == 0 }

// Len returns the number of queued entries. O(1).
func (q *Queue[K, P, V]) Len() int { return len(q.entries) }

// Insert appends e. O(1) amortized.
func (q *Queue[K, P, V]) Insert(e Entry[K, P, V]) {
	q.entries = append(q.entries, e)
}

// Update overwrites the priority of every entry whose key equals key and
// returns the number of entries touched. O(n).
func (q *Queue[K, P, V]) Update(key K, priority P) int {
	touched := 0
	for i := range q.entries {
		if q.entries[i].Key == key {
			q.entries[i].Priority = priority
			touched++
		}
	}

	return touched
}

// Pop removes and returns the entry with the smallest priority; the earliest
// queued entry wins ties. O(n).
func (q *Queue[K, P, V]) Pop() (Entry[K, P, V], error) {
	if len(q.entries) == 0 {
		var zero Entry[K, P, V]
		return zero, ErrEmptyQueue
	}

	i := q.minIndex()
	e := q.entries[i]

	// Shift the tail left so the survivors keep their insertion order,
	// then clear the vacated slot so payloads can be collected.
	last := len(q.entries) - 1
	copy(q.entries[i:], q.entries[i+1:])
	var zero Entry[K, P, V]
	q.entries[last] = zero
	q.entries = q.entries[:last]

	return e, nil
}

// Peek returns the entry Pop would return, without removing it. O(n).
func (q *Queue[K, P, V]) Peek() (Entry[K, P, V], error) {
	if len(q.entries) == 0 {
		var zero Entry[K, P, V]
		return zero, ErrEmptyQueue
	}

	return q.entries[q.minIndex()], nil
}

// minIndex returns the index of the first entry holding the minimum priority.
// The queue must not be empty.
func (q *Queue[K, P, V]) minIndex() int {
	best := 0
	for i := 1; i < len(q.entries); i++ {
		if q.entries[i].Priority < q.entries[best].Priority {
			best = i
		}
	}

	return best
}
