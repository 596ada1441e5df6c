package pqueue

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptyQueue is returned by Pop and Peek when no entry is queued.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// Entry is a single queued item.
//
// Key identifies the item for Update, Priority orders it, and Payload carries
// arbitrary data (for example a path) that travels with this particular entry.
type Entry[K comparable, P constraints.Ordered, V any] struct {
	Key      K
	Priority P
	Payload  V
}

// Interface is the method set shared by Queue and Heap.
type Interface[K comparable, P constraints.Ordered, V any] interface {
	// IsEmpty reports whether no entry is queued.
	IsEmpty() bool
	// Len returns the number of queued entries, duplicates included.
	Len() int
	// Insert queues e without looking for existing entries with the same key.
	Insert(e Entry[K, P, V])
	// Update sets the priority of every entry with the given key and returns
	// how many entries were changed.
	Update(key K, priority P) int
	// Pop removes and returns the minimum entry.
	Pop() (Entry[K, P, V], error)
	// Peek returns the minimum entry without removing it.
	Peek() (Entry[K, P, V], error)
}

var (
	_ Interface[int, int64, struct{}] = (*Queue[int, int64, struct{}])(nil)
	_ Interface[int, int64, struct{}] = (*Heap[int, int64, struct{}])(nil)
)
