package pqueue

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// Heap is a binary-heap priority queue with the same observable behavior as
// Queue: equal priorities are popped in insertion order and Update touches
// every entry with a matching key.
//
// The zero value is ready to use. Heap is not safe for concurrent use.
type Heap[K comparable, P constraints.Ordered, V any] struct {
	items heapItems[K, P, V]
	seq   uint64 // insertion counter used as the tie-breaker
}

// NewHeap returns an empty Heap.
func NewHeap[K comparable, P constraints.Ordered, V any]() *Heap[K, P, V] {
	return &Heap[K, P, V]{}
}

// IsEmpty reports whether the heap holds no entry. O(1).
func (h *Heap[K, P, V]) IsEmpty() bool { return len(h.items) == 0 }

// Len returns the number of queued entries. O(1).
func (h *Heap[K, P, V]) Len() int { return len(h.items) }

// Insert queues e. O(log n).
func (h *Heap[K, P, V]) Insert(e Entry[K, P, V]) {
	heap.Push(&h.items, &heapItem[K, P, V]{entry: e, seq: h.seq})
	h.seq++
}

// Update overwrites the priority of every entry whose key equals key and
// restores the heap order for each of them. O(n + k log n).
func (h *Heap[K, P, V]) Update(key K, priority P) int {
	var matched []*heapItem[K, P, V]
	for _, it := range h.items {
		if it.entry.Key == key {
			matched = append(matched, it)
		}
	}
	for _, it := range matched {
		it.entry.Priority = priority
		heap.Fix(&h.items, it.index)
	}

	return len(matched)
}

// Pop removes and returns the minimum entry. O(log n).
func (h *Heap[K, P, V]) Pop() (Entry[K, P, V], error) {
	if len(h.items) == 0 {
		var zero Entry[K, P, V]
		return zero, ErrEmptyQueue
	}

	it := heap.Pop(&h.items).(*heapItem[K, P, V])

	return it.entry, nil
}

// Peek returns the minimum entry without removing it. O(1).
func (h *Heap[K, P, V]) Peek() (Entry[K, P, V], error) {
	if len(h.items) == 0 {
		var zero Entry[K, P, V]
		return zero, ErrEmptyQueue
	}

	return h.items[0].entry, nil
}

type heapItem[K comparable, P constraints.Ordered, V any] struct {
	entry Entry[K, P, V]
	seq   uint64
	index int
}

// heapItems implements heap.Interface ordered by (priority, seq).
type heapItems[K comparable, P constraints.Ordered, V any] []*heapItem[K, P, V]

func (hs heapItems[K, P, V]) Len() int { return len(hs) }

func (hs heapItems[K, P, V]) Less(i, j int) bool {
	if hs[i].entry.Priority != hs[j].entry.Priority {
		return hs[i].entry.Priority < hs[j].entry.Priority
	}

	return hs[i].seq < hs[j].seq
}

func (hs heapItems[K, P, V]) Swap(i, j int) {
	hs[i], hs[j] = hs[j], hs[i]
	hs[i].index = i
	hs[j].index = j
}

func (hs *heapItems[K, P, V]) Push(x interface{}) {
	it := x.(*heapItem[K, P, V])
	it.index = len(*hs)
	*hs = append(*hs, it)
}

func (hs *heapItems[K, P, V]) Pop() interface{} {
	old := *hs
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // avoid memory leak
	it.index = -1
	*hs = old[:n-1]

	return it
}
