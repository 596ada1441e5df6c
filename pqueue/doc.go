// Package pqueue provides the small priority queues used by the graph
// algorithms in errandgraph.
//
// Two implementations share one method set (Interface):
//
//   - Queue: an unordered slice of entries. Insert is an O(1) append, while
//     Pop and Update are O(n) linear scans. This is the default inside
//     package graph.
//   - Heap: the same observable behavior on top of container/heap, with
//     O(log n) Insert/Pop and O(n log n) Update.
//
// Semantics shared by both:
//
//   - Entries are never deduplicated. A key may be present several times with
//     different priorities and payloads; consumers re-check their best-known
//     value after popping (lazy invalidation).
//   - Update(key, p) overwrites the priority of every entry carrying key, not
//     just the first one. It does not look at payloads.
//   - Pop returns the entry with the smallest priority. Ties go to the entry
//     that was inserted first among those still queued.
//   - Pop and Peek on an empty queue return ErrEmptyQueue together with a zero
//     Entry; a real key is never used as an "empty" marker.
//
// Example:
//
//	q := pqueue.New[int, int64, []int]()
//	q.Insert(pqueue.Entry[int, int64, []int]{Key: 3, Priority: 7})
//	q.Insert(pqueue.Entry[int, int64, []int]{Key: 1, Priority: 2})
//	e, _ := q.Pop() // e.Key == 1
package pqueue
