package frontier

import (
	"container/heap"
	"errors"
)

// ErrNilLess indicates New was called without an ordering function.
var ErrNilLess = errors.New("frontier: less function must be non-nil")

// entry pairs one payload with the priority it was enqueued at.
type entry[P, C any] struct {
	priority C
	payload  P
}

// innerHeap implements heap.Interface over entries. It is unexported so the
// heap invariants cannot be broken from outside the package.
type innerHeap[P, C any] struct {
	less    func(a, b C) bool
	entries []*entry[P, C]
}

// Len returns the number of items in the heap.
func (h *innerHeap[P, C]) Len() int { return len(h.entries) }

// Less orders entries by priority through the caller's less function.
func (h *innerHeap[P, C]) Less(i, j int) bool {
	return h.less(h.entries[i].priority, h.entries[j].priority)
}

// Swap swaps two elements in the heap.
func (h *innerHeap[P, C]) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *innerHeap[P, C]) Push(x interface{}) {
	h.entries = append(h.entries, x.(*entry[P, C]))
}

// Pop removes and returns the last element. Called by heap.Pop.
func (h *innerHeap[P, C]) Pop() interface{} {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = nil // release the reference for the GC
	h.entries = old[:n-1]

	return e
}

// Queue is a min-priority queue of payloads. See the package documentation
// for the lazy decrease-key discipline it is designed around.
//
// A Queue is not safe for concurrent use.
type Queue[P, C any] struct {
	h innerHeap[P, C]
}

// New creates an empty Queue ordered by less (true when a ranks before b).
// Panics with ErrNilLess if less is nil: a queue without an order is a
// programming error, not a runtime condition.
func New[P, C any](less func(a, b C) bool) *Queue[P, C] {
	if less == nil {
		panic(ErrNilLess.Error())
	}

	return &Queue[P, C]{h: innerHeap[P, C]{less: less}}
}

// Push enqueues payload at the given priority.
// Duplicates of an already-enqueued payload are welcome; that is how callers
// express a decrease-key. O(log n).
func (q *Queue[P, C]) Push(priority C, payload P) {
	heap.Push(&q.h, &entry[P, C]{priority: priority, payload: payload})
}

// Pop removes and returns the entry with the minimum priority.
// The third result is false when the queue is empty. O(log n).
func (q *Queue[P, C]) Pop() (C, P, bool) {
	if len(q.h.entries) == 0 {
		var zc C
		var zp P

		return zc, zp, false
	}
	e := heap.Pop(&q.h).(*entry[P, C])

	return e.priority, e.payload, true
}

// Peek returns the minimum entry without removing it.
// The third result is false when the queue is empty. O(1).
func (q *Queue[P, C]) Peek() (C, P, bool) {
	if len(q.h.entries) == 0 {
		var zc C
		var zp P

		return zc, zp, false
	}
	e := q.h.entries[0]

	return e.priority, e.payload, true
}

// Len returns the number of enqueued entries, stale ones included. O(1).
func (q *Queue[P, C]) Len() int { return len(q.h.entries) }
