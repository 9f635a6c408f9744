// Package frontier provides the priority queue shared by every best-first
// search in this module.
//
// Queue[P, C] is a binary min-heap over container/heap, generic over the
// payload P carried with each entry and the priority type C. Ordering comes
// from a caller-supplied less function, so any cost type with a total order
// works, including non-numeric ones.
//
// The queue is built for the lazy decrease-key discipline:
//
//   - When a better priority is found for a payload already enqueued, callers
//     push a fresh entry instead of updating the old one.
//   - Stale entries stay in the heap and surface on Pop; callers detect them
//     by comparing the popped priority against their best-known cost and skip
//     them. The queue itself never removes or rewrites entries in place.
//
// This trades heap size (up to one entry per relaxation) for O(log n) pushes
// without back-pointers, and it is what keeps search results independent of
// when an improvement was discovered.
//
// Determinism: for a fixed sequence of Push calls the pop order is fixed.
// Entries with equal priority surface in an unspecified but reproducible
// order (binary-heap sift order is a pure function of the input sequence).
//
// Complexity: Push and Pop are O(log n); Peek and Len are O(1).
package frontier
