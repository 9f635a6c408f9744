package implicit

import "errors"

// Step is one outgoing transition produced by an Expand function: the
// successor state and the cost of moving to it.
type Step[S, C any] struct {
	State S
	Cost  C
}

// Expand generates the outgoing transitions of a state. It is called once
// per live expansion and must be side-effect free; returning an empty or
// nil slice marks a dead end.
type Expand[S, C any] func(s S) []Step[S, C]

// Goal reports whether a state satisfies the search target. Any number of
// states may satisfy it.
type Goal[S any] func(s S) bool

// Estimate is the A* heuristic: a lower bound on the remaining cost from s
// to the nearest goal. Admissibility is the caller's contract.
type Estimate[S, C any] func(s S) C

// KeyFunc projects a state onto the comparable key used for deduplication
// and cost tracking. States mapping to the same key are treated as one
// logical position; the full payload still flows to Expand, Goal, and
// Estimate.
type KeyFunc[S any, K comparable] func(s S) K

// Sentinel errors returned by the implicit package.
var (
	// ErrNilAlgebra is returned when the provided cost algebra is nil.
	ErrNilAlgebra = errors.New("implicit: algebra is nil")

	// ErrNilExpand is returned when the successor generator is nil.
	ErrNilExpand = errors.New("implicit: expand function is nil")

	// ErrNilGoal is returned when the goal predicate is nil.
	ErrNilGoal = errors.New("implicit: goal predicate is nil")

	// ErrNilEstimate is returned by AStar variants when the heuristic is nil.
	ErrNilEstimate = errors.New("implicit: estimate function is nil")

	// ErrNilKeyFunc is returned by By variants when the key projection is nil.
	ErrNilKeyFunc = errors.New("implicit: key function is nil")

	// ErrNoGoal is returned when the search space is exhausted without any
	// state satisfying the goal predicate.
	ErrNoGoal = errors.New("implicit: no goal state reachable")

	// ErrNegativeCycle is returned by BellmanFord variants when relaxation
	// counts prove a cost-decreasing cycle.
	ErrNegativeCycle = errors.New("implicit: negative cycle detected")
)
