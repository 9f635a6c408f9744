// Package dijkstra: sentinel errors, functional options and the heuristic
// contract. The engine lives in dijkstra.go, the A* entry point in astar.go.
package dijkstra

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates that a nil graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilAlgebra indicates that a nil cost algebra was passed in.
	ErrNilAlgebra = errors.New("dijkstra: cost algebra is nil")

	// ErrNilHeuristic indicates that AStar was called without a heuristic.
	ErrNilHeuristic = errors.New("dijkstra: heuristic is nil")

	// ErrVertexNotFound indicates that the source or goal vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeArc indicates that an arc cost comparing below the algebra's
	// Zero() was detected during the upfront scan.
	ErrNegativeArc = errors.New("dijkstra: arc cost below algebra zero")

	// ErrNoPath indicates that the goal is not reachable from the source.
	ErrNoPath = errors.New("dijkstra: no path from source to goal")
)

// Heuristic estimates the remaining cost from n to the goal vertex. A* adds
// the estimate to the accumulated cost to order its frontier.
//
// For optimal answers the estimate must be admissible: never above the true
// remaining cost under the same algebra. This is the caller's obligation and
// is not verified.
type Heuristic[N comparable, C any] func(n, goal N) C

// Options configures a single run. The zero value explores without limits;
// use DefaultOptions and the With… constructors to adjust.
//
// Both knobs are typed on the cost alone, so they apply to any graph the
// algebra fits.
type Options[C any] struct {
	limit         C    // cost budget; vertices beyond it stay unexplored
	hasLimit      bool // true when a budget was supplied
	impassable    C    // wall threshold; arcs at or above it are skipped
	hasImpassable bool // true when a threshold was supplied
}

// Option represents a functional option for configuring a run.
type Option[C any] func(*Options[C])

// DefaultOptions returns the unrestricted configuration: no cost limit and
// no impassable threshold.
func DefaultOptions[C any]() Options[C] {
	return Options[C]{}
}

// WithCostLimit caps exploration at the given total cost. Vertices whose
// best-known cost compares above the limit are not settled and do not appear
// in results. There is no meaningful-limit validation here: with an opaque
// cost type only the algebra could judge it, and it is not available yet.
func WithCostLimit[C any](limit C) Option[C] {
	return func(o *Options[C]) {
		o.limit = limit
		o.hasLimit = true
	}
}

// WithImpassable treats every arc whose cost compares at or above threshold
// as a wall: the arc is skipped during relaxation as if it were absent.
func WithImpassable[C any](threshold C) Option[C] {
	return func(o *Options[C]) {
		o.impassable = threshold
		o.hasImpassable = true
	}
}
