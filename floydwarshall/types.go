// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - Shared result key, strategy knob, and sentinel errors.
//
// Contract:
//   - Strict sentinels; callers compare with errors.Is.

package floydwarshall

import "errors"

// Pair keys an all-pairs result entry: the cost of the cheapest route
// From → To. Absent key means no such route exists.
type Pair[N comparable] struct {
	From, To N
}

// Strategy selects how DistanceMatrix computes its entries.
type Strategy uint8

const (
	// StrategyAuto picks dense when 3·|POI| > |V|, sparse otherwise. The
	// crossover is a tuning constant, not a correctness boundary.
	StrategyAuto Strategy = iota

	// StrategyDense runs one full AllPairs closure and filters to POI×POI.
	StrategyDense

	// StrategySparse runs dijkstra.Distances once per POI; arcs must be
	// non-negative.
	StrategySparse
)

// MatrixOptions carries DistanceMatrix tuning; build it with
// DefaultMatrixOptions and MatrixOption functions.
type MatrixOptions struct {
	// Strategy forces a computation path; StrategyAuto applies the
	// crossover rule.
	Strategy Strategy
}

// DefaultMatrixOptions returns the automatic strategy selection.
func DefaultMatrixOptions() MatrixOptions {
	return MatrixOptions{Strategy: StrategyAuto}
}

// MatrixOption mutates MatrixOptions before a DistanceMatrix run.
type MatrixOption func(*MatrixOptions)

// WithStrategy forces the dense or sparse path regardless of the POI to
// vertex ratio.
func WithStrategy(s Strategy) MatrixOption {
	return func(o *MatrixOptions) { o.Strategy = s }
}

// Sentinel errors returned by the floydwarshall package.
var (
	// ErrNilGraph is returned when the provided graph is nil.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrNilAlgebra is returned when the provided cost algebra is nil.
	ErrNilAlgebra = errors.New("floydwarshall: algebra is nil")

	// ErrNegativeCycle is returned when any diagonal entry settles below
	// the algebra's Zero() after the closure completes.
	ErrNegativeCycle = errors.New("floydwarshall: negative cycle detected")

	// ErrUnknownStrategy is returned when MatrixOptions carry a Strategy
	// value outside the declared constants.
	ErrUnknownStrategy = errors.New("floydwarshall: unknown strategy")
)
