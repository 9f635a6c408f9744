// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - POI distance matrix with hybrid dense/sparse strategy selection.
//
// Contract:
//   - Unified validation first, then route by strategy (dispatcher shape).
//   - Both strategies produce identical entries on every input the sparse
//     path accepts.

package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/cost"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// DistanceMatrix returns shortest costs for every ordered POI pair,
// keyed by Pair[N]. Absent key means the pair is disconnected; a POI's
// own diagonal entry is always present and equals Zero on success.
//
// Strategy:
//   - StrategyAuto (default): dense when 3·|POI| > |V|, sparse otherwise.
//   - StrategyDense: one AllPairs closure filtered to POI×POI. Accepts
//     negative arcs; a negative cycle anywhere fails the run with
//     ErrNegativeCycle.
//   - StrategySparse: one dijkstra.Distances sweep per POI. Rejects
//     negative arcs with dijkstra.ErrNegativeArc.
//
// POI ids absent from the graph yield core.ErrVertexNotFound.
//
// Complexity: dense O(V³ + E); sparse O(|POI| · (V + E) log V).
//
// AI-Hints:
//   - The crossover constant tunes throughput, never results; force a
//     path with WithStrategy when benchmarking or testing equivalence.
//   - Duplicate POI ids are harmless: entries land on the same keys.
func DistanceMatrix[N comparable, C any](
	g core.Digraph[N, C],
	alg cost.Algebra[C],
	pois []N,
	opts ...MatrixOption,
) (map[Pair[N]]C, error) {
	// 1) Structural validation.
	if g == nil {
		return nil, ErrNilGraph
	}
	if alg == nil {
		return nil, ErrNilAlgebra
	}

	// 2) Resolve options and vet the strategy value before any work.
	cfg := DefaultMatrixOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Strategy {
	case StrategyAuto, StrategyDense, StrategySparse:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, cfg.Strategy)
	}

	// 3) Every POI must exist in the graph, whichever strategy runs.
	verts := g.Vertices()
	members := make(map[N]struct{}, len(verts))
	for _, v := range verts {
		members[v] = struct{}{}
	}
	for _, p := range pois {
		if _, ok := members[p]; !ok {
			return nil, fmt.Errorf("%w: poi %v", core.ErrVertexNotFound, p)
		}
	}

	// 4) Resolve StrategyAuto by the density crossover.
	strategy := cfg.Strategy
	if strategy == StrategyAuto {
		if 3*len(pois) > len(verts) {
			strategy = StrategyDense
		} else {
			strategy = StrategySparse
		}
	}

	// 5) Route by strategy.
	if strategy == StrategyDense {
		return denseMatrix(g, alg, pois)
	}

	return sparseMatrix(g, alg, pois)
}

// denseMatrix filters one full closure down to the POI pairs.
func denseMatrix[N comparable, C any](
	g core.Digraph[N, C],
	alg cost.Algebra[C],
	pois []N,
) (map[Pair[N]]C, error) {
	apsp, err := AllPairs(g, alg)
	if err != nil {
		return nil, err
	}

	out := make(map[Pair[N]]C, len(pois)*len(pois))
	for _, from := range pois {
		for _, to := range pois {
			if d, ok := apsp[Pair[N]{From: from, To: to}]; ok {
				out[Pair[N]{From: from, To: to}] = d
			}
		}
	}

	return out, nil
}

// sparseMatrix runs one single-source sweep per POI and keeps only the
// POI columns.
func sparseMatrix[N comparable, C any](
	g core.Digraph[N, C],
	alg cost.Algebra[C],
	pois []N,
) (map[Pair[N]]C, error) {
	out := make(map[Pair[N]]C, len(pois)*len(pois))
	for _, from := range pois {
		dist, err := dijkstra.Distances(g, alg, from)
		if err != nil {
			return nil, fmt.Errorf("poi %v: %w", from, err)
		}
		for _, to := range pois {
			if d, ok := dist[to]; ok {
				out[Pair[N]{From: from, To: to}] = d
			}
		}
	}

	return out, nil
}
