// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - Canonical dense APSP closure with deterministic loop order.
//
// Contract:
//   - Absent map key means "no path"; diagonal seeds to min(Zero, self-loop).
//   - Fixed k → i → j order over the stable vertex enumeration.

package floydwarshall

import (
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/cost"
)

// AllPairs computes the shortest cost between every ordered vertex pair.
//
// Seeding:
//   - dist[(v,v)] = min(Zero, cheapest self-loop): a negative self-loop
//     becomes the diagonal value, a positive one loses to staying put.
//   - dist[(u,v)] = cheapest parallel arc u→v; no arc, no entry.
//
// Relaxation runs the fixed k → i → j triple loop with strict improvement
// only. A diagonal entry below Zero afterwards means some cycle pays to
// traverse, and the run returns ErrNegativeCycle: every other entry could
// still be lowered by another lap, so none is trustworthy.
//
// Complexity: O(V³ + E) time, O(V²) space.
//
// AI-Hints:
//   - Unreachable pairs are absent keys, not +Inf; probe with the comma-ok
//     form before trusting a read.
//   - For one source on non-negative arcs prefer dijkstra.Distances; for
//     one source with negative arcs prefer bellmanford.Distances. This
//     routine pays V³ to answer all pairs at once.
func AllPairs[N comparable, C any](
	g core.Digraph[N, C],
	alg cost.Algebra[C],
) (map[Pair[N]]C, error) {
	// 1) Structural validation.
	if g == nil {
		return nil, ErrNilGraph
	}
	if alg == nil {
		return nil, ErrNilAlgebra
	}

	// 2) Snapshot the vertex enumeration once; every loop below follows it.
	verts := g.Vertices()
	dist := make(map[Pair[N]]C, len(verts)*len(verts))
	zero := alg.Zero()

	// 3) Seed the diagonal, then fold arcs in: parallel arcs collapse to
	//    their minimum, self-loops compete with the zero diagonal.
	for _, v := range verts {
		dist[Pair[N]{From: v, To: v}] = zero
	}
	var (
		key  Pair[N]
		cur  C
		seen bool
	)
	for _, u := range verts {
		for _, a := range g.Successors(u) {
			key = Pair[N]{From: u, To: a.To}
			cur, seen = dist[key]
			if !seen || alg.Compare(a.Cost, cur) < 0 {
				dist[key] = a.Cost
			}
		}
	}

	// 4) Closure: fixed k → i → j order, strict improvement only.
	var (
		ik, kj, ij     C
		cand           C
		okIK, okKJ, ok bool
	)
	for _, k := range verts {
		for _, i := range verts {
			ik, okIK = dist[Pair[N]{From: i, To: k}]
			if !okIK { // i cannot reach k, no route via k can exist
				continue
			}
			for _, j := range verts {
				kj, okKJ = dist[Pair[N]{From: k, To: j}]
				if !okKJ { // k cannot reach j
					continue
				}
				cand = alg.Add(ik, kj)
				ij, ok = dist[Pair[N]{From: i, To: j}]
				if !ok || alg.Compare(cand, ij) < 0 {
					dist[Pair[N]{From: i, To: j}] = cand
				}
			}
		}
	}

	// 5) Detection: a lap that ends cheaper than it started is a pump.
	for _, v := range verts {
		if alg.Compare(dist[Pair[N]{From: v, To: v}], zero) < 0 {
			return nil, ErrNegativeCycle
		}
	}

	return dist, nil
}
