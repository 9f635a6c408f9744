// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - Dense all-pairs shortest paths over any core.Digraph with a
//     caller-supplied cost.Algebra, negative arcs included.
//   - POI distance matrices via a hybrid dense/sparse strategy switch.
//
// Contract:
//   - Results are keyed by Pair[N]{From, To}; an absent key means "no
//     path" (no +Inf exists for an opaque cost type).
//   - The diagonal seeds to min(Zero, self-loop cost); after the triple
//     loop, any diagonal entry below Zero proves a negative cycle and the
//     whole run fails with ErrNegativeCycle.
//
// The triple loop runs in the fixed k → i → j order over the graph's
// stable vertex enumeration, with strict-improvement relaxation only, so a
// fixed input always yields the identical map.
//
// Entry points:
//
//   - AllPairs: the full V×V closure, O(V³) time, O(V²) space.
//   - DistanceMatrix: distances restricted to a point-of-interest subset.
//     When the subset is large relative to the graph (3·|POI| > |V|) one
//     dense AllPairs run amortizes better than repeated single-source
//     sweeps; below that, one dijkstra.Distances per POI wins. The
//     crossover is a tuning constant, not a correctness boundary, and
//     WithStrategy can force either path. Both strategies agree entry-wise
//     on every input the sparse path accepts.
//
// Choose bellmanford for single-source queries on negative-arc graphs and
// dijkstra when arcs are non-negative; this package pays V³ up front to
// answer every pair afterwards for free.
package floydwarshall
