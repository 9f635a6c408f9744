// Package dijkstra provides Dijkstra's shortest-path algorithm and its A*
// refinement over any core.Digraph, with costs drawn from a caller-supplied
// cost.Algebra.
//
// Overview:
//
//   - Dijkstra expands vertices in order of increasing cost from the source,
//     relaxing out-arcs and updating tentative costs as it goes.
//   - The frontier is a lazy min-heap (package frontier): an improvement
//     pushes a duplicate entry, and stale entries are skipped on pop by
//     comparing against the best-known cost. Entries are never rewritten or
//     eagerly pruned.
//   - Costs are opaque: ordering and accumulation go through the algebra, so
//     int64 metres, float64 seconds or a composite fare all work unchanged.
//
// Entry points (sharing one engine):
//
//   - ShortestPath: point-to-point query returning a core.Path. Frontier
//     entries carry the accumulated path prefix, so the winning path is read
//     straight off the goal entry with no predecessor walk afterwards.
//   - Distances: single-source sweep returning the settled cost of every
//     reached vertex. Entries carry only the vertex, keeping the sweep lean.
//   - AStar: point-to-point query ordered by Add(g(n), h(n, goal)). With an
//     admissible heuristic the returned path is optimal; the engine re-opens
//     a vertex when a cheaper arrival appears, so admissible-but-inconsistent
//     heuristics still finish with optimal answers at the price of extra
//     re-expansion.
//
// Key features:
//
//   - Functional options fine-tune a run without changing the signatures.
//   - WithCostLimit: stops exploring beyond a cost budget.
//   - WithImpassable: treats arcs at or above a threshold as walls.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph / ErrNilAlgebra / ErrNilHeuristic: missing collaborator.
//   - ErrVertexNotFound: source or goal is absent from the graph.
//   - ErrNegativeArc: the upfront O(V+E) scan found an arc cost comparing
//     below the algebra's Zero(). This guards the common violation; the
//     algebra's ordering obligations themselves are the caller's contract
//     and are not verified.
//   - ErrNoPath: the goal exists but no walk from the source reaches it.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V); each arc relaxation may push one heap entry.
//   - Space: O(V + E) under lazy decrease-key. ShortestPath and AStar
//     additionally copy an O(L) path prefix per push (L = prefix length),
//     trading memory for reconstruction-free results.
//
// Determinism:
//
//   - For a fixed graph enumeration order a run is fully deterministic.
//   - Ties between equal-cost paths resolve in an unspecified but
//     reproducible order.
//
// Thread safety:
//
//   - A run only reads the graph. Concurrent runs over one graph are safe
//     whenever the Digraph implementation tolerates concurrent reads
//     (core.Graph does).
package dijkstra
