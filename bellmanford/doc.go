// Package bellmanford implements the Bellman-Ford shortest-path algorithm
// over any core.Digraph, with costs drawn from a caller-supplied
// cost.Algebra.
//
// Bellman-Ford tolerates arcs that compare below the algebra's Zero(),
// which Dijkstra must reject. The price is exhaustiveness: the engine runs
// exactly |V|−1 relaxation passes over the full arc list in a fixed order,
// then one extra detection pass. Any arc that still relaxes in the
// detection pass proves a negative-total cycle reachable from the source,
// and the run fails with ErrNegativeCycle rather than report costs that a
// longer walk could keep lowering.
//
// Entry points:
//
//   - ShortestPath: point-to-point query returning a core.Path. The path is
//     rebuilt from the predecessor map after the passes complete.
//   - Distances: single-source map of settled costs; only reached vertices
//     appear (no infinity exists for an opaque cost type).
//
// ErrNegativeCycle takes precedence over reachability: when a reachable
// negative cycle exists, no result is trustworthy, so the error is returned
// even if the goal had settled long before. Cycles in parts of the graph
// the source cannot reach are invisible to a single-source run and are not
// reported.
//
// An undirected edge with a cost below Zero() is a reachable two-vertex
// negative cycle by construction (the mirror arcs close it) and is detected
// as such.
//
// Complexity: O(V·E) time, O(V+E) space. Determinism: vertices and arcs are
// processed in the graph's stable enumeration order, so a fixed input gives
// a fixed result, predecessor choices included.
package bellmanford
