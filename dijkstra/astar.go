// Package dijkstra: the A* entry point. The engine is shared with
// ShortestPath; only the frontier ordering differs.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/cost"
)

// AStar computes the minimum-cost path from source to goal in g, ordering
// the frontier by alg.Add(accumulated, h(n, goal)) instead of the
// accumulated cost alone. A well-informed heuristic steers the search toward
// the goal and can skip most of the graph.
//
// Heuristic contract (caller's obligation, never verified):
//
//   - Admissible: h never exceeds the true remaining cost. Guarantees an
//     optimal result.
//   - Consistent (monotone): h(u) ≤ arc(u,v) + h(v). Additionally guarantees
//     no vertex is expanded twice. Inconsistent-but-admissible heuristics
//     stay optimal here because the engine re-opens a vertex whenever a
//     cheaper arrival appears; they just cost extra re-expansions.
//
// With h ≡ alg.Zero() the search degenerates to ShortestPath exactly.
//
// Returns and validation match ShortestPath, plus ErrNilHeuristic when h is
// nil. The cost limit applies to accumulated cost, never to the estimate.
//
// Complexity: O((V + E) log V) with a consistent heuristic; inconsistent
// heuristics add re-expansions up to exponential in pathological graphs.
func AStar[N comparable, C any](g core.Digraph[N, C], alg cost.Algebra[C], source, goal N, h Heuristic[N, C], opts ...Option[C]) (core.Path[N, C], error) {
	var none core.Path[N, C]

	if h == nil {
		return none, ErrNilHeuristic
	}
	cfg, err := prepare(g, alg, opts, source, goal)
	if err != nil {
		return none, err
	}

	r := newRunner(g, alg, cfg, h)
	path, found := r.runToGoal(source, goal)
	if !found {
		return none, fmt.Errorf("%w: %v -> %v", ErrNoPath, source, goal)
	}

	return path, nil
}
