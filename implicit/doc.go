// Package implicit searches state spaces that are generated on the fly
// instead of stored as a graph.
//
// Callers supply plain functions: an Expand successor generator, a Goal
// predicate, optionally an Estimate heuristic, and (for the By variants) a
// KeyFunc that projects a state onto a comparable dedup key. No graph value
// exists; reachable states materialize only as Expand produces them, which
// suits puzzle boards, routing over composite states such as position plus
// remaining fuel, and any space too large to store.
//
// Entry points, each returning the goal cost:
//
//   - Dijkstra / DijkstraBy: uniform-cost search, non-negative step costs.
//   - AStar / AStarBy: adds an admissible Estimate to steer expansion.
//   - BellmanFord / BellmanFordBy: tolerates negative step costs via an
//     SPFA work queue; a per-key relaxation counter exceeding the number
//     of keys discovered so far terminates with ErrNegativeCycle instead
//     of looping forever. The goal cost is read only after the queue
//     settles, because with negative steps an early exit could be
//     premature.
//
// The plain variants require S comparable and delegate to the By variants
// with the identity projection. The By variants dedup and track costs by
// key while still passing the full state payload to Expand, Goal, and
// Estimate.
//
// Frontier exhaustion (or a settled queue) without a goal yields ErrNoGoal.
// Termination on infinite spaces is the caller's job: bound the search
// inside Expand or Goal, e.g. by returning no successors past a depth or
// cost ceiling. Dijkstra and AStar assume non-negative steps and an
// admissible estimate; neither property is checked, and violating them
// yields silently suboptimal costs rather than an error.
package implicit
