package implicit

import (
	"github.com/katalvlaran/pathfind/cost"
	"github.com/katalvlaran/pathfind/frontier"
)

// Dijkstra runs uniform-cost search from start until a state satisfying
// goal is popped, and returns that state's accumulated cost. Step costs
// must compare at or above alg.Zero(); the property is not checked, and
// negative steps yield silently suboptimal results (use BellmanFord there).
//
// States dedup by their own value. Frontier exhaustion yields ErrNoGoal.
// Complexity: O(D log D) pushes for D discovered transitions.
func Dijkstra[S comparable, C any](
	alg cost.Algebra[C],
	start S,
	expand Expand[S, C],
	goal Goal[S],
) (C, error) {
	return DijkstraBy(alg, start, expand, goal, identity[S])
}

// DijkstraBy is Dijkstra with an explicit dedup projection: cost tracking
// and stale-entry detection use key(s), while the full state payload still
// flows to expand and goal.
func DijkstraBy[S any, K comparable, C any](
	alg cost.Algebra[C],
	start S,
	expand Expand[S, C],
	goal Goal[S],
	key KeyFunc[S, K],
) (C, error) {
	var none C
	if alg == nil {
		return none, ErrNilAlgebra
	}
	if expand == nil {
		return none, ErrNilExpand
	}
	if goal == nil {
		return none, ErrNilGoal
	}
	if key == nil {
		return none, ErrNilKeyFunc
	}

	return bestFirst(alg, start, expand, goal, nil, key)
}

// AStar steers the expansion order with est, an admissible lower bound on
// the remaining cost. With est ≡ alg.Zero() it degenerates to Dijkstra.
// Inconsistent (but admissible) estimates stay correct through re-opening:
// a key popped early at an inflated cost is revisited when a cheaper route
// to it surfaces.
func AStar[S comparable, C any](
	alg cost.Algebra[C],
	start S,
	expand Expand[S, C],
	goal Goal[S],
	est Estimate[S, C],
) (C, error) {
	return AStarBy(alg, start, expand, goal, est, identity[S])
}

// AStarBy is AStar with an explicit dedup projection.
func AStarBy[S any, K comparable, C any](
	alg cost.Algebra[C],
	start S,
	expand Expand[S, C],
	goal Goal[S],
	est Estimate[S, C],
	key KeyFunc[S, K],
) (C, error) {
	var none C
	if alg == nil {
		return none, ErrNilAlgebra
	}
	if expand == nil {
		return none, ErrNilExpand
	}
	if goal == nil {
		return none, ErrNilGoal
	}
	if est == nil {
		return none, ErrNilEstimate
	}
	if key == nil {
		return none, ErrNilKeyFunc
	}

	return bestFirst(alg, start, expand, goal, est, key)
}

// identity projects a comparable state onto itself for the plain variants.
func identity[S comparable](s S) S { return s }

// candidate is the frontier payload: the state and its accumulated cost.
// The frontier orders entries by priority, which carries the estimate when
// one is present, so gcost must travel alongside the state.
type candidate[S, C any] struct {
	state S
	gcost C
}

// bestFirst is the shared engine behind Dijkstra and AStar variants.
//
// Dedup is lazy: superseded frontier entries are skipped when popped by
// comparing their gcost against the best known cost for the key. Pushes
// happen only on strict improvement, and the goal test runs on live pops,
// so the first live goal pop carries the optimal cost (given the entry
// points' preconditions).
func bestFirst[S any, K comparable, C any](
	alg cost.Algebra[C],
	start S,
	expand Expand[S, C],
	goal Goal[S],
	est Estimate[S, C],
	key KeyFunc[S, K],
) (C, error) {
	var none C

	// 1) Seed the frontier with the start state at cost Zero.
	best := make(map[K]C)
	pq := frontier.New[candidate[S, C]](func(a, b C) bool { return alg.Compare(a, b) < 0 })
	zero := alg.Zero()
	best[key(start)] = zero
	pq.Push(priorityOf(alg, est, start, zero), candidate[S, C]{state: start, gcost: zero})

	// 2) Best-first loop.
	for {
		_, cand, ok := pq.Pop()
		if !ok {
			return none, ErrNoGoal
		}
		if alg.Compare(cand.gcost, best[key(cand.state)]) > 0 {
			continue // superseded entry
		}
		if goal(cand.state) {
			return cand.gcost, nil
		}
		for _, step := range expand(cand.state) {
			next := alg.Add(cand.gcost, step.Cost)
			nk := key(step.State)
			if cur, seen := best[nk]; seen && alg.Compare(next, cur) >= 0 {
				continue
			}
			best[nk] = next
			pq.Push(priorityOf(alg, est, step.State, next), candidate[S, C]{state: step.State, gcost: next})
		}
	}
}

// priorityOf returns the frontier ordering key: plain gcost for Dijkstra,
// gcost plus the estimate for AStar.
func priorityOf[S any, C any](alg cost.Algebra[C], est Estimate[S, C], s S, gcost C) C {
	if est == nil {
		return gcost
	}
	return alg.Add(gcost, est(s))
}
