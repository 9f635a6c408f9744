package implicit

import "github.com/katalvlaran/pathfind/cost"

// BellmanFord searches a generated state space whose step costs may
// compare below alg.Zero(). It relaxes through an SPFA work queue (the
// queued variant of Bellman-Ford) and returns the cheapest cost of any
// goal-satisfying state once the queue settles; with negative steps an
// exit at first goal contact could be premature, so none is taken.
//
// A cost-decreasing cycle would relax forever. The engine counts
// relaxations per key: a key relaxed more times than the number of
// distinct keys discovered so far proves such a cycle, and the search
// terminates with ErrNegativeCycle. A settled queue with no goal key
// yields ErrNoGoal.
//
// Complexity: O(K·D) relaxations worst case for K discovered keys and D
// transitions, O(K) memory plus the queue.
func BellmanFord[S comparable, C any](
	alg cost.Algebra[C],
	start S,
	expand Expand[S, C],
	goal Goal[S],
) (C, error) {
	return BellmanFordBy(alg, start, expand, goal, identity[S])
}

// BellmanFordBy is BellmanFord with an explicit dedup projection: costs,
// queue membership, and relaxation counts are all tracked per key.
func BellmanFordBy[S any, K comparable, C any](
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

	return spfa(alg, start, expand, goal, key)
}

// spfa runs the work-queue relaxation to settlement.
func spfa[S any, K comparable, C any](
	alg cost.Algebra[C],
	start S,
	expand Expand[S, C],
	goal Goal[S],
	key KeyFunc[S, K],
) (C, error) {
	var none C

	// 1) Seed: the start key settles at Zero; goal keys are remembered as
	//    they are discovered so the final read needs no state replay.
	dist := make(map[K]C)
	relaxed := make(map[K]int)
	inQueue := make(map[K]bool)
	goalKeys := make(map[K]struct{})

	startKey := key(start)
	dist[startKey] = alg.Zero()
	if goal(start) {
		goalKeys[startKey] = struct{}{}
	}
	queue := []S{start}
	inQueue[startKey] = true

	// 2) FIFO relaxation with at most one pending entry per key. The base
	//    cost is re-read at dequeue time, so a state expands with the
	//    freshest value even if it was improved while waiting.
	for head := 0; head < len(queue); head++ {
		s := queue[head]
		k := key(s)
		inQueue[k] = false
		base := dist[k]

		for _, step := range expand(s) {
			next := alg.Add(base, step.Cost)
			nk := key(step.State)
			if cur, seen := dist[nk]; seen && alg.Compare(next, cur) >= 0 {
				continue
			}
			dist[nk] = next
			if goal(step.State) {
				goalKeys[nk] = struct{}{}
			}
			relaxed[nk]++
			if relaxed[nk] > len(dist) {
				return none, ErrNegativeCycle
			}
			if !inQueue[nk] {
				queue = append(queue, step.State)
				inQueue[nk] = true
			}
		}
	}

	// 3) The queue settled, so every dist entry is final; the cheapest
	//    goal key wins.
	var (
		got   C
		found bool
	)
	for k := range goalKeys {
		if d := dist[k]; !found || alg.Compare(d, got) < 0 {
			got, found = d, true
		}
	}
	if !found {
		return none, ErrNoGoal
	}

	return got, nil
}
