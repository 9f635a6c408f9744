// Package core: path cost folding.
package core

import (
	"fmt"

	"github.com/katalvlaran/pathfind/cost"
)

// PathCost folds the arc costs along nodes with alg, starting from
// alg.Zero(). When parallel arcs connect a consecutive pair, the cheapest
// one (by alg.Compare) is taken, matching what any shortest-path run would
// have chosen.
//
// A single-node sequence folds to alg.Zero(). An empty sequence returns
// ErrEmptyPath. A consecutive pair with no connecting arc returns
// ErrEdgeNotFound wrapped with the offending pair.
//
// Complexity: O(L·d) for L nodes with maximum out-degree d.
func PathCost[N comparable, C any](g Digraph[N, C], alg cost.Algebra[C], nodes []N) (C, error) {
	var total C
	if len(nodes) == 0 {
		return total, ErrEmptyPath
	}

	total = alg.Zero()
	for i := 0; i+1 < len(nodes); i++ {
		step, err := cheapestArc(g, alg, nodes[i], nodes[i+1])
		if err != nil {
			return alg.Zero(), err
		}
		total = alg.Add(total, step)
	}

	return total, nil
}

// cheapestArc scans the out-arcs of `from` for the lowest-cost arc to `to`.
func cheapestArc[N comparable, C any](g Digraph[N, C], alg cost.Algebra[C], from, to N) (C, error) {
	var best C
	found := false
	for _, a := range g.Successors(from) {
		if a.To != to {
			continue
		}
		if !found || alg.Compare(a.Cost, best) < 0 {
			best = a.Cost
			found = true
		}
	}
	if !found {
		return best, fmt.Errorf("%w: %v -> %v", ErrEdgeNotFound, from, to)
	}

	return best, nil
}
