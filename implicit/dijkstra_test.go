package implicit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/cost"
	"github.com/katalvlaran/pathfind/implicit"
)

// chainTo returns an expander that walks n → n+1 at unit cost and stops
// producing successors at limit.
func chainTo(limit int) implicit.Expand[int, int] {
	return func(n int) []implicit.Step[int, int] {
		if n >= limit {
			return nil
		}
		return []implicit.Step[int, int]{{State: n + 1, Cost: 1}}
	}
}

func isFive(n int) bool { return n == 5 }

func TestDijkstra_Validation(t *testing.T) {
	alg := cost.Numeric[int]()
	expand := chainTo(10)

	t.Run("nil algebra", func(t *testing.T) {
		_, err := implicit.Dijkstra[int, int](nil, 0, expand, isFive)
		require.ErrorIs(t, err, implicit.ErrNilAlgebra)
	})
	t.Run("nil expand", func(t *testing.T) {
		_, err := implicit.Dijkstra[int, int](alg, 0, nil, isFive)
		require.ErrorIs(t, err, implicit.ErrNilExpand)
	})
	t.Run("nil goal", func(t *testing.T) {
		_, err := implicit.Dijkstra[int, int](alg, 0, expand, nil)
		require.ErrorIs(t, err, implicit.ErrNilGoal)
	})
	t.Run("nil key", func(t *testing.T) {
		_, err := implicit.DijkstraBy[int, int, int](alg, 0, expand, isFive, nil)
		require.ErrorIs(t, err, implicit.ErrNilKeyFunc)
	})
	t.Run("nil estimate", func(t *testing.T) {
		_, err := implicit.AStar[int, int](alg, 0, expand, isFive, nil)
		require.ErrorIs(t, err, implicit.ErrNilEstimate)
	})
}

func TestDijkstra_UnitChain(t *testing.T) {
	got, err := implicit.Dijkstra(cost.Numeric[int](), 0, chainTo(10), isFive)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestDijkstra_GoalAtStart(t *testing.T) {
	got, err := implicit.Dijkstra(cost.Numeric[int](), 5, chainTo(10), isFive)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestDijkstra_NoGoal(t *testing.T) {
	_, err := implicit.Dijkstra(cost.Numeric[int](), 0, chainTo(10), func(n int) bool { return n == 99 })
	require.ErrorIs(t, err, implicit.ErrNoGoal)
}

func TestDijkstra_PrefersCheaperDetour(t *testing.T) {
	// The direct hop costs 10; the two-hop route costs 3 and must win.
	expand := func(n int) []implicit.Step[int, int] {
		switch n {
		case 0:
			return []implicit.Step[int, int]{{State: 1, Cost: 10}, {State: 2, Cost: 1}}
		case 2:
			return []implicit.Step[int, int]{{State: 1, Cost: 2}}
		}
		return nil
	}

	got, err := implicit.Dijkstra(cost.Numeric[int](), 0, expand, func(n int) bool { return n == 1 })
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestDijkstra_UnboundedSpaceStillTerminates(t *testing.T) {
	// No limit in the expander: the search must stop at the goal anyway,
	// since cheaper states always pop first.
	expand := func(n int) []implicit.Step[int, int] {
		return []implicit.Step[int, int]{{State: n + 1, Cost: 1}}
	}

	got, err := implicit.Dijkstra(cost.Numeric[int](), 0, expand, isFive)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

// hop carries a breadcrumb that differs per route, so full-state dedup
// would multiply work; DijkstraBy must collapse by position alone.
type hop struct {
	pos   int
	route int
}

func TestDijkstraBy_DedupsByKey(t *testing.T) {
	var expansions int
	expand := func(s hop) []implicit.Step[hop, int] {
		expansions++
		if s.pos >= 6 {
			return nil
		}
		// Two transitions to the same next position with distinct payloads
		// and costs; only the cheaper one may survive per key.
		return []implicit.Step[hop, int]{
			{State: hop{pos: s.pos + 1, route: s.route*2 + 1}, Cost: 1},
			{State: hop{pos: s.pos + 1, route: s.route * 2}, Cost: 2},
		}
	}

	got, err := implicit.DijkstraBy(
		cost.Numeric[int](),
		hop{pos: 0},
		expand,
		func(s hop) bool { return s.pos == 4 },
		func(s hop) int { return s.pos },
	)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	// One live expansion per position key, not one per payload variant.
	assert.LessOrEqual(t, expansions, 5)
}

type cell struct{ x, y int }

// gridExpand moves right or down inside a 5×5 board at unit cost.
func gridExpand(s cell) []implicit.Step[cell, int] {
	var out []implicit.Step[cell, int]
	if s.x < 4 {
		out = append(out, implicit.Step[cell, int]{State: cell{s.x + 1, s.y}, Cost: 1})
	}
	if s.y < 4 {
		out = append(out, implicit.Step[cell, int]{State: cell{s.x, s.y + 1}, Cost: 1})
	}
	return out
}

func manhattan(s cell) int { return (4 - s.x) + (4 - s.y) }

func TestAStar_GridMatchesDijkstra(t *testing.T) {
	isCorner := func(s cell) bool { return s == cell{4, 4} }

	astar, err := implicit.AStar(cost.Numeric[int](), cell{0, 0}, gridExpand, isCorner, manhattan)
	require.NoError(t, err)
	assert.Equal(t, 8, astar)

	plain, err := implicit.Dijkstra(cost.Numeric[int](), cell{0, 0}, gridExpand, isCorner)
	require.NoError(t, err)
	assert.Equal(t, plain, astar)
}

func TestAStar_ZeroEstimateDegenerates(t *testing.T) {
	got, err := implicit.AStar(cost.Numeric[int](), 0, chainTo(10), isFive, func(int) int { return 0 })
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestAStarBy_KeyedGrid(t *testing.T) {
	// States carry a step counter irrelevant to identity; the key strips it.
	type walk struct {
		at    cell
		steps int
	}
	expand := func(s walk) []implicit.Step[walk, int] {
		var out []implicit.Step[walk, int]
		for _, nxt := range gridExpand(s.at) {
			out = append(out, implicit.Step[walk, int]{
				State: walk{at: nxt.State, steps: s.steps + 1},
				Cost:  nxt.Cost,
			})
		}
		return out
	}

	got, err := implicit.AStarBy(
		cost.Numeric[int](),
		walk{at: cell{0, 0}},
		expand,
		func(s walk) bool { return s.at == cell{4, 4} },
		func(s walk) int { return manhattan(s.at) },
		func(s walk) cell { return s.at },
	)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}
