// Package dijkstra_test contains unit tests for ShortestPath and Distances.
// These tests validate input checking, path correctness on directed,
// undirected and multi-edge graphs, the cost-limit and impassable options,
// custom cost algebras, and determinism of repeated runs.
package dijkstra_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/cost"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	// A nil graph must be rejected before anything else runs.
	_, err := dijkstra.ShortestPath[string, int](nil, cost.Numeric[int](), "A", "B")
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPath_NilAlgebra(t *testing.T) {
	g := core.NewGraph[string, int]()
	_, err := dijkstra.ShortestPath[string, int](g, nil, "A", "B")
	if !errors.Is(err, dijkstra.ErrNilAlgebra) {
		t.Fatalf("Expected ErrNilAlgebra, got %v", err)
	}
}

func TestShortestPath_SourceNotFound(t *testing.T) {
	g := core.NewGraph[string, int]()
	_ = g.AddEdge("A", "B", 1)

	_, err := dijkstra.ShortestPath(g, cost.Numeric[int](), "X", "B")
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound for absent source, got %v", err)
	}
}

func TestShortestPath_GoalNotFound(t *testing.T) {
	g := core.NewGraph[string, int]()
	_ = g.AddEdge("A", "B", 1)

	_, err := dijkstra.ShortestPath(g, cost.Numeric[int](), "A", "X")
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound for absent goal, got %v", err)
	}
}

func TestShortestPath_NegativeArcDetectedEarly(t *testing.T) {
	// The upfront scan must reject the whole graph, not just arcs on the way.
	g := core.NewGraph[string, int](core.WithDirected(true))
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("C", "D", -5) // far from any A→B walk

	_, err := dijkstra.ShortestPath(g, cost.Numeric[int](), "A", "B")
	if !errors.Is(err, dijkstra.ErrNegativeArc) {
		t.Fatalf("Expected ErrNegativeArc, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Point-to-point paths on small graphs.
// ------------------------------------------------------------------------

func TestShortestPath_PrefersTwoHopRoute(t *testing.T) {
	// Directed graph: 1→2(5), 2→3(3), 1→3(10).
	// The two-hop route costs 8 and must beat the direct arc.
	g := core.NewGraph[int, int](core.WithDirected(true))
	_ = g.AddEdge(1, 2, 5)
	_ = g.AddEdge(2, 3, 3)
	_ = g.AddEdge(1, 3, 10)

	path, err := dijkstra.ShortestPath(g, cost.Numeric[int](), 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(path.Nodes, want) {
		t.Errorf("path.Nodes = %v; want %v", path.Nodes, want)
	}
	if path.Cost != 8 {
		t.Errorf("path.Cost = %d; want %d", path.Cost, 8)
	}
}

func TestShortestPath_UndirectedTriangle(t *testing.T) {
	// Triangle: A—B(1), B—C(2), A—C(5). Shortest A→C is A→B→C at cost 3.
	g := core.NewGraph[string, int]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	path, err := dijkstra.ShortestPath(g, cost.Numeric[int](), "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path.Nodes, want) {
		t.Errorf("path.Nodes = %v; want %v", path.Nodes, want)
	}
	if path.Cost != 3 {
		t.Errorf("path.Cost = %d; want %d", path.Cost, 3)
	}
}

func TestShortestPath_SourceEqualsGoal(t *testing.T) {
	// source == goal yields the single-node path at zero cost.
	g := core.NewGraph[string, int]()
	_ = g.AddEdge("A", "B", 1)

	path, err := dijkstra.ShortestPath(g, cost.Numeric[int](), "A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(path.Nodes, want) {
		t.Errorf("path.Nodes = %v; want %v", path.Nodes, want)
	}
	if path.Cost != 0 {
		t.Errorf("path.Cost = %d; want %d", path.Cost, 0)
	}
}

func TestShortestPath_MultiEdgeTakesCheapestArc(t *testing.T) {
	// Parallel arcs A→B at costs 7 and 2: the cheap one must win.
	g := core.NewGraph[string, int](core.WithDirected(true), core.WithMultiEdges())
	_ = g.AddEdge("A", "B", 7)
	_ = g.AddEdge("A", "B", 2)

	path, err := dijkstra.ShortestPath(g, cost.Numeric[int](), "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if path.Cost != 2 {
		t.Errorf("path.Cost = %d; want %d", path.Cost, 2)
	}
}

func TestShortestPath_CostMatchesPathCostFold(t *testing.T) {
	// The returned Cost must equal the independent algebra fold over Nodes.
	g := core.NewGraph[string, int]()
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 7)
	_ = g.AddEdge("A", "D", 20)

	alg := cost.Numeric[int]()
	path, err := dijkstra.ShortestPath(g, alg, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	folded, err := core.PathCost(g, alg, path.Nodes)
	if err != nil {
		t.Fatal(err)
	}
	if path.Cost != folded {
		t.Errorf("path.Cost = %d; PathCost fold = %d", path.Cost, folded)
	}
}

// ------------------------------------------------------------------------
// 3. Reachability: ErrNoPath on disconnection and one-way arcs.
// ------------------------------------------------------------------------

func TestShortestPath_DisconnectedComponents(t *testing.T) {
	g := core.NewGraph[string, int]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("C", "D", 1) // separate island

	_, err := dijkstra.ShortestPath(g, cost.Numeric[int](), "A", "D")
	if !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("Expected ErrNoPath across components, got %v", err)
	}
}

func TestShortestPath_DirectedArcIsOneWay(t *testing.T) {
	// B→A exists, A→B does not.
	g := core.NewGraph[string, int](core.WithDirected(true))
	_ = g.AddEdge("B", "A", 1)

	_, err := dijkstra.ShortestPath(g, cost.Numeric[int](), "A", "B")
	if !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("Expected ErrNoPath against the arc direction, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 4. Distances: single-source sweep semantics.
// ------------------------------------------------------------------------

func TestDistances_Chain(t *testing.T) {
	// A—B—C—D with unit costs; distances are 0,1,2,3.
	g := core.NewGraph[string, int]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)

	dist, err := dijkstra.Distances(g, cost.Numeric[int](), "A")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("Distances = %v; want %v", dist, want)
	}
}

func TestDistances_UnreachableIsAbsent(t *testing.T) {
	// No infinity sentinel exists for an opaque cost type: unreachable
	// vertices simply do not appear in the map.
	g := core.NewGraph[string, int](core.WithDirected(true))
	_ = g.AddEdge("A", "B", 1)
	g.AddVertex("Z")

	dist, err := dijkstra.Distances(g, cost.Numeric[int](), "A")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := dist["Z"]; ok {
		t.Errorf("dist[Z] present (%v); want absent", dist["Z"])
	}
	if len(dist) != 2 {
		t.Errorf("len(dist) = %d; want 2 (A and B only)", len(dist))
	}
}

func TestDistances_SingleVertex(t *testing.T) {
	g := core.NewGraph[string, int]()
	g.AddVertex("Solo")

	dist, err := dijkstra.Distances(g, cost.Numeric[int](), "Solo")
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := dist["Solo"]; !ok || d != 0 {
		t.Errorf("dist[Solo] = %d (present=%v); want 0", d, ok)
	}
}

// ------------------------------------------------------------------------
// 5. Option Tests: cost limit and impassable threshold.
// ------------------------------------------------------------------------

func TestDistances_CostLimit(t *testing.T) {
	// Linear graph A—B(1)—C(1)—D(1) with limit 1: only A and B settle.
	g := core.NewGraph[string, int]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)

	dist, err := dijkstra.Distances(g, cost.Numeric[int](), "A", dijkstra.WithCostLimit(1))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"A": 0, "B": 1}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("Distances = %v; want %v", dist, want)
	}
}

func TestDistances_CostLimitZero(t *testing.T) {
	// Limit 0 settles only the source.
	g := core.NewGraph[string, int]()
	_ = g.AddEdge("A", "B", 1)

	dist, err := dijkstra.Distances(g, cost.Numeric[int](), "A", dijkstra.WithCostLimit(0))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"A": 0}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("Distances = %v; want %v", dist, want)
	}
}

func TestShortestPath_ImpassableSkipsHeavyArc(t *testing.T) {
	// A—B(2), B—C(4), A—C(10); threshold 5 removes the direct A—C arc.
	g := core.NewGraph[string, int]()
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("B", "C", 4)
	_ = g.AddEdge("A", "C", 10)

	path, err := dijkstra.ShortestPath(g, cost.Numeric[int](), "A", "C", dijkstra.WithImpassable(5))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path.Nodes, want) {
		t.Errorf("path.Nodes = %v; want %v", path.Nodes, want)
	}
	if path.Cost != 6 {
		t.Errorf("path.Cost = %d; want %d", path.Cost, 6)
	}
}

func TestShortestPath_ImpassableWallsOffGoal(t *testing.T) {
	// Every arc into the goal is at the threshold: goal becomes unreachable.
	g := core.NewGraph[string, int]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 5)

	_, err := dijkstra.ShortestPath(g, cost.Numeric[int](), "A", "C", dijkstra.WithImpassable(5))
	if !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("Expected ErrNoPath behind the wall, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 6. Custom Algebras: float costs and composite cost types.
// ------------------------------------------------------------------------

func TestShortestPath_FloatCosts(t *testing.T) {
	g := core.NewGraph[string, float64](core.WithDirected(true))
	_ = g.AddEdge("A", "B", 0.5)
	_ = g.AddEdge("B", "C", 0.25)
	_ = g.AddEdge("A", "C", 1.0)

	path, err := dijkstra.ShortestPath(g, cost.Numeric[float64](), "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if path.Cost != 0.75 {
		t.Errorf("path.Cost = %v; want %v", path.Cost, 0.75)
	}
}

// fare is a composite cost: transfers dominate, minutes break ties.
type fare struct {
	Transfers int
	Minutes   int
}

func fareAlgebra() cost.Algebra[fare] {
	return cost.Of(
		fare{},
		func(a, b fare) fare {
			return fare{Transfers: a.Transfers + b.Transfers, Minutes: a.Minutes + b.Minutes}
		},
		func(a, b fare) int {
			if a.Transfers != b.Transfers {
				return a.Transfers - b.Transfers
			}

			return a.Minutes - b.Minutes
		},
	)
}

func TestShortestPath_CompositeCostAlgebra(t *testing.T) {
	// Two routes A→C: direct express (1 transfer, 10 min) versus local
	// two-leg (0+0 transfers, 45 min total). Fewer transfers must win even
	// though it is slower.
	g := core.NewGraph[string, fare](core.WithDirected(true))
	_ = g.AddEdge("A", "C", fare{Transfers: 1, Minutes: 10})
	_ = g.AddEdge("A", "B", fare{Minutes: 20})
	_ = g.AddEdge("B", "C", fare{Minutes: 25})

	path, err := dijkstra.ShortestPath(g, fareAlgebra(), "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path.Nodes, want) {
		t.Errorf("path.Nodes = %v; want %v", path.Nodes, want)
	}
	if want := (fare{Transfers: 0, Minutes: 45}); path.Cost != want {
		t.Errorf("path.Cost = %+v; want %+v", path.Cost, want)
	}
}

// ------------------------------------------------------------------------
// 7. Determinism: identical inputs give identical outputs.
// ------------------------------------------------------------------------

func TestShortestPath_DeterministicAcrossRuns(t *testing.T) {
	g := core.NewGraph[int, int](core.WithDirected(true))
	// Two equally cheap routes 0→3 force a tie; the winner must be stable.
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 3, 1)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 3, 1)

	first, err := dijkstra.ShortestPath(g, cost.Numeric[int](), 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := dijkstra.ShortestPath(g, cost.Numeric[int](), 0, 3)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d diverged: %v vs %v", i, again, first)
		}
	}
}
