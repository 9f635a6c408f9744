package bellmanford

import "errors"

// Sentinel errors returned by the bellmanford package. Callers should test
// with errors.Is; returned errors may wrap these with query context.
var (
	// ErrNilGraph is returned when the provided graph is nil.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNilAlgebra is returned when the provided cost algebra is nil.
	ErrNilAlgebra = errors.New("bellmanford: algebra is nil")

	// ErrVertexNotFound is returned when the source or goal vertex is not
	// present in the graph.
	ErrVertexNotFound = errors.New("bellmanford: vertex not found")

	// ErrNegativeCycle is returned when a cycle with total cost below the
	// algebra's Zero() is reachable from the source. No distance or path the
	// run produced is meaningful, so this error wins over reachability.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

	// ErrNoPath is returned by ShortestPath when the goal is not reachable
	// from the source.
	ErrNoPath = errors.New("bellmanford: no path exists between source and goal")
)
