// Package core provides the thread-safe in-memory graph container and the
// read contract consumed by every search algorithm in this module.
//
// The container Graph[N, C] = (V, E) is generic over the vertex identity N
// (any comparable type) and the arc cost C (any type at all; cost arithmetic
// lives in cost.Algebra, never here). It supports a composable mix of
// behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in mixed graphs (WithMixedEdges + WithEdgeDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Insertion-order iteration: Vertices(), Successors(), Edges() all replay
//     the build sequence, so every downstream traversal is deterministic for a
//     fixed construction order
//   - A single sync.RWMutex, so graphs may be built and queried across
//     goroutines
//
// Algorithms never require the concrete container. They consume the
// two-method Digraph[N, C] view:
//
//	Vertices() []N              // stable enumeration order
//	Successors(n N) []Arc[N, C] // out-arcs of n, O(degree)
//
// Any type satisfying Digraph plugs into dijkstra, bellmanford and
// floydwarshall directly; Graph[N, C] is the bundled implementation.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Sets the default orientation of new edges.
//	    Undirected edges contribute a mirror arc to both endpoints.
//
//	– WithMixedEdges()
//	    Allows per-edge overrides via WithEdgeDirected.
//	    Without it, any override returns ErrMixedEdgesNotAllowed.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from, to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v, v) → ErrLoopNotAllowed.
//
// Errors:
//
//	ErrVertexNotFound       – operation referenced a vertex the graph does not hold
//	ErrEdgeNotFound         – no arc connects two nodes that a path claims are adjacent
//	ErrLoopNotAllowed       – self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges are disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed mode
//	ErrEmptyPath            – PathCost over a node sequence with no nodes
//
// Path[N, C] is the shared result shape for point-to-point queries: the node
// sequence plus its folded cost. PathCost recomputes that fold from the graph
// and the algebra, which is how tests pin the "Cost matches Nodes" invariant.
package core
