// Package core: shared types for the graph container and its consumers.
//
// This file declares Arc, Edge, Digraph, Path, GraphOption, EdgeOption and
// the package sentinel errors. The container itself lives in graph.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates no arc connects two nodes claimed adjacent.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override without mixed mode.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")

	// ErrEmptyPath indicates a path fold was requested over zero nodes.
	ErrEmptyPath = errors.New("core: path has no nodes")
)

// Arc is one outgoing connection as seen from its origin vertex: the
// destination plus the cost of taking it. Arcs are what Successors yields
// and what every relaxation loop consumes.
type Arc[N comparable, C any] struct {
	// To is the destination vertex.
	To N

	// Cost is the price of traversing this arc, in the caller's cost type.
	Cost C
}

// Edge is a stored connection with both endpoints. Undirected edges are kept
// once with Directed=false; the mirror arc is materialized only in the
// adjacency, never duplicated here.
type Edge[N comparable, C any] struct {
	// From is the origin vertex.
	From N

	// To is the destination vertex.
	To N

	// Cost is the traversal cost of the edge.
	Cost C

	// Directed reports whether the edge is one-way (true) or contributes a
	// mirror arc in both directions (false).
	Directed bool
}

// Digraph is the read contract the search algorithms consume. Any graph
// representation that can enumerate its vertices in a stable order and list
// the out-arcs of a vertex satisfies it; Graph is the bundled implementation.
//
// Successors must return out-arcs in a stable order for a fixed receiver and
// may return nil for vertices the graph does not hold.
type Digraph[N comparable, C any] interface {
	// Vertices enumerates every vertex, in a stable order. O(V).
	Vertices() []N

	// Successors lists the out-arcs of n, in a stable order. O(degree).
	Successors(n N) []Arc[N, C]
}

// Path is the result of a point-to-point query: the visited node sequence
// (source first, goal last, never empty) and the algebra-fold of the arc
// costs along it.
type Path[N comparable, C any] struct {
	// Nodes is the vertex sequence from source to goal inclusive.
	Nodes []N

	// Cost is the total cost of the walk, folded with the caller's algebra.
	Cost C
}

// config collects the behavior flags a Graph is built with. It is kept
// separate from the generic container so GraphOption stays non-generic and
// option values compose across instantiations.
type config struct {
	directed   bool // default directedness for new edges
	allowLoops bool // permit self-loops
	allowMulti bool // permit parallel edges
	allowMixed bool // permit per-edge direction overrides
}

// GraphOption configures behavior of a Graph at construction time.
type GraphOption func(*config)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(c *config) { c.directed = defaultDirected }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(c *config) { c.allowMulti = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(c *config) { c.allowMixed = true }
}

// edgeConfig carries the per-edge overrides collected from EdgeOptions before
// the Edge value is materialized.
type edgeConfig struct {
	directed    bool // requested orientation
	hasDirected bool // true when an override was supplied
}

// EdgeOption configures properties of an individual edge when added.
// Supplying any EdgeOption requires the graph to be built WithMixedEdges.
type EdgeOption func(*edgeConfig)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(ec *edgeConfig) {
		ec.directed = directed
		ec.hasDirected = true
	}
}
