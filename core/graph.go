// Package core: Graph container implementation.
//
// Storage favors deterministic replay over raw lookup speed: vertices keep
// their insertion order, adjacency is a slice of arcs per vertex in append
// order, and the edge log replays AddEdge calls. A single sync.RWMutex
// guards the whole structure; queries take the read lock, mutations the
// write lock.
package core

import "sync"

// Graph is the bundled in-memory implementation of Digraph.
//
// It supports directed and undirected edges (plus per-edge overrides in
// mixed mode), parallel edges, and self-loops, all gated by construction
// options. The zero value is not usable; call NewGraph.
type Graph[N comparable, C any] struct {
	mu  sync.RWMutex
	cfg config

	order    []N               // vertex insertion order
	vertices map[N]struct{}    // membership
	adj      map[N][]Arc[N, C] // out-arcs per vertex, append order
	edges    []Edge[N, C]      // edge log, append order
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is undirected, with no loops, no multi-edges and no
// per-edge direction overrides.
// Complexity: O(1).
func NewGraph[N comparable, C any](opts ...GraphOption) *Graph[N, C] {
	g := &Graph[N, C]{
		vertices: make(map[N]struct{}),
		adj:      make(map[N][]Arc[N, C]),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// AddVertex inserts n into the graph if absent.
// Adding an existing vertex is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[N, C]) AddVertex(n N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(n)
}

// addVertexLocked is the lock-free insertion shared by AddVertex and AddEdge.
func (g *Graph[N, C]) addVertexLocked(n N) {
	if _, exists := g.vertices[n]; exists {
		return
	}
	g.vertices[n] = struct{}{}
	g.order = append(g.order, n)
}

// AddEdge creates an edge from `from` to `to` with the given cost, honoring
// the graph's loop, multi-edge and mixed-mode policies. Absent endpoints are
// auto-added. Undirected edges contribute a mirror arc to both adjacency
// lists but are stored once in the edge log.
//
// Returns ErrLoopNotAllowed, ErrMultiEdgeNotAllowed or ErrMixedEdgesNotAllowed.
// Complexity: O(1) amortized with multi-edges enabled, O(deg(from)) otherwise.
func (g *Graph[N, C]) AddEdge(from, to N, cost C, opts ...EdgeOption) error {
	// 1) Loop policy.
	if from == to && !g.cfg.allowLoops {
		return ErrLoopNotAllowed
	}
	// 2) Per-edge overrides only in mixed mode.
	if len(opts) > 0 && !g.cfg.allowMixed {
		return ErrMixedEdgesNotAllowed
	}
	// 3) Resolve the edge orientation: default, then overrides.
	ec := edgeConfig{directed: g.cfg.directed}
	for _, opt := range opts {
		opt(&ec)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 4) Multi-edge policy: reject a second arc between the same endpoints.
	if !g.cfg.allowMulti {
		for _, a := range g.adj[from] {
			if a.To == to {
				return ErrMultiEdgeNotAllowed
			}
		}
	}

	// 5) Ensure both endpoints exist.
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 6) Record the edge and its adjacency arcs.
	g.edges = append(g.edges, Edge[N, C]{From: from, To: to, Cost: cost, Directed: ec.directed})
	g.adj[from] = append(g.adj[from], Arc[N, C]{To: to, Cost: cost})
	if !ec.directed && from != to {
		// Mirror arc for undirected edges; loops stay single.
		g.adj[to] = append(g.adj[to], Arc[N, C]{To: from, Cost: cost})
	}

	return nil
}

// HasVertex reports whether the graph contains n.
// Complexity: O(1).
func (g *Graph[N, C]) HasVertex(n N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, exists := g.vertices[n]

	return exists
}

// HasEdge reports whether at least one arc leads from `from` to `to`.
// Undirected edges are visible from both endpoints.
// Complexity: O(deg(from)).
func (g *Graph[N, C]) HasEdge(from, to N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, a := range g.adj[from] {
		if a.To == to {
			return true
		}
	}

	return false
}

// Vertices returns every vertex in insertion order.
// The slice is a copy; mutating it does not affect the graph.
// Complexity: O(V).
func (g *Graph[N, C]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// Successors returns the out-arcs of n in insertion order, or nil when n has
// none (or is absent). The slice is a copy.
// Complexity: O(deg(n)).
func (g *Graph[N, C]) Successors(n N) []Arc[N, C] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs := g.adj[n]
	if len(arcs) == 0 {
		return nil
	}
	out := make([]Arc[N, C], len(arcs))
	copy(out, arcs)

	return out
}

// Edges returns the edge log in insertion order. Undirected edges appear
// once, with Directed=false. The slice is a copy.
// Complexity: O(E).
func (g *Graph[N, C]) Edges() []Edge[N, C] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[N, C], len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph[N, C]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of stored edges (mirror arcs do not count
// separately). O(1).
func (g *Graph[N, C]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Directed reports whether new edges default to directed.
func (g *Graph[N, C]) Directed() bool {
	return g.cfg.directed
}
