// Package dijkstra: the shared search engine plus the ShortestPath and
// Distances entry points.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/cost"
	"github.com/katalvlaran/pathfind/frontier"
)

// ShortestPath computes the minimum-cost path from source to goal in g,
// folding arc costs with alg.
//
// Returns:
//
//   - core.Path with the node sequence (source first, goal last) and its
//     total cost. When source == goal the path is the single node at cost
//     alg.Zero().
//   - ErrNoPath when goal exists but cannot be reached within the options.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. alg must be non-nil (ErrNilAlgebra).
//  3. No arc cost may compare below alg.Zero() (ErrNegativeArc, full scan).
//  4. source and goal must exist in g (ErrVertexNotFound).
//
// Options customization:
//
//   - WithCostLimit(x): do not explore vertices costing more than x.
//   - WithImpassable(t): skip arcs whose cost compares at or above t.
//
// Complexity: O((V + E) log V) time, O(V + E) space, plus O(L) per push for
// the carried path prefix.
func ShortestPath[N comparable, C any](g core.Digraph[N, C], alg cost.Algebra[C], source, goal N, opts ...Option[C]) (core.Path[N, C], error) {
	var none core.Path[N, C]

	cfg, err := prepare(g, alg, opts, source, goal)
	if err != nil {
		return none, err
	}

	r := newRunner(g, alg, cfg, nil)
	path, found := r.runToGoal(source, goal)
	if !found {
		return none, fmt.Errorf("%w: %v -> %v", ErrNoPath, source, goal)
	}

	return path, nil
}

// Distances computes the minimum cost from source to every vertex it can
// settle, folding arc costs with alg.
//
// Returns a map holding only reached vertices; absence means unreachable
// (no infinity exists for an opaque cost type). The source maps to
// alg.Zero(). With WithCostLimit, vertices beyond the budget are absent.
//
// Validation matches ShortestPath, with source as the only required vertex.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances[N comparable, C any](g core.Digraph[N, C], alg cost.Algebra[C], source N, opts ...Option[C]) (map[N]C, error) {
	cfg, err := prepare(g, alg, opts, source)
	if err != nil {
		return nil, err
	}

	r := newRunner(g, alg, cfg, nil)

	return r.runAll(source), nil
}

// prepare runs the validation ladder shared by every entry point.
func prepare[N comparable, C any](g core.Digraph[N, C], alg cost.Algebra[C], opts []Option[C], required ...N) (Options[C], error) {
	var cfg Options[C]

	// 1) Collaborators must be present.
	if g == nil {
		return cfg, ErrNilGraph
	}
	if alg == nil {
		return cfg, ErrNilAlgebra
	}

	// 2) Build options.
	cfg = DefaultOptions[C]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) One pass over the graph: membership set + negative-arc fail-fast.
	members, err := inspect(g, alg)
	if err != nil {
		return cfg, err
	}

	// 4) Required vertices must exist.
	for _, n := range required {
		if _, ok := members[n]; !ok {
			return cfg, fmt.Errorf("%w: %v", ErrVertexNotFound, n)
		}
	}

	return cfg, nil
}

// inspect walks g once, building the vertex membership set and failing fast
// on any arc cost comparing below the algebra's zero.
func inspect[N comparable, C any](g core.Digraph[N, C], alg cost.Algebra[C]) (map[N]struct{}, error) {
	vertices := g.Vertices()
	members := make(map[N]struct{}, len(vertices))
	for _, n := range vertices {
		members[n] = struct{}{}
	}

	zero := alg.Zero()
	for _, n := range vertices {
		for _, a := range g.Successors(n) {
			if alg.Compare(a.Cost, zero) < 0 {
				return nil, fmt.Errorf("%w: arc %v -> %v", ErrNegativeArc, n, a.To)
			}
		}
	}

	return members, nil
}

// visit is one frontier payload: the vertex, its accumulated cost from the
// source, and (in path-tracking runs) the walk that produced it.
type visit[N comparable, C any] struct {
	node   N
	gcost  C
	prefix []N // nil in cost-only sweeps
}

// runner holds the mutable state for a single execution.
type runner[N comparable, C any] struct {
	g    core.Digraph[N, C]
	alg  cost.Algebra[C]
	cfg  Options[C]
	h    Heuristic[N, C] // nil for plain Dijkstra runs
	goal N               // meaningful only in goal-seeking runs

	track bool    // carry path prefixes in frontier entries
	best  map[N]C // best-known cost per vertex
	pq    *frontier.Queue[visit[N, C], C]
}

// newRunner wires the shared state; h is nil for plain Dijkstra.
func newRunner[N comparable, C any](g core.Digraph[N, C], alg cost.Algebra[C], cfg Options[C], h Heuristic[N, C]) *runner[N, C] {
	return &runner[N, C]{
		g:    g,
		alg:  alg,
		cfg:  cfg,
		h:    h,
		best: make(map[N]C),
		pq:   frontier.New[visit[N, C]](func(a, b C) bool { return alg.Compare(a, b) < 0 }),
	}
}

// runToGoal drains the frontier until the goal settles. Returns the winning
// path and true, or false when the frontier empties first.
func (r *runner[N, C]) runToGoal(source, goal N) (core.Path[N, C], bool) {
	r.goal = goal
	r.track = true
	r.start(source)

	for {
		v, ok := r.pop()
		if !ok {
			return core.Path[N, C]{}, false
		}
		if v.node == goal {
			return core.Path[N, C]{Nodes: v.prefix, Cost: v.gcost}, true
		}
		r.relax(v)
	}
}

// runAll drains the frontier completely, settling every vertex within the
// cost limit. Returns the settled costs keyed by vertex.
func (r *runner[N, C]) runAll(source N) map[N]C {
	dist := make(map[N]C)
	r.start(source)

	for {
		v, ok := r.pop()
		if !ok {
			return dist
		}
		dist[v.node] = v.gcost
		r.relax(v)
	}
}

// start seeds the frontier with the source at cost zero.
func (r *runner[N, C]) start(source N) {
	zero := r.alg.Zero()
	r.best[source] = zero

	v := visit[N, C]{node: source, gcost: zero}
	if r.track {
		v.prefix = []N{source}
	}
	r.pq.Push(r.priority(v), v)
}

// pop returns the next live frontier entry, skipping stale ones and honoring
// the cost limit. ok=false ends the run.
func (r *runner[N, C]) pop() (visit[N, C], bool) {
	for {
		_, v, ok := r.pq.Pop()
		if !ok {
			return v, false
		}

		// 1) Lazy deletion: an entry beaten since it was pushed is dead weight.
		if r.alg.Compare(v.gcost, r.best[v.node]) > 0 {
			continue
		}

		// 2) Cost budget. With g-ordered pops nothing nearer remains, so the
		//    run ends; with f-ordered pops (A*) later entries may still fit,
		//    so only this entry is dropped.
		if r.cfg.hasLimit && r.alg.Compare(v.gcost, r.cfg.limit) > 0 {
			if r.h == nil {
				return v, false
			}

			continue
		}

		return v, true
	}
}

// relax expands every out-arc of v, pushing strictly improving candidates.
// Improvements push duplicates (lazy decrease-key); nothing is rewritten.
func (r *runner[N, C]) relax(v visit[N, C]) {
	for _, a := range r.g.Successors(v.node) {
		// Wall arcs are treated as absent.
		if r.cfg.hasImpassable && r.alg.Compare(a.Cost, r.cfg.impassable) >= 0 {
			continue
		}

		cand := r.alg.Add(v.gcost, a.Cost)

		// Never push past the budget.
		if r.cfg.hasLimit && r.alg.Compare(cand, r.cfg.limit) > 0 {
			continue
		}

		// Strict improvement only; an equal candidate is a duplicate.
		if known, seen := r.best[a.To]; seen && r.alg.Compare(cand, known) >= 0 {
			continue
		}
		r.best[a.To] = cand

		next := visit[N, C]{node: a.To, gcost: cand}
		if r.track {
			next.prefix = extend(v.prefix, a.To)
		}
		r.pq.Push(r.priority(next), next)
	}
}

// priority computes the heap key for a visit: the accumulated cost alone, or
// cost plus the heuristic estimate when one is present.
func (r *runner[N, C]) priority(v visit[N, C]) C {
	if r.h == nil {
		return v.gcost
	}

	return r.alg.Add(v.gcost, r.h(v.node, r.goal))
}

// extend copies prefix and appends node. Frontier entries never share
// backing arrays, so a popped path is immutable history.
func extend[N comparable](prefix []N, node N) []N {
	out := make([]N, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = node

	return out
}
