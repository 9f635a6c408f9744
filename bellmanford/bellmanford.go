package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/cost"
)

// ShortestPath returns the minimum-cost route from source to goal under the
// supplied algebra, tolerating arcs whose cost compares below alg.Zero().
//
// The engine runs exactly |V|−1 relaxation passes over every arc, then one
// detection pass. It returns:
//
//   - ErrNilGraph / ErrNilAlgebra on nil inputs,
//   - ErrVertexNotFound when source or goal is absent,
//   - ErrNegativeCycle when a reachable negative-total cycle exists, even if
//     the goal had already settled,
//   - ErrNoPath when the goal is never reached.
//
// On success the path is rebuilt from the predecessor map, source first.
// Complexity: O(V·E) time, O(V+E) memory.
func ShortestPath[N comparable, C any](
	g core.Digraph[N, C],
	alg cost.Algebra[C],
	source, goal N,
) (core.Path[N, C], error) {
	r, err := prepare(g, alg, source, goal)
	if err != nil {
		return core.Path[N, C]{}, err
	}
	if err = r.run(source); err != nil {
		return core.Path[N, C]{}, err
	}
	return r.pathTo(source, goal)
}

// Distances returns the settled cost of every vertex reachable from source.
// Vertices the source cannot reach are absent from the map; no infinity
// value exists for an opaque cost type.
//
// Shares the relaxation engine with ShortestPath, including its error
// contract: a reachable negative cycle yields ErrNegativeCycle and no map.
// Complexity: O(V·E) time, O(V+E) memory.
func Distances[N comparable, C any](
	g core.Digraph[N, C],
	alg cost.Algebra[C],
	source N,
) (map[N]C, error) {
	r, err := prepare(g, alg, source)
	if err != nil {
		return nil, err
	}
	if err = r.run(source); err != nil {
		return nil, err
	}
	return r.dist, nil
}

// arc is one directed relaxation candidate captured from the graph snapshot.
type arc[N comparable, C any] struct {
	from, to N
	cost     C
}

// runner holds the per-query state shared by both entry points.
type runner[N comparable, C any] struct {
	alg   cost.Algebra[C]
	verts []N         // vertices in enumeration order
	arcs  []arc[N, C] // arcs in vertex-major enumeration order
	dist  map[N]C     // settled cost per reached vertex
	pred  map[N]N     // predecessor on the current best route
}

// prepare validates inputs and snapshots the graph into a runner.
func prepare[N comparable, C any](
	g core.Digraph[N, C],
	alg cost.Algebra[C],
	required ...N,
) (*runner[N, C], error) {
	// 1) Structural validation.
	if g == nil {
		return nil, ErrNilGraph
	}
	if alg == nil {
		return nil, ErrNilAlgebra
	}

	// 2) Snapshot vertices and arcs once, in enumeration order, so every
	//    pass sees an identical sequence.
	r := &runner[N, C]{alg: alg, verts: g.Vertices()}
	members := make(map[N]struct{}, len(r.verts))
	for _, v := range r.verts {
		members[v] = struct{}{}
		for _, a := range g.Successors(v) {
			r.arcs = append(r.arcs, arc[N, C]{from: v, to: a.To, cost: a.Cost})
		}
	}

	// 3) Endpoint membership.
	for _, v := range required {
		if _, ok := members[v]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
		}
	}

	return r, nil
}

// run executes |V|−1 relaxation passes followed by the detection pass.
func (r *runner[N, C]) run(source N) error {
	// 1) Seed: only the source is reached; absence in dist means "not yet".
	r.dist = make(map[N]C, len(r.verts))
	r.pred = make(map[N]N, len(r.verts))
	r.dist[source] = r.alg.Zero()

	// 2) Exactly |V|−1 full passes. Each pass propagates best costs one
	//    more hop, so |V|−1 passes settle every simple path.
	for pass := 1; pass < len(r.verts); pass++ {
		r.relaxPass()
	}

	// 3) Detection: an arc that still improves after |V|−1 passes can only
	//    be fed by a negative-total cycle reachable from the source.
	if r.relaxPass() {
		return ErrNegativeCycle
	}

	return nil
}

// relaxPass sweeps the arc list once, applying every strict improvement,
// and reports whether any occurred.
func (r *runner[N, C]) relaxPass() bool {
	improved := false
	for _, e := range r.arcs {
		base, ok := r.dist[e.from]
		if !ok {
			continue // tail not reached, nothing to extend
		}
		cand := r.alg.Add(base, e.cost)
		if cur, seen := r.dist[e.to]; seen && r.alg.Compare(cand, cur) >= 0 {
			continue
		}
		r.dist[e.to] = cand
		r.pred[e.to] = e.from
		improved = true
	}
	return improved
}

// pathTo rebuilds the settled route from the predecessor map.
func (r *runner[N, C]) pathTo(source, goal N) (core.Path[N, C], error) {
	// 1) Reachability: an absent key means the goal never settled.
	total, ok := r.dist[goal]
	if !ok {
		return core.Path[N, C]{}, fmt.Errorf("%w: %v -> %v", ErrNoPath, source, goal)
	}

	// 2) Walk predecessor links back from the goal. Only the source lacks
	//    one, so the walk terminates there.
	nodes := []N{goal}
	for cur := goal; ; {
		prev, found := r.pred[cur]
		if !found {
			break
		}
		nodes = append(nodes, prev)
		cur = prev
	}

	// 3) Reverse in place to emit source → goal order.
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return core.Path[N, C]{Nodes: nodes, Cost: total}, nil
}
