// Package pathfind is a generic shortest-path and state-space search
// toolkit: the same algorithms you know from graph theory, freed from any
// built-in numeric type and from the need to materialize a graph at all.
//
// 🚀 What is pathfind?
//
//	A thread-friendly, generics-first search engine that brings together:
//		• Cost algebras: search over int64 metres, float64 seconds, or any
//		  caller-defined (Zero, Add, Compare) triple — lexicographic fares included
//		• Explicit graphs: Dijkstra, A*, Bellman-Ford over a two-method Digraph view
//		• All-pairs: Floyd-Warshall closures + a hybrid POI distance matrix
//		• Implicit graphs: Dijkstra/A*/SPFA over successor functions — states are
//		  generated on the fly, deduplicated by the key of your choice
//		• Negative-cycle detection: surfaced as a distinct error, never a bogus path
//
// ✨ Why choose pathfind?
//
//   - One algebra, every algorithm – write your cost type once, reuse it everywhere
//   - Honest failure modes – unreachable and negative-cycle are separate sentinels
//   - Deterministic – fixed inputs replay fixed outputs, ties included
//   - Pure Go – no cgo, no I/O, no hidden global state
//
// Under the hood, everything is organized into focused packages:
//
//	cost/          — the (Zero, Add, Compare) algebra and ready-made numeric instances
//	core/          — the Graph container, the Digraph read contract, Path + cost folding
//	frontier/      — the shared lazy min-heap priority queue
//	dijkstra/      — ShortestPath, Distances and AStar over any Digraph
//	bellmanford/   — negative-arc-tolerant point-to-point and single-source queries
//	floydwarshall/ — AllPairs closures and the dense/sparse DistanceMatrix hybrid
//	implicit/      — Dijkstra/AStar/BellmanFord over caller-generated state spaces
//
// Quick ASCII example:
//
//	    1 ──5── 2
//	     \      │
//	     10     3
//	       \    │
//	        `── 3
//
//	ShortestPath(1, 3) returns [1 2 3] at cost 8 — the detour beats the
//	direct arc.
//
// Every algorithm is a blocking pure function over its inputs; run as many
// as you like concurrently on independent queries. Dive into the package
// docs for contracts, complexity notes, and runnable examples.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
