// Package cost defines the algebra that makes every pathfind algorithm
// generic over its cost type.
//
// What
//
//   - Algebra[C] bundles the three operations a search needs from a cost
//     type: the identity element (Zero), accumulation (Add), and a total
//     order (Compare). Nothing else about C is assumed; C may be an int,
//     a float, a duration, or a hand-rolled composite such as a
//     (transfers, minutes) pair compared lexicographically.
//   - Numeric[T] instantiates the algebra for every built-in integer and
//     float type in one line.
//   - Of adapts three plain functions into an Algebra for cost types that
//     are not ordered additive numbers.
//
// Why
//
//	Shortest-path algorithms only ever fold costs with Add and rank them
//	with Compare. Capturing exactly that surface keeps the engine free of
//	any built-in numeric assumption while still letting the common
//	int64/float64 case stay a one-liner.
//
// Contract
//
//	Add must be associative, and for Dijkstra / A* / Floyd-Warshall it must
//	be monotonic: Add(a, w) must never compare below a when w compares
//	at-or-above Zero. The Bellman-Ford family tolerates negative
//	contributions and detects decreasing cycles instead. These properties
//	are preconditions the engine cannot verify (validating them in general
//	is undecidable); violating them yields incorrect results, not panics.
//
// Determinism
//
//	All three operations must be pure. Given the same operands they must
//	return the same results; the engine relies on this for reproducible
//	runs and for the lazy stale-entry test in its frontiers.
package cost
