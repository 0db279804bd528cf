// Package bellmanford implements the Bellman-Ford shortest-path algorithm over
// a frozen weighted digraph, with negative-cycle detection.
//
// Overview:
//
//   - The solver initializes the source distance to 0 and every other vertex as
//     "not reached". Infinity is a tagged state (a reached flag per vertex),
//     never an integer sentinel, so no relaxation can wrap around.
//   - It performs exactly V-1 in-place passes over the edge list in enumeration
//     order. Updates made earlier in a pass are visible later in the same pass.
//   - One extra scan follows. If any edge from a reached vertex still strictly
//     improves its destination, a negative cycle is reachable from the source.
//
// Outcomes:
//
//   - Reachable:     Result.Cost is the minimum path cost.
//   - Unreachable:   no path from source to destination, no cycle detected.
//   - NegativeCycle: a negative cycle is reachable from the source; reported for
//     every destination, since the run as a whole is not well-defined.
//
// These are distinct: a missing path is never conflated with a negative cycle,
// and a cycle that cannot be reached from the source does not affect the query.
//
// Overflow:
//
//   - Distances are accumulated in 128-bit arithmetic, so a large negative
//     cycle is still reported as NegativeCycle even when walking it leaves
//     the int64 range.
//   - Without a reachable negative cycle, a destination whose minimum cost
//     does not fit in int64 returns ErrWeightOverflow instead of a wrong cost.
//
// API reference:
//
//	func ShortestPathCost(g Source, from, to string, opts ...Option) (Result, error)
//	func Distances(g Source, from string, opts ...Option) ([]Result, error)
//
// Thread safety:
//
//   - The solver keeps no state between calls. Concurrent queries over the same
//     immutable graph are safe.
//
// See also:
//
//   - digraph.Graph: the dense matrix source whose Edges() feed the solver.
package bellmanford
