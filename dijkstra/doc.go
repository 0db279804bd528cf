// Package dijkstra implements Dijkstra's shortest-path algorithm over the same
// index-based graph view that bellmanford consumes.
//
// Overview:
//
//   - Dijkstra computes minimum path costs from one source in O((V + E) log V)
//     using a min-heap with lazy decrease-key (stale heap entries are skipped).
//   - It requires non-negative weights. A pre-scan of the edge list rejects any
//     negative edge with ErrNegativeWeight before the search starts.
//
// Role:
//
//   - It is a reference solver, not a query path: network and the CLI always
//     answer through bellmanford.
//   - It serves as an independent oracle. On non-negative graphs its results
//     must match bellmanford.Distances exactly, including ErrWeightOverflow,
//     which the bellmanford cross-check tests rely on.
//
// Results use bellmanford.Result, so "unreachable" stays a tagged outcome and
// NegativeCycle never appears (negative graphs are rejected up front).
package dijkstra
