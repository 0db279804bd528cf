// Package digraph builds and owns the weighted, possibly asymmetric directed
// graph described by an edge file.
//
// A Graph holds three structures, all built once by Build and frozen afterwards:
//
//   - a registry.Registry mapping vertex names to dense indices (first-seen order),
//   - the parsed []edgefile.Record list it was built from,
//   - a dense N×N int64 cost matrix indexed by vertex index.
//
// Matrix semantics:
//
//	matrix[i][j] == 0  → no edge i→j (zero doubles as absence)
//	matrix[i][j] != 0  → directed edge i→j with that weight (may be negative)
//
// Because zero doubles as absence, a record with cost "0" produces no edge under
// the default policy. WithZeroWeightEdges switches to an explicit presence mask
// so that zero-cost edges survive; the matrix values are unchanged either way.
//
// Repeated pairs are last-write-wins per direction: a later record overwrites
// only the directions it specifies, and "N/A" never erases an earlier cost.
//
// Edge enumeration (Edges, NamedEdges) scans the matrix in row-major order on
// every call; results are deterministic (increasing i, then increasing j) and
// never cached.
//
// Thread safety:
//
//   - A *Graph is immutable after Build returns; every method is a pure read and
//     may be called from multiple goroutines without locking.
package digraph
