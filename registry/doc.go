// Package registry assigns every distinct vertex name a stable, dense integer
// index in first-seen order.
//
// The registry is the leaf of the costpath stack: digraph uses it to map the
// names found in an edge file onto rows and columns of its cost matrix, and the
// solver reports results back through the same mapping.
//
// Guarantees:
//
//   - Indices are contiguous: the n-th distinct name registered gets index n-1.
//   - Register is idempotent: a known name returns its existing index unchanged.
//   - Once assigned, an index is never reused or reassigned. There is no removal.
//
// Complexity:
//
//   - Register, IndexOf: O(1) average (hash map).
//   - NameOf: O(1) (slice lookup), unlike a reverse scan over the map.
//   - Names: O(N) copy.
//
// Thread safety:
//
//   - A Registry is not synchronized. It is written once while a graph is built
//     and only read afterwards; concurrent readers are safe once writes stop.
package registry
