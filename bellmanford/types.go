// Package bellmanford defines core types and configuration options
// for the Bellman-Ford single-source shortest-path solver.
//
// Bellman-Ford computes minimum path costs from one source vertex in a graph
// whose edge weights may be negative, and detects negative-weight cycles
// reachable from that source.
//
// Complexity:
//
//	– Time:  O(V·(V² + E))  for a dense digraph.Graph source
//	   • V-1 relaxation passes plus one detection scan, each over all E edges.
//	   • Every pass re-derives the edge list, which costs O(V²) on a dense matrix.
//	– Space: O(V + E)
//	   • O(V) for the distance and reached slices.
//	   • O(E) for the edge list of the current pass.
//
// Options:
//
//	– EarlyExit: stop relaxing once a full pass changes nothing (result is identical).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrVertexNotFound  if the source or destination name is unknown.
//	– ErrWeightOverflow  if a finite minimum cost does not fit in int64.
package bellmanford

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/costpath/digraph"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil Source was passed to the solver.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that a queried vertex name is not in the graph.
	ErrVertexNotFound = errors.New("bellmanford: no such vertex")

	// ErrWeightOverflow indicates that a cycle-free minimum cost does not fit in int64.
	ErrWeightOverflow = errors.New("bellmanford: path cost overflows int64")
)

// Source is the read-only view the solver needs.
// *digraph.Graph satisfies it.
type Source interface {
	// VertexCount returns N; vertex indices are 0..N-1.
	VertexCount() int
	// IndexOf resolves a vertex name to its index.
	IndexOf(name string) (int, bool)
	// Edges returns the edge list in a deterministic order.
	Edges() []digraph.Edge
}

// Kind classifies the outcome of a shortest-path query.
type Kind int

const (
	// Reachable means Result.Cost holds the minimum path cost.
	Reachable Kind = iota
	// Unreachable means no path exists from the source to the destination.
	Unreachable
	// NegativeCycle means a negative-weight cycle is reachable from the source,
	// so path costs are unbounded below.
	NegativeCycle
)

// String returns a lower-case label for k.
func (k Kind) String() string {
	switch k {
	case Reachable:
		return "reachable"
	case Unreachable:
		return "unreachable"
	case NegativeCycle:
		return "negative cycle"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Result is the outcome of a query. Cost is meaningful only when Kind == Reachable.
type Result struct {
	Kind Kind
	Cost int64
}

// String renders the cost for reachable results and the kind label otherwise.
func (r Result) String() string {
	if r.Kind == Reachable {
		return strconv.FormatInt(r.Cost, 10)
	}
	return r.Kind.String()
}

// Options configures the behavior of the solver.
//
// EarlyExit – stop the relaxation passes as soon as one full pass performs no
// update. The classic algorithm (default) always runs exactly V-1 passes.
type Options struct {
	EarlyExit bool
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithEarlyExit enables stopping once distances are stable.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// DefaultOptions returns the classic configuration: exactly V-1 passes.
func DefaultOptions() Options {
	return Options{EarlyExit: false}
}
