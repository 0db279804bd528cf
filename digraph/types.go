package digraph

import "errors"

// Sentinel errors returned by digraph.
var (
	// ErrCostNotNumeric indicates a cost field that is neither "N/A" nor a decimal integer.
	ErrCostNotNumeric = errors.New("digraph: cost not numeric")

	// ErrVertexNotFound indicates a lookup by a name that is not registered.
	ErrVertexNotFound = errors.New("digraph: vertex not found")
)

// Edge is a directed, weighted connection between two vertex indices.
// It is a derived view produced by Edges; it is never stored.
type Edge struct {
	From   int   // source vertex index
	To     int   // destination vertex index
	Weight int64 // edge cost; may be negative
}

// NamedEdge is Edge with both endpoints resolved to vertex names.
type NamedEdge struct {
	From   string
	To     string
	Weight int64
}

// Options configures how Build interprets records.
type Options struct {
	// ZeroWeightEdges keeps an explicit presence mask so that a "0" cost is a
	// real edge instead of being indistinguishable from "no edge".
	ZeroWeightEdges bool
}

// Option is a functional option for Build.
type Option func(*Options)

// WithZeroWeightEdges makes explicit zero-cost edges visible to Edges and Weight.
// Default: off (zero means absent).
func WithZeroWeightEdges() Option {
	return func(o *Options) { o.ZeroWeightEdges = true }
}

// DefaultOptions returns the parity configuration: zero cost means no edge.
func DefaultOptions() Options {
	return Options{ZeroWeightEdges: false}
}
