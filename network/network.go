package network

import (
	"fmt"
	"io"

	"github.com/katalvlaran/costpath/bellmanford"
	"github.com/katalvlaran/costpath/digraph"
	"github.com/katalvlaran/costpath/edgefile"
)

// Network is a fully built, frozen graph plus the solver configuration used for queries.
type Network struct {
	graph  *digraph.Graph
	solver []bellmanford.Option
}

// LoadOption configures Load and Read.
type LoadOption func(*loadConfig)

type loadConfig struct {
	graph  []digraph.Option
	solver []bellmanford.Option
}

// WithGraphOptions forwards options to digraph.Build.
func WithGraphOptions(opts ...digraph.Option) LoadOption {
	return func(c *loadConfig) { c.graph = append(c.graph, opts...) }
}

// WithSolverOptions sets options applied to every ShortestPathCost query.
func WithSolverOptions(opts ...bellmanford.Option) LoadOption {
	return func(c *loadConfig) { c.solver = append(c.solver, opts...) }
}

// Load reads the edge file at path and builds a Network from it.
// Any failure returns a nil Network and an error wrapping one of
// edgefile.ErrUnreadable, edgefile.ErrMalformedRecord or digraph.ErrCostNotNumeric.
func Load(path string, opts ...LoadOption) (*Network, error) {
	records, err := edgefile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := fromRecords(records, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Read is Load for an already-open input.
func Read(r io.Reader, opts ...LoadOption) (*Network, error) {
	records, err := edgefile.Parse(r)
	if err != nil {
		return nil, err
	}
	return fromRecords(records, opts)
}

func fromRecords(records []edgefile.Record, opts []LoadOption) (*Network, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	g, err := digraph.Build(records, cfg.graph...)
	if err != nil {
		return nil, err
	}
	return &Network{graph: g, solver: cfg.solver}, nil
}

// Vertices returns vertex names in registration order.
func (n *Network) Vertices() []string { return n.graph.Vertices() }

// Edges returns every directed edge with resolved names, in row-major order.
func (n *Network) Edges() []digraph.NamedEdge { return n.graph.NamedEdges() }

// ShortestPathCost returns the minimum cost from → to.
// Unknown names fail with bellmanford.ErrVertexNotFound; the Network is unaffected.
func (n *Network) ShortestPathCost(from, to string) (bellmanford.Result, error) {
	return bellmanford.ShortestPathCost(n.graph, from, to, n.solver...)
}

// Graph exposes the underlying frozen graph for read-only use (matrix printing, export).
func (n *Network) Graph() *digraph.Graph { return n.graph }
