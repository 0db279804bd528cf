package digraph

import (
	"fmt"

	"github.com/katalvlaran/costpath/edgefile"
	"github.com/katalvlaran/costpath/registry"
)

// Graph is the frozen weighted digraph produced by Build.
// It exclusively owns its registry, record list and cost matrix.
type Graph struct {
	reg     *registry.Registry // name ↔ index
	records []edgefile.Record  // input the graph was built from
	matrix  [][]int64          // matrix[i][j] = weight i→j, 0 = absent
	present [][]bool           // explicit presence mask; nil unless WithZeroWeightEdges
}

// VertexCount returns N, the number of distinct vertices (matrix dimension).
func (g *Graph) VertexCount() int { return g.reg.Count() }

// Vertices returns vertex names in registration (row/column) order.
func (g *Graph) Vertices() []string { return g.reg.Names() }

// IndexOf returns the index of name and whether it is registered.
func (g *Graph) IndexOf(name string) (int, bool) { return g.reg.IndexOf(name) }

// NameOf returns the vertex name at index, or a wrapped registry.ErrNoSuchIndex.
func (g *Graph) NameOf(index int) (string, error) { return g.reg.NameOf(index) }

// Weight returns the cost of the edge from→to and whether such an edge exists.
// Unknown names yield ErrVertexNotFound.
func (g *Graph) Weight(from, to string) (int64, bool, error) {
	i, ok := g.reg.IndexOf(from)
	if !ok {
		return 0, false, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	j, ok := g.reg.IndexOf(to)
	if !ok {
		return 0, false, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	if !g.has(i, j) {
		return 0, false, nil
	}

	return g.matrix[i][j], true, nil
}

// Matrix returns a copy of the N×N cost matrix in registration order.
func (g *Graph) Matrix() [][]int64 {
	n := len(g.matrix)
	out := newSquare[int64](n)
	for i := range g.matrix {
		copy(out[i], g.matrix[i])
	}
	return out
}

// Records returns a copy of the records the graph was built from.
func (g *Graph) Records() []edgefile.Record {
	out := make([]edgefile.Record, len(g.records))
	copy(out, g.records)
	return out
}

// has reports whether cell (i, j) holds an edge under the active zero policy.
func (g *Graph) has(i, j int) bool {
	if g.present != nil {
		return g.present[i][j]
	}
	return g.matrix[i][j] != 0
}
