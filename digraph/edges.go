package digraph

// Edges scans the matrix in row-major order and returns every edge present:
// increasing source index, then increasing destination index.
// The slice is rebuilt on every call, so callers pay the O(N²) scan each time.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for i, row := range g.matrix {
		for j, w := range row {
			if !g.has(i, j) {
				continue
			}
			edges = append(edges, Edge{From: i, To: j, Weight: w})
		}
	}
	return edges
}

// NamedEdges is Edges with endpoints resolved to vertex names, in the same order.
func (g *Graph) NamedEdges() []NamedEdge {
	names := g.reg.Names()
	edges := g.Edges()
	out := make([]NamedEdge, len(edges))
	for k, e := range edges {
		out[k] = NamedEdge{From: names[e.From], To: names[e.To], Weight: e.Weight}
	}
	return out
}
