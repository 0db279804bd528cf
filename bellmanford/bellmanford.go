package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/costpath/digraph"
)

// ShortestPathCost returns the minimum path cost from → to in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. from must exist in g (ErrVertexNotFound).
//  3. to must exist in g (ErrVertexNotFound).
//
// Returns a Result whose Kind distinguishes a numeric cost, an unreachable
// destination and a negative cycle reachable from the source.
// ShortestPathCost(g, x, x) is {Reachable, 0} unless a negative cycle is
// reachable from x. ErrWeightOverflow is returned only when the cycle-free
// minimum cost to "to" does not fit in int64.
//
// Complexity: O(V·(V² + E)) on a dense source.
func ShortestPathCost(g Source, from, to string, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	src, ok := g.IndexOf(from)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	dst, ok := g.IndexOf(to)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	r := newRunner(g, opts)
	r.run(src)

	return r.result(dst)
}

// Distances runs the solver once from source and returns one Result per vertex
// index. If a negative cycle is reachable from source, every entry reports
// NegativeCycle. If any reachable vertex has a minimum cost outside int64,
// the call fails with ErrWeightOverflow.
func Distances(g Source, from string, opts ...Option) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	src, ok := g.IndexOf(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}

	r := newRunner(g, opts)
	r.run(src)

	out := make([]Result, len(r.dist))
	var err error
	for v := range out {
		if out[v], err = r.result(v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// runner holds the mutable state for a single Bellman-Ford execution.
type runner struct {
	g       Source  // read-only input
	options Options // configuration
	dist    []wide  // best-known cost per vertex; valid only where reached
	reached []bool  // reached[v]: v has a finite distance
	cycle   bool    // set by detect when a reachable negative cycle exists
}

// newRunner applies options and allocates per-vertex state.
func newRunner(g Source, opts []Option) *runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	n := g.VertexCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make([]wide, n),
		reached: make([]bool, n),
	}
}

// run executes V-1 relaxation passes followed by the detection scan.
func (r *runner) run(src int) {
	r.dist[src] = wide{}
	r.reached[src] = true

	n := len(r.dist)
	for pass := 1; pass < n; pass++ {
		// The edge list is re-derived every pass.
		if !r.pass(r.g.Edges()) && r.options.EarlyExit {
			break
		}
	}

	r.detect(r.g.Edges())
}

// pass relaxes every edge once, in order, updating dist in place.
// Reports whether any distance changed.
func (r *runner) pass(edges []digraph.Edge) bool {
	changed := false
	for _, e := range edges {
		cand, improved := r.relaxable(e)
		if !improved {
			continue
		}
		r.dist[e.To] = cand
		r.reached[e.To] = true
		changed = true
	}
	return changed
}

// detect performs the extra scan: any remaining strict improvement means a
// negative cycle is reachable from the source.
func (r *runner) detect(edges []digraph.Edge) {
	for _, e := range edges {
		if _, improved := r.relaxable(e); improved {
			r.cycle = true
			return
		}
	}
}

// relaxable returns the candidate cost through e and whether it strictly
// improves dist[e.To]. Edges leaving an unreached vertex never relax.
func (r *runner) relaxable(e digraph.Edge) (wide, bool) {
	if !r.reached[e.From] {
		return wide{}, false
	}
	cand := r.dist[e.From].add(widen(e.Weight))
	if r.reached[e.To] && !cand.less(r.dist[e.To]) {
		return wide{}, false
	}
	return cand, true
}

// result converts the state for vertex v into a Result.
func (r *runner) result(v int) (Result, error) {
	switch {
	case r.cycle:
		return Result{Kind: NegativeCycle}, nil
	case !r.reached[v]:
		return Result{Kind: Unreachable}, nil
	}
	cost, ok := r.dist[v].int64()
	if !ok {
		return Result{}, fmt.Errorf("%w: minimum cost to vertex %d is %s", ErrWeightOverflow, v, r.dist[v])
	}
	return Result{Kind: Reachable, Cost: cost}, nil
}
