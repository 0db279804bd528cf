package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/costpath/bellmanford"
	"github.com/katalvlaran/costpath/digraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil Source was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrWeightOverflow is bellmanford.ErrWeightOverflow, so both solvers
	// report an out-of-range minimum cost with the same sentinel.
	ErrWeightOverflow = bellmanford.ErrWeightOverflow
)

// Distances computes shortest costs from source to every vertex index of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// A vertex whose only paths cost more than math.MaxInt64 yields
// ErrWeightOverflow, matching bellmanford.Distances.
//
// Complexity: O(V² + E log V) on a dense source (the edge scan dominates small graphs).
func Distances(g bellmanford.Source, source string) ([]bellmanford.Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	src, ok := g.IndexOf(source)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	// Pre-scan all edges to detect negative weights and build adjacency.
	n := g.VertexCount()
	adj := make([][]digraph.Edge, n)
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		adj[e.From] = append(adj[e.From], e)
	}

	r := &runner{
		adj:     adj,
		dist:    make([]int64, n),
		reached: make([]bool, n),
		over:    make([]bool, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(src)
	r.process()

	out := make([]bellmanford.Result, n)
	for v := range out {
		if r.over[v] && !r.reached[v] {
			return nil, fmt.Errorf("%w: minimum cost to vertex %d exceeds int64", ErrWeightOverflow, v)
		}
		if r.reached[v] {
			out[v] = bellmanford.Result{Kind: bellmanford.Reachable, Cost: r.dist[v]}
		} else {
			out[v] = bellmanford.Result{Kind: bellmanford.Unreachable}
		}
	}
	return out, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     [][]digraph.Edge // outgoing edges per vertex
	dist    []int64          // best-known distance, valid where reached
	reached []bool           // a finite distance is known
	over    []bool           // some path to v overflowed int64
	visited []bool           // distance is final
	pq      nodePQ           // min-heap of *nodeItem
}

// init seeds the heap with the source at distance zero.
func (r *runner) init(src int) {
	r.dist[src] = 0
	r.reached[src] = true
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process pops the closest unvisited vertex and relaxes its edges until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true

		for _, e := range r.adj[u] {
			cand := r.dist[u] + e.Weight
			if cand < r.dist[u] {
				// Overflow. Fatal only if v never gets an in-range distance.
				r.over[e.To] = true
				continue
			}
			if r.reached[e.To] && cand >= r.dist[e.To] {
				continue
			}
			r.dist[e.To] = cand
			r.reached[e.To] = true
			heap.Push(&r.pq, &nodeItem{id: e.To, dist: cand})
		}
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
