package digraph

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/costpath/edgefile"
	"github.com/katalvlaran/costpath/registry"
)

// Build constructs a frozen Graph from records.
//
// Stage 1 (Register): register From then To of every record, in record order.
// Stage 2 (Allocate): N×N zero matrix, N = number of distinct names.
// Stage 3 (Fill): for each record, set matrix[src][dst] from Forward and
// matrix[dst][src] from Backward, skipping "N/A". Later records overwrite
// earlier ones per direction.
// Stage 4 (Finalize): wrap everything in a Graph.
//
// Returns ErrCostNotNumeric (wrapped with the field text and endpoints) if a cost
// is not a base-10 int64. On error no Graph is returned.
//
// Complexity: O(R + N²) time and O(N²) space, R = len(records).
func Build(records []edgefile.Record, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1: vertex registration in first-seen order
	reg := registry.New()
	for _, rec := range records {
		reg.Register(rec.From)
		reg.Register(rec.To)
	}

	// Stage 2: allocate
	n := reg.Count()
	matrix := newSquare[int64](n)
	var present [][]bool
	if cfg.ZeroWeightEdges {
		present = newSquare[bool](n)
	}

	// Stage 3: fill
	var (
		src, dst int
		w        int64
		err      error
	)
	for _, rec := range records {
		src, _ = reg.IndexOf(rec.From)
		dst, _ = reg.IndexOf(rec.To)

		if rec.HasForward() {
			if w, err = parseCost(rec.Forward, rec.From, rec.To); err != nil {
				return nil, err
			}
			matrix[src][dst] = w
			if present != nil {
				present[src][dst] = true
			}
		}
		if rec.HasBackward() {
			if w, err = parseCost(rec.Backward, rec.To, rec.From); err != nil {
				return nil, err
			}
			matrix[dst][src] = w
			if present != nil {
				present[dst][src] = true
			}
		}
	}

	// Stage 4: finalize
	kept := make([]edgefile.Record, len(records))
	copy(kept, records)

	return &Graph{
		reg:     reg,
		records: kept,
		matrix:  matrix,
		present: present,
	}, nil
}

// parseCost converts a cost field to int64, reporting the direction on failure.
func parseCost(field, from, to string) (int64, error) {
	w, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q for %s→%s", ErrCostNotNumeric, field, from, to)
	}
	return w, nil
}

// newSquare allocates an n×n matrix backed by a single contiguous slice.
func newSquare[T any](n int) [][]T {
	backing := make([]T, n*n)
	rows := make([][]T, n)
	for i := range rows {
		rows[i] = backing[i*n : (i+1)*n : (i+1)*n]
	}
	return rows
}
