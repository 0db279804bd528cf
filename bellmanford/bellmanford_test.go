package bellmanford_test

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/costpath/bellmanford"
	"github.com/katalvlaran/costpath/digraph"
	"github.com/katalvlaran/costpath/edgefile"
)

// build parses lines joined by '\n' into a frozen graph.
func build(t require.TestingT, lines ...string) *digraph.Graph {
	recs, err := edgefile.Parse(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	g, err := digraph.Build(recs)
	require.NoError(t, err)
	return g
}

// SolverSuite exercises ShortestPathCost on small hand-checked graphs.
type SolverSuite struct {
	suite.Suite
}

// TestDetourBeatsDirectEdge verifies A→B→C (1+2) wins over A→C (10).
func (s *SolverSuite) TestDetourBeatsDirectEdge() {
	g := build(s.T(), "A;B;1;N/A", "B;C;2;N/A", "A;C;10;N/A")
	res, err := bellmanford.ShortestPathCost(g, "A", "C")
	require.NoError(s.T(), err)
	require.Equal(s.T(), bellmanford.Result{Kind: bellmanford.Reachable, Cost: 3}, res)
	require.Equal(s.T(), "3", res.String())
}

// TestNegativeEdgesWithoutCycle verifies negative weights are handled when no cycle exists.
func (s *SolverSuite) TestNegativeEdgesWithoutCycle() {
	g := build(s.T(), "A;B;4;N/A", "A;C;2;N/A", "C;B;-3;N/A", "B;D;1;N/A")
	res, err := bellmanford.ShortestPathCost(g, "A", "D")
	require.NoError(s.T(), err)
	require.Equal(s.T(), bellmanford.Reachable, res.Kind)
	require.EqualValues(s.T(), 0, res.Cost) // A→C→B→D = 2-3+1
}

// TestSelfDistanceIsZero covers cost(X, X) == 0 with and without outgoing edges.
func (s *SolverSuite) TestSelfDistanceIsZero() {
	g := build(s.T(), "A;B;5;-2", "B;C;N/A;7")
	for _, v := range g.Vertices() {
		res, err := bellmanford.ShortestPathCost(g, v, v)
		require.NoError(s.T(), err)
		require.Equal(s.T(), bellmanford.Result{Kind: bellmanford.Reachable}, res, "vertex %s", v)
	}
}

// TestNegativeCycleAnyPair verifies the cycle outcome for every pair reachable from it.
func (s *SolverSuite) TestNegativeCycleAnyPair() {
	// B→C→D→B sums to -1; A feeds the cycle, E hangs off it.
	g := build(s.T(), "A;B;1;N/A", "B;C;2;N/A", "C;D;-4;N/A", "D;B;1;N/A", "D;E;3;N/A")
	for _, from := range []string{"A", "B", "C", "D"} {
		for _, to := range []string{"A", "B", "C", "D", "E"} {
			res, err := bellmanford.ShortestPathCost(g, from, to)
			require.NoError(s.T(), err)
			require.Equal(s.T(), bellmanford.NegativeCycle, res.Kind, "%s→%s", from, to)
			require.Equal(s.T(), "negative cycle", res.String())
		}
	}
}

// TestCycleNotReachableFromSource verifies a cycle behind the source does not taint the query.
func (s *SolverSuite) TestCycleNotReachableFromSource() {
	g := build(s.T(), "X;Y;-5;1", "Y;Z;2;N/A") // X↔Y sums to -4; Z is a sink
	res, err := bellmanford.ShortestPathCost(g, "Z", "Z")
	require.NoError(s.T(), err)
	require.Equal(s.T(), bellmanford.Result{Kind: bellmanford.Reachable}, res)

	res, err = bellmanford.ShortestPathCost(g, "Z", "X")
	require.NoError(s.T(), err)
	require.Equal(s.T(), bellmanford.Unreachable, res.Kind)
}

// TestUnreachableIsDistinct verifies a missing path is not reported as a cycle.
func (s *SolverSuite) TestUnreachableIsDistinct() {
	g := build(s.T(), "A;B;1;N/A", "C;D;1;N/A")
	res, err := bellmanford.ShortestPathCost(g, "A", "D")
	require.NoError(s.T(), err)
	require.Equal(s.T(), bellmanford.Unreachable, res.Kind)
	require.Equal(s.T(), "unreachable", res.String())
}

// TestNegativeSelfLoop verifies a one-vertex negative cycle is detected.
func (s *SolverSuite) TestNegativeSelfLoop() {
	g := build(s.T(), "A;A;-1;N/A")
	res, err := bellmanford.ShortestPathCost(g, "A", "A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), bellmanford.NegativeCycle, res.Kind)
}

// TestUnknownVertex verifies the error and that the graph is untouched.
func (s *SolverSuite) TestUnknownVertex() {
	g := build(s.T(), "A;B;1;N/A")
	_, err := bellmanford.ShortestPathCost(g, "A", "Q")
	require.ErrorIs(s.T(), err, bellmanford.ErrVertexNotFound)
	_, err = bellmanford.ShortestPathCost(g, "Q", "A")
	require.ErrorIs(s.T(), err, bellmanford.ErrVertexNotFound)
	require.Equal(s.T(), []string{"A", "B"}, g.Vertices())

	res, err := bellmanford.ShortestPathCost(g, "A", "B")
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 1, res.Cost)
}

func (s *SolverSuite) TestNilGraph() {
	_, err := bellmanford.ShortestPathCost(nil, "A", "B")
	require.ErrorIs(s.T(), err, bellmanford.ErrNilGraph)
	_, err = bellmanford.Distances(nil, "A")
	require.ErrorIs(s.T(), err, bellmanford.ErrNilGraph)
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

// TestOverflowGuard covers both overflow directions.
func TestOverflowGuard(t *testing.T) {
	minCost := strconv.FormatInt(math.MinInt64, 10)
	maxCost := strconv.FormatInt(math.MaxInt64, 10)

	t.Run("negative sum is an error", func(t *testing.T) {
		g := build(t, "A;B;"+minCost+";N/A", "B;C;-1;N/A")
		_, err := bellmanford.ShortestPathCost(g, "A", "C")
		require.ErrorIs(t, err, bellmanford.ErrWeightOverflow)
	})

	t.Run("positive sum cannot beat a reached vertex", func(t *testing.T) {
		g := build(t, "A;B;"+maxCost+";N/A", "A;C;5;N/A", "B;C;1;N/A")
		res, err := bellmanford.ShortestPathCost(g, "A", "C")
		require.NoError(t, err)
		require.Equal(t, bellmanford.Result{Kind: bellmanford.Reachable, Cost: 5}, res)
	})

	t.Run("positive sum into an unreached vertex is an error", func(t *testing.T) {
		g := build(t, "A;B;"+maxCost+";N/A", "B;C;1;N/A")
		_, err := bellmanford.ShortestPathCost(g, "A", "C")
		require.ErrorIs(t, err, bellmanford.ErrWeightOverflow)
		_, err = bellmanford.Distances(g, "A")
		require.ErrorIs(t, err, bellmanford.ErrWeightOverflow)
	})

	t.Run("out of range candidate later improved", func(t *testing.T) {
		// Row-major order relaxes B→C (MaxInt64+1) before D→C (2).
		g := build(t, "A;B;"+maxCost+";N/A", "B;C;1;N/A", "A;D;1;N/A", "D;C;1;N/A")
		res, err := bellmanford.ShortestPathCost(g, "A", "C")
		require.NoError(t, err)
		require.Equal(t, bellmanford.Result{Kind: bellmanford.Reachable, Cost: 2}, res)
	})

	t.Run("unaffected vertex still answers", func(t *testing.T) {
		g := build(t, "A;B;"+minCost+";N/A", "B;C;-1;N/A")
		res, err := bellmanford.ShortestPathCost(g, "A", "B")
		require.NoError(t, err)
		require.Equal(t, bellmanford.Result{Kind: bellmanford.Reachable, Cost: math.MinInt64}, res)
	})
}

// TestLargeNegativeCycle checks that cycles whose walks leave the int64 range
// are still classified as negative cycles.
func TestLargeNegativeCycle(t *testing.T) {
	t.Run("two vertices", func(t *testing.T) {
		g := build(t, "A;B;-4000000000000000000;-4000000000000000000")
		res, err := bellmanford.ShortestPathCost(g, "A", "B")
		require.NoError(t, err)
		require.Equal(t, bellmanford.NegativeCycle, res.Kind)
		require.Equal(t, "negative cycle", res.String())
	})

	t.Run("many passes", func(t *testing.T) {
		// 2002 vertices give 2001 passes; the A⇄B cycle runs out of int64
		// range after a few hundred of them.
		lines := []string{"A;B;-10000000000000000;-10000000000000000"}
		for i := 0; i < 1000; i++ {
			lines = append(lines, "x"+strconv.Itoa(i)+";y"+strconv.Itoa(i)+";1;N/A")
		}
		g := build(t, lines...)
		require.Equal(t, 2002, g.VertexCount())

		res, err := bellmanford.ShortestPathCost(g, "A", "B")
		require.NoError(t, err)
		require.Equal(t, bellmanford.NegativeCycle, res.Kind)

		got, err := bellmanford.Distances(g, "A")
		require.NoError(t, err)
		for _, r := range got {
			assert.Equal(t, bellmanford.NegativeCycle, r.Kind)
		}
	})

	t.Run("cycle unreachable from source", func(t *testing.T) {
		g := build(t, "A;B;-4000000000000000000;-4000000000000000000", "C;D;7;N/A")
		res, err := bellmanford.ShortestPathCost(g, "C", "D")
		require.NoError(t, err)
		require.Equal(t, bellmanford.Result{Kind: bellmanford.Reachable, Cost: 7}, res)
	})
}

func TestDistances(t *testing.T) {
	g := build(t, "A;B;1;N/A", "B;C;2;N/A", "A;C;10;N/A", "D;A;1;N/A")
	got, err := bellmanford.Distances(g, "A")
	require.NoError(t, err)
	require.Equal(t, []bellmanford.Result{
		{Kind: bellmanford.Reachable, Cost: 0},
		{Kind: bellmanford.Reachable, Cost: 1},
		{Kind: bellmanford.Reachable, Cost: 3},
		{Kind: bellmanford.Unreachable},
	}, got)

	cyc := build(t, "A;B;1;-2")
	got, err = bellmanford.Distances(cyc, "A")
	require.NoError(t, err)
	for _, r := range got {
		assert.Equal(t, bellmanford.NegativeCycle, r.Kind)
	}
}

// countingSource wraps a Source and counts Edges calls (one per pass + detection).
type countingSource struct {
	bellmanford.Source
	mu    sync.Mutex
	calls int
}

func (c *countingSource) Edges() []digraph.Edge {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.Source.Edges()
}

// TestPassCount verifies exactly V-1 passes by default and fewer with early exit,
// with identical results.
func TestPassCount(t *testing.T) {
	g := build(t, "A;B;1;N/A", "B;C;1;N/A", "C;D;1;N/A", "D;E;1;N/A")

	full := &countingSource{Source: g}
	res, err := bellmanford.ShortestPathCost(full, "A", "E")
	require.NoError(t, err)
	require.EqualValues(t, 4, res.Cost)
	require.Equal(t, g.VertexCount()-1+1, full.calls)

	// Edges are enumerated A→B, B→C, C→D, D→E: in-place relaxation settles the
	// chain in the first pass, so the second pass is the first idle one.
	early := &countingSource{Source: g}
	res2, err := bellmanford.ShortestPathCost(early, "A", "E", bellmanford.WithEarlyExit())
	require.NoError(t, err)
	require.Equal(t, res, res2)
	require.Equal(t, 2+1, early.calls)
}

// TestInPlaceRelaxationOrder verifies updates are visible later in the same pass:
// with a reverse-ordered chain every pass advances one hop only.
func TestInPlaceRelaxationOrder(t *testing.T) {
	// Indices: D=0, C=1, B=2, A=3; edges enumerate D→?, C→D, B→C, A→B (reverse of path).
	g := build(t, "D;C;N/A;1", "C;B;N/A;1", "B;A;N/A;1")
	early := &countingSource{Source: g}
	res, err := bellmanford.ShortestPathCost(early, "A", "D", bellmanford.WithEarlyExit())
	require.NoError(t, err)
	require.EqualValues(t, 3, res.Cost)
	require.Equal(t, 3+1, early.calls, "three passes needed, no idle pass left before V-1")
}

// TestConcurrentQueries runs queries in parallel over one frozen graph.
func TestConcurrentQueries(t *testing.T) {
	g := build(t, "A;B;1;4", "B;C;2;N/A", "A;C;10;1")
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := bellmanford.ShortestPathCost(g, "A", "C")
			if err != nil {
				errs <- err
				return
			}
			if res.Cost != 3 {
				errs <- assert.AnError
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "reachable", bellmanford.Reachable.String())
	require.Equal(t, "Kind(9)", bellmanford.Kind(9).String())
}
