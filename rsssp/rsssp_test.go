package rsssp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/negsssp/bcf23/config"
	"github.com/negsssp/bcf23/wgraph"
	"github.com/negsssp/bcf23/witness"
)

func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// triangleSCC is the 3-vertex fixture from
// original_source/src/rsssp_test.cc's "minimal example of restricted
// graph": a single negative edge (2->0, reduced weight -1), everything
// else non-negative.
func triangleSCC(t *testing.T) *wgraph.Graph {
	t.Helper()
	g := wgraph.New(3)
	_, err := g.AddEdge(1, 2, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 0, -1)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	g.IsSCC = true
	return g
}

// TestSolve_BaseCaseTriangle exercises the base case directly (kappa forced
// to LowKappaLimit, bypassing the carving recursion entirely) so the result
// is independent of the Monte Carlo sampling RNG: math/rand's algorithm
// differs from the C++ snapshot's mt19937_64, so no fixed seed reproduces
// rsssp_test.cc's "minimal example" trace (whose [1,1,0] result is a
// product of the full recursion's randomized potential updates, not
// reachable from this graph's base case alone). What's checked here is
// that the all-source lazy-Dijkstra fixed point is itself a valid witness.
func TestSolve_BaseCaseTriangle(t *testing.T) {
	g := triangleSCC(t)
	cfg := config.Trivial(1)

	w := solve(g, LowKappaLimit, cfg)

	require.Equal(t, witness.ShortestPathTree, w.State)
	require.True(t, w.Validate(g))
	require.Equal(t, []wgraph.Weight{-1, 0, 0}, w.Dist)
}

// TestSolve_NonSCCGuard mirrors the g.is_scc guard: a graph not marked as
// a single SCC is rejected unconditionally, before any capper spend.
func TestSolve_NonSCCGuard(t *testing.T) {
	g := wgraph.New(2)
	_, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)

	w := Solve(g, config.Trivial(1))
	require.Equal(t, witness.Unknown, w.State)
}

// TestSolve_NegativeCycleExhaustsBudget mirrors
// original_source/src/rsssp_test.cc's "should fail on negative cycle":
// the 3-cycle 0->1->2->0 (weights 0,0,-1) sums to -1, a true negative
// cycle, so no potential update can ever make it restricted-non-negative.
// A budget of 200 is consumed deterministically (independent of any RNG
// seed): get_in_light_vertices draws ceil(320 * ln(N)) samples, one
// capper.Incr per sample, and for N=3 that is already ceil(320*ln(3)) =
// 352 - more than the entire 200-operation budget - so the capper goes
// sticky-failed partway through the very first light-vertex estimate on
// every run, regardless of which vertices the RNG happens to pick.
func TestSolve_NegativeCycleExhaustsBudget(t *testing.T) {
	g := wgraph.New(3)
	_, err := g.AddEdge(0, 1, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 0, -1)
	require.NoError(t, err)
	g.IsSCC = true

	cfg := config.Capped(200, 1)
	w := Solve(g, cfg)

	require.Equal(t, witness.Unknown, w.State)
	require.False(t, w.Validate(g))
	require.True(t, cfg.Capper.Fail())
}

// genPathSCC builds a directed cycle (a path plus a closing edge back to
// the start) over a fixed pseudo-random permutation and edge weights in
// [-1, 100], so the recursion has real work to do. Closing the cycle
// (rather than leaving a plain path, as
// original_source/src/rsssp_test.cc's gen_path does) is required for
// g.IsSCC to be a true statement, which Solve's documented precondition
// assumes the caller has already established.
func genPathSCC(t *testing.T, n int, seed int64) *wgraph.Graph {
	t.Helper()
	g := wgraph.New(n)
	rng := newTestRand(seed)
	order := rng.Perm(n)
	for i := 0; i < n; i++ {
		w := wgraph.Weight(rng.Intn(102) - 1)
		_, err := g.AddEdge(order[i], order[(i+1)%n], w)
		require.NoError(t, err)
	}
	g.IsSCC = true
	return g
}

func TestSolve_CycleGraphSucceedsWithGenerousBudget(t *testing.T) {
	g := genPathSCC(t, 15, 0x123123)
	require.True(t, g.IsRestricted()) // edge weights are sampled from [-1, 100]

	w := Solve(g, config.Trivial(2))

	require.Equal(t, witness.ShortestPathTree, w.State)
	require.True(t, w.Validate(g))
}
