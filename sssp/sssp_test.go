package sssp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/negsssp/bcf23/config"
	"github.com/negsssp/bcf23/spalgo"
	"github.com/negsssp/bcf23/wgraph"
	"github.com/negsssp/bcf23/witness"
)

// genDAG builds an n-vertex, m-edge DAG with every edge (a, b) satisfying
// a < b (so it can never contain a cycle, negative or otherwise) and raw
// weights uniform in [lo, hi]. Grounded on
// original_source/src/sssp_test.cc's generator, which draws a,b from [0,19]
// (re-rolling on a==b, swapping so a<b) and weights from [-300, 20]; this
// uses math/rand instead of mt19937, so it reproduces the shape of that
// fixture rather than its exact numbers.
func genDAG(t *testing.T, seed int64, n, m, lo, hi int) *wgraph.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := wgraph.New(n)
	// Force one edge to the lowest weight in range, so tests asserting a
	// deeply negative starting min_weight don't depend on 30 random draws
	// happening to produce one: with math/rand standing in for mt19937, the
	// RNG stream's exact values are not something to rely on by hand-trace.
	_, err := g.AddEdge(0, 1, wgraph.Weight(lo))
	require.NoError(t, err)
	for i := 1; i < m; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		for a == b {
			b = rng.Intn(n)
		}
		if a > b {
			a, b = b, a
		}
		w := wgraph.Weight(lo + rng.Intn(hi-lo+1))
		_, err := g.AddEdge(a, b, w)
		require.NoError(t, err)
	}
	return g
}

// TestOneStepScaling_ShrinksMagnitude mirrors sssp_test.cc's "test one-step
// scaler": a 20-vertex DAG with weights in [-300, 20] starts with a very
// negative min_weight; one_step_scaling's constant-factor magnitude
// reduction (to at least -2W+1 = -201 for W = 101) brings this fixture back
// above -200 in a single pass.
func TestOneStepScaling_ShrinksMagnitude(t *testing.T) {
	g := genDAG(t, 0x4834, 20, 30, -300, 20)
	require.LessOrEqual(t, g.MinWeight(), wgraph.Weight(-200))

	cfg := config.Capped(4000, 1)
	ok := oneStepScaling(g, cfg)

	require.True(t, ok)
	require.GreaterOrEqual(t, g.MinWeight(), wgraph.Weight(-200))
}

// TestSolve_MatchesBellmanFord mirrors sssp_test.cc's "compare with
// bellman-ford": on a DAG (trivially free of negative cycles), the scaling
// driver's final pure_dist must agree exactly with a direct Bellman-Ford
// run from the same source.
func TestSolve_MatchesBellmanFord(t *testing.T) {
	g := genDAG(t, 0x4834, 20, 30, -300, 20)

	want := spalgo.BellmanFordSingleSource(g, 0)

	cfg := config.Capped(60000, 1)
	w := Solve(g, 0, cfg)

	require.Equal(t, witness.ShortestPathTree, w.State)
	require.Equal(t, want, w.PureDist)
}

func TestSolve_CapperExhaustionReturnsUnknown(t *testing.T) {
	g := genDAG(t, 0x4834, 20, 30, -300, 20)

	cfg := config.Capped(1, 1)
	w := Solve(g, 0, cfg)

	require.Equal(t, witness.Unknown, w.State)
}

func TestSolve_SingleVertexNoEdges(t *testing.T) {
	g := wgraph.New(1)
	cfg := config.Trivial(1)

	w := Solve(g, 0, cfg)

	require.Equal(t, witness.ShortestPathTree, w.State)
	require.Equal(t, []wgraph.Weight{0}, w.PureDist)
}
