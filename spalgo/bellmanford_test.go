package spalgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/negsssp/bcf23/spalgo"
	"github.com/negsssp/bcf23/wgraph"
)

// chainGraph builds 3 -> 2 -> 1 -> 0, each edge weight -1, matching
// original_source/src/spalgo_test.cc's "compare bellman ford and lazy
// dijkstra" fixture.
func chainGraph(t *testing.T) *wgraph.Graph {
	t.Helper()
	g := wgraph.New(4)
	_, err := g.AddEdge(1, 0, -1)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 1, -1)
	require.NoError(t, err)
	_, err = g.AddEdge(3, 2, -1)
	require.NoError(t, err)
	return g
}

func TestBellmanFordSingleSource_Chain(t *testing.T) {
	g := chainGraph(t)
	dist := spalgo.BellmanFordSingleSource(g, 3)
	require.Equal(t, []wgraph.Weight{-3, -2, -1, 0}, dist)
}

func TestBellmanFordAllSource_NonPositive(t *testing.T) {
	g := chainGraph(t)
	dist := spalgo.BellmanFordAllSource(g)
	for _, d := range dist {
		require.LessOrEqual(t, d, wgraph.Weight(0))
	}
}

func TestBellmanFordMultiSource_Unreachable(t *testing.T) {
	g := chainGraph(t)
	dist := spalgo.BellmanFordSingleSource(g, 0)
	require.Equal(t, wgraph.Weight(0), dist[0])
	for _, v := range []int{1, 2, 3} {
		require.Equal(t, wgraph.Inf, dist[v])
	}
}
