package spalgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/negsssp/bcf23/capper"
	"github.com/negsssp/bcf23/spalgo"
	"github.com/negsssp/bcf23/wgraph"
)

func TestSingleSource_NonNegativeChain(t *testing.T) {
	g := wgraph.New(4)
	_, err := g.AddEdge(0, 1, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 3)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 2, 10)
	require.NoError(t, err)

	dist := spalgo.SingleSource(g, 0, false, capper.NewUnbounded())

	require.Equal(t, []wgraph.Weight{0, 2, 5, wgraph.Inf}, dist)
}

func TestSingleSource_PanicsOnNegativeReducedWeight(t *testing.T) {
	g := wgraph.New(2)
	_, err := g.AddEdge(0, 1, -1)
	require.NoError(t, err)

	require.Panics(t, func() {
		spalgo.SingleSource(g, 0, false, capper.NewUnbounded())
	})
}

func TestMultiSource_TwoSeeds(t *testing.T) {
	g := wgraph.New(3)
	_, err := g.AddEdge(0, 2, 5)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 1)
	require.NoError(t, err)

	dist := spalgo.MultiSource(g, []int{0, 1}, false, capper.NewUnbounded())

	require.Equal(t, []wgraph.Weight{0, 0, 1}, dist)
}
