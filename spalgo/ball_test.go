package spalgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/negsssp/bcf23/capper"
	"github.com/negsssp/bcf23/spalgo"
	"github.com/negsssp/bcf23/wgraph"
)

func TestBallAndBoundary_Star(t *testing.T) {
	g := wgraph.New(4)
	e01, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	e02, err := g.AddEdge(0, 2, 2)
	require.NoError(t, err)
	e03, err := g.AddEdge(0, 3, 3)
	require.NoError(t, err)

	ball, boundary := spalgo.BallAndBoundary(g, 0, 2, capper.NewUnbounded())

	require.ElementsMatch(t, []int{0, 1, 2}, ball)
	require.ElementsMatch(t, []int{e03}, boundary)
	_ = e01
	_ = e02
}

func TestBallAndBoundary_ZeroRadiusOnlySource(t *testing.T) {
	g := wgraph.New(2)
	_, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)

	ball, boundary := spalgo.BallAndBoundary(g, 0, 0, capper.NewUnbounded())
	require.Equal(t, []int{0}, ball)
	require.Len(t, boundary, 1)
}

func TestBallAndBoundary_CapperFailReturnsEmpty(t *testing.T) {
	g := wgraph.New(2)
	_, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)

	c := capper.NewBounded(0)
	require.True(t, c.Incr(1)) // last-mercy: counter(0) <= budget(0) still allows one op
	require.True(t, c.Fail())  // now over budget, and stays over budget

	ball, boundary := spalgo.BallAndBoundary(g, 0, 5, c)
	require.Nil(t, ball)
	require.Nil(t, boundary)
}
