package capper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/negsssp/bcf23/capper"
)

func TestUnbounded_NeverFails(t *testing.T) {
	c := capper.NewUnbounded()
	require.True(t, c.Incr(1))
	require.True(t, c.Incr(1_000_000))
	require.False(t, c.Fail())
}

func TestBounded_LastMercy(t *testing.T) {
	// Grounded on original_source/src/capper_test.cc: each Incr call is
	// checked against the budget *before* being applied ("last mercy"),
	// so the call that pushes the counter past budget still succeeds.
	c := capper.NewBounded(5)
	require.True(t, c.Incr(2)) // 0 <= 5, counter <- 2
	require.True(t, c.Incr(3)) // 2 <= 5, counter <- 5
	require.True(t, c.Incr(4)) // 5 <= 5, counter <- 9
	require.False(t, c.Incr(0))
}

func TestBounded_FailIsSticky(t *testing.T) {
	c := capper.NewBounded(1)
	require.True(t, c.Incr(2))
	require.True(t, c.Fail())
	// Further Incr calls cannot un-fail the capper, even with amount 0.
	require.True(t, c.Fail())
	require.False(t, c.Incr(0))
	require.True(t, c.Fail())
}

func TestBounded_FailDoesNotAdvanceCounter(t *testing.T) {
	c := capper.NewBounded(10)
	require.True(t, c.Incr(3))
	require.False(t, c.Fail())
	require.False(t, c.Fail())
	// Counter still at 3; one more Incr(7) should land exactly at budget.
	require.True(t, c.Incr(7))
	require.False(t, c.Fail())
}
