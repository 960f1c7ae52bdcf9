package knapsack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUbDembo(t *testing.T) {
	ref := Item{J: 0, W: 4, P: 5} // eff 1.25
	// pi=10, r=8: 10 + floor(8*5/4) = 10 + 10 = 20
	require.Equal(t, int64(20), ubDembo(ref, 10, 8))
	// r=0 contributes nothing
	require.Equal(t, int64(10), ubDembo(ref, 10, 0))
}

func TestUbDemboRev(t *testing.T) {
	ref := Item{J: 0, W: 4, P: 5}
	// pi=20, r=-3: 20 + ceil(-3*5/4) - ... mirrors the (r*p+1)/w - 1 trick
	got := ubDemboRev(ref, 20, -3)
	require.LessOrEqual(t, got, int64(20))
}

func TestUbDantzigAllItemsFit(t *testing.T) {
	ins, err := NewInstance(100, [][2]int64{{2, 3}, {3, 4}})
	require.NoError(t, err)
	ins.SortFully()
	require.Greater(t, ins.BreakItem(), ins.LastItem())
	require.Equal(t, ins.BreakSolutionProfit(), ubDantzig(ins))
}

func TestUbDantzigFractionalFill(t *testing.T) {
	ins, err := NewInstance(5, [][2]int64{{2, 3}, {3, 4}, {4, 5}, {5, 6}})
	require.NoError(t, err)
	ins.SortFully()
	ub := ubDantzig(ins)
	require.GreaterOrEqual(t, ub, int64(7)) // optimum from spec S1 is 7
}
