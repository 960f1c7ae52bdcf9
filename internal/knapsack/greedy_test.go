package knapsack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGreedyMatchesBreakSolutionWhenNoImprovement(t *testing.T) {
	// S4 from the spec: a single item heavier than capacity.
	ins, err := NewInstance(5, [][2]int64{{10, 10}})
	require.NoError(t, err)
	ins.SortFully()
	sol, profit := Greedy(ins)
	require.EqualValues(t, 0, profit)
	for _, in := range sol {
		require.False(t, in)
	}
}

func TestGreedyForwardAdd(t *testing.T) {
	// Break takes item 0 (w=5,p=10) and stops at item 1 (w=5,p=9, doesn't
	// fit in the remaining capacity of 2); item 2 (w=2,p=3) is smaller and
	// fits the leftover capacity, so the forward phase should add it.
	ins, err := NewInstance(7, [][2]int64{{5, 10}, {5, 9}, {2, 3}})
	require.NoError(t, err)
	ins.SortFully()
	sol, profit := Greedy(ins)
	require.EqualValues(t, 13, profit)
	require.True(t, sol[0])
	require.False(t, sol[1])
	require.True(t, sol[2])
}

func TestGreedyBackwardSwap(t *testing.T) {
	// Break takes item 0 (w=3,p=9, high efficiency) and stops at item 1
	// (w=10,p=10, doesn't fit in the remaining capacity of 9); removing
	// item 0 frees enough capacity for item 1, and the swap gains 1.
	ins, err := NewInstance(12, [][2]int64{{3, 9}, {10, 10}})
	require.NoError(t, err)
	ins.SortFully()
	sol, profit := Greedy(ins)
	require.EqualValues(t, 10, profit)
	require.False(t, sol[0])
	require.True(t, sol[1])
}

func TestGreedyProfitNeverExceedsDantzig(t *testing.T) {
	ins, err := NewInstance(165, [][2]int64{
		{23, 92}, {31, 57}, {29, 49}, {44, 68}, {53, 60},
		{38, 43}, {63, 67}, {85, 84}, {89, 87}, {82, 72},
	})
	require.NoError(t, err)
	ins.SortFully()
	_, profit := Greedy(ins)
	require.LessOrEqual(t, profit, ubDantzig(ins))
}
