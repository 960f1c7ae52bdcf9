package knapsack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveDPProfitsMatchesBalknapOptimum(t *testing.T) {
	ins, err := NewInstance(5, [][2]int64{{2, 3}, {3, 4}, {4, 5}, {5, 6}})
	require.NoError(t, err)
	ins.SortPartially(128)
	res := SolveDPProfits(ins)
	require.EqualValues(t, 7, res.Profit)
	require.ElementsMatch(t, []int64{0, 1}, res.Items)
}

func TestSolveDPProfitsInfeasible(t *testing.T) {
	ins, err := NewInstance(5, [][2]int64{{10, 10}})
	require.NoError(t, err)
	res := SolveDPProfits(ins)
	require.EqualValues(t, 0, res.Profit)
	require.Empty(t, res.Items)
}

func TestSolveDPProfitsAllItemsFit(t *testing.T) {
	ins, err := NewInstance(6, [][2]int64{{1, 100}, {2, 100}, {3, 100}})
	require.NoError(t, err)
	res := SolveDPProfits(ins)
	require.EqualValues(t, 300, res.Profit)
	require.ElementsMatch(t, []int64{0, 1, 2}, res.Items)
}
