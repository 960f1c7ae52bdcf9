package knapsack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func solveWP(t *testing.T, capacity int64, wp [][2]int64, cfg EngineConfig) Result {
	t.Helper()
	ins, err := NewInstance(capacity, wp)
	require.NoError(t, err)
	res, err := Solve(ins, cfg)
	require.NoError(t, err)
	return res
}

// S1: small instance with a clean optimum.
func TestSolveScenarioS1(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.DPProfitsThreshold = 0 // force the full Balknap path, not the DP-profits fallback
	res := solveWP(t, 5, [][2]int64{{2, 3}, {3, 4}, {4, 5}, {5, 6}}, cfg)
	require.EqualValues(t, 7, res.Profit)
	require.Equal(t, res.LowerBound, res.UpperBound)
	require.ElementsMatch(t, []int64{0, 1}, res.Items)
}

// S2: the canonical Pisinger p08 instance.
func TestSolveScenarioS2Pisinger(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.DPProfitsThreshold = 0
	res := solveWP(t, 165, [][2]int64{
		{23, 92}, {31, 57}, {29, 49}, {44, 68}, {53, 60},
		{38, 43}, {63, 67}, {85, 84}, {89, 87}, {82, 72},
	}, cfg)
	require.EqualValues(t, 309, res.Profit)
	require.Equal(t, res.LowerBound, res.UpperBound)
	require.ElementsMatch(t, []int64{0, 1, 2, 3, 5}, res.Items)
}

// S3: ten identical items, any 5 is optimal; only the profit is checked.
func TestSolveScenarioS3IdenticalItems(t *testing.T) {
	wp := make([][2]int64, 10)
	for i := range wp {
		wp[i] = [2]int64{1, 1}
	}
	cfg := DefaultEngineConfig()
	cfg.DPProfitsThreshold = 0
	res := solveWP(t, 5, wp, cfg)
	require.EqualValues(t, 5, res.Profit)
	require.Len(t, res.Items, 5)
}

// S4: a single item heavier than capacity; the empty selection is optimal.
func TestSolveScenarioS4InfeasibleSingleItem(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.DPProfitsThreshold = 0
	res := solveWP(t, 5, [][2]int64{{10, 10}}, cfg)
	require.EqualValues(t, 0, res.Profit)
	require.Empty(t, res.Items)
}

// S5: every item fits; all are taken.
func TestSolveScenarioS5AllItemsFit(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.DPProfitsThreshold = 0
	res := solveWP(t, 6, [][2]int64{{1, 100}, {2, 100}, {3, 100}}, cfg)
	require.EqualValues(t, 300, res.Profit)
	require.ElementsMatch(t, []int64{0, 1, 2}, res.Items)
}

// S6: a subset-sum instance (profit == weight); solve should find the
// exact half.
func TestSolveScenarioS6SubsetSum(t *testing.T) {
	var wp [][2]int64
	var total int64
	for w := int64(3); len(wp) < 20; w++ {
		wp = append(wp, [2]int64{w, w})
		total += w
	}
	cap := total / 2
	cfg := DefaultEngineConfig()
	cfg.DPProfitsThreshold = 0
	res := solveWP(t, cap, wp, cfg)
	require.LessOrEqual(t, res.Profit, cap)
	require.Equal(t, res.LowerBound, res.UpperBound)
}

// P1 — feasibility: the returned selection never exceeds capacity.
func TestSolveFeasibility(t *testing.T) {
	wp := [][2]int64{{23, 92}, {31, 57}, {29, 49}, {44, 68}, {53, 60}, {38, 43}, {63, 67}}
	cfg := DefaultEngineConfig()
	cfg.DPProfitsThreshold = 0
	res := solveWP(t, 120, wp, cfg)

	var totalWeight int64
	for _, j := range res.Items {
		totalWeight += wp[j][0]
	}
	require.LessOrEqual(t, totalWeight, int64(120))
}

// Solve dispatches to the profit-indexed DP fallback for low-profit-sum
// instances, and both paths must agree on the optimum.
func TestSolveAgreesWithDPProfitsFallback(t *testing.T) {
	wp := [][2]int64{{2, 3}, {3, 4}, {4, 5}, {5, 6}}

	cfgFull := DefaultEngineConfig()
	cfgFull.DPProfitsThreshold = 0
	full := solveWP(t, 5, wp, cfgFull)

	cfgFallback := DefaultEngineConfig()
	cfgFallback.DPProfitsThreshold = 1_000_000
	fallback := solveWP(t, 5, wp, cfgFallback)

	require.Equal(t, full.Profit, fallback.Profit)
}

func TestSolveEmptyInstance(t *testing.T) {
	ins, err := NewInstance(10, nil)
	require.NoError(t, err)
	res, err := Solve(ins, DefaultEngineConfig())
	require.NoError(t, err)
	require.Zero(t, res.Profit)
	require.Empty(t, res.Items)
}
