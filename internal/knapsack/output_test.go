package knapsack

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputUpdateLowerBoundMonotone(t *testing.T) {
	o := NewOutput(10, 50)
	require.False(t, o.UpdateLowerBound(5, nil))
	lb, _ := o.Bounds()
	require.EqualValues(t, 10, lb)

	require.True(t, o.UpdateLowerBound(20, []int8{1, 0, 1}))
	lb, _ = o.Bounds()
	require.EqualValues(t, 20, lb)
	require.Equal(t, []int8{1, 0, 1}, o.Solution())
}

func TestOutputUpdateUpperBoundMonotone(t *testing.T) {
	o := NewOutput(10, 50)
	require.False(t, o.UpdateUpperBound(60))
	_, ub := o.Bounds()
	require.EqualValues(t, 50, ub)

	require.True(t, o.UpdateUpperBound(40))
	_, ub = o.Bounds()
	require.EqualValues(t, 40, ub)
}

func TestOutputConverged(t *testing.T) {
	o := NewOutput(10, 50)
	require.False(t, o.Converged())
	o.UpdateLowerBound(50, nil)
	require.True(t, o.Converged())
}

func TestOutputSolutionReturnsCopy(t *testing.T) {
	o := NewOutput(0, 100)
	o.UpdateLowerBound(1, []int8{1, 1})
	s := o.Solution()
	s[0] = 0
	require.Equal(t, []int8{1, 1}, o.Solution())
}

func TestOutputSolutionNilUntilSet(t *testing.T) {
	o := NewOutput(0, 100)
	require.Nil(t, o.Solution())
}

// Concurrent racing writers must never regress either bound.
func TestOutputConcurrentUpdatesStayMonotone(t *testing.T) {
	o := NewOutput(0, 1000)
	var wg sync.WaitGroup
	for i := int64(1); i <= 100; i++ {
		wg.Add(2)
		go func(v int64) {
			defer wg.Done()
			o.UpdateLowerBound(v, nil)
		}(i)
		go func(v int64) {
			defer wg.Done()
			o.UpdateUpperBound(1000 - v)
		}(i)
	}
	wg.Wait()
	lb, ub := o.Bounds()
	require.EqualValues(t, 100, lb)
	require.EqualValues(t, 900, ub)
}
