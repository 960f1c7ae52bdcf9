package knapsack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartSolFactoryWindowSelection(t *testing.T) {
	// Window smaller than size: whole range used.
	f := NewPartSolFactory(64, 2, 0, 3)
	require.Equal(t, 0, f.X1())
	require.Equal(t, 3, f.X2())

	// b close to f: window flush left.
	f = NewPartSolFactory(4, 1, 0, 20)
	require.Equal(t, 0, f.X1())
	require.Equal(t, 3, f.X2())

	// b close to l: window flush right.
	f = NewPartSolFactory(4, 19, 0, 20)
	require.Equal(t, 17, f.X1())
	require.Equal(t, 20, f.X2())

	// b in the middle: symmetric window.
	f = NewPartSolFactory(4, 10, 0, 20)
	require.Equal(t, 8, f.X1())
	require.Equal(t, 11, f.X2())
}

func TestPartSolAddRemoveContainsRoundTrip(t *testing.T) {
	f := NewPartSolFactory(8, 4, 0, 7)
	var s PartSol

	require.False(t, f.Contains(s, 3))
	s = f.Add(s, 3)
	require.True(t, f.Contains(s, 3))

	s2 := f.Remove(s, 3)
	require.False(t, f.Contains(s2, 3))
	s3 := f.Add(s2, 3)
	require.Equal(t, s, s3)
}

func TestPartSolToggleIsInvolution(t *testing.T) {
	f := NewPartSolFactory(8, 4, 0, 7)
	var s PartSol = 0b10110
	toggled := f.Toggle(s, 2)
	back := f.Toggle(toggled, 2)
	require.Equal(t, s, back)
}

func TestPartSolOutsideWindowIsNoOp(t *testing.T) {
	f := NewPartSolFactory(4, 10, 0, 20)
	var s PartSol = 0xFF
	require.False(t, f.Contains(s, 0))
	require.Equal(t, s, f.Add(s, 0))
	require.Equal(t, s, f.Remove(s, 0))
	require.Equal(t, s, f.Toggle(s, 0))
}

func TestPartSolInitBreak(t *testing.T) {
	f := NewPartSolFactory(8, 4, 2, 9)
	s := f.InitBreak()
	for i := f.X1(); i < f.b; i++ {
		require.True(t, f.Contains(s, i), "position %d should be included in break solution", i)
	}
	require.False(t, f.Contains(s, f.b))
}

func TestToAssignmentVector(t *testing.T) {
	f := NewPartSolFactory(4, 10, 0, 20)
	var s PartSol
	s = f.Add(s, 9)
	vec := f.ToAssignment(s, 21)
	for i, v := range vec {
		switch {
		case i < f.X1() || i > f.X2():
			require.EqualValues(t, -1, v, "position %d is outside the window", i)
		case i == 9:
			require.EqualValues(t, 1, v)
		default:
			require.EqualValues(t, 0, v)
		}
	}
}
