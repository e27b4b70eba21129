// Package matrix_test contains tests for comparison and filtering.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spmat/matrix"
)

// TestEqualMerged covers order independence, tolerance, coordinate and shape checks.
func TestEqualMerged(t *testing.T) {
	a := mustSparse(t, 2, 2,
		matrix.Entry{Row: 0, Col: 0, Value: 1},
		matrix.Entry{Row: 1, Col: 1, Value: 2},
	)
	b := mustSparse(t, 2, 2,
		matrix.Entry{Row: 1, Col: 1, Value: 2 + 1e-9}, // different order, tiny delta
		matrix.Entry{Row: 0, Col: 0, Value: 1},
	)

	require.True(t, matrix.Equal(a, b, matrix.DefaultTolerance))
	require.True(t, matrix.AllClose(a, b))
	require.True(t, matrix.Equal(a, b, -matrix.DefaultTolerance)) // |tol|
	require.False(t, matrix.Equal(a, b, 1e-12))                   // too strict

	c := mustSparse(t, 2, 2,
		matrix.Entry{Row: 0, Col: 0, Value: 1},
		matrix.Entry{Row: 1, Col: 0, Value: 2}, // same count, other coordinate
	)
	require.False(t, matrix.Equal(a, c, 1))

	d := mustSparse(t, 3, 2,
		matrix.Entry{Row: 0, Col: 0, Value: 1},
		matrix.Entry{Row: 1, Col: 1, Value: 2},
	)
	require.False(t, matrix.Equal(a, d, 1)) // shape differs

	require.True(t, matrix.Equal(nil, nil, 0))
	require.False(t, matrix.Equal(a, nil, 0))
}

// TestEqualNaN ensures NaN never compares equal.
func TestEqualNaN(t *testing.T) {
	a, err := matrix.NewSparse(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, math.NaN()))

	require.False(t, matrix.Equal(a, a.Clone(), 1))
}

// TestEqualOrdered checks positional comparison.
func TestEqualOrdered(t *testing.T) {
	x, err := matrix.TripletsOf(2, 2, []matrix.Entry{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 2},
	})
	require.NoError(t, err)
	y, err := matrix.TripletsOf(2, 2, []matrix.Entry{
		{Row: 1, Col: 1, Value: 2},
		{Row: 0, Col: 0, Value: 1},
	})
	require.NoError(t, err)

	require.True(t, matrix.EqualOrdered(x, x.Clone(), 0))
	require.False(t, matrix.EqualOrdered(x, y, 1)) // same multiset, other order

	short, err := matrix.TripletsOf(2, 2, x.Head(1))
	require.NoError(t, err)
	require.False(t, matrix.EqualOrdered(x, short, 1)) // length differs

	near, err := matrix.ScaleTriplets(x, 1+1e-9)
	require.NoError(t, err)
	require.True(t, matrix.EqualOrdered(x, near, matrix.DefaultTolerance))
	require.False(t, matrix.EqualOrdered(x, nil, 1))
}

// TestFilterIdempotent checks Filter(Filter(M,t),t) == Filter(M,t).
func TestFilterIdempotent(t *testing.T) {
	m := mustSparse(t, 3, 3,
		matrix.Entry{Row: 0, Col: 0, Value: 1},
		matrix.Entry{Row: 0, Col: 1, Value: 1e-4},
		matrix.Entry{Row: 2, Col: 2, Value: -1e-4},
		matrix.Entry{Row: 1, Col: 2, Value: -0.5},
	)

	once, err := matrix.Filter(m, 1e-3)
	require.NoError(t, err)
	require.Equal(t, []matrix.Entry{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 2, Value: -0.5},
	}, once.Entries())
	require.Equal(t, 1e-3, once.Threshold())

	twice, err := matrix.Filter(once, 1e-3)
	require.NoError(t, err)
	require.Equal(t, once.Entries(), twice.Entries())
	require.Equal(t, 4, m.NNZ()) // input untouched

	_, err = matrix.Filter(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
