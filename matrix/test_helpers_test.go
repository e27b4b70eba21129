// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the sparse kernels.
//   - Provide a gonum dense oracle for product checks.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spmat/matrix"
)

// mustSparse builds a rows×cols matrix from entries (Set order) or fails the test.
func mustSparse(t testing.TB, rows, cols int, entries ...matrix.Entry) *matrix.Sparse {
	t.Helper()
	m, err := matrix.FromEntries(rows, cols, entries)
	require.NoError(t, err)

	return m
}

// mustDenseFill builds a sparse matrix from a dense row-major literal (zeros skipped).
func mustDenseFill(t testing.TB, rows, cols int, vals ...float64) *matrix.Sparse {
	t.Helper()
	require.Len(t, vals, rows*cols)
	m, err := matrix.NewSparse(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, vals[i*cols+j]))
		}
	}

	return m
}

// randomSparse fills about perRow entries per row with values in [-1,1),
// inserted in random (not sorted) order. Deterministic for a seed.
func randomSparse(t testing.TB, rows, cols, perRow int, seed int64) *matrix.Sparse {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewSparse(rows, cols)
	require.NoError(t, err)
	for n := 0; n < rows*perRow; n++ {
		i, j := rng.Intn(rows), rng.Intn(cols)
		require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
	}

	return m
}

// toDense converts m into a gonum dense matrix of its declared shape.
func toDense(m *matrix.Sparse) *mat.Dense {
	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	m.Range(func(e matrix.Entry) bool {
		d.Set(e.Row, e.Col, e.Value)

		return true
	})

	return d
}
