// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for kernel tests.
//   • Keep random data small enough that int64 products never overflow.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

// MustMatrix builds a rows×cols matrix from triples or fails the test.
func MustMatrix(t *testing.T, rows, cols int, entries ...sparse.Entry) *sparse.Matrix {
	t.Helper()
	m, err := sparse.FromEntries(rows, cols, entries...)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *sparse.Matrix, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// e is a terse Entry literal for tables.
func e(row, col int, v int64) sparse.Entry {
	return sparse.Entry{Row: row, Col: col, Value: v}
}

// RandomMatrix fills roughly density·rows·cols cells with values in [-9, 9].
// Zero draws are skipped so the result has no explicit zeros.
func RandomMatrix(t *testing.T, rng *rand.Rand, rows, cols int, density float64) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() >= density {
				continue
			}
			if v := int64(rng.Intn(19) - 9); v != 0 {
				require.NoError(t, m.Set(i, j, v))
			}
		}
	}

	return m
}

// scenarioA is the 2×2 matrix [[1,2],[3,4]].
func scenarioA(t *testing.T) *sparse.Matrix {
	return MustMatrix(t, 2, 2, e(0, 0, 1), e(0, 1, 2), e(1, 0, 3), e(1, 1, 4))
}

// identity2 is the 2×2 identity as explicit triples.
func identity2(t *testing.T) *sparse.Matrix {
	return MustMatrix(t, 2, 2, e(0, 0, 1), e(1, 1, 1))
}
