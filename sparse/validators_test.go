// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

func TestValidators(t *testing.T) {
	a := MustMatrix(t, 2, 3)
	b := MustMatrix(t, 3, 2)

	require.ErrorIs(t, sparse.ValidateNotNil(nil), sparse.ErrNilMatrix)
	require.NoError(t, sparse.ValidateNotNil(a))

	require.ErrorIs(t, sparse.ValidateSameShape(a, b), sparse.ErrDimensionMismatch)
	require.NoError(t, sparse.ValidateSameShape(a, a.Clone()))

	require.NoError(t, sparse.ValidateMulShape(a, b))
	require.ErrorIs(t, sparse.ValidateMulShape(a, a), sparse.ErrDimensionMismatch)

	require.ErrorIs(t, sparse.ValidateBinarySameShape(a, nil), sparse.ErrNilMatrix)
	require.ErrorIs(t, sparse.ValidateBinaryMul(nil, b), sparse.ErrNilMatrix)
}
