// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToDense   = "ToDense"
	ctxFromDense = "FromDense"
)

// ToDense materializes m as a gonum dense matrix.
// gonum cannot represent an empty shape, so a 0×N or N×0 matrix yields
// ErrInvalidDimensions.
// Complexity: O(rows·cols) memory, O(|m|) writes.
func ToDense(m *Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(ctxToDense, err)
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, sparseErrorf(ctxToDense, ErrInvalidDimensions)
	}

	d := mat.NewDense(m.rows, m.cols, nil)
	for k, v := range m.entries {
		d.Set(k.Row, k.Col, float64(v))
	}

	return d, nil
}

// FromDense converts any gonum matrix holding integral values into a Matrix.
// Zero cells are not stored.
//
// Errors:
//   - ErrNonInteger for NaN, ±Inf, fractional values, or values outside int64.
func FromDense(d mat.Matrix) (*Matrix, error) {
	if d == nil {
		return nil, sparseErrorf(ctxFromDense, ErrNilMatrix)
	}

	r, c := d.Dims()
	res := newMatrix(r, c, 0)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := d.At(i, j)
			if v == 0 {
				continue
			}
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v ||
				v < math.MinInt64 || v >= math.MaxInt64 {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxFromDense, i, j, ErrNonInteger)
			}
			res.entries[Key{Row: i, Col: j}] = int64(v)
		}
	}

	return res, nil
}
