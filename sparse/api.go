// SPDX-License-Identifier: MIT
// Package sparse - public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Each facade delegates to the canonical kernel; no loop duplication.

package sparse

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (ones on the diagonal, nothing stored elsewhere).
// Complexity: O(n).
func NewIdentity(n int) (*Matrix, error) {
	I, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.entries[Key{Row: i, Col: i}] = 1
	}

	return I, nil
}

// ZerosLike returns an empty matrix with the same shape as m.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf("ZerosLike", err)
	}

	return newMatrix(m.rows, m.cols, 0), nil
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: a + b.
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: a − b.
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: a × b.
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m *Matrix) (*Matrix, error) { return Transpose(m) }
