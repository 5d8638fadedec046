// SPDX-License-Identifier: MIT

// Package sparse - arithmetic kernels.
//
// Purpose:
//   - Element-wise addition and subtraction, matrix multiplication, transpose,
//     scalar scaling and the Hadamard product.
//   - All kernels validate fail-fast, never mutate their operands and return
//     a freshly allocated, zero-suppressed result.

package sparse

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
)

// sparseErrorf wraps an underlying error with the given op tag.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ewUnion applies f to every cell explicitly stored in a or in b and keeps
// the non-zero results.
//
// Implementation:
//   - Stage 1: allocate the result with room for |a|+|b| entries.
//   - Stage 2: walk a's keys, pairing each with b's value (0 if absent).
//   - Stage 3: walk b's keys not already seen in a, pairing with 0.
//
// Inputs:
//   - a, b: validated, non-nil operands of the same shape.
//   - f: cell combiner (sum, difference).
//
// Returns:
//   - *Matrix: fresh result; cells absent from both operands are never visited.
//
// Complexity:
//   - Time O(|a| + |b|), Space O(|a| + |b|).
func ewUnion(a, b *Matrix, f func(av, bv int64) int64) *Matrix {
	// Stage 1: Allocate result (shape copied from a; b is the same shape).
	res := newMatrix(a.rows, a.cols, len(a.entries)+len(b.entries))

	// Stage 2: every key of a, paired with b's value (0 if absent).
	for k, av := range a.entries {
		if v := f(av, b.entries[k]); v != 0 { // zero-suppression
			res.entries[k] = v
		}
	}
	// Stage 3: keys present only in b.
	for k, bv := range b.entries {
		if _, seen := a.entries[k]; seen {
			continue // already combined in Stage 2
		}
		if v := f(0, bv); v != 0 {
			res.entries[k] = v
		}
	}

	return res
}

// Add returns a new Matrix containing the element-wise sum a + b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): walk the union of explicit keys, summing a(r,c)+b(r,c).
// Stage 3 (Finalize): zero sums are dropped, never stored.
//
// Inputs:
//   - a, b: operands of identical shape.
//
// Returns:
//   - *Matrix: a + b with no zero-valued entries.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
//
// Complexity: O(|a| + |b|) time and memory.
func Add(a, b *Matrix) (*Matrix, error) {
	// Stage 1: Validate inputs non-nil and shapes equal.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, sparseErrorf(opAdd, err)
	}

	// Stage 2 & 3: union walk with zero-suppression.
	return ewUnion(a, b, func(av, bv int64) int64 { return av + bv }), nil
}

// Sub returns a − b with the same contract as Add.
// Complexity: O(|a| + |b|) time and memory.
func Sub(a, b *Matrix) (*Matrix, error) {
	// Stage 1: Validate inputs non-nil and shapes equal.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, sparseErrorf(opSub, err)
	}

	// Stage 2 & 3: union walk with zero-suppression.
	return ewUnion(a, b, func(av, bv int64) int64 { return av - bv }), nil
}

// Mul performs matrix multiplication a × b with shape (a.Rows, b.Cols).
// Stage 1 (Validate): nil-checks and a.Cols == b.Rows.
// Stage 2 (Prepare): bucket the non-zero entries of both operands by row.
// Stage 3 (Execute): for every populated row r of a, scatter
// a(r,k)·b(k,c) into a per-row accumulator keyed by c.
// Stage 4 (Finalize): copy non-zero accumulator cells into the result.
//
// Only rows populated in a and columns populated in b can receive a value;
// the result equals Σ_k a(r,k)·b(k,c) for every (r,c).
//
// Inputs:
//   - a: r×n operand; b: n×c operand.
//
// Returns:
//   - *Matrix: r×c product with no zero-valued entries.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity: O(Σ_(r,k)∈a |row_k(b)|) time, O(|a| + |b| + nnz(result)) memory.
func Mul(a, b *Matrix) (*Matrix, error) {
	// Stage 1: Validate inputs
	if err := ValidateBinaryMul(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	// Stage 2: Allocate result and bucket operands by row.
	res := newMatrix(a.rows, b.cols, 0)
	aRows := a.rowBuckets()
	bRows := b.rowBuckets()
	if len(aRows) == 0 || len(bRows) == 0 {
		return res, nil // an all-absent operand gives an empty product
	}

	// Stage 3: row-by-row scatter into acc (column → partial sum).
	acc := make(map[int]int64)
	for r, row := range aRows {
		clear(acc) // reuse the accumulator across rows
		for _, ae := range row {
			for _, be := range bRows[ae.Col] { // row k == ae.Col of b
				acc[be.Col] += ae.Value * be.Value
			}
		}
		// Stage 4: keep non-zero sums only.
		for c, v := range acc {
			if v != 0 {
				res.entries[Key{Row: r, Col: c}] = v
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ, dropping any explicit zeros of m.
// Complexity: O(|m|).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}

	res := newMatrix(m.cols, m.rows, len(m.entries))
	for k, v := range m.entries {
		if v != 0 {
			res.entries[Key{Row: k.Col, Col: k.Row}] = v
		}
	}

	return res, nil
}

// Scale returns alpha·m. Scaling by 0 yields an empty matrix of the same shape.
// Complexity: O(|m|).
func Scale(m *Matrix, alpha int64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opScale, err)
	}

	res := newMatrix(m.rows, m.cols, len(m.entries))
	if alpha == 0 {
		return res, nil
	}
	for k, v := range m.entries {
		if v != 0 {
			res.entries[k] = alpha * v
		}
	}

	return res, nil
}

// Hadamard returns the element-wise product a ⊙ b.
// Only keys stored in both operands can be non-zero, so the walk covers the
// smaller operand and looks keys up in the larger one.
// Complexity: O(min(|a|, |b|)).
func Hadamard(a, b *Matrix) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, sparseErrorf(opHadamard, err)
	}

	small, large := a, b
	if len(large.entries) < len(small.entries) {
		small, large = large, small
	}
	res := newMatrix(a.rows, a.cols, len(small.entries))
	for k, sv := range small.entries {
		if v := sv * large.entries[k]; v != 0 {
			res.entries[k] = v
		}
	}

	return res, nil
}
