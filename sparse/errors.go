// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every algorithm returns one of these sentinels (optionally wrapped with an
// operation tag) and tests match them with errors.Is. No public function
// panics on user-triggered error conditions.

package sparse

import "errors"

// Every message is prefixed with "sparse: ..." so log lines are easy to grep.
// Kernels wrap with sparseErrorf(op, err); callers still use errors.Is.

var (
	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub
	// on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At and Set return it instead of panicking.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrInvalidDimensions indicates a negative shape, or an empty shape where
	// the consumer (gonum) cannot represent one.
	ErrInvalidDimensions = errors.New("sparse: invalid dimensions")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNonInteger is returned by FromDense when a cell is not an exact,
	// finite integer.
	ErrNonInteger = errors.New("sparse: non-integer value")
)
