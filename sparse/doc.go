// SPDX-License-Identifier: MIT

// Package sparse provides an integer sparse matrix and the arithmetic
// kernels that operate on it.
//
// What & Why:
//
//	A Matrix stores only its explicit entries, keyed by a composite
//	(row, col) Key, and reports an implicit 0 everywhere else. Add, Sub and
//	Mul never touch cells that are absent from both operands, so their cost
//	follows the number of stored entries rather than rows×cols.
//
// Zero policy:
//
//	At treats an absent cell and an explicitly stored 0 identically.
//	Set stores whatever it is given (an explicit 0 included), while every
//	kernel suppresses zero results: a Matrix returned by Add, Sub, Mul,
//	Scale, Transpose or Hadamard never contains a zero-valued entry.
//
// Errors:
//
//	All failures are sentinel errors (ErrDimensionMismatch, ErrOutOfRange,
//	...) wrapped with the operation name; match them with errors.Is.
//
// Complexity:
//
//	At/Set: O(1) average. Add/Sub: O(|A|+|B|). Mul: O(Σ_r Σ_(r,k)∈A |row_k(B)|).
package sparse
