// SPDX-License-Identifier: MIT

// Package sparse - Matrix storage (composite-key map) & safe accessors.
//
// Purpose:
//   - Store only explicit entries in a single map keyed by Key{Row, Col}.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every observable iteration deterministic (row-major snapshots, never raw map order).
//
// Complexity quicksheet:
//   - New: O(1); At/Set: O(1) average; Clone: O(nnz); Entries: O(nnz log nnz).

package sparse

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"          // method tag used in error wrappers
	ctxSet         = "Set"         // method tag used in error wrappers
	ctxNew         = "New"         // ctor tag
	ctxFromEntries = "FromEntries" // ctor tag
)

// matrixErrorf wraps an error with the method name and the offending coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an integer sparse matrix.
//   - rows, cols hold the logical shape (both ≥ 0).
//   - entries holds explicit cells only; an absent key reads as 0.
//
// A Matrix returned by a kernel is never mutated by the package again; callers
// that want to edit one should Clone it first.
type Matrix struct {
	rows, cols int
	entries    map[Key]int64
}

var _ fmt.Stringer = (*Matrix)(nil)

// New returns an empty rows×cols matrix.
// A zero-sized shape (0×N, N×0) is legal; a negative one is ErrInvalidDimensions.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}

	return newMatrix(rows, cols, 0), nil
}

// newMatrix is the unchecked constructor used by kernels once shapes are validated.
func newMatrix(rows, cols, capacity int) *Matrix {
	return &Matrix{
		rows:    rows,
		cols:    cols,
		entries: make(map[Key]int64, capacity),
	}
}

// FromEntries builds a rows×cols matrix from explicit triples.
// Later entries overwrite earlier ones with the same coordinates.
//
// Errors:
//   - ErrInvalidDimensions for a negative shape.
//   - ErrOutOfRange when any entry falls outside the shape.
func FromEntries(rows, cols int, entries ...Entry) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromEntries, err)
	}
	for _, e := range entries {
		if err = m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxFromEntries, err)
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// inRange reports whether (row, col) addresses a cell of m.
func (m *Matrix) inRange(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// At returns the value at (row, col).
// An absent cell and an explicitly stored 0 both read as 0.
//
// Errors:
//   - ErrOutOfRange when the coordinates are outside the shape.
//
// Complexity: O(1) average.
func (m *Matrix) At(row, col int) (int64, error) {
	if !m.inRange(row, col) {
		return 0, matrixErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.entries[Key{Row: row, Col: col}], nil
}

// Set stores v at (row, col), overwriting any prior entry.
// Storing 0 keeps an explicit entry; it is visible to Len and Entries
// (and therefore to the text encoder) but not to At.
//
// Errors:
//   - ErrOutOfRange when the coordinates are outside the shape.
func (m *Matrix) Set(row, col int, v int64) error {
	if !m.inRange(row, col) {
		return matrixErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.entries[Key{Row: row, Col: col}] = v

	return nil
}

// Has reports whether (row, col) holds an explicit entry (zero-valued or not).
func (m *Matrix) Has(row, col int) bool {
	_, ok := m.entries[Key{Row: row, Col: col}]
	return ok
}

// Len returns the number of explicit entries, explicit zeros included.
func (m *Matrix) Len() int { return len(m.entries) }

// NNZ returns the number of explicit non-zero entries.
func (m *Matrix) NNZ() int {
	n := 0
	for _, v := range m.entries {
		if v != 0 {
			n++
		}
	}

	return n
}

// Keys returns the explicit coordinates of m in row-major order.
func (m *Matrix) Keys() []Key {
	return slices.SortedFunc(maps.Keys(m.entries), compareKeys)
}

// Entries returns a snapshot of the explicit entries of m in row-major order.
// The slice is owned by the caller.
// Complexity: O(nnz log nnz).
func (m *Matrix) Entries() []Entry {
	keys := m.Keys()
	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Row: k.Row, Col: k.Col, Value: m.entries[k]}
	}

	return out
}

// RowIndices returns the sorted, de-duplicated rows holding at least one explicit entry.
func (m *Matrix) RowIndices() []int {
	seen := make(map[int]struct{}, len(m.entries))
	for k := range m.entries {
		seen[k.Row] = struct{}{}
	}

	return slices.Sorted(maps.Keys(seen))
}

// ColIndices returns the sorted, de-duplicated columns holding at least one explicit entry.
func (m *Matrix) ColIndices() []int {
	seen := make(map[int]struct{}, len(m.entries))
	for k := range m.entries {
		seen[k.Col] = struct{}{}
	}

	return slices.Sorted(maps.Keys(seen))
}

// rowBuckets groups the non-zero entries of m by row.
// Used by Mul to walk one row of the right operand without scanning all of it.
func (m *Matrix) rowBuckets() map[int][]Entry {
	out := make(map[int][]Entry)
	for k, v := range m.entries {
		if v == 0 {
			continue
		}
		out[k.Row] = append(out[k.Row], Entry{Row: k.Row, Col: k.Col, Value: v})
	}

	return out
}

// Clone returns a deep copy of m, explicit zeros included.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		rows:    m.rows,
		cols:    m.cols,
		entries: maps.Clone(m.entries),
	}
}

// Equal reports whether m and other have the same shape and the same
// non-zero entries. Explicit zeros are ignored on both sides.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	if m.NNZ() != other.NNZ() {
		return false
	}
	for k, v := range m.entries {
		if v != 0 && other.entries[k] != v {
			return false
		}
	}

	return true
}

// String renders m compactly, e.g. "Matrix(2x2){(0,0)=1 (1,1)=1}".
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix(%dx%d){", m.rows, m.cols)
	for i, e := range m.Entries() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%d,%d)=%d", e.Row, e.Col, e.Value)
	}
	sb.WriteByte('}')

	return sb.String()
}
