// SPDX-License-Identifier: MIT

package sparse

import "cmp"

// Key addresses one cell of a Matrix. It replaces a nested row→col→value map
// with a single flat, hash-friendly composite key.
type Key struct {
	Row int
	Col int
}

// Entry is an explicit (row, col, value) triple.
type Entry struct {
	Row   int
	Col   int
	Value int64
}

// Key returns the coordinates of e.
func (e Entry) Key() Key { return Key{Row: e.Row, Col: e.Col} }

// compareKeys orders keys row-major: by row, then by column.
func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}
