// SPDX-License-Identifier: MIT

// Package codec reads and writes sparse matrices in the triple text format:
//
//	rows=<N>
//	cols=<M>
//	(<row>, <col>, <value>)
//	...
//
// Decoding is fail-fast: the first bad line aborts the load and no partial
// matrix is returned. Blank lines are ignored everywhere.
//
// Encoding writes a "Matrix (<rows>x<cols>)" header followed by one triple
// per explicit entry in row-major order.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsemat/sparse"
)

// ErrMalformedInput is returned when the header or a data line does not match
// the triple format. The wrapped message carries the 1-based line number.
var ErrMalformedInput = errors.New("codec: malformed input")

// Line buffer bounds for Decode. A line longer than maxLineSize is malformed.
const (
	initialLineSize = 64 * 1024
	maxLineSize     = 16 * 1024 * 1024
)

var (
	headerRe = regexp.MustCompile(`^(rows|cols)\s*=\s*(\d+)$`)
	entryRe  = regexp.MustCompile(`^\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(-?\d+)\s*\)$`)
)

// malformed tags ErrMalformedInput with the line number and a reason.
func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, line, fmt.Sprintf(format, args...))
}

// Decode parses one matrix from r.
//
// Errors:
//   - ErrMalformedInput for a missing/bad header, a data line that is not a
//     triple, a number that overflows, or a triple outside the declared shape
//     (that last case also matches sparse.ErrOutOfRange).
//   - ErrMalformedInput for a line longer than 16 MiB.
//   - Any other read error from r, unchanged.
func Decode(r io.Reader) (*sparse.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineSize), maxLineSize)

	var (
		m       *sparse.Matrix
		rows    = -1
		lineNo  int
		content int // non-blank lines seen so far
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		content++

		switch content {
		case 1:
			n, err := parseHeader(lineNo, line, "rows")
			if err != nil {
				return nil, err
			}
			rows = n
		case 2:
			cols, err := parseHeader(lineNo, line, "cols")
			if err != nil {
				return nil, err
			}
			if m, err = sparse.New(rows, cols); err != nil {
				return nil, malformed(lineNo, "%v", err)
			}
		default:
			row, col, v, err := parseEntry(lineNo, line)
			if err != nil {
				return nil, err
			}
			if err = m.Set(row, col, v); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, malformed(lineNo+1, "line too long (limit %d bytes)", maxLineSize)
		}
		return nil, err
	}
	if m == nil {
		return nil, malformed(lineNo, "missing rows/cols header")
	}

	return m, nil
}

// parseHeader reads "<want>=<N>".
func parseHeader(lineNo int, line, want string) (int, error) {
	match := headerRe.FindStringSubmatch(line)
	if match == nil || match[1] != want {
		return 0, malformed(lineNo, "expected %s=<integer>, got %q", want, line)
	}
	n, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, malformed(lineNo, "%s: %v", want, err)
	}

	return n, nil
}

// parseEntry reads "(<row>, <col>, <value>)".
func parseEntry(lineNo int, line string) (row, col int, v int64, err error) {
	match := entryRe.FindStringSubmatch(line)
	if match == nil {
		return 0, 0, 0, malformed(lineNo, "expected (<row>, <col>, <value>), got %q", line)
	}
	if row, err = strconv.Atoi(match[1]); err != nil {
		return 0, 0, 0, malformed(lineNo, "row: %v", err)
	}
	if col, err = strconv.Atoi(match[2]); err != nil {
		return 0, 0, 0, malformed(lineNo, "col: %v", err)
	}
	if v, err = strconv.ParseInt(match[3], 10, 64); err != nil {
		return 0, 0, 0, malformed(lineNo, "value: %v", err)
	}

	return row, col, v, nil
}

// DecodeString parses one matrix from s.
func DecodeString(s string) (*sparse.Matrix, error) {
	return Decode(strings.NewReader(s))
}

// DecodeFile opens path and decodes it. Errors are prefixed with the path.
func DecodeFile(path string) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Encode writes m to w: the "Matrix (<rows>x<cols>)" header, then one
// "(<row>, <col>, <value>)" line per explicit entry in row-major order.
// Explicit zeros stored through Set are written as-is.
func Encode(w io.Writer, m *sparse.Matrix) error {
	if m == nil {
		return sparse.ErrNilMatrix
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Matrix (%dx%d)\n", m.Rows(), m.Cols())
	for _, e := range m.Entries() {
		fmt.Fprintf(bw, "(%d, %d, %d)\n", e.Row, e.Col, e.Value)
	}

	return bw.Flush()
}

// EncodeString returns the encoded form of m.
func EncodeString(m *sparse.Matrix) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, m); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Marshal writes m in the input format (rows=/cols= header), so the output
// can be decoded again.
func Marshal(w io.Writer, m *sparse.Matrix) error {
	if m == nil {
		return sparse.ErrNilMatrix
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "rows=%d\ncols=%d\n", m.Rows(), m.Cols())
	for _, e := range m.Entries() {
		fmt.Fprintf(bw, "(%d, %d, %d)\n", e.Row, e.Col, e.Value)
	}

	return bw.Flush()
}
