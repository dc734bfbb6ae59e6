// SPDX-License-Identifier: MIT

// Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Reject NaN/±Inf on Set and ingestion so every kernel sees finite input.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices,
// formatted as "Dense.<method>(row,col): %w".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewSquare builds an n×n Dense from row slices (cells[i][j] = A[i,j]).
// The input is copied; later edits to cells do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions for an empty grid.
//   - ErrNonSquare when any row length differs from len(cells).
//   - ErrNaNInf for a non-finite cell.
func NewSquare(cells [][]float64) (*Dense, error) {
	n := len(cells)
	if n == 0 {
		return nil, matrixErrorf(opNewSquare, ErrInvalidDimensions)
	}
	m := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		if len(cells[i]) != n {
			return nil, matrixErrorf(opNewSquare, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(cells[i]), n, ErrNonSquare))
		}
		for j = 0; j < n; j++ {
			if math.IsNaN(cells[i][j]) || math.IsInf(cells[i][j], 0) {
				return nil, matrixErrorf(opNewSquare, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			m.data[i*n+j] = cells[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer). The dynamic type is *Dense.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RawRows returns a copy of the contents as row slices.
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// String renders rows as lines with comma-separated %g values.
// Intended for logs and debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// toDense returns m itself when it is a *Dense, otherwise a Dense copy
// read through the interface.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
