// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: every accessor returns an error
//     instead of panicking.
//   - Delegate element-kind behavior (write rounding, equality) to a policy
//     chosen once at construction.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Row/Col: O(c)/O(r); Clone: O(r*c).
package matrix

import (
	"fmt"
	"io"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxCopy   = "CopyValues"
	ctxMove   = "MoveRow"
	ctxNew    = "New"
	ctxScalar = "ScalarMatrix"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and coordinates.
// Format: "Dense.<method>(row,col): <sentinel>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rows×cols row-major matrix of T.
//   - r,c hold the immutable dimensions.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - policy normalizes writes and decides cell equality for the element kind.
//   - opts keeps the resolved options so clones and derived matrices inherit them.
type Dense[T Scalar] struct {
	r, c   int
	data   []T
	policy elemPolicy[T]
	opts   Options
}

var _ fmt.Stringer = (*Dense[int])(nil)

// New creates a rows×cols matrix of T with every cell set to the additive identity.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and pick the element policy from T.
//   - Stage 3: allocate a zero-filled buffer.
//
// Complexity: O(r*c) time and memory.
func New[T Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:      rows,
		c:      cols,
		data:   make([]T, rows*cols), // make() zero-fills deterministically
		policy: policyFor[T](o),
		opts:   o,
	}, nil
}

// NewInt is New[int]; integer matrices hold vertices and adjacency.
func NewInt(rows, cols int) (*Dense[int], error) {
	return New[int](rows, cols)
}

// NewFloat is New[float64]; floating matrices hold rotations.
func NewFloat(rows, cols int, opts ...Option) (*Dense[float64], error) {
	return New[float64](rows, cols, opts...)
}

// NewFromRows builds a matrix from a rectangular slice of rows.
// Values go through Set, so floating input is rounded like any other write.
// Errors: ErrInvalidDimensions for an empty input, ErrDimensionMismatch for ragged rows.
func NewFromRows[T Scalar](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 {
		return nil, denseErrorf(ctxNew, 0, 0, ErrInvalidDimensions)
	}
	m, err := New[T](len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, denseErrorf(ctxNew, i, len(row), ErrDimensionMismatch)
		}
		for j, v := range row {
			m.data[i*m.c+j] = m.policy.normalize(v)
		}
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity[T Scalar](n int, opts ...Option) (*Dense[T], error) {
	m, err := New[T](n, n, opts...)
	if err != nil {
		return nil, err
	}

	return m.ScalarMatrix(1, m)
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Kind reports the element kind selected for this matrix.
func (m *Dense[T]) Kind() Kind { return m.policy.kind() }

// Options returns the numeric policy this matrix was created with.
func (m *Dense[T]) Options() Options { return m.opts }

// SameShape reports whether m and other have identical dimensions.
func (m *Dense[T]) SameShape(other *Dense[T]) bool {
	return other != nil && m.r == other.r && m.c == other.c
}

// indexOf bounds-checks (row,col) and returns the flat offset or ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Errors: ErrOutOfRange when row ∉ [0,rows) or col ∉ [0,cols).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w in %dx%d matrix", denseErrorf(ctxAt, row, col, err), m.r, m.c)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) after normalization by the element policy.
// Floating matrices round v to the rounding unit; integer matrices store v as-is.
// Errors: ErrOutOfRange for invalid indices; nothing is written then.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return fmt.Errorf("%w in %dx%d matrix", denseErrorf(ctxSet, row, col, err), m.r, m.c)
	}
	m.data[off] = m.policy.normalize(v)

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy with the same policy; storage is never shared.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, policy: m.policy, opts: m.opts}
}

// Equal reports whether other has the same dimensions and every cell pair is
// equal under m's element policy (exact for integers, within epsilon for floats).
// A nil other is never equal.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if !m.SameShape(other) {
		return false
	}
	for k := range m.data {
		if !m.policy.equal(m.data[k], other.data[k]) {
			return false
		}
	}

	return true
}

// CopyValues copies an nRows×nCols block from src starting at (srcRow, srcCol)
// into m starting at (dstRow, dstCol).
// Implementation:
//   - Stage 1: validate both windows fit; the whole copy is rejected up front,
//     so a failing call leaves m untouched.
//   - Stage 2: copy row by row through the policy (floating values are rounded
//     with m's unit).
//
// Errors: ErrNilMatrix, ErrOutOfRange (never clamped).
// Complexity: O(nRows*nCols).
func (m *Dense[T]) CopyValues(src *Dense[T], dstRow, dstCol, srcRow, srcCol, nRows, nCols int) error {
	if src == nil {
		return denseErrorf(ctxCopy, dstRow, dstCol, ErrNilMatrix)
	}
	if nRows < 0 || nCols < 0 {
		return denseErrorf(ctxCopy, nRows, nCols, ErrOutOfRange)
	}
	if nRows == 0 || nCols == 0 {
		return nil
	}
	if dstRow < 0 || dstCol < 0 || dstRow+nRows > m.r || dstCol+nCols > m.c {
		return fmt.Errorf("%w: destination window %dx%d in %dx%d matrix",
			denseErrorf(ctxCopy, dstRow, dstCol, ErrOutOfRange), nRows, nCols, m.r, m.c)
	}
	if srcRow < 0 || srcCol < 0 || srcRow+nRows > src.r || srcCol+nCols > src.c {
		return fmt.Errorf("%w: source window %dx%d in %dx%d matrix",
			denseErrorf(ctxCopy, srcRow, srcCol, ErrOutOfRange), nRows, nCols, src.r, src.c)
	}
	var i, j, so, do int
	for i = 0; i < nRows; i++ {
		so = (srcRow+i)*src.c + srcCol
		do = (dstRow+i)*m.c + dstCol
		for j = 0; j < nCols; j++ {
			m.data[do+j] = m.policy.normalize(src.data[so+j])
		}
	}

	return nil
}

// MoveRow copies row-1 into row (shifting one row down by one position).
// Errors: ErrOutOfRange unless 1 <= row < rows.
func (m *Dense[T]) MoveRow(row int) error {
	if row < 1 || row >= m.r {
		return denseErrorf(ctxMove, row, 0, ErrOutOfRange)
	}
	copy(m.data[row*m.c:(row+1)*m.c], m.data[(row-1)*m.c:row*m.c])

	return nil
}

// Fill sets every cell to v (normalized).
func (m *Dense[T]) Fill(v T) {
	v = m.policy.normalize(v)
	for k := range m.data {
		m.data[k] = v
	}
}

// String renders one bracketed line per row, e.g. "[1, 0]\n[0, 1]\n".
// Intended for diagnostics, not hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Dump writes a "<rows>x<cols> <kind> matrix" header followed by String().
func (m *Dense[T]) Dump(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%dx%d %s matrix\n%s", m.r, m.c, m.Kind(), m.String())

	return err
}
