// SPDX-License-Identifier: MIT
// Package matrix: row/column predicates and counters.
//
// "Non-zero" means different from the additive identity of T under exact
// comparison; floating matrices already hold rounded values, so a write of
// 1e-7 is stored (and counted) as zero.

package matrix

import "fmt"

const (
	ctxCountRow = "CountRowRange"
	ctxCountCol = "CountColRange"
)

// CountRow returns the number of non-zero cells in row i.
// Errors: ErrOutOfRange.
func (m *Dense[T]) CountRow(i int) (int, error) {
	return m.CountRowRange(i, 0, m.c-1)
}

// CountRowRange counts non-zero cells of row i between columns from and to (inclusive).
// Errors: ErrOutOfRange when i or either column bound is invalid, or from > to.
func (m *Dense[T]) CountRowRange(i, from, to int) (int, error) {
	if i < 0 || i >= m.r || from < 0 || to >= m.c || from > to {
		return 0, fmt.Errorf("Dense.%s(%d,%d..%d): %w", ctxCountRow, i, from, to, ErrOutOfRange)
	}
	var zero T
	n := 0
	for j := from; j <= to; j++ {
		if m.data[i*m.c+j] != zero {
			n++
		}
	}

	return n, nil
}

// CountCol returns the number of non-zero cells in column j.
func (m *Dense[T]) CountCol(j int) (int, error) {
	return m.CountColRange(j, 0, m.r-1)
}

// CountColRange counts non-zero cells of column j between rows from and to (inclusive).
func (m *Dense[T]) CountColRange(j, from, to int) (int, error) {
	if j < 0 || j >= m.c || from < 0 || to >= m.r || from > to {
		return 0, fmt.Errorf("Dense.%s(%d,%d..%d): %w", ctxCountCol, j, from, to, ErrOutOfRange)
	}
	var zero T
	n := 0
	for i := from; i <= to; i++ {
		if m.data[i*m.c+j] != zero {
			n++
		}
	}

	return n, nil
}

// IsRowFilled reports whether every cell of row i is non-zero.
func (m *Dense[T]) IsRowFilled(i int) (bool, error) {
	n, err := m.CountRow(i)
	if err != nil {
		return false, err
	}

	return n == m.c, nil
}

// IsColFilled reports whether every cell of column j is non-zero.
func (m *Dense[T]) IsColFilled(j int) (bool, error) {
	n, err := m.CountCol(j)
	if err != nil {
		return false, err
	}

	return n == m.r, nil
}

// IsRowEmpty reports whether every cell of row i is zero.
func (m *Dense[T]) IsRowEmpty(i int) (bool, error) {
	n, err := m.CountRow(i)
	if err != nil {
		return false, err
	}

	return n == 0, nil
}

// IsColEmpty reports whether every cell of column j is zero.
func (m *Dense[T]) IsColEmpty(j int) (bool, error) {
	n, err := m.CountCol(j)
	if err != nil {
		return false, err
	}

	return n == 0, nil
}
