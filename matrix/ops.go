// SPDX-License-Identifier: MIT
// Package matrix provides multiplication through a pluggable dot product and
// scalar matrices. All functions validate fail-fast and return wrapped
// sentinels on dimension mismatches.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul    = "Mul"
	opMulDot = "MulWith"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes result = m × other with the default Dot.
// See MulWith for the contract.
func (m *Dense[T]) Mul(other, result *Dense[T]) error {
	if err := m.mul(other, result, Dot[T]); err != nil {
		return matrixErrorf(opMul, err)
	}

	return nil
}

// MulWith computes result = m × other, where every result cell (r,c) is
// dot(row r of m, column c of other).
// Implementation:
//   - Stage 1: validate operands are non-nil and result is pre-sized to
//     m.Rows() × other.Cols().
//   - Stage 2: fixed r→c loop; each cell goes through result.Set, so floating
//     results are rounded with result's unit.
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch when the result is mis-sized or when dot reports
//     vectors of differing length (m.Cols() != other.Rows()).
//
// Determinism: fixed loop orders.
// Complexity: O(r*k*c) for Dot.
func (m *Dense[T]) MulWith(other, result *Dense[T], dot DotFunc[T]) error {
	if dot == nil {
		dot = Dot[T]
	}
	if err := m.mul(other, result, dot); err != nil {
		return matrixErrorf(opMulDot, err)
	}

	return nil
}

func (m *Dense[T]) mul(other, result *Dense[T], dot DotFunc[T]) error {
	if other == nil || result == nil {
		return ErrNilMatrix
	}
	if result.r != m.r || result.c != other.c {
		return fmt.Errorf("result %dx%d, want %dx%d: %w", result.r, result.c, m.r, other.c, ErrDimensionMismatch)
	}
	// Rows/columns are materialized once; result may alias m or other.
	rows := make([][]T, m.r)
	cols := make([][]T, other.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		rows[i], _ = m.Row(i)
	}
	for j = 0; j < other.c; j++ {
		cols[j], _ = other.Col(j)
	}
	var (
		v   T
		err error
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < other.c; j++ {
			if v, err = dot(rows[i], cols[j]); err != nil {
				return fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			result.data[i*result.c+j] = result.policy.normalize(v)
		}
	}

	return nil
}

// ScalarMatrix writes scalar on the diagonal of target, which must be square.
// The caller passes a target pre-filled with the additive identity (a freshly
// created matrix); off-diagonal cells are left untouched. Returns target.
// Errors: ErrNilMatrix, ErrNonSquare.
func (m *Dense[T]) ScalarMatrix(scalar T, target *Dense[T]) (*Dense[T], error) {
	if target == nil {
		return nil, denseErrorf(ctxScalar, 0, 0, ErrNilMatrix)
	}
	if target.r != target.c {
		return nil, denseErrorf(ctxScalar, target.r, target.c, ErrNonSquare)
	}
	for k := 0; k < target.r; k++ {
		target.data[k*target.c+k] = target.policy.normalize(scalar)
	}

	return target, nil
}
