// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for structural checks used by the
//     shape layer on adjacency matrices.
//   - Return sentinels wrapped with the validator tag so call sites can wrap
//     uniformly and tests can match via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the strict upper triangle only.

package matrix

import "fmt"

// validatorErrorf wraps err with the validator tag and the offending cell.
func validatorErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
}

// ValidateSquare checks that m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare[T Scalar](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", 0, 0, ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks m[i,j] == m[j,i] under m's element policy.
// Errors: those of ValidateSquare, ErrAsymmetry at the first offending pair.
// Complexity: O(n²).
func ValidateSymmetric[T Scalar](m *Dense[T]) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if !m.policy.equal(m.data[i*m.c+j], m.data[j*m.c+i]) {
				return validatorErrorf("ValidateSymmetric", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks every diagonal entry equals the additive identity.
func ValidateZeroDiagonal[T Scalar](m *Dense[T]) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var zero T
	for k := 0; k < m.r; k++ {
		if !m.policy.equal(m.data[k*m.c+k], zero) {
			return validatorErrorf("ValidateZeroDiagonal", k, k, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateBinary checks every entry is 0 or 1.
func ValidateBinary[T Scalar](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateBinary", 0, 0, ErrNilMatrix)
	}
	var zero, one T = 0, 1
	for k, v := range m.data {
		if !m.policy.equal(v, zero) && !m.policy.equal(v, one) {
			return validatorErrorf("ValidateBinary", k/m.c, k%m.c, ErrNonBinary)
		}
	}

	return nil
}
