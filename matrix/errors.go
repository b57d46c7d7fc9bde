// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ErrX)); tests match them via errors.Is.
// Panics are reserved for nonsensical option parameters (programmer error).

package matrix

import "errors"

// Every message is prefixed with "matrix: " to keep logs greppable.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set/Row/Col/CopyValues return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
	// dot-product vectors of different length or a mis-sized result matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that m[i,j] != m[j,i] for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a diagonal entry that is not the additive identity.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNotRepresentable signals a floating value (NaN, ±Inf or beyond the
	// int range) that has no integer counterpart.
	ErrNotRepresentable = errors.New("matrix: value not representable as int")

	// ErrNonBinary signals an entry outside {0, 1} where a 0/1 matrix was required.
	ErrNonBinary = errors.New("matrix: non-binary entry")
)
