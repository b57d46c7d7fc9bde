// SPDX-License-Identifier: MIT

// Package matrix provides a generic, fixed-size dense matrix used by the
// shape and container layers.
//
// The package provides:
//
//   - Dense[T], a row-major matrix over any integer or floating element type.
//   - An element Kind (KindInteger / KindFloating) that selects how writes are
//     normalised and how equality is decided:
//   - integer matrices store values as-is and compare exactly;
//   - floating matrices round every write to a fixed rounding unit
//     (DefaultRoundingUnit = 1e-5) and compare cell-wise within an epsilon
//     (DefaultEpsilon = 1e-4).
//   - Multiplication through a pluggable dot product (DotFunc), scalar
//     matrices, row/column extraction and predicates, block copies and
//     integer/floating conversions.
//
// All public accessors are bounds-checked and return sentinel errors
// (ErrOutOfRange, ErrDimensionMismatch, ...) wrapped with the method name and
// the offending indices; nothing is silently clamped.
//
// Tolerances are configuration, not globals: pass WithRoundingUnit,
// WithPrecision or WithEpsilon at construction time.
//
// Integer vertex math in package shape stays exact while rotation math stays
// bounded by the floating rounding unit.
package matrix
