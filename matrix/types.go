// SPDX-License-Identifier: MIT

// Package matrix: element constraint, element kinds and the per-kind policy.
// This file contains ONLY domain-facing types; storage lives in dense.go and
// options in options.go.
package matrix

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for element types a Dense can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Kind tags the arithmetic family of a matrix element type.
type Kind uint8

const (
	// KindInteger: exact storage, exact equality.
	KindInteger Kind = iota
	// KindFloating: rounding on write, epsilon-tolerant equality.
	KindFloating
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloating:
		return "floating"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// KindOf reports the Kind selected for element type T.
// Integer division truncates 1/2 to zero; floating division does not, which
// also classifies named types such as `type meters float64` correctly.
func KindOf[T Scalar]() Kind {
	var one, two T = 1, 2
	if one/two != 0 {
		return KindFloating
	}

	return KindInteger
}

// elemPolicy is the strategy a Dense delegates element-kind behavior to.
// Complexity: every method O(1).
type elemPolicy[T Scalar] interface {
	kind() Kind
	normalize(v T) T   // applied on every write
	equal(a, b T) bool // cell equality used by Equal
}

// maxExactFloat is 2^53, past which float64 holds only integers.
const maxExactFloat = 1 << 53

// exactPolicy stores values untouched and compares them with ==.
type exactPolicy[T Scalar] struct{}

func (exactPolicy[T]) kind() Kind        { return KindInteger }
func (exactPolicy[T]) normalize(v T) T   { return v }
func (exactPolicy[T]) equal(a, b T) bool { return a == b }

// tolerantPolicy rounds writes to 1/scale and compares within eps.
type tolerantPolicy[T Scalar] struct {
	scale float64
	eps   float64
}

func (tolerantPolicy[T]) kind() Kind { return KindFloating }

// normalize rounds half away from zero at the configured unit.
// |normalize(v) - v| <= unit/2 (plus float noise), and normalize is idempotent.
// Values whose scaled magnitude reaches 2^53 have no fraction at the unit
// and are stored as written.
func (p tolerantPolicy[T]) normalize(v T) T {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return v
	}
	scaled := f * p.scale
	if math.Abs(scaled) >= maxExactFloat {
		return v
	}

	return T(math.Round(scaled) / p.scale)
}

func (p tolerantPolicy[T]) equal(a, b T) bool {
	diff := float64(a) - float64(b)

	return diff >= -p.eps && diff <= p.eps
}

// policyFor builds the strategy matching T under the resolved options.
func policyFor[T Scalar](o Options) elemPolicy[T] {
	if KindOf[T]() == KindFloating {
		return tolerantPolicy[T]{scale: o.scale, eps: o.eps}
	}

	return exactPolicy[T]{}
}

// DotFunc computes the dot product of two equally long vectors.
// Implementations must return ErrDimensionMismatch when len(a) != len(b).
type DotFunc[T Scalar] func(a, b []T) (T, error)

// Dot is the default DotFunc: Σ a[k]*b[k] in ascending k.
// Complexity: O(n).
func Dot[T Scalar](a, b []T) (T, error) {
	if len(a) != len(b) {
		var zero T
		return zero, fmt.Errorf("Dot(%d,%d): %w", len(a), len(b), ErrDimensionMismatch)
	}
	var sum T
	for k := range a {
		sum += a[k] * b[k]
	}

	return sum, nil
}
