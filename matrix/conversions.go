// SPDX-License-Identifier: MIT
// Package matrix: conversions between integer and floating matrices.

package matrix

import (
	"fmt"
	"math"
)

// ConvertMode selects how floating values become integers.
type ConvertMode uint8

const (
	// Truncate drops the fractional part (toward zero).
	Truncate ConvertMode = iota
	// Nearest rounds half away from zero.
	Nearest
)

const (
	ctxToFloat = "ToFloat"
	ctxToInt   = "ToInt"
)

// ToFloat widens an integer matrix to float64 exactly.
// opts configure the floating policy of the result; integer inputs within
// ±2^53 survive unchanged because they are multiples of any decimal unit.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ToFloat(m *Dense[int], opts ...Option) (*Dense[float64], error) {
	if m == nil {
		return nil, denseErrorf(ctxToFloat, 0, 0, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	out := &Dense[float64]{
		r:      m.r,
		c:      m.c,
		data:   make([]float64, len(m.data)),
		policy: policyFor[float64](o),
		opts:   o,
	}
	for k, v := range m.data {
		out.data[k] = float64(v)
	}

	return out, nil
}

// ToInt converts a floating matrix to integers with the given mode.
// Truncate matches the plain conversion contract; Nearest is what rotations use
// to land back on the integer grid.
// Errors: ErrNilMatrix; ErrNotRepresentable for NaN, ±Inf or a value outside
// the int range after the mode is applied. Nothing is returned on error.
// Complexity: O(r*c).
func ToInt(m *Dense[float64], mode ConvertMode) (*Dense[int], error) {
	if m == nil {
		return nil, denseErrorf(ctxToInt, 0, 0, ErrNilMatrix)
	}
	out := &Dense[int]{
		r:      m.r,
		c:      m.c,
		data:   make([]int, len(m.data)),
		policy: exactPolicy[int]{},
		opts:   m.opts,
	}
	for k, v := range m.data {
		if mode == Nearest {
			v = math.Round(v)
		} else {
			v = math.Trunc(v)
		}
		// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
		if math.IsNaN(v) || v < math.MinInt || v >= math.MaxInt {
			return nil, fmt.Errorf("%w: %v",
				denseErrorf(ctxToInt, k/m.c, k%m.c, ErrNotRepresentable), m.data[k])
		}
		out.data[k] = int(v)
	}

	return out, nil
}
