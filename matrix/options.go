// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the floating numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global mutable state; every matrix carries
//     its own policy, so tests can exercise boundary tolerances directly.
//   - Integer matrices ignore the floating policy entirely.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of fractional decimal digits kept by
	// every floating write.
	DefaultPrecision = 5

	// DefaultRoundingUnit is the step a floating write is rounded to (10^-DefaultPrecision).
	DefaultRoundingUnit = 1e-5

	// DefaultEpsilon is the cell-wise tolerance of floating equality.
	DefaultEpsilon = 1e-4
)

// maxPrecision bounds WithPrecision so the scale stays exactly representable.
const maxPrecision = 15

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicUnitInvalid      = "matrix: WithRoundingUnit: unit must be finite, positive"
	panicPrecisionInvalid = "matrix: WithPrecision: digits must be in [0, 15]"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	scale float64 // 1/rounding unit; writes store round(v*scale)/scale
	eps   float64 // >= 0; equality tolerance
}

// WithEpsilon sets the tolerance used by floating equality.
// Two floating cells are equal iff |a-b| <= eps.
// Panics when eps is NaN, infinite or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRoundingUnit sets the step every floating write is rounded to.
// Implementation:
//   - Stage 1: validate unit is finite and > 0.
//   - Stage 2: store the reciprocal; snap it to an integer when 1/unit is
//     integral up to float noise (1e-5 → 100000), so decimal units round cleanly.
//
// Complexity: O(1).
func WithRoundingUnit(unit float64) Option {
	if math.IsNaN(unit) || math.IsInf(unit, 0) || unit <= 0 {
		panic(panicUnitInvalid)
	}
	scale := 1 / unit
	if r := math.Round(scale); r > 0 && math.Abs(scale-r) <= 1e-9*r {
		scale = r
	}

	return func(o *Options) { o.scale = scale }
}

// WithPrecision keeps digits fractional decimal digits on floating writes.
// WithPrecision(5) is equivalent to WithRoundingUnit(1e-5).
func WithPrecision(digits int) Option {
	if digits < 0 || digits > maxPrecision {
		panic(panicPrecisionInvalid)
	}
	scale := math.Pow(10, float64(digits))

	return func(o *Options) { o.scale = scale }
}

// NewOptions resolves option setters against documented defaults.
// Last writer wins when two setters touch the same field.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the effective equality tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// RoundingUnit reports the effective rounding step.
func (o Options) RoundingUnit() float64 { return 1 / o.scale }

// Apply returns a setter that copies o wholesale; used to propagate the
// policy of one matrix into another.
func (o Options) Apply() Option {
	return func(dst *Options) { *dst = o }
}

// gatherOptions applies user setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		scale: math.Pow(10, DefaultPrecision),
		eps:   DefaultEpsilon,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
