// SPDX-License-Identifier: MIT

// Package geometry holds the floating-point primitives the placement oracle
// reasons about: segments (wireframe edges), rectangles (block faces) and
// axis-aligned boxes, all over mgl64 vectors.
//
// The Solver interface classifies a rectangle/segment pair as no
// intersection, exactly one point or coincident (the segment lies in the
// rectangle's plane, or a primitive is degenerate), and reports whether a
// single intersection point lies within both primitives. PlaneSolver is the
// default implementation.
package geometry
