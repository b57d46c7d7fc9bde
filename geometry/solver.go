// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind classifies a rectangle/segment intersection.
type Kind uint8

const (
	// None: the segment's line misses the rectangle's plane, or the segment
	// is parallel to it and off-plane.
	None Kind = iota
	// One: the segment's line crosses the plane at exactly one point.
	One
	// Coincident: the segment lies in the plane, or a primitive is degenerate.
	Coincident
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case One:
		return "one"
	case Coincident:
		return "coincident"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Intersection is a classified result. Point and WithinBounds are only
// meaningful when Kind == One; WithinBounds reports that Point lies on the
// segment and inside the rectangle.
type Intersection struct {
	Kind         Kind
	Point        mgl64.Vec3
	WithinBounds bool
}

// Solver computes rectangle/segment intersections.
type Solver interface {
	Intersect(r Rectangle, s Segment) Intersection
}

// DefaultEpsilon is the slack PlaneSolver uses when Epsilon is not positive.
const DefaultEpsilon = 1e-9

// PlaneSolver intersects the segment's supporting line with the rectangle's
// plane and checks the hit against both primitives' parameter ranges.
type PlaneSolver struct {
	// Epsilon is the slack on parallelism tests and on the parameter ranges
	// t ∈ [0,1] (segment) and u, v ∈ [0,1] (rectangle).
	Epsilon float64
}

var _ Solver = PlaneSolver{}

func (ps PlaneSolver) eps() float64 {
	if ps.Epsilon > 0 {
		return ps.Epsilon
	}

	return DefaultEpsilon
}

// Intersect classifies r against s.
// Implementation:
//   - Stage 1: n = U×V; a zero normal is a degenerate rectangle (Coincident).
//   - Stage 2: with d = B-A, n·d ≈ 0 means parallel: Coincident when A is in
//     the plane, None otherwise.
//   - Stage 3: t = n·(O-A) / n·d, P = A + t·d; solve P-O = u·U + v·V and
//     report WithinBounds when t, u and v are all in [0,1] up to epsilon.
//
// Complexity: O(1).
func (ps PlaneSolver) Intersect(r Rectangle, s Segment) Intersection {
	eps := ps.eps()
	n := r.Normal()
	nl := n.Len()
	if nl <= eps {
		return Intersection{Kind: Coincident}
	}
	d := s.B.Sub(s.A)
	denom := n.Dot(d)
	num := n.Dot(r.Origin.Sub(s.A))
	if math.Abs(denom) <= eps*nl*math.Max(d.Len(), 1) {
		if math.Abs(num) <= eps*nl {
			return Intersection{Kind: Coincident}
		}
		return Intersection{Kind: None}
	}

	t := num / denom
	p := s.A.Add(d.Mul(t))
	u, v := planeCoords(r, p)

	return Intersection{
		Kind:         One,
		Point:        p,
		WithinBounds: inUnit(t, eps) && inUnit(u, eps) && inUnit(v, eps),
	}
}

// planeCoords solves p - O = u·U + v·V through the Gram system.
func planeCoords(r Rectangle, p mgl64.Vec3) (u, v float64) {
	w := p.Sub(r.Origin)
	uu, uv, vv := r.U.Dot(r.U), r.U.Dot(r.V), r.V.Dot(r.V)
	wu, wv := w.Dot(r.U), w.Dot(r.V)
	det := uu*vv - uv*uv

	return (vv*wu - uv*wv) / det, (uu*wv - uv*wu) / det
}

func inUnit(x, eps float64) bool { return x >= -eps && x <= 1+eps }
