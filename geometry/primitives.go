// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/cratefit/shape"
)

// Segment is the closed line segment from A to B.
type Segment struct {
	A, B mgl64.Vec3
}

// Rectangle is the planar parallelogram spanned by U and V from Origin.
// Its corners are Origin, Origin+U, Origin+V and Origin+U+V.
type Rectangle struct {
	Origin mgl64.Vec3
	U, V   mgl64.Vec3
}

// Normal returns U × V (not normalized).
func (r Rectangle) Normal() mgl64.Vec3 { return r.U.Cross(r.V) }

// Corners lists the four corners counter-clockwise from Origin.
func (r Rectangle) Corners() [4]mgl64.Vec3 {
	return [4]mgl64.Vec3{r.Origin, r.Origin.Add(r.U), r.Origin.Add(r.U).Add(r.V), r.Origin.Add(r.V)}
}

// Box is an axis-aligned bounding box with Min <= Max on every axis.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoxAt returns the box [pos, pos+ext].
func BoxAt(pos, ext shape.Point) Box {
	lo := FromPoint(pos)

	return Box{Min: lo, Max: lo.Add(FromPoint(ext))}
}

// ContainsPoint checks if a point is inside the box, faces included.
func (b Box) ContainsPoint(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Contains reports whether other lies entirely within b (shared faces allowed).
func (b Box) Contains(other Box) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Overlaps checks if two boxes overlap; touching faces count.
func (b Box) Overlaps(other Box) bool {
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Min.Z() && b.Min.Z() <= other.Max.Z()
}

// Faces returns the six faces of the box: the two depth faces first, then
// width, then height, each pair ordered min side then max side.
func (b Box) Faces() []Rectangle {
	e := b.Max.Sub(b.Min)
	dx := mgl64.Vec3{e.X(), 0, 0}
	dy := mgl64.Vec3{0, e.Y(), 0}
	dz := mgl64.Vec3{0, 0, e.Z()}

	return []Rectangle{
		{Origin: b.Min, U: dy, V: dz},
		{Origin: b.Min.Add(dx), U: dy, V: dz},
		{Origin: b.Min, U: dx, V: dz},
		{Origin: b.Min.Add(dy), U: dx, V: dz},
		{Origin: b.Min, U: dx, V: dy},
		{Origin: b.Min.Add(dz), U: dx, V: dy},
	}
}

// FromPoint converts a grid point to a vector.
func FromPoint(p shape.Point) mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// SegmentsOf maps every edge of s to a segment between its endpoints, in
// s.Edges() order.
func SegmentsOf(s *shape.Shape) []Segment {
	pts := s.Points()
	edges := s.Edges()
	out := make([]Segment, len(edges))
	for k, e := range edges {
		out[k] = Segment{A: FromPoint(pts[e[0]]), B: FromPoint(pts[e[1]])}
	}

	return out
}
