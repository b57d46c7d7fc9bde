// SPDX-License-Identifier: MIT

package block

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/katalvlaran/cratefit/geometry"
	"github.com/katalvlaran/cratefit/matrix"
	"github.com/katalvlaran/cratefit/shape"
)

// vertexTolerance is the distance under which a point counts as a vertex.
const vertexTolerance = 1e-6

// Placeable is what a container needs from a block.
type Placeable interface {
	// Extents is the bounding-box size at the current orientation.
	Extents() shape.Point
	Glue() Glue
	// SetGlue moves and orients the block; on error the glue is unchanged.
	SetGlue(g Glue) error
	// Faces are the rectangles the crossing test intersects with. They may
	// over-approximate the block (a bounding box); the oracle then rejects
	// conservatively and never accepts a real crossing.
	Faces() []geometry.Rectangle
	Edges() []geometry.Segment
	HasVertexAt(p mgl64.Vec3) bool
	// Frame is the wireframe in container space.
	Frame() *shape.Shape
	CloneBlock() Placeable
}

// Block is the default Placeable.
type Block struct {
	id       uuid.UUID
	label    string
	pristine *shape.Shape // normalized, orientation (0,0)
	local    *shape.Shape // normalized, current orientation
	glue     Glue
	opts     []matrix.Option
}

var _ Placeable = (*Block)(nil)

// New wraps a copy of s, normalized so its minimum corner is the origin.
// opts configure the rotation matrices built on re-orientation.
func New(label string, s *shape.Shape, opts ...matrix.Option) (*Block, error) {
	if s == nil {
		return nil, ErrNilShape
	}
	p := normalized(s)

	return &Block{
		id:       uuid.New(),
		label:    label,
		pristine: p,
		local:    p.Clone(),
		opts:     opts,
	}, nil
}

// NewCuboid builds a d×w×h box block.
func NewCuboid(label string, d, w, h int, opts ...matrix.Option) (*Block, error) {
	s, err := shape.Cuboid(d, w, h)
	if err != nil {
		return nil, fmt.Errorf("block %q: %w", label, err)
	}

	return New(label, s, opts...)
}

func normalized(s *shape.Shape) *shape.Shape {
	out := s.Clone()
	out.Translate(shape.Point{}.Sub(out.MinCorner()))

	return out
}

// ID returns the identity shared by a block and its clones.
func (b *Block) ID() uuid.UUID { return b.id }

// Label returns the human-readable name.
func (b *Block) Label() string { return b.label }

// Glue returns the current glue.
func (b *Block) Glue() Glue { return b.glue }

// SetGlue moves the block to g. When the orientation changes, the pristine
// shape is rotated by shape.RotationMatrix(g.Pitch, g.Yaw) and renormalized.
func (b *Block) SetGlue(g Glue) error {
	if !g.SameOrientation(b.glue) {
		r, err := shape.RotationMatrix(g.Pitch, g.Yaw, b.opts...)
		if err != nil {
			return fmt.Errorf("block %q: %w", b.label, err)
		}
		s := b.pristine.Clone()
		if err = s.Rotate(r); err != nil {
			return fmt.Errorf("block %q: %w", b.label, err)
		}
		b.local = normalized(s)
	}
	b.glue = g

	return nil
}

// Extents returns the bounding-box size at the current orientation.
func (b *Block) Extents() shape.Point { return b.local.Extents() }

// Volume returns the bounding-box volume.
func (b *Block) Volume() int {
	e := b.Extents()

	return e[0] * e[1] * e[2]
}

// Box returns the bounding box at the glue position.
func (b *Block) Box() geometry.Box {
	return geometry.BoxAt(b.glue.Position, b.Extents())
}

// Faces returns the six bounding-box faces at the glue position.
// These are the block's own faces only for a cuboid at a quarter-turn
// orientation. For other shapes, or for oblique orientations, the crossing
// test sees the bounding box and may reject placements the wireframe allows.
func (b *Block) Faces() []geometry.Rectangle { return b.Box().Faces() }

// Frame returns a copy of the wireframe translated to the glue position.
func (b *Block) Frame() *shape.Shape {
	f := b.local.Clone()
	f.Translate(b.glue.Position)

	return f
}

// Edges returns the wireframe edges at the glue position.
func (b *Block) Edges() []geometry.Segment { return geometry.SegmentsOf(b.Frame()) }

// HasVertexAt reports whether p is one of the block's vertices at the glue position.
func (b *Block) HasVertexAt(p mgl64.Vec3) bool {
	for _, q := range b.local.Points() {
		v := geometry.FromPoint(q.Add(b.glue.Position))
		if v.ApproxEqualThreshold(p, vertexTolerance) {
			return true
		}
	}

	return false
}

// Clone returns an independent copy with the same ID.
func (b *Block) Clone() *Block {
	cp := *b
	cp.pristine = b.pristine.Clone()
	cp.local = b.local.Clone()
	cp.opts = append([]matrix.Option(nil), b.opts...)

	return &cp
}

// CloneBlock is Clone behind the Placeable interface.
func (b *Block) CloneBlock() Placeable { return b.Clone() }

// String renders "label DxWxH @ glue".
func (b *Block) String() string {
	e := b.Extents()

	return fmt.Sprintf("%s %dx%dx%d @ %s", b.label, e[0], e[1], e[2], b.glue)
}
