// SPDX-License-Identifier: MIT

package container

import (
	"github.com/katalvlaran/cratefit/block"
	"github.com/katalvlaran/cratefit/geometry"
)

// IsPlacementValid reports whether b may be placed at pos: Check(b, pos).OK().
func (c *Container) IsPlacementValid(b Block, pos block.Glue) bool {
	return c.Check(b, pos).OK()
}

// Check runs the placement oracle against the committed blocks.
//
// Implementation:
//   - Stage 1: bounds with the candidate's extents. When pos changes the
//     orientation the extents are only known after re-orientation, so the
//     check runs right after Stage 2 instead, still before any block test.
//   - Stage 2: move b to pos; a deferred call restores the previous glue on
//     every return path.
//   - Stage 3: crossing over every committed block.
//   - Stage 4: containment over every committed block, both directions.
//
// b is left at its original glue when Check returns.
// Complexity: O(k·(E·F)) for k committed blocks with E edges against F faces.
func (c *Container) Check(b Block, pos block.Glue) Verdict {
	if b == nil {
		return c.reject(b, verdict(Unplaceable), pos)
	}
	prev := b.Glue()
	reoriented := !prev.SameOrientation(pos)
	if !reoriented && !c.fits(pos.Position, b.Extents()) {
		return c.reject(b, verdict(OutOfBounds), pos)
	}

	if err := b.SetGlue(pos); err != nil {
		c.log.Debug("candidate refused glue", "glue", pos, "err", err)
		return c.reject(b, verdict(Unplaceable), pos)
	}
	defer func() {
		if err := b.SetGlue(prev); err != nil {
			c.log.Error("restoring candidate glue", "glue", prev, "err", err)
		}
	}()

	if reoriented && !c.fits(pos.Position, b.Extents()) {
		return c.reject(b, verdict(OutOfBounds), pos)
	}
	if i, ok := c.crossing(b); ok {
		return c.reject(b, Verdict{Reason: Crossing, Index: i}, pos)
	}
	if v, ok := c.containment(b, pos); ok {
		return c.reject(b, v, pos)
	}

	return verdict(Valid)
}

// crossing returns the first committed block with an edge that a face of b
// meets at a single in-bounds point other than a vertex of b.
func (c *Container) crossing(b Block) (int, bool) {
	faces := b.Faces()
	var x geometry.Intersection
	for i, placed := range c.blocks {
		for _, e := range placed.Edges() {
			for _, f := range faces {
				x = c.solver.Intersect(f, e)
				if x.Kind == geometry.One && x.WithinBounds && !b.HasVertexAt(x.Point) {
					return i, true
				}
			}
		}
	}

	return 0, false
}

// containment tests box nesting between b at pos and every committed block.
func (c *Container) containment(b Block, pos block.Glue) (Verdict, bool) {
	cand := geometry.BoxAt(pos.Position, b.Extents())
	for i, placed := range c.blocks {
		other := geometry.BoxAt(placed.Glue().Position, placed.Extents())
		if other.Contains(cand) {
			return Verdict{Reason: Inside, Index: i}, true
		}
		if cand.Contains(other) {
			return Verdict{Reason: Encloses, Index: i}, true
		}
	}

	return Verdict{}, false
}

func (c *Container) reject(b Block, v Verdict, pos block.Glue) Verdict {
	c.log.Debug("placement rejected", withID(b, "reason", v.Reason, "index", v.Index, "glue", pos)...)

	return v
}
