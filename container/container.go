// SPDX-License-Identifier: MIT

package container

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/cratefit/block"
	"github.com/katalvlaran/cratefit/geometry"
	"github.com/katalvlaran/cratefit/shape"
)

// Block is the placeable collaborator the container consumes.
type Block = block.Placeable

// identified is implemented by blocks that carry an identity, such as *block.Block.
type identified interface {
	ID() uuid.UUID
}

// withID appends an "id" attribute to kv when b carries an identity.
func withID(b Block, kv ...any) []any {
	if id, ok := b.(identified); ok {
		return append(kv, "id", id.ID())
	}

	return kv
}

// Container is a cuboid with committed blocks.
type Container struct {
	frame  *shape.Shape // cuboid merged with every committed frame
	ext    shape.Point
	blocks []Block
	log    *log.Logger
	solver geometry.Solver
}

// New builds an empty d×w×h container.
// Errors: shape.ErrInvalidExtent unless d, w, h > 0.
func New(d, w, h int, opts ...Option) (*Container, error) {
	frame, err := shape.Cuboid(d, w, h)
	if err != nil {
		return nil, fmt.Errorf("container.New: %w", err)
	}
	c := &Container{
		frame:  frame,
		ext:    shape.Point{d, w, h},
		log:    discardLogger(),
		solver: geometry.PlaneSolver{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Extents returns the container's depth, width and height.
func (c *Container) Extents() shape.Point { return c.ext }

// Volume returns depth × width × height.
func (c *Container) Volume() int { return c.ext[0] * c.ext[1] * c.ext[2] }

// UsedVolume sums the bounding-box volumes of the committed blocks.
func (c *Container) UsedVolume() int {
	var total int
	for _, b := range c.blocks {
		e := b.Extents()
		total += e[0] * e[1] * e[2]
	}

	return total
}

// Len returns the number of committed blocks.
func (c *Container) Len() int { return len(c.blocks) }

// Block returns a copy of the i-th committed block.
// Errors: ErrBlockIndex.
func (c *Container) Block(i int) (Block, error) {
	if i < 0 || i >= len(c.blocks) {
		return nil, fmt.Errorf("container.Block(%d) of %d: %w", i, len(c.blocks), ErrBlockIndex)
	}

	return c.blocks[i].CloneBlock(), nil
}

// Shape returns a copy of the container frame (cuboid plus committed frames).
func (c *Container) Shape() *shape.Shape { return c.frame.Clone() }

// IsPositionInsideBounds reports whether every coordinate of p lies in
// [0, extent] on its axis. The upper bound is inclusive.
func (c *Container) IsPositionInsideBounds(p shape.Point) bool {
	for a := 0; a < shape.Dims; a++ {
		if p[a] < 0 || p[a] > c.ext[a] {
			return false
		}
	}

	return true
}

// fits reports whether the box [pos, pos+ext] lies in the container.
func (c *Container) fits(pos, ext shape.Point) bool {
	for a := 0; a < shape.Dims; a++ {
		if pos[a] < 0 || pos[a]+ext[a] > c.ext[a] {
			return false
		}
	}

	return true
}

// Commit appends a copy of b glued at pos and merges its frame into the
// container frame. The oracle is not consulted and b itself is not moved.
// Errors: ErrNilBlock, or the error from the copy's SetGlue; on error the
// container is unchanged.
func (c *Container) Commit(b Block, pos block.Glue) error {
	if b == nil {
		return ErrNilBlock
	}
	cp := b.CloneBlock()
	if err := cp.SetGlue(pos); err != nil {
		return fmt.Errorf("container.Commit at %s: %w", pos, err)
	}
	if err := c.frame.Merge(cp.Frame()); err != nil {
		return fmt.Errorf("container.Commit at %s: %w", pos, err)
	}
	c.blocks = append(c.blocks, cp)
	c.log.Debug("block committed", withID(cp, "index", len(c.blocks)-1, "glue", pos, "extents", cp.Extents())...)

	return nil
}

// PlaceIfValid commits b at pos when the oracle accepts it.
func (c *Container) PlaceIfValid(b Block, pos block.Glue) (bool, error) {
	if !c.IsPlacementValid(b, pos) {
		return false, nil
	}
	if err := c.Commit(b, pos); err != nil {
		return false, err
	}

	return true, nil
}

// Clone rebuilds an empty container of the same size and options, then
// commits a deep copy of every placed block in order.
func (c *Container) Clone() *Container {
	cp := &Container{
		ext:    c.ext,
		log:    c.log,
		solver: c.solver,
		blocks: make([]Block, 0, len(c.blocks)),
	}
	frame, err := shape.Cuboid(c.ext[0], c.ext[1], c.ext[2])
	if err != nil {
		panic(fmt.Sprintf("container.Clone: rebuilding %v frame: %v", c.ext, err))
	}
	cp.frame = frame
	for i, b := range c.blocks {
		cp.mustCommit(i, b)
	}

	return cp
}

// mustCommit re-commits a placed block at its own glue. Committed blocks
// already accepted that glue once, so a failure means the block broke its
// SetGlue contract.
func (c *Container) mustCommit(i int, b Block) {
	if err := c.Commit(b, b.Glue()); err != nil {
		panic(fmt.Sprintf("container.Clone: re-committing block #%d: %v", i, err))
	}
}

// Dump writes a summary line, one line per committed block and the frame.
func (c *Container) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n", c); err != nil {
		return err
	}
	for i, b := range c.blocks {
		if _, err := fmt.Fprintf(w, "#%d %s\n", i, describe(b)); err != nil {
			return err
		}
	}

	return c.frame.Dump(w)
}

// String renders "container DxWxH with N blocks".
func (c *Container) String() string {
	return fmt.Sprintf("container %dx%dx%d with %d blocks", c.ext[0], c.ext[1], c.ext[2], len(c.blocks))
}

func describe(b Block) string {
	if s, ok := b.(fmt.Stringer); ok {
		return s.String()
	}
	e := b.Extents()

	return fmt.Sprintf("%dx%dx%d @ %s", e[0], e[1], e[2], b.Glue())
}
