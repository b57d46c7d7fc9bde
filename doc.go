// SPDX-License-Identifier: MIT

// Package cratefit is the geometric correctness core of a 3-D container
// packing tool.
//
// Given a cuboid container and polyhedral blocks, it decides whether a block
// may be placed at a grid position without crossing or nesting with blocks
// committed before it. The search that picks which blocks to place lives
// outside this module.
//
// Packages, leaf first:
//
//	matrix/    generic dense matrix; exact integer and rounded floating kinds
//	shape/     wireframe polyhedra: vertices + symmetric 0/1 adjacency,
//	           rotation, merge, cuboid construction
//	geometry/  segments, rectangles, boxes and the rectangle/segment predicate
//	block/     default placeable block (shape + identity + glue)
//	container/ cuboid container, placement oracle, commit, clone
//	config/    TOML configuration for tolerances, container and logging
//
// The cratefit binary (cmd/cratefit) exposes cube, rotate and place
// diagnostics.
//
// Quick start:
//
//	c, _ := container.New(5, 5, 5)
//	a, _ := block.NewCuboid("a", 2, 2, 2)
//	if c.IsPlacementValid(a, block.At(0, 0, 0)) {
//		_ = c.Commit(a, block.At(0, 0, 0))
//	}
package cratefit
