// SPDX-License-Identifier: MIT

// Package container implements a cuboid container that accepts blocks and
// decides whether a candidate placement is geometrically legal.
//
// The container composes a shape.Shape (the cuboid frame merged with the
// frame of every committed block) and an ordered list of committed blocks.
//
// Placement oracle (Check / IsPlacementValid), short-circuiting in order:
//  1. Bounds: target position >= 0 and position + extent <= container extent
//     on every axis.
//  2. Scoped reposition: the candidate is moved to the target glue for the
//     duration of the check and restored on every exit path.
//  3. Crossing: a candidate face meeting a committed block's edge at a single
//     in-bounds point that is not a candidate vertex.
//  4. Containment: the candidate box inside a committed box, or the reverse.
//
// A rejected placement is an ordinary Verdict, never an error. Commit does not
// consult the oracle; callers check with IsPlacementValid first.
//
// Containers are not safe for concurrent mutation. Clone yields a fully
// independent copy, so search branches can each own one.
package container
