// SPDX-License-Identifier: MIT

// Package shape models a polyhedron as a wireframe graph over the integer grid.
//
// A Shape is an ordered list of 3-D integer vertices (axes depth, width,
// height) plus a symmetric, zero-diagonal 0/1 adjacency matrix whose side is
// the vertex count. Vertices are kept in an arena (a slice of Point) and
// edges are index pairs in the adjacency matrix, so merges are index remaps
// and clones never share storage.
//
// Operations:
//   - New validates vertex shape (3×1), adjacency shape and contents, and
//     rejects duplicate positions.
//   - VertexIndex, Connections and Neighbors answer lookups; a missing vertex
//     is reported as (0, false), never as an error.
//   - Rotate applies a 3×3 floating rotation and snaps every vertex back to
//     the nearest grid point. Rotation is lossy on purpose: distinct vertices
//     may collapse and a rotate/inverse pair may drift by one grid unit.
//   - Merge is a graph union keyed by coordinate identity.
//   - Extents are recomputed after every structural change.
//
// Cuboid builds the 8-corner box graph shared by containers and blocks.
package shape
