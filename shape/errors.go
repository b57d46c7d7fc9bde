// SPDX-License-Identifier: MIT
// Package shape: sentinel error set.
// Structural violations surface as these sentinels (or matrix sentinels),
// wrapped with the failing method; lookups that can miss return (value, false).

package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVertices indicates a shape built from an empty vertex list.
	ErrNoVertices = errors.New("shape: no vertices")

	// ErrRowMismatch indicates a vertex whose row count differs from the
	// others or is not 3.
	ErrRowMismatch = errors.New("shape: vertex row count mismatch")

	// ErrColumnMismatch indicates a vertex that is not a single column.
	ErrColumnMismatch = errors.New("shape: vertex must have exactly one column")

	// ErrDuplicateVertex indicates two vertices at the same position.
	ErrDuplicateVertex = errors.New("shape: duplicate vertex")

	// ErrBadAdjacency indicates an adjacency matrix that is not symmetric,
	// has a non-zero diagonal or holds values outside {0, 1}.
	ErrBadAdjacency = errors.New("shape: invalid adjacency matrix")

	// ErrInvalidExtent indicates a non-positive cuboid side.
	ErrInvalidExtent = errors.New("shape: extent must be > 0")
)

// shapeErrorf wraps err with "Shape.<method>: ".
func shapeErrorf(method string, err error) error {
	return fmt.Errorf("Shape.%s: %w", method, err)
}
