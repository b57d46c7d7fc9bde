// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"

	"github.com/katalvlaran/cratefit/matrix"
)

// Axis indices of a Point and of a 3×1 vertex matrix.
const (
	AxisDepth  = 0
	AxisWidth  = 1
	AxisHeight = 2

	// Dims is the number of spatial axes.
	Dims = 3
)

// Point is an integer grid position (depth, width, height).
type Point [Dims]int

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

// String renders "(d,w,h)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p[0], p[1], p[2])
}

// Matrix returns p as a fresh 3×1 integer vertex.
func (p Point) Matrix() *matrix.Dense[int] {
	m, _ := matrix.NewInt(Dims, 1) // fixed positive dimensions
	for a := 0; a < Dims; a++ {
		_ = m.Set(a, 0, p[a])
	}

	return m
}

// NewVertex builds the 3×1 vertex (d, w, h).
func NewVertex(d, w, h int) *matrix.Dense[int] {
	return Point{d, w, h}.Matrix()
}

// PointOf reads a 3×1 vertex matrix into a Point.
// Errors: matrix.ErrNilMatrix, ErrRowMismatch, ErrColumnMismatch.
func PointOf(v *matrix.Dense[int]) (Point, error) {
	var p Point
	if v == nil {
		return p, matrix.ErrNilMatrix
	}
	if v.Cols() != 1 {
		return p, fmt.Errorf("vertex %dx%d: %w", v.Rows(), v.Cols(), ErrColumnMismatch)
	}
	if v.Rows() != Dims {
		return p, fmt.Errorf("vertex %dx%d: %w", v.Rows(), v.Cols(), ErrRowMismatch)
	}
	for a := 0; a < Dims; a++ {
		p[a], _ = v.At(a, 0)
	}

	return p, nil
}
