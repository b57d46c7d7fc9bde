// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cratefit/matrix"
)

// RotationMatrix returns R_y(angle1) × R_z(angle2) as a 3×3 floating matrix.
// Angles are in degrees; entries are rounded with the matrix rounding unit,
// so quarter turns produce exact 0/±1 cells.
//
//	R_y(a) = [ cos a  0  sin a ]     R_z(b) = [ cos b  -sin b  0 ]
//	         [   0    1    0   ]              [ sin b   cos b  0 ]
//	         [-sin a  0  cos a ]              [   0       0    1 ]
func RotationMatrix(angle1, angle2 float64, opts ...matrix.Option) (*matrix.Dense[float64], error) {
	a := angle1 * math.Pi / 180
	b := angle2 * math.Pi / 180

	ry, err := matrix.NewFromRows([][]float64{
		{math.Cos(a), 0, math.Sin(a)},
		{0, 1, 0},
		{-math.Sin(a), 0, math.Cos(a)},
	}, opts...)
	if err != nil {
		return nil, err
	}
	rz, err := matrix.NewFromRows([][]float64{
		{math.Cos(b), -math.Sin(b), 0},
		{math.Sin(b), math.Cos(b), 0},
		{0, 0, 1},
	}, opts...)
	if err != nil {
		return nil, err
	}
	out, err := matrix.NewFloat(Dims, Dims, opts...)
	if err != nil {
		return nil, err
	}
	if err = ry.Mul(rz, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Rotate left-multiplies every vertex by r and snaps the result to the
// nearest grid point, in place. Extents are recomputed afterwards.
//
// The transform is lossy: vertices may collapse onto one grid point and an
// inverse rotation is not guaranteed to restore the original coordinates.
// The adjacency matrix is left unchanged.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch unless r is 3×3,
// matrix.ErrNotRepresentable when a rotated coordinate leaves the int range.
// On error the shape is untouched.
// Complexity: O(n).
func (s *Shape) Rotate(r *matrix.Dense[float64]) error {
	if r == nil {
		return shapeErrorf(methodRotate, matrix.ErrNilMatrix)
	}
	if r.Rows() != Dims || r.Cols() != Dims {
		return shapeErrorf(methodRotate, fmt.Errorf("rotation %dx%d: %w", r.Rows(), r.Cols(), matrix.ErrDimensionMismatch))
	}

	next := make([]Point, len(s.pts))
	out, err := matrix.NewFloat(Dims, 1, r.Options().Apply())
	if err != nil {
		return shapeErrorf(methodRotate, err)
	}
	for i, p := range s.pts {
		vec, err := matrix.ToFloat(p.Matrix(), r.Options().Apply())
		if err != nil {
			return shapeErrorf(methodRotate, err)
		}
		if err = r.Mul(vec, out); err != nil {
			return shapeErrorf(methodRotate, fmt.Errorf("vertex %d: %w", i, err))
		}
		snapped, err := matrix.ToInt(out, matrix.Nearest)
		if err != nil {
			return shapeErrorf(methodRotate, fmt.Errorf("vertex %d: %w", i, err))
		}
		if next[i], err = PointOf(snapped); err != nil {
			return shapeErrorf(methodRotate, fmt.Errorf("vertex %d: %w", i, err))
		}
	}
	s.pts = next
	s.recalc()

	return nil
}
