// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"

	"github.com/katalvlaran/cratefit/matrix"
)

// cuboidCorners is the corner count of a box.
const cuboidCorners = 8

// Cuboid returns the box graph with corners {0,d}×{0,w}×{0,h}.
//
// Corner i sits at depth d when i > 3, width w when i%4 ∈ {2,3} and height h
// when i is odd. Two corners are adjacent iff exactly one coordinate differs,
// which yields the 12 box edges.
//
// Errors: ErrInvalidExtent unless d, w, h > 0.
func Cuboid(d, w, h int) (*Shape, error) {
	if d <= 0 || w <= 0 || h <= 0 {
		return nil, shapeErrorf(methodCuboid, fmt.Errorf("%dx%dx%d: %w", d, w, h, ErrInvalidExtent))
	}
	corners := make([]Point, cuboidCorners)
	for i := range corners {
		if i > 3 {
			corners[i][AxisDepth] = d
		}
		if i%4 == 2 || i%4 == 3 {
			corners[i][AxisWidth] = w
		}
		if i%2 == 1 {
			corners[i][AxisHeight] = h
		}
	}

	adj, _ := matrix.NewInt(cuboidCorners, cuboidCorners) // fixed positive size
	var same int
	for i := range corners {
		for j := range corners {
			same = 0
			for a := 0; a < Dims; a++ {
				if corners[i][a] == corners[j][a] {
					same++
				}
			}
			if same == Dims-1 {
				_ = adj.Set(i, j, 1)
			}
		}
	}

	vertices := make([]*matrix.Dense[int], cuboidCorners)
	for i, p := range corners {
		vertices[i] = p.Matrix()
	}

	return New(vertices, adj)
}
