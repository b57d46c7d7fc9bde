// SPDX-License-Identifier: MIT
package shape_test

import (
	"testing"

	"github.com/katalvlaran/cratefit/shape"
	"github.com/stretchr/testify/require"
)

func TestCuboid_Corners(t *testing.T) {
	const d, w, h = 2, 3, 4
	s, err := shape.Cuboid(d, w, h)
	require.NoError(t, err)

	require.Equal(t, []shape.Point{
		{0, 0, 0}, {0, 0, h}, {0, w, 0}, {0, w, h},
		{d, 0, 0}, {d, 0, h}, {d, w, 0}, {d, w, h},
	}, s.Points())
	require.Equal(t, shape.Point{d, w, h}, s.Extents())
	requireWireframe(t, s)
}

func TestCuboid_AdjacentIffOneCoordinateDiffers(t *testing.T) {
	s, err := shape.Cuboid(5, 5, 5)
	require.NoError(t, err)
	require.Equal(t, 12, s.EdgeCount())

	pts := s.Points()
	adj := s.Adjacency()
	for i := range pts {
		nb, err := s.Neighbors(i)
		require.NoError(t, err)
		require.Len(t, nb, 3)
		for j := range pts {
			diff := 0
			for a := 0; a < shape.Dims; a++ {
				if pts[i][a] != pts[j][a] {
					diff++
				}
			}
			v, err := adj.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, diff == 1, v == 1, "corners %s %s", pts[i], pts[j])
		}
	}
}

func TestCuboid_InvalidExtent(t *testing.T) {
	for _, dims := range [][3]int{{0, 1, 1}, {1, -1, 1}, {1, 1, 0}} {
		_, err := shape.Cuboid(dims[0], dims[1], dims[2])
		require.ErrorIs(t, err, shape.ErrInvalidExtent)
	}
}
