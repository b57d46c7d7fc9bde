// SPDX-License-Identifier: MIT
package shape_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/cratefit/matrix"
	"github.com/katalvlaran/cratefit/shape"
	"github.com/stretchr/testify/require"
)

// triangle builds a fully connected 3-vertex shape.
func triangle(t *testing.T, a, b, c shape.Point) *shape.Shape {
	t.Helper()
	adj, err := matrix.NewFromRows([][]int{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	require.NoError(t, err)
	s, err := shape.New([]*matrix.Dense[int]{a.Matrix(), b.Matrix(), c.Matrix()}, adj)
	require.NoError(t, err)

	return s
}

// requireWireframe asserts the adjacency invariants after any mutation.
func requireWireframe(t *testing.T, s *shape.Shape) {
	t.Helper()
	adj := s.Adjacency()
	require.Equal(t, s.Len(), adj.Rows())
	require.NoError(t, matrix.ValidateSymmetric(adj))
	require.NoError(t, matrix.ValidateZeroDiagonal(adj))
	require.NoError(t, matrix.ValidateBinary(adj))
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	v2x1, _ := matrix.NewInt(2, 1)
	v3x2, _ := matrix.NewInt(3, 2)
	adj1, _ := matrix.NewInt(1, 1)
	adj2, _ := matrix.NewInt(2, 2)
	loop, _ := matrix.NewFromRows([][]int{{1, 0}, {0, 0}})
	asym, _ := matrix.NewFromRows([][]int{{0, 1}, {0, 0}})
	weighted, _ := matrix.NewFromRows([][]int{{0, 2}, {2, 0}})

	tests := []struct {
		name     string
		vertices []*matrix.Dense[int]
		adj      *matrix.Dense[int]
		wantErr  error
	}{
		{"empty", nil, adj1, shape.ErrNoVertices},
		{"ragged rows", []*matrix.Dense[int]{shape.NewVertex(0, 0, 0), v2x1}, adj2, shape.ErrRowMismatch},
		{"two rows each", []*matrix.Dense[int]{v2x1}, adj1, shape.ErrRowMismatch},
		{"two columns", []*matrix.Dense[int]{v3x2}, adj1, shape.ErrColumnMismatch},
		{"nil vertex", []*matrix.Dense[int]{nil}, adj1, matrix.ErrNilMatrix},
		{"nil adjacency", []*matrix.Dense[int]{shape.NewVertex(0, 0, 0)}, nil, matrix.ErrNilMatrix},
		{"adjacency size", []*matrix.Dense[int]{shape.NewVertex(0, 0, 0)}, adj2, matrix.ErrDimensionMismatch},
		{"self loop", []*matrix.Dense[int]{shape.NewVertex(0, 0, 0), shape.NewVertex(1, 0, 0)}, loop, matrix.ErrNonZeroDiagonal},
		{"asymmetric", []*matrix.Dense[int]{shape.NewVertex(0, 0, 0), shape.NewVertex(1, 0, 0)}, asym, shape.ErrBadAdjacency},
		{"weighted", []*matrix.Dense[int]{shape.NewVertex(0, 0, 0), shape.NewVertex(1, 0, 0)}, weighted, matrix.ErrNonBinary},
		{"duplicate", []*matrix.Dense[int]{shape.NewVertex(1, 2, 3), shape.NewVertex(1, 2, 3)}, adj2, shape.ErrDuplicateVertex},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := shape.New(tc.vertices, tc.adj)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
		})
	}
}

func TestNew_DeepCopiesInputs(t *testing.T) {
	v := shape.NewVertex(1, 2, 3)
	adj, _ := matrix.NewInt(1, 1)
	s, err := shape.New([]*matrix.Dense[int]{v}, adj)
	require.NoError(t, err)

	require.NoError(t, v.Set(0, 0, 42))
	got, err := s.Vertex(0)
	require.NoError(t, err)
	require.Equal(t, shape.Point{1, 2, 3}, mustPoint(t, got))

	// Mutating a returned vertex does not leak back either.
	require.NoError(t, got.Set(1, 0, 7))
	require.Equal(t, shape.Point{1, 2, 3}, s.Points()[0])
}

func mustPoint(t *testing.T, v *matrix.Dense[int]) shape.Point {
	t.Helper()
	p, err := shape.PointOf(v)
	require.NoError(t, err)

	return p
}

func TestVertexIndexAndConnections(t *testing.T) {
	s := triangle(t, shape.Point{0, 0, 0}, shape.Point{1, 0, 0}, shape.Point{0, 1, 0})

	i, ok := s.VertexIndex(shape.NewVertex(1, 0, 0))
	require.True(t, ok)
	require.Equal(t, 1, i)

	_, ok = s.VertexIndex(shape.NewVertex(5, 5, 5))
	require.False(t, ok)

	bad, _ := matrix.NewInt(2, 1)
	_, ok = s.VertexIndex(bad)
	require.False(t, ok)

	conns, err := s.Connections(0)
	require.NoError(t, err)
	require.Len(t, conns, 2)
	require.Equal(t, shape.Point{1, 0, 0}, mustPoint(t, conns[0]))
	require.Equal(t, shape.Point{0, 1, 0}, mustPoint(t, conns[1]))

	nb, err := s.Neighbors(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, nb)

	_, err = s.Connections(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = s.Vertex(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestExtentsAndBoundingCorner(t *testing.T) {
	s := triangle(t, shape.Point{-1, 0, 2}, shape.Point{3, 0, 2}, shape.Point{0, 4, 5})

	require.Equal(t, shape.Point{4, 4, 3}, s.Extents())
	require.Equal(t, 4, s.Extent(shape.AxisDepth))
	require.Equal(t, 3, s.Extent(shape.AxisHeight))
	require.Equal(t, 0, s.Extent(7))
	require.Equal(t, shape.Point{-1, 0, 2}, s.MinCorner())
	require.Equal(t, shape.Point{5, 6, 4}, s.BoundingCorner(shape.Point{1, 2, 1}))
}

func TestTranslateAndClone(t *testing.T) {
	s := triangle(t, shape.Point{0, 0, 0}, shape.Point{1, 0, 0}, shape.Point{0, 1, 0})
	c := s.Clone()

	s.Translate(shape.Point{2, 3, 4})
	require.Equal(t, []shape.Point{{2, 3, 4}, {3, 3, 4}, {2, 4, 4}}, s.Points())
	require.Equal(t, shape.Point{2, 3, 4}, s.MinCorner())
	require.Equal(t, shape.Point{1, 1, 0}, s.Extents())

	// The clone kept the original coordinates.
	require.Equal(t, []shape.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, c.Points())
	require.True(t, c.Adjacency().Equal(s.Adjacency()))
}

func TestEdgesAndDump(t *testing.T) {
	s := triangle(t, shape.Point{0, 0, 0}, shape.Point{1, 0, 0}, shape.Point{0, 1, 0})
	require.Equal(t, 3, s.EdgeCount())
	require.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, s.Edges())

	var buf bytes.Buffer
	require.NoError(t, s.Dump(&buf))
	require.Equal(t,
		"3 vertices, 3 edges\n"+
			"0 (0,0,0) -> 1, 2\n"+
			"1 (1,0,0) -> 0, 2\n"+
			"2 (0,1,0) -> 0, 1\n",
		buf.String())
}

func TestPointOf(t *testing.T) {
	_, err := shape.PointOf(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	wide, _ := matrix.NewInt(3, 2)
	_, err = shape.PointOf(wide)
	require.ErrorIs(t, err, shape.ErrColumnMismatch)

	p, err := shape.PointOf(shape.NewVertex(4, -5, 6))
	require.NoError(t, err)
	require.Equal(t, shape.Point{4, -5, 6}, p)
	require.Equal(t, "(4,-5,6)", p.String())
	require.Equal(t, shape.Point{5, -3, 9}, p.Add(shape.Point{1, 2, 3}))
	require.Equal(t, shape.Point{3, -7, 3}, p.Sub(shape.Point{1, 2, 3}))
}
