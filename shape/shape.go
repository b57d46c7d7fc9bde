// SPDX-License-Identifier: MIT

// Package shape - Shape storage, construction and read accessors.
//
// Storage layout:
//   - pts is the vertex arena; vertex i is pts[i].
//   - adj is an n×n integer matrix, adj[i][j] == 1 iff i and j share an edge.
//   - lo/ext cache the bounding box (min corner and per-axis extent).
//
// Complexity quicksheet:
//   - New: O(n²) (adjacency validation, duplicate scan).
//   - VertexIndex: O(n) linear scan; Connections/Neighbors: O(n).
//   - Clone: O(n²).
package shape

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/cratefit/matrix"
)

// Method tags for error wrapping.
const (
	methodNew         = "New"
	methodVertex      = "Vertex"
	methodConnections = "Connections"
	methodRotate      = "Rotate"
	methodMerge       = "Merge"
	methodCuboid      = "Cuboid"
)

// Shape is a wireframe polyhedron on the integer grid.
type Shape struct {
	pts []Point
	adj *matrix.Dense[int]
	lo  Point
	ext Point
}

// New builds a Shape from 3×1 integer vertices and an n×n adjacency matrix.
// Both inputs are deep-copied; the caller keeps ownership of its matrices.
//
// Implementation:
//   - Stage 1: non-empty list; identical row counts (ErrRowMismatch); one
//     column each (ErrColumnMismatch); three rows (ErrRowMismatch).
//   - Stage 2: adjacency is n×n (matrix.ErrDimensionMismatch) and is a
//     symmetric zero-diagonal 0/1 matrix (ErrBadAdjacency).
//   - Stage 3: no two vertices share a position (ErrDuplicateVertex).
//   - Stage 4: cache extents.
//
// Complexity: O(n²).
func New(vertices []*matrix.Dense[int], adj *matrix.Dense[int]) (*Shape, error) {
	if len(vertices) == 0 {
		return nil, shapeErrorf(methodNew, ErrNoVertices)
	}
	for i, v := range vertices {
		if v == nil {
			return nil, shapeErrorf(methodNew, fmt.Errorf("vertex %d: %w", i, matrix.ErrNilMatrix))
		}
	}
	rows := vertices[0].Rows()
	for i, v := range vertices {
		if v.Rows() != rows {
			return nil, shapeErrorf(methodNew, fmt.Errorf("vertex %d has %d rows, want %d: %w", i, v.Rows(), rows, ErrRowMismatch))
		}
		if v.Cols() != 1 {
			return nil, shapeErrorf(methodNew, fmt.Errorf("vertex %d has %d columns: %w", i, v.Cols(), ErrColumnMismatch))
		}
	}
	if rows != Dims {
		return nil, shapeErrorf(methodNew, fmt.Errorf("vertices have %d rows, want %d: %w", rows, Dims, ErrRowMismatch))
	}

	if adj == nil {
		return nil, shapeErrorf(methodNew, fmt.Errorf("adjacency: %w", matrix.ErrNilMatrix))
	}
	n := len(vertices)
	if adj.Rows() != n || adj.Cols() != n {
		return nil, shapeErrorf(methodNew, fmt.Errorf("adjacency %dx%d for %d vertices: %w",
			adj.Rows(), adj.Cols(), n, matrix.ErrDimensionMismatch))
	}
	if err := validateAdjacency(adj); err != nil {
		return nil, shapeErrorf(methodNew, err)
	}

	s := &Shape{pts: make([]Point, n), adj: adj.Clone()}
	for i, v := range vertices {
		s.pts[i], _ = PointOf(v) // shape already validated
		if j, ok := s.indexOf(s.pts[i]); ok && j < i {
			return nil, shapeErrorf(methodNew, fmt.Errorf("vertices %d and %d at %s: %w", j, i, s.pts[i], ErrDuplicateVertex))
		}
	}
	s.recalc()

	return s, nil
}

// validateAdjacency enforces the wireframe invariants on a square matrix.
func validateAdjacency(adj *matrix.Dense[int]) error {
	for _, check := range []func(*matrix.Dense[int]) error{
		matrix.ValidateBinary[int],
		matrix.ValidateZeroDiagonal[int],
		matrix.ValidateSymmetric[int],
	} {
		if err := check(adj); err != nil {
			return fmt.Errorf("%w: %w", ErrBadAdjacency, err)
		}
	}

	return nil
}

// recalc refreshes the cached bounding box from the vertex arena.
func (s *Shape) recalc() {
	lo := Point{math.MaxInt, math.MaxInt, math.MaxInt}
	hi := Point{math.MinInt, math.MinInt, math.MinInt}
	for _, p := range s.pts {
		for a := 0; a < Dims; a++ {
			lo[a] = min(lo[a], p[a])
			hi[a] = max(hi[a], p[a])
		}
	}
	s.lo = lo
	s.ext = hi.Sub(lo)
}

// indexOf returns the first vertex at p.
func (s *Shape) indexOf(p Point) (int, bool) {
	for i, q := range s.pts {
		if q == p {
			return i, true
		}
	}

	return 0, false
}

// Len returns the vertex count.
func (s *Shape) Len() int { return len(s.pts) }

// VertexIndex returns the index of the first vertex equal to v by exact
// coordinates. A missing vertex, or a v that is not 3×1, yields (0, false).
// Complexity: O(n).
func (s *Shape) VertexIndex(v *matrix.Dense[int]) (int, bool) {
	p, err := PointOf(v)
	if err != nil {
		return 0, false
	}

	return s.indexOf(p)
}

// PointIndex is VertexIndex for a Point.
func (s *Shape) PointIndex(p Point) (int, bool) { return s.indexOf(p) }

// Vertex returns a fresh 3×1 copy of vertex i.
// Errors: matrix.ErrOutOfRange.
func (s *Shape) Vertex(i int) (*matrix.Dense[int], error) {
	if i < 0 || i >= len(s.pts) {
		return nil, shapeErrorf(methodVertex, fmt.Errorf("index %d of %d: %w", i, len(s.pts), matrix.ErrOutOfRange))
	}

	return s.pts[i].Matrix(), nil
}

// Points returns a copy of the vertex arena in index order.
func (s *Shape) Points() []Point {
	out := make([]Point, len(s.pts))
	copy(out, s.pts)

	return out
}

// Neighbors returns the indices adjacent to vertex i in ascending order.
// Errors: matrix.ErrOutOfRange.
// Complexity: O(n).
func (s *Shape) Neighbors(i int) ([]int, error) {
	row, err := s.adj.Row(i)
	if err != nil {
		return nil, shapeErrorf(methodConnections, err)
	}
	var out []int
	for j, v := range row {
		if v != 0 {
			out = append(out, j)
		}
	}

	return out, nil
}

// Connections returns copies of the vertices adjacent to vertex i, read from
// its adjacency row in ascending index order.
// Errors: matrix.ErrOutOfRange.
func (s *Shape) Connections(i int) ([]*matrix.Dense[int], error) {
	idx, err := s.Neighbors(i)
	if err != nil {
		return nil, err
	}
	out := make([]*matrix.Dense[int], len(idx))
	for k, j := range idx {
		out[k] = s.pts[j].Matrix()
	}

	return out, nil
}

// Adjacency returns a copy of the adjacency matrix.
func (s *Shape) Adjacency() *matrix.Dense[int] { return s.adj.Clone() }

// Edges lists every edge once as (i, j) with i < j, ordered by i then j.
// Complexity: O(n²).
func (s *Shape) Edges() [][2]int {
	var out [][2]int
	n := len(s.pts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v, _ := s.adj.At(i, j); v != 0 {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// EdgeCount returns the number of undirected edges.
func (s *Shape) EdgeCount() int {
	var total int
	for i := range s.pts {
		c, _ := s.adj.CountRow(i)
		total += c
	}

	return total / 2
}

// Extent returns the bounding-box size along axis (max - min coordinate).
// Axes outside [0, Dims) report 0.
func (s *Shape) Extent(axis int) int {
	if axis < 0 || axis >= Dims {
		return 0
	}

	return s.ext[axis]
}

// Extents returns all three per-axis extents.
func (s *Shape) Extents() Point { return s.ext }

// MinCorner returns the per-axis minimum coordinate over all vertices.
func (s *Shape) MinCorner() Point { return s.lo }

// BoundingCorner returns the corner opposite to min: min + Extents().
func (s *Shape) BoundingCorner(min Point) Point { return min.Add(s.ext) }

// Translate shifts every vertex by p.
func (s *Shape) Translate(p Point) {
	for i := range s.pts {
		s.pts[i] = s.pts[i].Add(p)
	}
	s.lo = s.lo.Add(p)
}

// Clone returns a deep copy; no storage is shared.
func (s *Shape) Clone() *Shape {
	return &Shape{pts: s.Points(), adj: s.adj.Clone(), lo: s.lo, ext: s.ext}
}

// Dump writes every vertex with its neighbor indices, one per line:
//
//	3 vertices, 3 edges
//	0 (0,0,0) -> 1, 2
func (s *Shape) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d vertices, %d edges\n", len(s.pts), s.EdgeCount()); err != nil {
		return err
	}
	for i, p := range s.pts {
		nb, _ := s.Neighbors(i)
		if _, err := fmt.Fprintf(w, "%d %s -> %s\n", i, p, joinInts(nb)); err != nil {
			return err
		}
	}

	return nil
}

func joinInts(xs []int) string {
	var b []byte
	for k, x := range xs {
		if k > 0 {
			b = append(b, ", "...)
		}
		b = fmt.Appendf(b, "%d", x)
	}

	return string(b)
}
