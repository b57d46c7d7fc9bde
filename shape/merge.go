// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"

	"github.com/katalvlaran/cratefit/matrix"
)

// Merge grows s into the graph union of s and other, keyed by coordinates.
//
// Implementation:
//   - Stage 1: append every vertex of other that s does not hold yet, in
//     other's order; existing vertices keep their indices.
//   - Stage 2: allocate the larger adjacency and copy the old block verbatim.
//   - Stage 3: for each appended vertex, map its edges in other onto merged
//     indices and set them symmetrically.
//
// Edges of other between two vertices s already held are not imported; the
// union is driven by the appended vertices. Merging a shape with a copy of
// itself is therefore a no-op.
//
// Errors: matrix.ErrNilMatrix. Complexity: O(n·m + (n+m)²).
func (s *Shape) Merge(other *Shape) error {
	if other == nil {
		return shapeErrorf(methodMerge, matrix.ErrNilMatrix)
	}
	prev := len(s.pts)
	pts := s.Points()
	for _, p := range other.pts {
		if _, ok := indexIn(pts, p); !ok {
			pts = append(pts, p)
		}
	}
	if len(pts) == prev {
		return nil
	}

	n := len(pts)
	adj, err := matrix.NewInt(n, n)
	if err != nil {
		return shapeErrorf(methodMerge, err)
	}
	if err = adj.CopyValues(s.adj, 0, 0, 0, 0, prev, prev); err != nil {
		return shapeErrorf(methodMerge, err)
	}
	var nb []int
	for c := prev; c < n; c++ {
		oi, _ := other.indexOf(pts[c]) // pts[c] came from other
		if nb, err = other.Neighbors(oi); err != nil {
			return shapeErrorf(methodMerge, fmt.Errorf("vertex %s: %w", pts[c], err))
		}
		for _, k := range nb {
			j, _ := indexIn(pts, other.pts[k]) // every vertex of other is in pts
			_ = adj.Set(c, j, 1)
			_ = adj.Set(j, c, 1)
		}
	}

	s.pts = pts
	s.adj = adj
	s.recalc()

	return nil
}

func indexIn(pts []Point, p Point) (int, bool) {
	for i, q := range pts {
		if q == p {
			return i, true
		}
	}

	return 0, false
}
