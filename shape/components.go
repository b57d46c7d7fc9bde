// SPDX-License-Identifier: MIT

package shape

import "slices"

// Components partitions the vertex indices into connected components of the
// wireframe. Each component is ascending; components are ordered by their
// smallest index. A container frame with k disjoint committed blocks that
// touch neither the walls nor each other has k+1 components.
//
// Implementation: breadth-first search from every unvisited vertex in index
// order, reading neighbors from the adjacency rows.
// Complexity: O(n²).
func (s *Shape) Components() [][]int {
	n := len(s.pts)
	visited := make([]bool, n)
	var out [][]int
	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue = append(queue[:0], start)
		comp := []int{}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			nb, _ := s.Neighbors(v) // v < n
			for _, u := range nb {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}
