// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mesh

// TriangleKey is an oriented triangle. Vertices are counterclockwise when
// the triangle is viewed from outside, and the smallest index is first.
type TriangleKey [3]int

// NewTriangleKey rotates (v0, v1, v2) so the smallest index comes first,
// keeping the winding. Keys of the same vertices with opposite winding
// differ.
func NewTriangleKey(v0, v1, v2 int) TriangleKey {
	switch {
	case v0 < v1 && v0 < v2:
		return TriangleKey{v0, v1, v2}
	case v1 < v0 && v1 < v2:
		return TriangleKey{v1, v2, v0}
	}
	return TriangleKey{v2, v0, v1}
}

// Edge returns the directed edge from vertex j to vertex j+1.
func (t TriangleKey) Edge(j int) (from, to int) {
	return t[j], t[(j+1)%3]
}

// Reversed returns the triangle with opposite winding.
func (t TriangleKey) Reversed() TriangleKey {
	return NewTriangleKey(t[0], t[2], t[1])
}

// EdgeKey is an unordered vertex pair, smallest index first.
type EdgeKey [2]int

func NewEdgeKey(v0, v1 int) EdgeKey {
	if v0 < v1 {
		return EdgeKey{v0, v1}
	}
	return EdgeKey{v1, v0}
}

func PrevVertex(t TriangleKey, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func NextVertex(t TriangleKey, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
