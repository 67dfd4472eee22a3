// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mesh

import "fmt"

// Vertex is a view structure for accessing the fan of triangles around one
// vertex of a Mesh.
type Vertex struct {
	idx int
	m   *Mesh
}

// Vertex returns the view of vertex vIdx.
// It returns an error if the index is out of range.
func (m *Mesh) Vertex(vIdx int) (Vertex, error) {
	if vIdx < 0 || vIdx >= m.NumVertices() {
		return Vertex{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", vIdx, m.NumVertices())
	}
	return Vertex{idx: vIdx, m: m}, nil
}

// Index returns the index of the vertex in the Mesh.
func (v Vertex) Index() int {
	return v.idx
}

// NumTriangles returns the number of triangles sharing the vertex.
// This equals the number of neighbors.
func (v Vertex) NumTriangles() int {
	return v.m.IncidentTriangleOffsets[v.idx+1] - v.m.IncidentTriangleOffsets[v.idx]
}

// TriangleIndices returns the indices of the incident triangles in the Mesh's
// Triangles, sorted in counter-clockwise order when looking from outside.
func (v Vertex) TriangleIndices() []int {
	return v.m.IncidentTriangles(v.idx)
}

// Triangle returns the incident triangle at the specified position.
// It returns an error if the position is out of range.
func (v Vertex) Triangle(i int) (TriangleKey, error) {
	it := v.TriangleIndices()
	if i < 0 || i >= len(it) {
		return TriangleKey{}, fmt.Errorf("Triangle: index %d out of range [0 %d)", i, len(it))
	}
	return v.m.Triangles[it[i]], nil
}

// NumNeighbors returns the number of neighboring vertices.
func (v Vertex) NumNeighbors() int {
	return v.NumTriangles()
}

// NeighborIndices returns the one-ring of the vertex, sorted in
// counter-clockwise order when looking from outside.
func (v Vertex) NeighborIndices() []int {
	return v.m.NeighborIndices[v.m.IncidentTriangleOffsets[v.idx]:v.m.IncidentTriangleOffsets[v.idx+1]]
}

// Neighbor returns the neighboring vertex at the specified position.
// It returns an error if the position is out of range.
func (v Vertex) Neighbor(i int) (Vertex, error) {
	ni := v.NeighborIndices()
	if i < 0 || i >= len(ni) {
		return Vertex{}, fmt.Errorf("Neighbor: index %d out of range [0 %d)", i, len(ni))
	}
	return v.m.Vertex(ni[i])
}
