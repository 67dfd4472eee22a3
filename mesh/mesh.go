// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package mesh links a set of oriented triangles into an edge-manifold mesh
// with triangle adjacency and sorted vertex fans.
package mesh

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrVertexRange = errors.New("mesh: vertex index out of range")
	ErrDegenerate  = errors.New("mesh: triangle with repeated vertex")
	ErrNonManifold = errors.New("mesh: edge is not manifold")
)

// NoTriangle marks a missing neighbor across a boundary edge.
const NoTriangle = -1

type Mesh struct {
	Triangles []TriangleKey
	// NOTE: Adjacent[t][j] is across the edge Triangles[t][j] -> Triangles[t][(j+1)%3].
	Adjacent [][3]int

	// NOTE: Sort in CCW per vertex(look from outside)
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
	// NOTE: NeighborIndices[IncidentTriangleOffsets[v]+i] is the vertex after v in
	// its i-th incident triangle, so the one-ring is also sorted in CCW.
	NeighborIndices []int

	edges map[EdgeKey][2]int
}

// New links tris over vertices [0, numVertices). Every directed edge may be
// used by at most one triangle, so an edge borders at most two triangles and
// those have opposite winding.
func New(tris []TriangleKey, numVertices int) (*Mesh, error) {
	numTriangles := len(tris)
	m := &Mesh{
		Triangles:               make([]TriangleKey, numTriangles),
		Adjacent:                make([][3]int, numTriangles),
		IncidentTriangleIndices: make([]int, numTriangles*3),
		IncidentTriangleOffsets: make([]int, numVertices+1),
		NeighborIndices:         make([]int, numTriangles*3),
		edges:                   make(map[EdgeKey][2]int, numTriangles*3/2),
	}
	copy(m.Triangles, tris)

	directed := make(map[[2]int]int, numTriangles*3)
	for tIdx, tri := range m.Triangles {
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			return nil, fmt.Errorf("triangle %d %v: %w", tIdx, tri, ErrDegenerate)
		}
		for j := range 3 {
			v0, v1 := tri.Edge(j)
			if v0 < 0 || v0 >= numVertices {
				return nil, fmt.Errorf("triangle %d vertex %d: %w", tIdx, v0, ErrVertexRange)
			}
			if other, ok := directed[[2]int{v0, v1}]; ok {
				return nil, fmt.Errorf("edge (%d, %d) of triangles %d and %d: %w",
					v0, v1, other, tIdx, ErrNonManifold)
			}
			directed[[2]int{v0, v1}] = tIdx

			key := NewEdgeKey(v0, v1)
			owners, ok := m.edges[key]
			if !ok {
				owners = [2]int{tIdx, NoTriangle}
			} else {
				owners[1] = tIdx
			}
			m.edges[key] = owners
		}
		m.IncidentTriangleOffsets[tri[0]+1]++
		m.IncidentTriangleOffsets[tri[1]+1]++
		m.IncidentTriangleOffsets[tri[2]+1]++
	}

	for tIdx, tri := range m.Triangles {
		for j := range 3 {
			v0, v1 := tri.Edge(j)
			if twin, ok := directed[[2]int{v1, v0}]; ok {
				m.Adjacent[tIdx][j] = twin
			} else {
				m.Adjacent[tIdx][j] = NoTriangle
			}
		}
	}

	for i := range numVertices {
		m.IncidentTriangleOffsets[i+1] += m.IncidentTriangleOffsets[i]
	}
	nxt := make([]int, numVertices)
	copy(nxt, m.IncidentTriangleOffsets[:numVertices])
	for tIdx, tri := range m.Triangles {
		for _, v := range tri {
			m.IncidentTriangleIndices[nxt[v]] = tIdx
			nxt[v]++
		}
	}
	for v := range numVertices {
		it := m.IncidentTriangles(v)
		sortIncidentTriangleIndicesCCW(v, it, m.Triangles)
		offset := m.IncidentTriangleOffsets[v]
		for i, tIdx := range it {
			m.NeighborIndices[offset+i] = NextVertex(m.Triangles[tIdx], v)
		}
	}

	return m, nil
}

func (m *Mesh) NumVertices() int {
	return len(m.IncidentTriangleOffsets) - 1
}

func (m *Mesh) NumTriangles() int {
	return len(m.Triangles)
}

func (m *Mesh) NumEdges() int {
	return len(m.edges)
}

// Edge returns the triangles sharing the edge between a and b, in either
// direction. The second entry is NoTriangle for a boundary edge.
func (m *Mesh) Edge(a, b int) ([2]int, bool) {
	owners, ok := m.edges[NewEdgeKey(a, b)]
	return owners, ok
}

// Edges returns every edge in ascending order.
func (m *Mesh) Edges() []EdgeKey {
	keys := make([]EdgeKey, 0, len(m.edges))
	for k := range m.edges {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareEdgeKeys)
	return keys
}

// BoundaryEdges returns the edges bordered by a single triangle, in
// ascending order.
func (m *Mesh) BoundaryEdges() []EdgeKey {
	var keys []EdgeKey
	for k, owners := range m.edges {
		if owners[1] == NoTriangle {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, compareEdgeKeys)
	return keys
}

// IsClosed reports whether every edge borders two triangles.
func (m *Mesh) IsClosed() bool {
	for _, owners := range m.edges {
		if owners[1] == NoTriangle {
			return false
		}
	}
	return true
}

// Vertices returns the vertices used by at least one triangle, ascending.
func (m *Mesh) Vertices() []int {
	var vs []int
	for v := range m.NumVertices() {
		if m.IncidentTriangleOffsets[v+1] > m.IncidentTriangleOffsets[v] {
			vs = append(vs, v)
		}
	}
	return vs
}

func (m *Mesh) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(m.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := m.IncidentTriangleOffsets[vIdx]
	end := m.IncidentTriangleOffsets[vIdx+1]
	return m.IncidentTriangleIndices[start:end]
}

func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris []TriangleKey) {
	n := len(incidentTris)
	for i := 1; i < n; i++ {
		// The next triangle counterclockwise shares the far edge of the
		// previous one.
		prv := PrevVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			nxt := NextVertex(tris[incidentTris[j]], vIdx)
			if nxt == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

func compareEdgeKeys(a, b EdgeKey) int {
	if a[0] != b[0] {
		return a[0] - b[0]
	}
	return a[1] - b[1]
}
