// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mesh

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Outward-facing faces of the tetrahedron (0,0,0), (1,0,0), (0,1,0), (0,0,1).
var tetrahedron = []TriangleKey{
	{1, 2, 3},
	{0, 3, 2},
	{0, 1, 3},
	{0, 2, 1},
}

// Outward-facing faces of the octahedron ±x, ±y, ±z in that vertex order.
var octahedron = []TriangleKey{
	NewTriangleKey(0, 2, 4),
	NewTriangleKey(2, 1, 4),
	NewTriangleKey(1, 3, 4),
	NewTriangleKey(3, 0, 4),
	NewTriangleKey(2, 0, 5),
	NewTriangleKey(1, 2, 5),
	NewTriangleKey(3, 1, 5),
	NewTriangleKey(0, 3, 5),
}

// Keys

func TestNewTriangleKey(t *testing.T) {
	tests := []struct {
		name       string
		v0, v1, v2 int
		want       TriangleKey
	}{
		{"sorted", 1, 2, 3, TriangleKey{1, 2, 3}},
		{"rotated once", 3, 1, 2, TriangleKey{1, 2, 3}},
		{"rotated twice", 2, 3, 1, TriangleKey{1, 2, 3}},
		{"opposite winding", 1, 3, 2, TriangleKey{1, 3, 2}},
		{"opposite winding rotated", 3, 2, 1, TriangleKey{1, 3, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTriangleKey(tt.v0, tt.v1, tt.v2)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NewTriangleKey(%d, %d, %d) mismatch (-want +got):\n%s", tt.v0, tt.v1, tt.v2, diff)
			}
		})
	}
}

func TestTriangleKey_Reversed(t *testing.T) {
	tri := NewTriangleKey(4, 7, 2)
	want := TriangleKey{2, 7, 4}
	if diff := cmp.Diff(want, tri.Reversed()); diff != "" {
		t.Errorf("%v.Reversed() mismatch (-want +got):\n%s", tri, diff)
	}
	if tri.Reversed().Reversed() != tri {
		t.Errorf("%v.Reversed().Reversed() = %v, want %v", tri, tri.Reversed().Reversed(), tri)
	}
}

func TestTriangleKey_Edge(t *testing.T) {
	tri := TriangleKey{1, 2, 3}
	want := [][2]int{{1, 2}, {2, 3}, {3, 1}}
	for j := range 3 {
		from, to := tri.Edge(j)
		if got := [2]int{from, to}; got != want[j] {
			t.Errorf("%v.Edge(%d) = %v, want %v", tri, j, got, want[j])
		}
	}
}

func TestNewEdgeKey(t *testing.T) {
	if got, want := NewEdgeKey(5, 2), (EdgeKey{2, 5}); got != want {
		t.Errorf("NewEdgeKey(5, 2) = %v, want %v", got, want)
	}
	if NewEdgeKey(2, 5) != NewEdgeKey(5, 2) {
		t.Errorf("NewEdgeKey(2, 5) != NewEdgeKey(5, 2)")
	}
}

// Triangle Prev/Next vertex

func TestPrevVertex(t *testing.T) {
	assertPanic := func(tri TriangleKey, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("PrevVertex(%v, %d) did not panic, want panic", tri, in)
			}
		}()
		PrevVertex(tri, in)
	}

	tri := TriangleKey{1, 2, 3}
	for i, in := range tri {
		got := PrevVertex(tri, in)
		want := tri[(i+2)%len(tri)]
		if got != want {
			t.Errorf("PrevVertex(%v, %d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

func TestNextVertex(t *testing.T) {
	assertPanic := func(tri TriangleKey, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("NextVertex(%v, %d) did not panic, want panic", tri, in)
			}
		}()
		NextVertex(tri, in)
	}

	tri := TriangleKey{1, 2, 3}
	for i, in := range tri {
		got := NextVertex(tri, in)
		want := tri[(i+1)%len(tri)]
		if got != want {
			t.Errorf("NextVertex(%v, %d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

// Mesh

func TestNew_Closed(t *testing.T) {
	tests := []struct {
		name        string
		tris        []TriangleKey
		numVertices int
		wantEdges   int
	}{
		{"tetrahedron", tetrahedron, 4, 6},
		{"octahedron", octahedron, 6, 12},
		{"tetrahedron with unused vertices", tetrahedron, 7, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustNew(t, tt.tris, tt.numVertices)
			if got := m.NumTriangles(); got != len(tt.tris) {
				t.Errorf("m.NumTriangles() = %v, want %v", got, len(tt.tris))
			}
			if got := m.NumEdges(); got != tt.wantEdges {
				t.Errorf("m.NumEdges() = %v, want %v", got, tt.wantEdges)
			}
			if got := m.NumVertices(); got != tt.numVertices {
				t.Errorf("m.NumVertices() = %v, want %v", got, tt.numVertices)
			}
			if !m.IsClosed() {
				t.Errorf("m.IsClosed() = false, want true")
			}
			if got := m.BoundaryEdges(); len(got) != 0 {
				t.Errorf("m.BoundaryEdges() = %v, want none", got)
			}
			// Euler characteristic of a sphere.
			if got := len(m.Vertices()) - m.NumEdges() + m.NumTriangles(); got != 2 {
				t.Errorf("V - E + F = %v, want 2", got)
			}
		})
	}
}

func TestNew_VerifyAdjacent(t *testing.T) {
	m := mustNew(t, octahedron, 6)
	for tIdx, tri := range m.Triangles {
		for j := range 3 {
			v0, v1 := tri.Edge(j)
			adj := m.Adjacent[tIdx][j]
			if adj == NoTriangle {
				t.Errorf("m.Adjacent[%d][%d] = NoTriangle, want a triangle", tIdx, j)
				continue
			}
			if NextVertex(m.Triangles[adj], v1) != v0 {
				t.Errorf("m.Triangles[%d] = %v does not hold edge (%d, %d)", adj, m.Triangles[adj], v1, v0)
			}
			owners, ok := m.Edge(v0, v1)
			if !ok {
				t.Fatalf("m.Edge(%d, %d) not found", v0, v1)
			}
			want := [2]int{min(tIdx, adj), max(tIdx, adj)}
			got := [2]int{min(owners[0], owners[1]), max(owners[0], owners[1])}
			if got != want {
				t.Errorf("m.Edge(%d, %d) = %v, want %v", v0, v1, owners, want)
			}
		}
	}
}

func TestNew_VerifyIncidentTrianglesSorted(t *testing.T) {
	m := mustNew(t, octahedron, 6)

	for vIdx := range m.NumVertices() {
		incidentTris := m.IncidentTriangles(vIdx)
		if len(incidentTris) != 4 {
			t.Fatalf("m.IncidentTriangles(%d) = %v, want 4 triangles", vIdx, incidentTris)
		}
		for i := range incidentTris {
			ct := m.Triangles[incidentTris[i]]
			nt := m.Triangles[incidentTris[(i+1)%len(incidentTris)]]

			prevVertex := PrevVertex(ct, vIdx)
			nextVertex := NextVertex(nt, vIdx)
			if prevVertex != nextVertex {
				t.Errorf("m.IncidentTriangles(%d) triangles %d and %d are not CCW neighbors", vIdx, i,
					(i+1)%len(incidentTris))
			}
		}
	}
}

func TestNew_Open(t *testing.T) {
	m := mustNew(t, []TriangleKey{{0, 1, 2}, {0, 2, 3}}, 4)
	if m.IsClosed() {
		t.Errorf("m.IsClosed() = true, want false")
	}
	wantBoundary := []EdgeKey{{0, 1}, {0, 3}, {1, 2}, {2, 3}}
	if diff := cmp.Diff(wantBoundary, m.BoundaryEdges()); diff != "" {
		t.Errorf("m.BoundaryEdges() mismatch (-want +got):\n%s", diff)
	}
	wantEdges := []EdgeKey{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}}
	if diff := cmp.Diff(wantEdges, m.Edges()); diff != "" {
		t.Errorf("m.Edges() mismatch (-want +got):\n%s", diff)
	}
	wantAdjacent := [][3]int{{NoTriangle, NoTriangle, 1}, {0, NoTriangle, NoTriangle}}
	if diff := cmp.Diff(wantAdjacent, m.Adjacent); diff != "" {
		t.Errorf("m.Adjacent mismatch (-want +got):\n%s", diff)
	}
	if owners, ok := m.Edge(2, 0); !ok || owners != [2]int{0, 1} {
		t.Errorf("m.Edge(2, 0) = %v, %v, want [0 1], true", owners, ok)
	}
	if _, ok := m.Edge(1, 3); ok {
		t.Errorf("m.Edge(1, 3) found, want missing")
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name        string
		tris        []TriangleKey
		numVertices int
		want        error
	}{
		{"repeated vertex", []TriangleKey{{0, 0, 1}}, 3, ErrDegenerate},
		{"vertex out of range", []TriangleKey{{0, 1, 5}}, 4, ErrVertexRange},
		{"negative vertex", []TriangleKey{{-1, 0, 1}}, 4, ErrVertexRange},
		{"inconsistent winding", []TriangleKey{{0, 1, 2}, {0, 1, 3}}, 4, ErrNonManifold},
		{"duplicated triangle", []TriangleKey{{0, 1, 2}, {0, 1, 2}}, 3, ErrNonManifold},
		{"three triangles on an edge", []TriangleKey{{0, 1, 2}, {1, 0, 3}, {0, 4, 1}}, 5, ErrNonManifold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.tris, tt.numVertices)
			if !errors.Is(err, tt.want) {
				t.Errorf("New(%v, %d) error = %v, want %v", tt.tris, tt.numVertices, err, tt.want)
			}
		})
	}
}

func TestMesh_Vertices(t *testing.T) {
	m := mustNew(t, tetrahedron, 7)
	want := []int{0, 1, 2, 3}
	if diff := cmp.Diff(want, m.Vertices()); diff != "" {
		t.Errorf("m.Vertices() mismatch (-want +got):\n%s", diff)
	}
	if got := m.IncidentTriangles(5); len(got) != 0 {
		t.Errorf("m.IncidentTriangles(5) = %v, want empty", got)
	}
}

func TestMesh_IncidentTriangles(t *testing.T) {
	assertPanic := func(m *Mesh, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("m.IncidentTriangles(%d) did not panic, want panic", in)
			}
		}()
		m.IncidentTriangles(in)
	}

	m := &Mesh{
		Triangles:               nil,
		IncidentTriangleIndices: []int{0, 1, 1, 1, 2},
		IncidentTriangleOffsets: []int{0, 2, 3, 5},
	}

	tests := []struct {
		name string
		in   int
		want []int
	}{
		{"index 0", 0, []int{0, 1}},
		{"index 1", 1, []int{1}},
		{"index 2", 2, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.IncidentTriangles(tt.in)
			if !cmp.Equal(tt.want, got) {
				t.Errorf("m.IncidentTriangles(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	assertPanic(m, -1)
	assertPanic(m, len(m.IncidentTriangleOffsets))
}

func TestSortIncidentTriangleIndicesCCW(t *testing.T) {
	expected3 := []int{0, 1, 2}
	incident3 := []int{0, 1, 2}
	tris3 := []TriangleKey{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 1},
	}
	sortIncidentTriangleIndicesCCW(0, incident3, tris3)
	if !cyclicEqual(incident3, expected3) {
		t.Errorf("sortIncidentTriangleIndicesCCW(...) incident3 = %v, want %v", incident3, expected3)
	}

	expected4 := []int{0, 1, 2, 3}
	incident4 := []int{1, 3, 2, 0}
	tris4 := []TriangleKey{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 4},
		{0, 4, 1},
	}
	sortIncidentTriangleIndicesCCW(0, incident4, tris4)
	if !cyclicEqual(incident4, expected4) {
		t.Errorf("sortIncidentTriangleIndicesCCW(...) incident4 = %v, want %v", incident4, expected4)
	}
}

// Benchmarks

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := New(octahedron, 6); err != nil {
			b.Fatalf("New(...) error = %v, want nil", err)
		}
	}
}

// Helpers

func mustNew(t *testing.T, tris []TriangleKey, numVertices int) *Mesh {
	t.Helper()
	m, err := New(tris, numVertices)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	return m
}

func cyclicEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	n := len(a)
	for i := range n {
		if b[0] != a[i] {
			continue
		}

		equal := true
		for j := range n {
			if a[(i+j)%n] != b[j] {
				equal = false
				break
			}
		}
		if equal {
			return true
		}
	}

	return false
}
