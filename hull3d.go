// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull3d computes the convex hull of points in space by incremental
// insertion. Every sign decision is exact, so the hull is a closed,
// consistently oriented triangle mesh for any finite input.
package hull3d

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/hull3d/intrinsics"
	"github.com/2dChan/hull3d/mesh"
	"github.com/2dChan/hull3d/predicate"
	"github.com/golang/geo/r3"
)

const (
	defaultEps = 0
	minPoints  = 4
)

var (
	ErrTooFewPoints = errors.New("hull3d: insufficient points for a hull (minimum 4 required)")
	ErrNonFinite    = errors.New("hull3d: point coordinate is not finite")
	ErrInvalidEps   = errors.New("hull3d: eps must be finite and non-negative")
)

// Line is the set of points Origin + t*Direction.
type Line struct {
	Origin    r3.Vector
	Direction r3.Vector
}

// Plane is the set of points X with Normal·X = Constant.
type Plane struct {
	Normal   r3.Vector
	Constant float64
}

type Options struct {
	Eps float64
}

type Option func(*Options) error

// WithEps sets the tolerance used to detect a (nearly) degenerate point set.
// Zero, the default, only treats exactly degenerate sets as such.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			return fmt.Errorf("WithEps(%v): %w", eps, ErrInvalidEps)
		}
		o.Eps = eps
		return nil
	}
}

// Hull computes convex hulls. The same Hull may be reused for several point
// sets; each Compute replaces the previous result. A Hull is not safe for
// concurrent use.
type Hull struct {
	eps       float64
	dimension int
	point     r3.Vector
	line      Line
	plane     Plane

	points          []r3.Vector
	numUniquePoints int
	triangles       []mesh.TriangleKey

	pred *predicate.Predicate
	mesh *mesh.Mesh
}

func New() *Hull {
	return &Hull{pred: predicate.New(nil)}
}

// NewHull is shorthand for New followed by Compute.
func NewHull(points []r3.Vector, setters ...Option) (*Hull, bool, error) {
	h := New()
	ok, err := h.Compute(points, setters...)
	if err != nil {
		return nil, false, err
	}
	return h, ok, nil
}

// Compute builds the convex hull of points. It returns true when the points
// span a solid. It returns false when they are (nearly) a point, a line or a
// plane; Dimension and the matching Point, Line or Plane then describe them.
// A non-nil error reports invalid arguments and leaves the Hull unchanged.
// NOTE: points must not be modified until the Hull is no longer used.
func (h *Hull) Compute(points []r3.Vector, setters ...Option) (bool, error) {
	opts := Options{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return false, err
		}
	}
	if len(points) < minPoints {
		return false, ErrTooFewPoints
	}
	for i, p := range points {
		if !isFinite(p) {
			return false, fmt.Errorf("points[%d] = %v: %w", i, p, ErrNonFinite)
		}
	}

	h.reset(points, opts.Eps)

	info := intrinsics.Compute(points, opts.Eps)
	switch info.Dimension {
	case 0:
		h.point = intrinsics.Centroid(points)
		return false, nil
	case 1:
		h.setLine(info)
		return false, nil
	case 2:
		h.setFlat(info)
		return false, nil
	}

	extreme, ok := h.orientTetrahedron(info.Extreme)
	if !ok {
		h.setFlat(info)
		return false, nil
	}
	h.dimension = 3
	e0, e1, e2, e3 := extreme[0], extreme[1], extreme[2], extreme[3]
	h.triangles = append(h.triangles,
		mesh.NewTriangleKey(e1, e2, e3),
		mesh.NewTriangleKey(e0, e3, e2),
		mesh.NewTriangleKey(e0, e1, e3),
		mesh.NewTriangleKey(e0, e2, e1),
	)

	processed := make(map[r3.Vector]struct{}, len(points))
	for _, e := range extreme {
		processed[points[e]] = struct{}{}
	}
	for i, p := range points {
		if _, ok := processed[p]; ok {
			continue
		}
		h.update(i)
		processed[p] = struct{}{}
	}
	h.numUniquePoints = len(processed)
	return true, nil
}

func (h *Hull) reset(points []r3.Vector, eps float64) {
	h.eps = eps
	h.dimension = 0
	h.point = r3.Vector{}
	h.line = Line{}
	h.plane = Plane{}
	h.points = points
	h.numUniquePoints = 0
	h.triangles = nil
	h.pred.Reset(points)
	h.mesh = nil
}

func (h *Hull) setLine(info intrinsics.Info) {
	h.dimension = 1
	h.line = Line{Origin: info.Origin, Direction: info.Direction[0]}
}

// setFlat describes points that span at most a plane. Distances in the
// classifier are measured in floating point, so exactly collinear points may
// arrive here with rounding noise; they are reported as a line.
func (h *Hull) setFlat(info intrinsics.Info) {
	if h.collinear(info.Extreme[0], info.Extreme[1]) {
		h.setLine(info)
		return
	}
	h.setPlane(info)
}

// collinear reports whether every point lies exactly on the line through
// points a and b.
func (h *Hull) collinear(a, b int) bool {
	cache := h.pred.Cache()
	pa := cache.Point(a)
	dir := cache.Point(b).Sub(pa)
	for i := range h.points {
		c := cache.Point(i).Sub(pa).Cross(dir)
		if c.X.Sign() != 0 || c.Y.Sign() != 0 || c.Z.Sign() != 0 {
			return false
		}
	}
	return true
}

func (h *Hull) setPlane(info intrinsics.Info) {
	h.dimension = 2
	normal := info.Direction[2]
	h.plane = Plane{Normal: normal, Constant: normal.Dot(info.Origin)}
}

// orientTetrahedron orders the extreme points so that the fourth lies on the
// positive side of the first three. The classifier's hint is computed in
// floating point, so the side is decided exactly here. It returns false when
// every point is exactly coplanar with the first three extremes.
func (h *Hull) orientTetrahedron(extreme [4]int) ([4]int, bool) {
	e0, e1, e2 := extreme[0], extreme[1], extreme[2]
	sign := h.pred.Sign(extreme[3], e0, e1, e2)
	if sign == 0 {
		for i := range h.points {
			if sign = h.pred.Sign(i, e0, e1, e2); sign != 0 {
				extreme[3] = i
				break
			}
		}
		if sign == 0 {
			return extreme, false
		}
	}
	if sign < 0 {
		extreme[2], extreme[3] = extreme[3], extreme[2]
	}
	return extreme, true
}

// terminatorEdge is a directed edge of a back-facing triangle and the number
// of back-facing triangles seen sharing it.
type terminatorEdge struct {
	from, to int
	count    int
}

// update inserts point i. Triangles facing i are removed. The back-facing
// triangles stay, and the boundary between both sets, the terminator, is
// closed with new triangles fanning out from i.
func (h *Hull) update(i int) {
	terminator := make(map[mesh.EdgeKey]terminatorEdge)
	backFaces := make([]mesh.TriangleKey, 0, len(h.triangles)+8)
	existsFrontFacing := false
	for _, tri := range h.triangles {
		// Triangles coplanar with i count as back-facing.
		if h.pred.Sign(i, tri[0], tri[1], tri[2]) > 0 {
			existsFrontFacing = true
			continue
		}
		backFaces = append(backFaces, tri)

		// An edge shared by two back-facing triangles is toggled out; the
		// edges left with a single sighting border a front-facing triangle.
		for j0, j1 := 2, 0; j1 < 3; j0, j1 = j1, j1+1 {
			v0, v1 := tri[j0], tri[j1]
			key := mesh.NewEdgeKey(v0, v1)
			edge, ok := terminator[key]
			switch {
			case !ok:
				edge = terminatorEdge{from: v0, to: v1}
			case edge.count >= 2 || edge.from == v0:
				panic(fmt.Sprintf("hull3d: edge (%d, %d) breaks the manifold while inserting point %d", v0, v1, i))
			}
			edge.count++
			terminator[key] = edge
		}
	}
	if !existsFrontFacing {
		// i is inside or on the hull.
		return
	}

	numBack := len(backFaces)
	for _, tri := range backFaces[:numBack] {
		for j0, j1 := 2, 0; j1 < 3; j0, j1 = j1, j1+1 {
			edge := terminator[mesh.NewEdgeKey(tri[j0], tri[j1])]
			if edge.count == 1 {
				backFaces = append(backFaces, mesh.NewTriangleKey(i, edge.to, edge.from))
			}
		}
	}
	if len(backFaces)-numBack < 3 {
		panic(fmt.Sprintf("hull3d: terminator of point %d has %d edges", i, len(backFaces)-numBack))
	}
	h.triangles = backFaces
}

// Eps returns the tolerance used by the last Compute.
func (h *Hull) Eps() float64 {
	return h.eps
}

// Dimension returns the intrinsic dimension of the points, 0 to 3.
func (h *Hull) Dimension() int {
	return h.dimension
}

// Point returns the centroid of the points when Dimension is 0.
func (h *Hull) Point() r3.Vector {
	return h.point
}

// Line returns the line the points lie on when Dimension is 1. Projecting a
// point X on it gives t = Direction·(X-Origin).
func (h *Hull) Line() Line {
	return h.line
}

// Plane returns the plane the points lie on when Dimension is 2.
func (h *Hull) Plane() Plane {
	return h.plane
}

func (h *Hull) NumPoints() int {
	return len(h.points)
}

// NumUniquePoints returns the number of distinct points processed. It is
// zero unless Dimension is 3.
func (h *Hull) NumUniquePoints() int {
	return h.numUniquePoints
}

func (h *Hull) Points() []r3.Vector {
	return h.points
}

// Triangles returns the hull faces, counterclockwise when viewed from
// outside. The slice is owned by the Hull; a later Compute does not modify
// it.
func (h *Hull) Triangles() []mesh.TriangleKey {
	return h.triangles
}

// HullVertices returns the indices of the points that are hull vertices, in
// ascending order.
func (h *Hull) HullVertices() []int {
	if len(h.triangles) == 0 {
		return nil
	}
	return h.Mesh().Vertices()
}

// Stats returns the predicate counters of the last Compute.
func (h *Hull) Stats() predicate.Stats {
	return h.pred.Stats()
}

// Mesh returns the hull as a linked mesh. It is built on the first call after
// each Compute. It returns nil when no hull was built.
func (h *Hull) Mesh() *mesh.Mesh {
	if h.dimension < 3 {
		return nil
	}
	if h.mesh == nil {
		m, err := mesh.New(h.triangles, len(h.points))
		if err != nil {
			panic(fmt.Sprintf("hull3d: hull is not a manifold: %v", err))
		}
		h.mesh = m
	}
	return h.mesh
}

func isFinite(p r3.Vector) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}
