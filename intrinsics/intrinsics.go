// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package intrinsics determines the intrinsic dimension of a point set:
// (nearly) a point, a line, a plane, or a solid.
package intrinsics

import (
	"math"

	"github.com/golang/geo/r3"
)

// Info describes the intrinsic dimension of a point set.
type Info struct {
	// Dimension is 0, 1, 2 or 3.
	Dimension int
	// Eps is the tolerance the set was classified with.
	Eps float64

	// Axis-aligned bounds and the largest range over the axes.
	Min, Max r3.Vector
	MaxRange float64

	// Origin is points[Extreme[0]]. For Dimension >= 1, Direction[0] is the
	// unit direction of the fitted line. For Dimension >= 2, Direction[1] is
	// orthogonal to it in the fitted plane and Direction[2] is the plane
	// normal.
	Origin    r3.Vector
	Direction [3]r3.Vector

	// Extreme holds indices of points spanning the set. Only the first
	// Dimension+1 entries are distinct.
	Extreme [4]int
	// ExtremeCCW reports whether points[Extreme[3]] lies on the positive side
	// of Direction[2]. Valid when Dimension == 3.
	ExtremeCCW bool
}

// Compute classifies points with tolerance eps. The set is a point when its
// largest axis range is at most eps, and lies on a line or plane when every
// point is within eps*MaxRange of it.
// NOTE: points must not be empty.
func Compute(points []r3.Vector, eps float64) Info {
	if len(points) == 0 {
		panic("Compute: empty point set")
	}
	info := Info{Eps: math.Max(eps, 0)}
	eps = info.Eps

	var indexMin, indexMax [3]int
	info.Min, info.Max = points[0], points[0]
	for i := 1; i < len(points); i++ {
		p := points[i]
		for axis := range 3 {
			v := component(p, axis)
			if v < component(info.Min, axis) {
				setComponent(&info.Min, axis, v)
				indexMin[axis] = i
			} else if v > component(info.Max, axis) {
				setComponent(&info.Max, axis, v)
				indexMax[axis] = i
			}
		}
	}

	info.MaxRange = info.Max.X - info.Min.X
	maxAxis := 0
	for axis := 1; axis < 3; axis++ {
		r := component(info.Max, axis) - component(info.Min, axis)
		if r > info.MaxRange {
			info.MaxRange = r
			maxAxis = axis
		}
	}
	info.Extreme = [4]int{indexMin[maxAxis], indexMax[maxAxis], indexMin[maxAxis], indexMin[maxAxis]}
	info.Origin = points[info.Extreme[0]]

	if info.MaxRange <= eps {
		info.Dimension = 0
		info.Extreme[1] = info.Extreme[0]
		return info
	}

	// Line through the extremes on the widest axis.
	info.Direction[0] = points[info.Extreme[1]].Sub(info.Origin).Normalize()
	maxDistance := 0.0
	info.Extreme[2] = info.Extreme[0]
	for i, p := range points {
		diff := p.Sub(info.Origin)
		proj := diff.Sub(info.Direction[0].Mul(info.Direction[0].Dot(diff)))
		if d := proj.Norm(); d > maxDistance {
			maxDistance = d
			info.Extreme[2] = i
		}
	}
	if maxDistance <= eps*info.MaxRange {
		info.Dimension = 1
		info.Extreme[2] = info.Extreme[1]
		info.Extreme[3] = info.Extreme[1]
		return info
	}

	// Plane through the line and the farthest point from it.
	d1 := points[info.Extreme[2]].Sub(info.Origin)
	d1 = d1.Sub(info.Direction[0].Mul(info.Direction[0].Dot(d1)))
	info.Direction[1] = d1.Normalize()
	info.Direction[2] = info.Direction[0].Cross(info.Direction[1])

	maxDistance = 0
	maxSign := 0
	info.Extreme[3] = info.Extreme[0]
	for i, p := range points {
		d := info.Direction[2].Dot(p.Sub(info.Origin))
		sign := 0
		switch {
		case d > 0:
			sign = 1
		case d < 0:
			sign = -1
		}
		if d = math.Abs(d); d > maxDistance {
			maxDistance = d
			maxSign = sign
			info.Extreme[3] = i
		}
	}
	if maxDistance <= eps*info.MaxRange {
		info.Dimension = 2
		info.Extreme[3] = info.Extreme[2]
		return info
	}

	info.Dimension = 3
	info.ExtremeCCW = maxSign > 0
	return info
}

// Centroid returns the average of points.
func Centroid(points []r3.Vector) r3.Vector {
	var c r3.Vector
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(points)))
}

func component(v r3.Vector, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

func setComponent(v *r3.Vector, axis int, x float64) {
	switch axis {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		v.Z = x
	}
}
