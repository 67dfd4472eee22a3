// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating and manipulating point sets for convex hulls.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GenerateRandomPoints generates random points on the unit sphere. Every one
// of them is a vertex of their convex hull.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r3.Vector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r3.Vector, cnt)

	for i := range cnt {
		points[i] = s2.PointFromLatLng(s2.LatLng{
			Lat: s1.Angle((random.Float64() - 0.5) * math.Pi),
			Lng: s1.Angle((random.Float64()*2 - 1) * math.Pi),
		}).Vector
	}

	return points
}

// GenerateRandomPointsInCube generates random points in the cube [-1, 1]^3.
// The seed parameter ensures reproducibility.
func GenerateRandomPointsInCube(cnt int, seed int64) []r3.Vector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r3.Vector, cnt)

	for i := range cnt {
		points[i] = r3.Vector{
			X: random.Float64()*2 - 1,
			Y: random.Float64()*2 - 1,
			Z: random.Float64()*2 - 1,
		}
	}

	return points
}

// Permute returns a shuffled copy of points and perm, where
// shuffled[i] == points[perm[i]].
func Permute(points []r3.Vector, seed int64) (shuffled []r3.Vector, perm []int) {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	perm = random.Perm(len(points))
	shuffled = make([]r3.Vector, len(points))
	for i, j := range perm {
		shuffled[i] = points[j]
	}
	return shuffled, perm
}
