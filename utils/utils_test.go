// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
)

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, tt.seed)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, %v) len = %v, want %v", tt.cnt, tt.seed,
					len(points), tt.cnt)
			}
			cube := GenerateRandomPointsInCube(tt.cnt, tt.seed)
			if len(cube) != tt.cnt {
				t.Errorf("GenerateRandomPointsInCube(%v, %v) len = %v, want %v", tt.cnt, tt.seed,
					len(cube), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_OnUnitSphere(t *testing.T) {
	const (
		cnt     = 100
		seed    = 0
		epsilon = 1e-12
	)
	points := GenerateRandomPoints(cnt, seed)
	for i, p := range points {
		norm := p.Norm()
		if math.Abs(norm-1.0) > epsilon {
			t.Errorf("GenerateRandomPoints(%v, %v)[%d]: point norm = %v, want ≈1", cnt, seed,
				i, norm)
		}
	}
}

func TestGenerateRandomPointsInCube_Bounds(t *testing.T) {
	points := GenerateRandomPointsInCube(100, 7)
	for i, p := range points {
		if math.Abs(p.X) > 1 || math.Abs(p.Y) > 1 || math.Abs(p.Z) > 1 {
			t.Errorf("GenerateRandomPointsInCube(100, 7)[%d] = %v, want inside [-1, 1]^3", i, p)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomPoints(cnt, seed)
	b := GenerateRandomPoints(cnt, seed)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, %v) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}

func TestPermute(t *testing.T) {
	points := []r3.Vector{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}}
	shuffled, perm := Permute(points, 3)
	if len(shuffled) != len(points) || len(perm) != len(points) {
		t.Fatalf("Permute(...) lengths = %d, %d, want %d", len(shuffled), len(perm), len(points))
	}
	seen := make([]bool, len(points))
	for i, j := range perm {
		if shuffled[i] != points[j] {
			t.Errorf("shuffled[%d] = %v, want points[%d] = %v", i, shuffled[i], j, points[j])
		}
		seen[j] = true
	}
	for j, ok := range seen {
		if !ok {
			t.Errorf("perm misses index %d", j)
		}
	}
}
