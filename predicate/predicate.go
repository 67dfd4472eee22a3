// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package predicate implements an exact orientation test for points in
// space. Interval arithmetic decides almost every query; the rest are
// recomputed exactly.
package predicate

import (
	"github.com/2dChan/hull3d/interval"
	"github.com/2dChan/hull3d/rational"
	"github.com/golang/geo/r3"
)

// Stats counts predicate evaluations.
type Stats struct {
	Evaluations int
	// Exact is the number of evaluations the intervals could not decide.
	Exact int
}

// Predicate evaluates orientation signs over a fixed slice of points. It owns
// its rounding context and exact-point cache and is not safe for concurrent
// use.
type Predicate struct {
	points  []r3.Vector
	rounder interval.Rounder
	cache   *rational.Cache
	stats   Stats
}

func New(points []r3.Vector) *Predicate {
	return &Predicate{
		points: points,
		cache:  rational.NewCache(points),
	}
}

// Reset binds the predicate to new points and clears the cache and stats.
func (p *Predicate) Reset(points []r3.Vector) {
	p.points = points
	p.cache.Reset(points)
	p.stats = Stats{}
}

func (p *Predicate) Stats() Stats {
	return p.stats
}

// Cache returns the exact-point cache.
func (p *Predicate) Cache() *rational.Cache {
	return p.cache
}

// Rounder returns the rounding context used by the interval fast path.
func (p *Predicate) Rounder() *interval.Rounder {
	return &p.rounder
}

// Sign returns the sign of det[T-V0, V1-V0, V2-V0] where T is point t and Vi
// is point vi. The result is +1 when T lies on the side the normal
// (V1-V0)x(V2-V0) points to, -1 on the other side, 0 when the four points are
// coplanar. The result is always the exact sign.
func (p *Predicate) Sign(t, v0, v1, v2 int) int {
	p.stats.Evaluations++
	if sign, ok := p.Determinant(t, v0, v1, v2).Sign(); ok {
		return sign
	}
	p.stats.Exact++
	return p.cache.Sign(t, v0, v1, v2)
}

// Determinant returns an interval containing det[T-V0, V1-V0, V2-V0].
//
// Mode switches are batched: every block computes all of its lower bounds in
// Down mode, then all of its upper bounds in Up mode.
func (p *Predicate) Determinant(t, v0, v1, v2 int) interval.Interval {
	test, vec0, vec1, vec2 := p.points[t], p.points[v0], p.points[v1], p.points[v2]
	r := &p.rounder
	release := r.Acquire(interval.Down)
	defer release()

	var x0, y0, z0, x1, y1, z1, x2, y2, z2 interval.Interval
	x0[0] = r.Sub(test.X, vec0.X)
	y0[0] = r.Sub(test.Y, vec0.Y)
	z0[0] = r.Sub(test.Z, vec0.Z)
	x1[0] = r.Sub(vec1.X, vec0.X)
	y1[0] = r.Sub(vec1.Y, vec0.Y)
	z1[0] = r.Sub(vec1.Z, vec0.Z)
	x2[0] = r.Sub(vec2.X, vec0.X)
	y2[0] = r.Sub(vec2.Y, vec0.Y)
	z2[0] = r.Sub(vec2.Z, vec0.Z)
	r.Set(interval.Up)
	x0[1] = r.Sub(test.X, vec0.X)
	y0[1] = r.Sub(test.Y, vec0.Y)
	z0[1] = r.Sub(test.Z, vec0.Z)
	x1[1] = r.Sub(vec1.X, vec0.X)
	y1[1] = r.Sub(vec1.Y, vec0.Y)
	z1[1] = r.Sub(vec1.Z, vec0.Z)
	x2[1] = r.Sub(vec2.X, vec0.X)
	y2[1] = r.Sub(vec2.Y, vec0.Y)
	z2[1] = r.Sub(vec2.Z, vec0.Z)

	var y1z2, y2z1, y2z0, y0z2, y0z1, y1z0 interval.Interval
	r.Set(interval.Down)
	y1z2[0] = r.MulLower(y1, z2)
	y2z1[0] = r.MulLower(y2, z1)
	y2z0[0] = r.MulLower(y2, z0)
	y0z2[0] = r.MulLower(y0, z2)
	y0z1[0] = r.MulLower(y0, z1)
	y1z0[0] = r.MulLower(y1, z0)
	r.Set(interval.Up)
	y1z2[1] = r.MulUpper(y1, z2)
	y2z1[1] = r.MulUpper(y2, z1)
	y2z0[1] = r.MulUpper(y2, z0)
	y0z2[1] = r.MulUpper(y0, z2)
	y0z1[1] = r.MulUpper(y0, z1)
	y1z0[1] = r.MulUpper(y1, z0)

	var c0, c1, c2 interval.Interval
	r.Set(interval.Down)
	c0[0] = r.Sub(y1z2[0], y2z1[1])
	c1[0] = r.Sub(y2z0[0], y0z2[1])
	c2[0] = r.Sub(y0z1[0], y1z0[1])
	r.Set(interval.Up)
	c0[1] = r.Sub(y1z2[1], y2z1[0])
	c1[1] = r.Sub(y2z0[1], y0z2[0])
	c2[1] = r.Sub(y0z1[1], y1z0[0])

	var det interval.Interval
	r.Set(interval.Down)
	det[0] = r.Add(r.Add(r.MulLower(x0, c0), r.MulLower(x1, c1)), r.MulLower(x2, c2))
	r.Set(interval.Up)
	det[1] = r.Add(r.Add(r.MulUpper(x0, c0), r.MulUpper(x1, c1)), r.MulUpper(x2, c2))
	return det
}
