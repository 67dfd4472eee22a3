// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package rational keeps exact copies of input points for predicates that
// cannot be decided in floating point.
package rational

import (
	"github.com/golang/geo/r3"
)

// Cache converts points to r3.PreciseVector on first use. PreciseVector
// components are big.Float values at big.MaxPrec, so every float64 is
// represented exactly and differences, products and sums of them stay exact.
type Cache struct {
	points    []r3.Vector
	precise   []r3.PreciseVector
	converted []bool
	count     int
}

func NewCache(points []r3.Vector) *Cache {
	c := &Cache{}
	c.Reset(points)
	return c
}

// Reset drops every converted point and binds the cache to a new input.
func (c *Cache) Reset(points []r3.Vector) {
	c.points = points
	c.count = 0
	if cap(c.precise) >= len(points) {
		c.precise = c.precise[:len(points)]
		c.converted = c.converted[:len(points)]
		clear(c.precise)
		clear(c.converted)
		return
	}
	c.precise = make([]r3.PreciseVector, len(points))
	c.converted = make([]bool, len(points))
}

func (c *Cache) Len() int {
	return len(c.points)
}

// Converted reports whether point i has been converted.
func (c *Cache) Converted(i int) bool {
	return c.converted[i]
}

// NumConverted returns the number of points converted since the last Reset.
func (c *Cache) NumConverted() int {
	return c.count
}

// Point returns the exact form of point i.
func (c *Cache) Point(i int) r3.PreciseVector {
	if !c.converted[i] {
		c.precise[i] = r3.PreciseVectorFromVector(c.points[i])
		c.converted[i] = true
		c.count++
	}
	return c.precise[i]
}

// Sign returns the exact sign of (T-V0)·((V1-V0)x(V2-V0)) for T = point t
// and Vi = point vi.
func (c *Cache) Sign(t, v0, v1, v2 int) int {
	p0 := c.Point(v0)
	d0 := c.Point(t).Sub(p0)
	d1 := c.Point(v1).Sub(p0)
	d2 := c.Point(v2).Sub(p0)
	return d0.Dot(d1.Cross(d2)).Sign()
}
