// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package interval implements interval arithmetic over float64 with directed
// rounding. Go has no access to the floating-point environment, so the
// rounding-mode register is modeled by a Rounder value and every operation
// is rounded in software to the direction it holds.
package interval

import "math"

// Mode is a floating-point rounding direction.
type Mode int

const (
	ToNearest Mode = iota
	Down
	Up
)

func (m Mode) String() string {
	switch m {
	case ToNearest:
		return "ToNearest"
	case Down:
		return "Down"
	case Up:
		return "Up"
	}
	return "Mode(?)"
}

// Products smaller than this may lose bits of their error term to underflow.
const minExactProduct = 0x1p-900

// Rounder holds the current rounding mode. The zero value rounds to nearest.
// A Rounder is not safe for concurrent use; give each goroutine its own.
type Rounder struct {
	mode        Mode
	transitions int
}

// Mode returns the current rounding mode.
func (r *Rounder) Mode() Mode {
	return r.mode
}

// Transitions returns the number of effective mode changes so far.
func (r *Rounder) Transitions() int {
	return r.transitions
}

// Acquire switches to mode m and returns a function that restores the mode
// that was active before the call. Use it with defer.
func (r *Rounder) Acquire(m Mode) (release func()) {
	prev := r.mode
	r.Set(m)
	return func() {
		r.Set(prev)
	}
}

// Set switches to mode m. It is meant for use inside a scope opened with
// Acquire.
func (r *Rounder) Set(m Mode) {
	if r.mode != m {
		r.mode = m
		r.transitions++
	}
}

// Add returns u+v rounded in the current direction.
func (r *Rounder) Add(u, v float64) float64 {
	s := u + v
	if r.mode == ToNearest {
		return s
	}
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return r.overflow(s, u, v)
	}
	// Two-sum: s + e == u + v exactly.
	bv := s - u
	e := (u - (s - bv)) + (v - bv)
	return r.round(s, e)
}

// Sub returns u-v rounded in the current direction.
func (r *Rounder) Sub(u, v float64) float64 {
	return r.Add(u, -v)
}

// Mul returns u*v rounded in the current direction.
func (r *Rounder) Mul(u, v float64) float64 {
	p := u * v
	if r.mode == ToNearest || u == 0 || v == 0 {
		return p
	}
	if math.IsInf(p, 0) || math.IsNaN(p) {
		return r.overflow(p, u, v)
	}
	if math.Abs(p) < minExactProduct {
		return r.widen(p)
	}
	return r.round(p, math.FMA(u, v, -p))
}

// round steps x one ulp toward the current direction when the exact result
// x+e lies beyond it.
func (r *Rounder) round(x, e float64) float64 {
	switch r.mode {
	case Down:
		if e < 0 {
			return math.Nextafter(x, math.Inf(-1))
		}
	case Up:
		if e > 0 {
			return math.Nextafter(x, math.Inf(1))
		}
	}
	return x
}

// widen steps x one ulp toward the current direction unconditionally. The
// round-to-nearest result is within half an ulp of the exact one.
func (r *Rounder) widen(x float64) float64 {
	switch r.mode {
	case Down:
		return math.Nextafter(x, math.Inf(-1))
	case Up:
		return math.Nextafter(x, math.Inf(1))
	}
	return x
}

// overflow handles an infinite result from finite operands: rounding toward
// zero from an overflow yields the largest finite value.
func (r *Rounder) overflow(x, u, v float64) float64 {
	if math.IsInf(u, 0) || math.IsInf(v, 0) || math.IsNaN(x) {
		return x
	}
	switch {
	case r.mode == Down && x > 0:
		return math.MaxFloat64
	case r.mode == Up && x < 0:
		return -math.MaxFloat64
	}
	return x
}

// Interval is the closed interval [Interval[0], Interval[1]].
type Interval [2]float64

// Point returns the degenerate interval [x, x].
func Point(x float64) Interval {
	return Interval{x, x}
}

// Contains reports whether x lies in the interval.
func (i Interval) Contains(x float64) bool {
	return i[0] <= x && x <= i[1]
}

// Sign returns +1 or -1 when every value of the interval has that sign, 0
// when the interval is exactly [0, 0], and ok == false when it straddles
// zero or is not a valid interval.
func (i Interval) Sign() (sign int, ok bool) {
	switch {
	case i[0] > 0:
		return 1, true
	case i[1] < 0:
		return -1, true
	case i[0] == 0 && i[1] == 0:
		return 0, true
	}
	return 0, false
}

// MulLower returns the lower endpoint of u*v. The rounder must be in Down
// mode for the result to be a valid bound. Only the product that is the
// minimum for the operand signs is computed.
func (r *Rounder) MulLower(u, v Interval) float64 {
	switch {
	case u[0] >= 0:
		if v[0] >= 0 {
			return r.Mul(u[0], v[0])
		}
		return r.Mul(u[1], v[0])
	case u[1] <= 0:
		if v[1] <= 0 {
			return r.Mul(u[1], v[1])
		}
		return r.Mul(u[0], v[1])
	}
	switch {
	case v[0] >= 0:
		return r.Mul(u[0], v[1])
	case v[1] <= 0:
		return r.Mul(u[1], v[0])
	}
	return math.Min(r.Mul(u[0], v[1]), r.Mul(u[1], v[0]))
}

// MulUpper returns the upper endpoint of u*v. The rounder must be in Up mode
// for the result to be a valid bound.
func (r *Rounder) MulUpper(u, v Interval) float64 {
	switch {
	case u[0] >= 0:
		if v[1] <= 0 {
			return r.Mul(u[0], v[1])
		}
		return r.Mul(u[1], v[1])
	case u[1] <= 0:
		if v[0] >= 0 {
			return r.Mul(u[1], v[0])
		}
		return r.Mul(u[0], v[0])
	}
	switch {
	case v[0] >= 0:
		return r.Mul(u[1], v[1])
	case v[1] <= 0:
		return r.Mul(u[0], v[0])
	}
	return math.Max(r.Mul(u[0], v[0]), r.Mul(u[1], v[1]))
}

// Add returns u+v. It is the unbatched form: it switches modes for this one
// operation. Longer expressions call the Rounder methods directly and group
// their Down and Up steps.
func Add(r *Rounder, u, v Interval) Interval {
	release := r.Acquire(Down)
	defer release()
	var w Interval
	w[0] = r.Add(u[0], v[0])
	r.Set(Up)
	w[1] = r.Add(u[1], v[1])
	return w
}

// Sub returns u-v in the unbatched form, like Add.
func Sub(r *Rounder, u, v Interval) Interval {
	release := r.Acquire(Down)
	defer release()
	var w Interval
	w[0] = r.Sub(u[0], v[1])
	r.Set(Up)
	w[1] = r.Sub(u[1], v[0])
	return w
}

// Mul returns u*v in the unbatched form, like Add.
func Mul(r *Rounder, u, v Interval) Interval {
	release := r.Acquire(Down)
	defer release()
	var w Interval
	w[0] = r.MulLower(u, v)
	r.Set(Up)
	w[1] = r.MulUpper(u, v)
	return w
}
