// seehuhn.de/go/ink - pen strokes on an infinite tiled canvas
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package geometry provides the numeric primitives used by the stroke
// pipeline: a variable-dimension vector, the five-component pen sample,
// helpers for 2D vectors and rectangles, and fill polygons.
//
// Two-dimensional points use [vec.Vec2] and rectangles use [rect.Rect] from
// seehuhn.de/go/geom. World space has y pointing down, so the LLx/LLy
// fields of a rectangle hold its minimum (top left) corner and URx/URy hold
// its maximum (bottom right) corner.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroVector is returned when a vector of zero length would have to be
// normalised.
var ErrZeroVector = errors.New("geometry: zero-length vector")

// VecN is a vector with an arbitrary number of components.
// All binary operations require both operands to have the same dimension
// and panic otherwise.
type VecN []float64

// Dim returns the number of components of v.
func (v VecN) Dim() int {
	return len(v)
}

func (v VecN) mustMatch(w VecN) {
	if len(v) != len(w) {
		panic(fmt.Sprintf("geometry: dimension mismatch %d != %d", len(v), len(w)))
	}
}

// Add returns v+w.
func (v VecN) Add(w VecN) VecN {
	v.mustMatch(w)
	res := make(VecN, len(v))
	for i := range v {
		res[i] = v[i] + w[i]
	}
	return res
}

// Sub returns v-w.
func (v VecN) Sub(w VecN) VecN {
	v.mustMatch(w)
	res := make(VecN, len(v))
	for i := range v {
		res[i] = v[i] - w[i]
	}
	return res
}

// Mul returns the scalar multiple s*v.
func (v VecN) Mul(s float64) VecN {
	res := make(VecN, len(v))
	for i := range v {
		res[i] = v[i] * s
	}
	return res
}

// EMul returns the element-wise product of v and w.
func (v VecN) EMul(w VecN) VecN {
	v.mustMatch(w)
	res := make(VecN, len(v))
	for i := range v {
		res[i] = v[i] * w[i]
	}
	return res
}

// Div returns v/s. Dividing by zero fails with ErrZeroVector.
func (v VecN) Div(s float64) (VecN, error) {
	if s == 0 {
		return nil, fmt.Errorf("division by zero: %w", ErrZeroVector)
	}
	return v.Mul(1 / s), nil
}

// Dot returns the inner product of v and w.
func (v VecN) Dot(w VecN) float64 {
	v.mustMatch(w)
	var sum float64
	for i := range v {
		sum += v[i] * w[i]
	}
	return sum
}

// Len2 returns the squared Euclidean length of v.
func (v VecN) Len2() float64 {
	return v.Dot(v)
}

// Len returns the Euclidean length of v.
func (v VecN) Len() float64 {
	return math.Sqrt(v.Len2())
}

// Dist2 returns the squared Euclidean distance between v and w.
func (v VecN) Dist2(w VecN) float64 {
	v.mustMatch(w)
	var sum float64
	for i := range v {
		d := v[i] - w[i]
		sum += d * d
	}
	return sum
}

// Unit returns v scaled to length one.
func (v VecN) Unit() (VecN, error) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return nil, ErrZeroVector
	}
	return v.Mul(1 / l), nil
}
