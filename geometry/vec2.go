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

package geometry

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Unit returns v scaled to length one.
// A zero (or NaN) vector fails with ErrZeroVector.
func Unit(v vec.Vec2) (vec.Vec2, error) {
	l := math.Hypot(v.X, v.Y)
	if l == 0 || math.IsNaN(l) {
		return vec.Vec2{}, ErrZeroVector
	}
	return vec.Vec2{X: v.X / l, Y: v.Y / l}, nil
}

// Rotate returns v rotated counter-clockwise by theta radians
// (clockwise on a y-down screen).
func Rotate(v vec.Vec2, theta float64) vec.Vec2 {
	s, c := math.Sincos(theta)
	return vec.Vec2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// ProjectOntoLine returns the point on the infinite line through a and b
// which is closest to p. If a == b the line is undefined and ErrZeroVector
// is returned.
func ProjectOntoLine(a, b, p vec.Vec2) (vec.Vec2, error) {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return vec.Vec2{}, ErrZeroVector
	}
	t := ab.Dot(p.Sub(a)) / l2
	return a.Add(ab.Mul(t)), nil
}

// ProjectOntoSegment returns the point of the segment from a to b which is
// closest to p. A degenerate segment projects everything onto a.
func ProjectOntoSegment(a, b, p vec.Vec2) vec.Vec2 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a
	}
	t := ab.Dot(p.Sub(a)) / l2
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return a.Add(ab.Mul(t))
}

// HitTestPoint returns the index of the first point closer than tol to p,
// or -1 if there is none.
func HitTestPoint(points []vec.Vec2, p vec.Vec2, tol float64) int {
	tol2 := tol * tol
	for i, q := range points {
		d := q.Sub(p)
		if d.Dot(d) < tol2 {
			return i
		}
	}
	return -1
}

// HitTestEdge returns the index i of the first segment points[i]→points[i+1]
// closer than tol to p, or -1 if there is none.
func HitTestEdge(points []vec.Vec2, p vec.Vec2, tol float64) int {
	tol2 := tol * tol
	for i := 0; i+1 < len(points); i++ {
		d := ProjectOntoSegment(points[i], points[i+1], p).Sub(p)
		if d.Dot(d) < tol2 {
			return i
		}
	}
	return -1
}
