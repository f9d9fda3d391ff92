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

// Sample is one pointer observation.
//
// The arithmetic methods treat all five fields as dimensions of a single
// vector, so that smoothing a sequence of samples also smooths pressure and
// tilt.
type Sample struct {
	X, Y     float64 // position
	Pressure float64 // in [0, 1]
	TiltX    float64 // sin of the tilt angle in the x direction
	TiltY    float64 // sin of the tilt angle in the y direction
}

// TiltProxy converts a tilt angle in degrees into the value stored in
// Sample.TiltX or Sample.TiltY.
func TiltProxy(deg float64) float64 {
	return math.Sin(deg / 180 * math.Pi)
}

// Pos returns the position of the sample.
func (s Sample) Pos() vec.Vec2 {
	return vec.Vec2{X: s.X, Y: s.Y}
}

// Tilt returns the tilt proxies as a 2D vector.
func (s Sample) Tilt() vec.Vec2 {
	return vec.Vec2{X: s.TiltX, Y: s.TiltY}
}

// IsFinite reports whether all fields of s are finite numbers.
func (s Sample) IsFinite() bool {
	for _, x := range [...]float64{s.X, s.Y, s.Pressure, s.TiltX, s.TiltY} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// WithPos returns a copy of s moved to p.
func (s Sample) WithPos(p vec.Vec2) Sample {
	s.X = p.X
	s.Y = p.Y
	return s
}

// Add returns the component-wise sum s+t.
func (s Sample) Add(t Sample) Sample {
	return Sample{
		X:        s.X + t.X,
		Y:        s.Y + t.Y,
		Pressure: s.Pressure + t.Pressure,
		TiltX:    s.TiltX + t.TiltX,
		TiltY:    s.TiltY + t.TiltY,
	}
}

// Sub returns the component-wise difference s-t.
func (s Sample) Sub(t Sample) Sample {
	return Sample{
		X:        s.X - t.X,
		Y:        s.Y - t.Y,
		Pressure: s.Pressure - t.Pressure,
		TiltX:    s.TiltX - t.TiltX,
		TiltY:    s.TiltY - t.TiltY,
	}
}

// Mul scales all five components by f.
func (s Sample) Mul(f float64) Sample {
	return Sample{
		X:        s.X * f,
		Y:        s.Y * f,
		Pressure: s.Pressure * f,
		TiltX:    s.TiltX * f,
		TiltY:    s.TiltY * f,
	}
}

// Dist2 returns the squared distance between s and t over all five
// components.
func (s Sample) Dist2(t Sample) float64 {
	d := s.Sub(t)
	return d.X*d.X + d.Y*d.Y + d.Pressure*d.Pressure + d.TiltX*d.TiltX + d.TiltY*d.TiltY
}

// Vec returns the sample as a five-dimensional vector.
func (s Sample) Vec() VecN {
	return VecN{s.X, s.Y, s.Pressure, s.TiltX, s.TiltY}
}

// SampleFromVec converts a five-dimensional vector back into a sample.
// It panics if v does not have five components.
func SampleFromVec(v VecN) Sample {
	if len(v) != 5 {
		panic("geometry: sample vectors must have five components")
	}
	return Sample{X: v[0], Y: v[1], Pressure: v[2], TiltX: v[3], TiltY: v[4]}
}
