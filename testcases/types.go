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

// Package testcases holds named pen strokes for rendering tests.
//
// World coordinates of the samples equal the pixel coordinates of the
// test image, with the origin in the top left corner.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/geometry"
	"seehuhn.de/go/ink/pentip"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name    string            // lowercase a-z and _ only
	Samples []geometry.Sample // the stroke, in image coordinates
	Tip     pentip.Tip        // pen tip used for the stroke
	Width   int               // image width in pixels
	Height  int               // image height in pixels
}

// Polygons returns the fill polygons of the stroke.
func (tc TestCase) Polygons() ([]geometry.Polygon, error) {
	return tc.Tip.Polygons(tc.Samples)
}

// Size returns the image size as a vector.
func (tc TestCase) Size() vec.Vec2 {
	return vec.Vec2{X: float64(tc.Width), Y: float64(tc.Height)}
}

// chisel is the tip used by most test cases, a scaled down version of the
// default tip.
var chisel = pentip.Tip{
	SizeNormal:  6,
	SizeTangent: 4,
	Skew:        50 * math.Pi / 180,
}

// pen returns the sample at (x, y) with the given pressure, tilted by
// tiltDeg degrees in the x direction and 30 degrees in the y direction.
func pen(x, y, pressure, tiltDeg float64) geometry.Sample {
	return geometry.Sample{
		X:        x,
		Y:        y,
		Pressure: pressure,
		TiltX:    geometry.TiltProxy(tiltDeg),
		TiltY:    geometry.TiltProxy(30),
	}
}

// line returns n+1 samples evenly spaced from (x0, y0) to (x1, y1).
func line(x0, y0, x1, y1 float64, n int, pressure, tiltDeg float64) []geometry.Sample {
	res := make([]geometry.Sample, n+1)
	for i := range res {
		t := float64(i) / float64(n)
		res[i] = pen(x0+t*(x1-x0), y0+t*(y1-y0), pressure, tiltDeg)
	}
	return res
}

// arc returns n+1 samples on the circle around (cx, cy) with radius r,
// from angle a0 to a1 (in degrees, clockwise on screen).
func arc(cx, cy, r, a0, a1 float64, n int, pressure, tiltDeg float64) []geometry.Sample {
	res := make([]geometry.Sample, n+1)
	for i := range res {
		a := (a0 + (a1-a0)*float64(i)/float64(n)) * math.Pi / 180
		res[i] = pen(cx+r*math.Cos(a), cy+r*math.Sin(a), pressure, tiltDeg)
	}
	return res
}
