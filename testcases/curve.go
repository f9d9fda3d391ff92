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

package testcases

import (
	"math"

	"seehuhn.de/go/ink/geometry"
	"seehuhn.de/go/ink/pentip"
)

var curveCases = []TestCase{
	{
		Name:    "half_circle",
		Samples: arc(32, 36, 20, 180, 360, 24, 1, 20),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name:    "full_circle",
		Samples: arc(32, 32, 18, 0, 360, 36, 0.8, 20),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name:    "wave",
		Samples: wave(6, 32, 58, 12, 2, 40),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name:    "spiral",
		Samples: spiral(32, 32, 4, 26, 2, 60),
		Tip:     pentip.Tip{SizeNormal: 3, SizeTangent: 2, Skew: 50 * math.Pi / 180},
		Width:   64,
		Height:  64,
	},
}

// wave returns n+1 samples on a sine curve from x0 to x1 around the line
// y = yMid, with the given amplitude and number of periods.
func wave(x0, yMid, x1, amplitude, periods float64, n int) []geometry.Sample {
	res := make([]geometry.Sample, n+1)
	for i := range res {
		t := float64(i) / float64(n)
		y := yMid + amplitude*math.Sin(2*math.Pi*periods*t)
		res[i] = pen(x0+t*(x1-x0), y, 1, 20)
	}
	return res
}

// spiral returns n+1 samples on an Archimedean spiral around (cx, cy).
func spiral(cx, cy, r0, r1, turns float64, n int) []geometry.Sample {
	res := make([]geometry.Sample, n+1)
	for i := range res {
		t := float64(i) / float64(n)
		a := 2 * math.Pi * turns * t
		r := r0 + t*(r1-r0)
		res[i] = pen(cx+r*math.Cos(a), cy+r*math.Sin(a), 0.5+0.5*t, 20)
	}
	return res
}
