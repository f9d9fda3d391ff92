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

var tiltCases = []TestCase{
	{
		Name:    "rotating",
		Samples: rotate(line(8, 32, 56, 32, 24, 1, 0), 0, 180),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name:    "steep",
		Samples: line(10, 20, 54, 44, 10, 1, 80),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name:    "square_tip",
		Samples: rotate(line(10, 40, 54, 24, 12, 1, 0), 30, 120),
		Tip:     pentip.Tip{SizeNormal: 5, SizeTangent: 5, Skew: math.Pi / 2},
		Width:   64,
		Height:  64,
	},
	{
		Name:    "flat_tip",
		Samples: rotate(line(10, 32, 54, 32, 12, 1, 0), 0, 90),
		Tip:     pentip.Tip{SizeNormal: 8, SizeTangent: 0.5, Skew: math.Pi / 2},
		Width:   64,
		Height:  64,
	},
}

// rotate sets the tilt of the samples to a unit vector whose angle changes
// linearly from deg0 to deg1 degrees.
func rotate(samples []geometry.Sample, deg0, deg1 float64) []geometry.Sample {
	n := len(samples) - 1
	for i := range samples {
		a := (deg0 + (deg1-deg0)*float64(i)/float64(n)) * math.Pi / 180
		samples[i].TiltX = math.Cos(a)
		samples[i].TiltY = math.Sin(a)
	}
	return samples
}
