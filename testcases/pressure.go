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

import "seehuhn.de/go/ink/geometry"

var pressureCases = []TestCase{
	{
		Name:    "ramp_up",
		Samples: ramp(line(8, 32, 56, 32, 16, 0, 20), 0, 1),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name:    "ramp_down",
		Samples: ramp(line(8, 20, 56, 44, 16, 0, -10), 1, 0.1),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name:    "light",
		Samples: line(8, 32, 56, 32, 10, 0.25, 20),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name:    "swell",
		Samples: swell(line(6, 40, 58, 24, 20, 0, 45)),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
}

// ramp sets the pressure of the samples to change linearly from p0 to p1.
func ramp(samples []geometry.Sample, p0, p1 float64) []geometry.Sample {
	n := len(samples) - 1
	for i := range samples {
		t := float64(i) / float64(n)
		samples[i].Pressure = p0 + t*(p1-p0)
	}
	return samples
}

// swell sets the pressure to rise from 0.2 to 1 in the middle of the stroke
// and fall back.
func swell(samples []geometry.Sample) []geometry.Sample {
	n := len(samples) - 1
	for i := range samples {
		t := float64(i) / float64(n)
		samples[i].Pressure = 0.2 + 3.2*t*(1-t)
	}
	return samples
}
