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

var strokeCases = []TestCase{
	{
		Name:    "horizontal",
		Samples: line(10, 32, 54, 32, 8, 1, 20),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name:    "vertical",
		Samples: line(32, 8, 32, 52, 8, 1, 20),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name:    "diagonal",
		Samples: line(8, 52, 54, 8, 12, 1, 20),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name:    "two_samples",
		Samples: line(16, 20, 48, 44, 1, 1, -40),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name: "corner",
		Samples: append(
			line(10, 50, 32, 14, 6, 1, 20),
			line(32, 14, 54, 50, 6, 1, 20)[1:]...),
		Tip:    chisel,
		Width:  64,
		Height: 64,
	},
	{
		Name:    "backtrack",
		Samples: append(line(12, 30, 52, 30, 8, 0.8, 0), line(52, 30, 20, 38, 8, 0.8, 0)[1:]...),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name:    "zero_pressure",
		Samples: line(10, 32, 54, 32, 8, 0, 20),
		Tip:     chisel,
		Width:   64,
		Height:  64,
	},
	{
		Name: "dot",
		Samples: []geometry.Sample{
			pen(32, 32, 1, 20),
			pen(32.25, 32.25, 1, 20),
		},
		Tip:    chisel,
		Width:  64,
		Height: 64,
	},
}
