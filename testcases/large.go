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

	"seehuhn.de/go/ink/pentip"
)

// largeCases use the full-size tip on larger images, so that strokes
// cross many grid cells.
var largeCases = []TestCase{
	{
		Name:    "long_line",
		Samples: line(20, 96, 236, 96, 40, 1, 20),
		Tip:     defaultTip,
		Width:   256,
		Height:  192,
	},
	{
		Name:    "signature",
		Samples: wave(24, 96, 232, 50, 1.5, 90),
		Tip:     defaultTip,
		Width:   256,
		Height:  192,
	},
	{
		Name:    "loop",
		Samples: ramp(arc(128, 96, 70, -90, 270, 72, 0, -30), 0.3, 1),
		Tip:     defaultTip,
		Width:   256,
		Height:  192,
	},
}

// defaultTip is the tip of the reference application.
var defaultTip = pentip.Tip{
	SizeNormal:  15,
	SizeTangent: 10,
	Skew:        50 * math.Pi / 180,
}
