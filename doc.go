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

// Package ink draws pen strokes onto an unbounded canvas.
//
// Pointer samples (position, pressure and tilt) are converted from
// viewport to world coordinates, thinned out and smoothed by
// [simplify.Simplifier], turned into fill polygons by [pentip.Tip], and
// painted into a sparse grid of raster cells ([tile.Grid]). [Canvas.Render]
// composites the visible cells into an image.
//
// A typical host feeds pointer events into a Canvas:
//
//	c, err := ink.New(ink.DefaultConfig())
//	...
//	for ev := range events {
//		switch ev.Kind {
//		case down, move:
//			err = c.AddSample(ink.Sample{X: ev.X, Y: ev.Y,
//				Pressure: ev.Pressure,
//				TiltX: geometry.TiltProxy(ev.TiltX),
//				TiltY: geometry.TiltProxy(ev.TiltY)})
//		case up:
//			err = c.EndStroke()
//		}
//		c.Render(screen)
//	}
package ink

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
