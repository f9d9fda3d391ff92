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

package tile

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/vec"
)

// Surface receives the composited cells.
type Surface interface {
	// Blit draws src with its minimum corner at offset, enlarged by the
	// factor scale.
	Blit(src image.Image, offset vec.Vec2, scale float64)
}

// ImageSurface is a Surface which draws into an image.
type ImageSurface struct {
	Dst draw.Image

	// Interp resamples scaled blits. If nil, xdraw.ApproxBiLinear is used.
	Interp xdraw.Interpolator
}

// Blit implements the Surface interface.
func (s *ImageSurface) Blit(src image.Image, offset vec.Vec2, scale float64) {
	sb := src.Bounds()

	if scale == 1 && offset.X == math.Trunc(offset.X) && offset.Y == math.Trunc(offset.Y) {
		p := image.Point{X: int(offset.X), Y: int(offset.Y)}
		r := image.Rectangle{Min: p, Max: p.Add(sb.Size())}
		draw.Draw(s.Dst, r, src, sb.Min, draw.Over)
		return
	}

	interp := s.Interp
	if interp == nil {
		interp = xdraw.ApproxBiLinear
	}
	// maps src pixel coordinates to dst pixel coordinates
	m := f64.Aff3{
		scale, 0, offset.X - scale*float64(sb.Min.X),
		0, scale, offset.Y - scale*float64(sb.Min.Y),
	}
	interp.Transform(s.Dst, m, src, sb, xdraw.Over, nil)
}
