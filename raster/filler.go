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

package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// CoverageFiller paints paths into RGBA images using a Rasteriser.
// The ink colour is composited source-over, weighted by the exact area
// coverage of every pixel.
//
// The zero value is ready to use. A CoverageFiller is not safe for
// concurrent use.
type CoverageFiller struct {
	r *Rasteriser
}

// FillPath fills p, given in the pixel coordinates of dst, with the colour
// ink, using the nonzero winding rule.
func (f *CoverageFiller) FillPath(dst *image.RGBA, p *path.Data, ink color.Color) {
	b := dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	if f.r == nil {
		f.r = NewRasteriser(clip)
	} else {
		f.r.Reset(clip)
	}

	r, g, bl, a := ink.RGBA()
	if a == 0 {
		return
	}
	src := [4]float32{float32(r) / 257, float32(g) / 257, float32(bl) / 257, float32(a) / 257}

	f.r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		row := dst.Pix[dst.PixOffset(xMin, y):]
		for i, c := range coverage {
			blendOver(row[4*i:4*i+4], &src, c)
		}
	})
}

// blendOver composites the premultiplied colour src with coverage c over
// the pixel px.
func blendOver(px []byte, src *[4]float32, c float32) {
	keep := 1 - src[3]*c/255
	for k := range 4 {
		v := src[k]*c + float32(px[k])*keep + 0.5
		px[k] = uint8(min(v, 255))
	}
}

// VectorFiller paints paths into RGBA images using the rasteriser from
// golang.org/x/image/vector.
//
// The zero value is ready to use. A VectorFiller is not safe for
// concurrent use.
type VectorFiller struct {
	r *vector.Rasterizer
}

// FillPath fills p, given in the pixel coordinates of dst, with the colour
// ink, using the nonzero winding rule. Open subpaths are closed implicitly.
func (f *VectorFiller) FillPath(dst *image.RGBA, p *path.Data, ink color.Color) {
	if len(p.Cmds) == 0 {
		return
	}
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if f.r == nil {
		f.r = vector.NewRasterizer(w, h)
	} else {
		f.r.Reset(w, h)
	}
	f.r.DrawOp = draw.Over

	// the rasteriser's origin is the top left corner of dst
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	pt := func(k int) (float32, float32) {
		return float32(p.Coords[k].X - ox), float32(p.Coords[k].Y - oy)
	}

	k := 0
	open := false
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				f.r.ClosePath()
			}
			f.r.MoveTo(pt(k))
			open = true
			k++
		case path.CmdLineTo:
			f.r.LineTo(pt(k))
			k++
		case path.CmdQuadTo:
			x1, y1 := pt(k)
			x2, y2 := pt(k + 1)
			f.r.QuadTo(x1, y1, x2, y2)
			k += 2
		case path.CmdCubeTo:
			x1, y1 := pt(k)
			x2, y2 := pt(k + 1)
			x3, y3 := pt(k + 2)
			f.r.CubeTo(x1, y1, x2, y2, x3, y3)
			k += 3
		case path.CmdClose:
			f.r.ClosePath()
			open = false
		}
	}
	if open {
		f.r.ClosePath()
	}
	f.r.Draw(dst, b, image.NewUniform(ink), image.Point{})
}
