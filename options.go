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

package ink

import (
	"image/color"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/ink/tile"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	// exact-area coverage, the default
//	c, err := ink.New(ink.DefaultConfig())
//
//	// golang.org/x/image/vector for the cells, black ink on white
//	c, err := ink.New(ink.DefaultConfig(),
//		ink.WithFiller(&raster.VectorFiller{}),
//		ink.WithInk(color.Black),
//		ink.WithBackground(color.White))
type Option func(*canvasOptions)

type canvasOptions struct {
	filler     tile.Filler
	ink        color.Color
	background color.Color
	interp     xdraw.Interpolator
}

func defaultOptions() canvasOptions {
	return canvasOptions{
		ink:        tile.DefaultInk,
		background: tile.DefaultBackground,
		interp:     xdraw.ApproxBiLinear,
	}
}

// WithFiller sets the polygon filler which paints ink into the cells.
// If no filler is given, a raster.CoverageFiller is used.
func WithFiller(f tile.Filler) Option {
	return func(o *canvasOptions) {
		o.filler = f
	}
}

// WithInk sets the ink colour.
func WithInk(c color.Color) Option {
	return func(o *canvasOptions) {
		o.ink = c
	}
}

// WithBackground sets the colour of cells which have not been inked yet.
func WithBackground(c color.Color) Option {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithInterpolator sets the resampling method Render uses when the zoom
// factor is not one.
func WithInterpolator(interp xdraw.Interpolator) Option {
	return func(o *canvasOptions) {
		o.interp = interp
	}
}
