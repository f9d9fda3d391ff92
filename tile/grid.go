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

// Package tile stores ink on an unbounded plane as a sparse grid of
// fixed-size raster cells.
//
// Cells are created on demand, the first time a polygon is drawn over
// them, and are never resized or evicted. Cell (i, j) covers the world
// rectangle from (i*w, j*h) to ((i+1)*w, (j+1)*h), where w×h is the cell
// size.
package tile

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"slices"
	"sync"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/geometry"
	"seehuhn.de/go/ink/internal/logging"
	"seehuhn.de/go/ink/raster"
)

// ErrInvalidCellSize is returned by NewGrid if a cell dimension is not a
// positive, finite number.
var ErrInvalidCellSize = errors.New("tile: invalid cell size")

// Filler paints a path, given in the pixel coordinates of dst, with a solid
// colour, using the nonzero winding rule. Open subpaths are closed
// implicitly.
type Filler interface {
	FillPath(dst *image.RGBA, p *path.Data, ink color.Color)
}

// View describes the visible part of the world.
// It is implemented by *viewport.Viewport.
type View interface {
	WorldExtent() rect.Rect
	ToViewport(world vec.Vec2) vec.Vec2
	Zoom() float64
}

// Default colours of new grids.
var (
	DefaultBackground color.Color = color.RGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff}
	DefaultInk        color.Color = color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xff}
	MarkerColor       color.Color = color.RGBA{R: 0xff, A: 0xff}
)

// Grid is a sparse, unbounded collection of raster cells.
//
// Looking up and creating cells is safe for concurrent use. Drawing into
// the cells is not: DrawPolygon, DrawPoint and Composite must be called
// from a single goroutine at a time.
type Grid struct {
	cellSize   vec.Vec2
	pixels     image.Point
	filler     Filler
	background *image.Uniform
	ink        color.Color
	padding    float64

	mu    sync.Mutex
	cells map[Key]*Cell
}

// Option configures a Grid during creation.
type Option func(*gridOptions)

type gridOptions struct {
	filler     Filler
	background color.Color
	ink        color.Color
	padding    float64
}

func defaultOptions() gridOptions {
	return gridOptions{
		background: DefaultBackground,
		ink:        DefaultInk,
		padding:    1,
	}
}

// WithFiller sets the polygon filler used to paint the cells.
// The default is a raster.CoverageFiller.
func WithFiller(f Filler) Option {
	return func(o *gridOptions) {
		o.filler = f
	}
}

// WithBackground sets the colour new cells are initialised with.
func WithBackground(c color.Color) Option {
	return func(o *gridOptions) {
		o.background = c
	}
}

// WithInk sets the colour DrawPolygon paints with.
func WithInk(c color.Color) Option {
	return func(o *gridOptions) {
		o.ink = c
	}
}

// WithPadding sets the margin, in world units, by which the bounding box of
// a polygon is grown before the cells to draw into are selected.
// Negative values are treated as zero.
func WithPadding(d float64) Option {
	return func(o *gridOptions) {
		o.padding = max(d, 0)
	}
}

// NewGrid returns an empty grid with the given cell size.
func NewGrid(cellSize vec.Vec2, opts ...Option) (*Grid, error) {
	if !validLength(cellSize.X) || !validLength(cellSize.Y) {
		return nil, fmt.Errorf("%w: %g×%g", ErrInvalidCellSize, cellSize.X, cellSize.Y)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.filler == nil {
		o.filler = &raster.CoverageFiller{}
	}

	return &Grid{
		cellSize: cellSize,
		pixels: image.Point{
			X: int(math.Ceil(cellSize.X)),
			Y: int(math.Ceil(cellSize.Y)),
		},
		filler:     o.filler,
		background: image.NewUniform(o.background),
		ink:        o.ink,
		padding:    o.padding,
		cells:      make(map[Key]*Cell),
	}, nil
}

func validLength(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}

// CellSize returns the world size of a cell.
func (g *Grid) CellSize() vec.Vec2 {
	return g.cellSize
}

// IndexRange returns the half-open range [x0, x1) × [y0, y1) of cell
// indices overlapping r.
func (g *Grid) IndexRange(r rect.Rect) (x0, y0, x1, y1 int) {
	fx0, fy0, fx1, fy1 := g.indexBounds(r)
	return int(fx0), int(fy0), int(fx1), int(fy1)
}

// indexBounds is IndexRange without the conversion to int, which is
// undefined for ranges beyond the int limits.
func (g *Grid) indexBounds(r rect.Rect) (x0, y0, x1, y1 float64) {
	x0 = math.Floor(r.LLx / g.cellSize.X)
	y0 = math.Floor(r.LLy / g.cellSize.Y)
	x1 = math.Ceil(r.URx / g.cellSize.X)
	y1 = math.Ceil(r.URy / g.cellSize.Y)
	return x0, y0, x1, y1
}

// CellsOverlapping returns the cells in the index range of r, row by row
// from top to bottom and left to right within each row. If create is true,
// missing cells are allocated and filled with the background colour;
// otherwise they are skipped.
func (g *Grid) CellsOverlapping(r rect.Rect, create bool) []*Cell {
	fx0, fy0, fx1, fy1 := g.indexBounds(r)
	if !(fx1 > fx0 && fy1 > fy0) {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// A zoomed out view can span far more indices than there are cells.
	if !create && (fx1-fx0)*(fy1-fy0) > float64(len(g.cells)) {
		var res []*Cell
		for k, c := range g.cells {
			x, y := float64(k.X), float64(k.Y)
			if x >= fx0 && x < fx1 && y >= fy0 && y < fy1 {
				res = append(res, c)
			}
		}
		slices.SortFunc(res, func(a, b *Cell) int {
			return compareKeys(a.key, b.key)
		})
		return res
	}

	x0, y0, x1, y1 := int(fx0), int(fy0), int(fx1), int(fy1)
	var res []*Cell
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			key := Key{X: x, Y: y}
			c, ok := g.cells[key]
			if !ok {
				if !create {
					continue
				}
				c = g.newCell(key)
				g.cells[key] = c
			}
			res = append(res, c)
		}
	}
	return res
}

// newCell allocates the cell for key. The caller must hold g.mu.
func (g *Grid) newCell(key Key) *Cell {
	img := image.NewRGBA(image.Rectangle{Max: g.pixels})
	draw.Draw(img, img.Bounds(), g.background, image.Point{}, draw.Src)
	c := &Cell{
		key:  key,
		pos:  vec.Vec2{X: float64(key.X) * g.cellSize.X, Y: float64(key.Y) * g.cellSize.Y},
		size: g.cellSize,
		img:  img,
	}
	logging.Logger().Debug("tile: created cell", "key", key, "cells", len(g.cells)+1)
	return c
}

// Cell returns the cell with the given key, if it exists.
func (g *Grid) Cell(key Key) (*Cell, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.cells[key]
	return c, ok
}

// Len returns the number of allocated cells.
func (g *Grid) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.cells)
}

// Keys returns the keys of all allocated cells, sorted by row and then by
// column.
func (g *Grid) Keys() []Key {
	g.mu.Lock()
	keys := make([]Key, 0, len(g.cells))
	for k := range g.cells {
		keys = append(keys, k)
	}
	g.mu.Unlock()

	slices.SortFunc(keys, compareKeys)
	return keys
}

// compareKeys orders keys by row and then by column.
func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// DrawPolygon paints the polygon p, given in world coordinates, with the
// grid's ink colour. Every cell near p is created if needed and p is
// rasterised into each of them independently.
func (g *Grid) DrawPolygon(p geometry.Polygon) {
	bbox, ok := p.BBox()
	if !ok {
		return
	}
	bbox = geometry.Pad(bbox, vec.Vec2{X: g.padding, Y: g.padding})
	for _, c := range g.CellsOverlapping(bbox, true) {
		g.filler.FillPath(c.img, p.Transformed(c.WorldToLocal).Path(), g.ink)
	}
}

// DrawPoint marks the world point p with a round dot of the given diameter
// in MarkerColor. Only existing cells are painted.
func (g *Grid) DrawPoint(p vec.Vec2, size float64) {
	if !(size > 0) {
		return
	}
	r := size / 2
	bbox := rect.Rect{LLx: p.X - r, LLy: p.Y - r, URx: p.X + r, URy: p.Y + r}
	for _, c := range g.CellsOverlapping(bbox, false) {
		g.filler.FillPath(c.img, geometry.Circle(c.WorldToLocal(p), r), MarkerColor)
	}
}

// Composite draws all existing cells which overlap the visible part of the
// world onto dst. Each cell is placed at the viewport position of its
// minimum corner and scaled by the zoom factor.
func (g *Grid) Composite(view View, dst Surface) {
	zoom := view.Zoom()
	for _, c := range g.CellsOverlapping(view.WorldExtent(), false) {
		dst.Blit(c.img, view.ToViewport(c.pos), zoom)
	}
}
