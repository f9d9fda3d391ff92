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
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/geometry"
	"seehuhn.de/go/ink/internal/logging"
	"seehuhn.de/go/ink/pentip"
	"seehuhn.de/go/ink/simplify"
	"seehuhn.de/go/ink/tile"
	"seehuhn.de/go/ink/viewport"
)

// Sample is one pointer observation, see geometry.Sample.
type Sample = geometry.Sample

// ErrInvalidSample is returned by AddSample for samples with NaN or
// infinite components.
var ErrInvalidSample = errors.New("ink: invalid sample")

// minTilt is the tilt length below which a smoothed sample has no usable
// pen orientation.
const minTilt = 1e-9

// Canvas turns pen samples into ink on an unbounded tiled canvas.
//
// Samples of the current stroke are collected by AddSample. Once a sample
// can no longer be moved by smoothing, the ink between it and its
// predecessor is drawn into the grid. EndStroke draws the rest.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	simp   *simplify.Simplifier[Sample]
	tip    pentip.Tip
	grid   *tile.Grid
	vp     *viewport.Viewport
	interp xdraw.Interpolator

	// last is the most recent sample drawn in the current stroke.
	last    Sample
	hasLast bool

	dirty    rect.Rect
	hasDirty bool
}

// New returns an empty canvas.
func New(cfg Config, opts ...Option) (*Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	simp, err := simplify.New[Sample](cfg.Simplify)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	gridOpts := []tile.Option{
		tile.WithInk(o.ink),
		tile.WithBackground(o.background),
	}
	if o.filler != nil {
		gridOpts = append(gridOpts, tile.WithFiller(o.filler))
	}
	grid, err := tile.NewGrid(cfg.CellSize, gridOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	vp, err := viewport.New(cfg.ViewportWidth, cfg.ViewportHeight)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Canvas{
		simp:   simp,
		tip:    cfg.Tip,
		grid:   grid,
		vp:     vp,
		interp: o.interp,
	}, nil
}

// AddSample adds one sample, given in viewport coordinates, to the current
// stroke. Samples too close to their predecessor are ignored.
//
// A sample without tilt gives the pen tip no orientation and is rejected
// with an error wrapping geometry.ErrZeroVector. Samples with NaN or
// infinite components, in viewport or world coordinates, are rejected with
// ErrInvalidSample.
func (c *Canvas) AddSample(s Sample) error {
	if !s.IsFinite() {
		return fmt.Errorf("%w: %+v", ErrInvalidSample, s)
	}
	if s.TiltX == 0 && s.TiltY == 0 {
		return fmt.Errorf("ink: sample at (%g, %g) has no tilt: %w",
			s.X, s.Y, geometry.ErrZeroVector)
	}
	w := s.WithPos(c.vp.ToWorld(s.Pos()))
	if !w.IsFinite() {
		return fmt.Errorf("%w: (%g, %g) maps outside the world", ErrInvalidSample, s.X, s.Y)
	}
	if !c.simp.AddPoint(w) {
		return nil
	}
	return c.commit(c.simp.Ready())
}

// EndStroke draws all remaining samples of the current stroke and starts a
// new one.
func (c *Canvas) EndStroke() error {
	rest := c.simp.RemainingAndClear()
	err := c.commit(rest)
	c.hasLast = false
	return err
}

// CancelStroke discards the samples of the current stroke which have not
// been drawn yet, and starts a new stroke.
func (c *Canvas) CancelStroke() {
	c.simp.Clear()
	c.hasLast = false
}

// commit draws the ink for run, joined to the previously drawn sample.
func (c *Canvas) commit(run []Sample) error {
	if len(run) == 0 {
		return nil
	}
	pts := make([]Sample, 0, len(run)+1)
	if c.hasLast {
		pts = append(pts, c.last)
	}
	pts = append(pts, run...)
	if err := carryTilt(pts); err != nil {
		return err
	}

	polys, err := c.tip.Polygons(pts)
	if err != nil {
		return err
	}
	for _, p := range polys {
		c.grid.DrawPolygon(p)
	}
	c.markDirty(pts)
	c.last = pts[len(pts)-1]
	c.hasLast = true

	logging.Logger().Debug("ink: committed samples",
		"samples", len(run), "polygons", len(polys), "cells", c.grid.Len())
	return nil
}

// carryTilt gives samples whose tilt was smoothed away the tilt of their
// predecessor, or of the first tilted sample for a leading run.
// This happens where the pen rocks through the vertical.
func carryTilt(pts []Sample) error {
	first := -1
	for i, s := range pts {
		if s.Tilt().Length() >= minTilt {
			first = i
			break
		}
	}
	if first < 0 {
		return fmt.Errorf("ink: no sample has a tilt: %w", geometry.ErrZeroVector)
	}
	for i := range pts {
		src := i - 1
		if i <= first {
			src = first
		}
		if i != src && pts[i].Tilt().Length() < minTilt {
			pts[i].TiltX, pts[i].TiltY = pts[src].TiltX, pts[src].TiltY
		}
	}
	return nil
}

// markDirty adds the area the tip can reach from the positions of pts to
// the dirty region.
func (c *Canvas) markDirty(pts []Sample) {
	pos := make([]vec.Vec2, len(pts))
	maxPressure := 0.0
	for i, s := range pts {
		pos[i] = s.Pos()
		maxPressure = max(maxPressure, math.Abs(s.Pressure))
	}
	r, ok := geometry.BoundingRect(pos)
	if !ok {
		return
	}
	// anti-aliasing touches one extra pixel on each side
	d := c.tip.Reach()*maxPressure + 1
	r = geometry.Pad(r, vec.Vec2{X: d, Y: d})
	if !c.hasDirty {
		c.dirty = r
		c.hasDirty = true
		return
	}
	c.dirty.Extend(r)
}

// TakeDirty returns the world rectangle containing all ink drawn since the
// previous call. The second return value is false if nothing was drawn.
func (c *Canvas) TakeDirty() (rect.Rect, bool) {
	r, ok := c.dirty, c.hasDirty
	c.dirty, c.hasDirty = rect.Rect{}, false
	return r, ok
}

// Pending returns the samples of the current stroke which have not been
// drawn yet, in world coordinates. Hosts can show them as a preview.
func (c *Canvas) Pending() []Sample {
	return c.simp.Points()
}

// Render clears dst and draws the visible part of the canvas into it.
// Pixel (0, 0) of the viewport corresponds to the minimum corner of
// dst.Bounds().
func (c *Canvas) Render(dst draw.Image) {
	b := dst.Bounds()
	draw.Draw(dst, b, image.Transparent, image.Point{}, draw.Src)

	var s tile.Surface = &tile.ImageSurface{Dst: dst, Interp: c.interp}
	if b.Min != (image.Point{}) {
		s = offsetSurface{s, vec.Vec2{X: float64(b.Min.X), Y: float64(b.Min.Y)}}
	}
	c.grid.Composite(c.vp, s)
}

// offsetSurface shifts all blits by a fixed amount.
type offsetSurface struct {
	tile.Surface
	d vec.Vec2
}

func (s offsetSurface) Blit(src image.Image, offset vec.Vec2, scale float64) {
	s.Surface.Blit(src, offset.Add(s.d), scale)
}

// Viewport returns the viewport used to map samples and to render.
// Changes to it take effect with the next sample.
func (c *Canvas) Viewport() *viewport.Viewport {
	return c.vp
}

// Grid returns the cell grid holding the ink.
func (c *Canvas) Grid() *tile.Grid {
	return c.grid
}
