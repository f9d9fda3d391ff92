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

// Package viewport maps between world coordinates and the pixels of a
// window onto the world.
//
// A viewport shows the world at a uniform zoom factor, with the world point
// Center appearing in the middle of the window:
//
//	viewport = (world - Center) * Zoom + Size/2
package viewport

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrInvalidZoom is returned for zoom factors which are not positive
	// finite numbers.
	ErrInvalidZoom = errors.New("viewport: invalid zoom")

	// ErrInvalidSize is returned for non-positive window sizes.
	ErrInvalidSize = errors.New("viewport: invalid size")
)

// Viewport is a zoomed and panned window onto the world.
// The zero value is not usable; use New.
type Viewport struct {
	zoom   float64
	center vec.Vec2
	width  int
	height int
}

// New returns a viewport of the given size in pixels, with zoom 1 and the
// world origin at its centre.
func New(width, height int) (*Viewport, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidSize, width, height)
	}
	return &Viewport{zoom: 1, width: width, height: height}, nil
}

func (v *Viewport) half() vec.Vec2 {
	return vec.Vec2{X: float64(v.width) / 2, Y: float64(v.height) / 2}
}

// ToViewport converts a world point to viewport pixel coordinates.
func (v *Viewport) ToViewport(world vec.Vec2) vec.Vec2 {
	return world.Sub(v.center).Mul(v.zoom).Add(v.half())
}

// ToWorld converts viewport pixel coordinates to a world point.
// It is the inverse of ToViewport.
func (v *Viewport) ToWorld(p vec.Vec2) vec.Vec2 {
	return p.Sub(v.half()).Mul(1 / v.zoom).Add(v.center)
}

// WorldExtent returns the world rectangle visible in the viewport.
func (v *Viewport) WorldExtent() rect.Rect {
	hw := float64(v.width) / (2 * v.zoom)
	hh := float64(v.height) / (2 * v.zoom)
	return rect.Rect{
		LLx: v.center.X - hw,
		LLy: v.center.Y - hh,
		URx: v.center.X + hw,
		URy: v.center.Y + hh,
	}
}

// TopLeft returns the world point shown at viewport pixel (0, 0).
func (v *Viewport) TopLeft() vec.Vec2 {
	e := v.WorldExtent()
	return vec.Vec2{X: e.LLx, Y: e.LLy}
}

// Zoom returns the number of viewport pixels per world unit.
func (v *Viewport) Zoom() float64 {
	return v.zoom
}

// SetZoom changes the zoom factor, keeping the centre fixed.
func (v *Viewport) SetZoom(zoom float64) error {
	if !(zoom > 0) || math.IsInf(zoom, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidZoom, zoom)
	}
	v.zoom = zoom
	return nil
}

// ZoomBy multiplies the zoom factor by factor, keeping the centre fixed.
func (v *Viewport) ZoomBy(factor float64) error {
	return v.SetZoom(v.zoom * factor)
}

// ZoomAt multiplies the zoom factor by factor while keeping the world point
// under the viewport position anchor in place.
func (v *Viewport) ZoomAt(anchor vec.Vec2, factor float64) error {
	w := v.ToWorld(anchor)
	if err := v.ZoomBy(factor); err != nil {
		return err
	}
	// solve ToViewport(w) == anchor for the centre
	v.center = w.Sub(anchor.Sub(v.half()).Mul(1 / v.zoom))
	return nil
}

// Center returns the world point shown in the middle of the viewport.
func (v *Viewport) Center() vec.Vec2 {
	return v.center
}

// SetCenter moves the viewport so that c appears in its middle.
func (v *Viewport) SetCenter(c vec.Vec2) {
	v.center = c
}

// Pan moves the viewport by delta, given in world units.
func (v *Viewport) Pan(delta vec.Vec2) {
	v.center = v.center.Add(delta)
}

// PanPixels moves the viewport by delta, given in viewport pixels.
func (v *Viewport) PanPixels(delta vec.Vec2) {
	v.Pan(delta.Mul(1 / v.zoom))
}

// Reset restores zoom 1 with the world origin at the centre.
func (v *Viewport) Reset() {
	v.zoom = 1
	v.center = vec.Vec2{}
}

// Size returns the viewport size in pixels.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Resize changes the viewport size. The centre stays in the middle.
func (v *Viewport) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %d×%d", ErrInvalidSize, width, height)
	}
	v.width, v.height = width, height
	return nil
}

// PixelToWorld converts a length in viewport pixels to world units.
func (v *Viewport) PixelToWorld(length float64) float64 {
	return length / v.zoom
}

// WorldToPixel converts a length in world units to viewport pixels.
func (v *Viewport) WorldToPixel(length float64) float64 {
	return length * v.zoom
}

// Matrix returns the affine map from world to viewport coordinates, in the
// form used by seehuhn.de/go/geom/matrix.
func (v *Viewport) Matrix() matrix.Matrix {
	h := v.half()
	z := v.zoom
	return matrix.Matrix{z, 0, 0, z, h.X - z*v.center.X, h.Y - z*v.center.Y}
}
