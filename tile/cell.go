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
	"fmt"
	"image"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Key identifies a cell by its integer column and row.
type Key struct {
	X, Y int
}

func (k Key) String() string {
	return fmt.Sprintf("(%d,%d)", k.X, k.Y)
}

// Cell is one fixed-size region of the world together with its pixels.
// One world unit corresponds to one pixel of the cell image.
type Cell struct {
	key  Key
	pos  vec.Vec2
	size vec.Vec2
	img  *image.RGBA
}

// Key returns the grid index of the cell.
func (c *Cell) Key() Key {
	return c.key
}

// Position returns the world coordinates of the cell's minimum corner.
func (c *Cell) Position() vec.Vec2 {
	return c.pos
}

// Extent returns the world rectangle covered by the cell.
func (c *Cell) Extent() rect.Rect {
	return rect.Rect{
		LLx: c.pos.X,
		LLy: c.pos.Y,
		URx: c.pos.X + c.size.X,
		URy: c.pos.Y + c.size.Y,
	}
}

// WorldToLocal converts a world point into the pixel coordinates of the
// cell image.
func (c *Cell) WorldToLocal(p vec.Vec2) vec.Vec2 {
	return p.Sub(c.pos)
}

// Image returns the cell's pixel buffer. The image is owned by the grid;
// callers may read it but must not keep it across drawing calls.
func (c *Cell) Image() *image.RGBA {
	return c.img
}
