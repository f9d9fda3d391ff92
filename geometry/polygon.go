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

package geometry

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed polygon. The last vertex connects back to the first.
type Polygon []vec.Vec2

// BBox returns the bounding box of the polygon.
// The second return value is false for an empty polygon.
func (p Polygon) BBox() (rect.Rect, bool) {
	return BoundingRect(p)
}

// Transformed returns a new polygon with f applied to every vertex.
func (p Polygon) Transformed(f func(vec.Vec2) vec.Vec2) Polygon {
	res := make(Polygon, len(p))
	for i, v := range p {
		res[i] = f(v)
	}
	return res
}

// Translated returns a copy of p moved by d.
func (p Polygon) Translated(d vec.Vec2) Polygon {
	return p.Transformed(func(v vec.Vec2) vec.Vec2 { return v.Add(d) })
}

// Path returns the polygon as a closed path.
func (p Polygon) Path() *path.Data {
	res := &path.Data{}
	if len(p) == 0 {
		return res
	}
	res.MoveTo(p[0])
	for _, v := range p[1:] {
		res.LineTo(v)
	}
	return res.Close()
}

// circleK is the control point distance of a cubic Bézier quarter circle
// of radius one.
const circleK = 0.5522847498

// Circle returns a closed path approximating the circle around c with
// radius r by four cubic Bézier curves. The path runs clockwise on a y-down
// screen, starting at the top.
func Circle(c vec.Vec2, r float64) *path.Data {
	kr := circleK * r
	top := vec.Vec2{X: c.X, Y: c.Y - r}
	return &path.Data{
		Cmds: []path.Command{
			path.CmdMoveTo,
			path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo,
			path.CmdClose,
		},
		Coords: []vec.Vec2{
			top,
			{X: c.X + kr, Y: c.Y - r}, {X: c.X + r, Y: c.Y - kr}, {X: c.X + r, Y: c.Y},
			{X: c.X + r, Y: c.Y + kr}, {X: c.X + kr, Y: c.Y + r}, {X: c.X, Y: c.Y + r},
			{X: c.X - kr, Y: c.Y + r}, {X: c.X - r, Y: c.Y + kr}, {X: c.X - r, Y: c.Y},
			{X: c.X - r, Y: c.Y - kr}, {X: c.X - kr, Y: c.Y - r}, top,
		},
	}
}
