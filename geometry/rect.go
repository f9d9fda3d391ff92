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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// IntervalOverlap returns the signed length of the overlap of the intervals
// [aLo, aHi] and [bLo, bHi]. The result is negative if the intervals are
// disjoint, zero if they touch.
func IntervalOverlap(aLo, aHi, bLo, bHi float64) float64 {
	return min(aHi, bHi) - max(aLo, bLo)
}

// Overlap returns the signed overlap of a and b along each axis.
func Overlap(a, b rect.Rect) vec.Vec2 {
	return vec.Vec2{
		X: IntervalOverlap(a.LLx, a.URx, b.LLx, b.URx),
		Y: IntervalOverlap(a.LLy, a.URy, b.LLy, b.URy),
	}
}

// Overlaps reports whether a and b share a region of positive area.
// Rectangles which only touch do not overlap.
func Overlaps(a, b rect.Rect) bool {
	o := Overlap(a, b)
	return o.X > 0 && o.Y > 0
}

// Pad grows r by d.X horizontally and d.Y vertically on each side.
func Pad(r rect.Rect, d vec.Vec2) rect.Rect {
	return rect.Rect{
		LLx: r.LLx - d.X,
		LLy: r.LLy - d.Y,
		URx: r.URx + d.X,
		URy: r.URy + d.Y,
	}
}

// Translate moves r by d.
func Translate(r rect.Rect, d vec.Vec2) rect.Rect {
	return rect.Rect{
		LLx: r.LLx + d.X,
		LLy: r.LLy + d.Y,
		URx: r.URx + d.X,
		URy: r.URy + d.Y,
	}
}

// Min returns the minimum corner of r.
func Min(r rect.Rect) vec.Vec2 {
	return vec.Vec2{X: r.LLx, Y: r.LLy}
}

// Max returns the maximum corner of r.
func Max(r rect.Rect) vec.Vec2 {
	return vec.Vec2{X: r.URx, Y: r.URy}
}

// FromCorners returns the rectangle spanned by the minimum corner lo and
// the maximum corner hi.
func FromCorners(lo, hi vec.Vec2) rect.Rect {
	return rect.Rect{LLx: lo.X, LLy: lo.Y, URx: hi.X, URy: hi.Y}
}

// BoundingRect returns the bounding box of the given points.
// The second return value is false if pts is empty.
func BoundingRect(pts []vec.Vec2) (rect.Rect, bool) {
	if len(pts) == 0 {
		return rect.Rect{}, false
	}
	r := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r, true
}
