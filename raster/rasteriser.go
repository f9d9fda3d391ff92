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

// Package raster converts paths into anti-aliased pixel coverage.
//
// The Rasteriser computes, for every pixel, the exact fraction of its area
// covered by the shape. Fillers built on top of it blend an ink colour
// into an RGBA pixel buffer, which is how the tile grid paints its cells.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts closed shapes to per-pixel coverage values in [0, 1].
// Reuse one instance for many shapes: its buffers grow as needed and are
// kept between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Clip bounds the output. Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in pixels, between a curve and the
	// line segments approximating it. Must be positive.
	Flatness float64

	cover []float32 // signed vertical extent of edges per pixel
	area  []float32 // cover weighted by the uncovered part of the pixel
	edges []edge
	dirty []bool // per row: true if some edge touched the row

	// bounding box of the collected edges
	bbFirst        bool
	bbXMin, bbXMax float64
	bbYMin, bbYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset changes the clip rectangle and restores the default flatness,
// keeping the internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness
}

// FillNonZero fills p using the nonzero winding rule. Open subpaths are
// closed implicitly. The emit callback receives coverage one row at a
// time; the slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.collectPath(p)
	r.fill(emit)
}

func (r *Rasteriser) startEdges() {
	r.edges = r.edges[:0]
	r.bbFirst = true
}

// collectPath converts p into the edge list, flattening curves.
func (r *Rasteriser) collectPath(p *path.Data) {
	r.startEdges()

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	// fills close open subpaths implicitly
	if cur != start {
		r.addEdge(cur, start)
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// the deviation from the chord is at most |p0 - 2p1 + p2| / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if dev := e.Length(); dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments, using Wang's formula for the segment count.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		n = max(int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))), 1)
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// addEdge appends the segment from p to q, unless it is horizontal.
func (r *Rasteriser) addEdge(p, q vec.Vec2) {
	dy := q.Y - p.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / dy,
	})

	xLo, xHi := min(p.X, q.X), max(p.X, q.X)
	yLo, yHi := min(p.Y, q.Y), max(p.Y, q.Y)
	if r.bbFirst {
		r.bbXMin, r.bbXMax, r.bbYMin, r.bbYMax = xLo, xHi, yLo, yHi
		r.bbFirst = false
		return
	}
	r.bbXMin = min(r.bbXMin, xLo)
	r.bbXMax = max(r.bbXMax, xHi)
	r.bbYMin = min(r.bbYMin, yLo)
	r.bbYMax = max(r.bbYMax, yHi)
}

// Each edge crossing a pixel adds its signed vertical extent to the pixel's
// cover, and the same amount weighted by the part of the pixel to the right
// of the crossing to its area. Walking a row from left to right, the
// coverage of a pixel is the running sum of the cover of all pixels to its
// left plus its own area. Edges left of the clip contribute to the first
// pixel only.

// fill rasterises the collected edges and emits the non-zero coverage.
func (r *Rasteriser) fill(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	w := xMax - xMin
	h := yMax - yMin

	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.dirty = slices.Grow(r.dirty[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.dirty)

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * w
			accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.dirty[row] = true
		}
	}

	for row := range h {
		if !r.dirty[row] {
			continue
		}
		off := row * w
		cov := r.cover[off : off+w]
		integrateNonZero(cov, r.area[off:off+w])
		if trimmed, skip := trimZeros(cov); trimmed != nil {
			emit(yMin+row, xMin+skip, trimmed)
		}
	}
}

// accumulate adds the contribution of e within scanline [y, y+1) to the
// cover and area of the pixels xMin, ..., xMax-1.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	var sign float32 = 1
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	switch {
	case right < xMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case left >= xMax:
		return
	case left == right:
		addSpan(e, yTop, yBot, sign, left, cover, area, xMin, xMax)
		return
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		addSpan(e, lo, hi, sign, pix, cover, area, xMin, xMax)
	}
}

// addSpan adds the part of e between yTop and yBot, which lies inside pixel
// column pix.
func addSpan(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
		return
	case pix >= xMax:
		return
	}
	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	frac := xMid - float64(pix)
	i := pix - xMin
	cover[i] += c
	area[i] += c * float32(1-frac)
}

// integrateNonZero turns cover and area into coverage, in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros strips zero coverage from both ends of a row and returns the
// rest together with the number of pixels removed on the left.
// It returns nil if the whole row is zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10
)
