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

// Package pentip computes the area inked by a rigid chisel-shaped pen tip.
//
// At each sample the tip is an oblong abcd. The normal axis comes from the
// pen tilt, the tangent axis is the normal rotated by the tip's skew angle,
// and pressure scales both axes:
//
//	           b          f
//	       a  /       e  /
//	      /  /       /  /
//	     / A--------/B /
//	    /  /       /  /
//	   /  c       /  g
//	  d          h
//
// Moving the tip from A to B inks the four side faces (abfe, bcgf, cdhg,
// daeh) together with the two oblongs themselves.
package pentip

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/geometry"
)

// ErrInvalidTip is returned by Validate for unusable tip dimensions.
var ErrInvalidTip = errors.New("pentip: invalid tip")

// Tip describes a chisel pen tip.
type Tip struct {
	// SizeNormal is half the tip size along the normal axis, in world units.
	SizeNormal float64

	// SizeTangent is the extent of the tip along the tangent axis, measured
	// from the edge through the pen position, in world units.
	SizeTangent float64

	// Skew is the angle from the normal to the tangent axis, in radians.
	Skew float64
}

// Validate checks that all fields are finite and the sizes non-negative.
func (t Tip) Validate() error {
	if !(t.SizeNormal >= 0) || math.IsInf(t.SizeNormal, 0) {
		return fmt.Errorf("%w: normal size %g", ErrInvalidTip, t.SizeNormal)
	}
	if !(t.SizeTangent >= 0) || math.IsInf(t.SizeTangent, 0) {
		return fmt.Errorf("%w: tangent size %g", ErrInvalidTip, t.SizeTangent)
	}
	if math.IsNaN(t.Skew) || math.IsInf(t.Skew, 0) {
		return fmt.Errorf("%w: skew %g", ErrInvalidTip, t.Skew)
	}
	return nil
}

// Reach returns the largest distance of a tip corner from the pen position
// at full pressure.
func (t Tip) Reach() float64 {
	// |n*SizeNormal + tang*SizeTangent| for unit n and tang at angle Skew
	s, c := t.SizeNormal, t.SizeTangent
	return math.Sqrt(s*s + c*c + 2*s*c*math.Abs(math.Cos(t.Skew)))
}

// Oblong returns the corners a, b, c, d of the tip at sample s.
// The tilt of s determines the normal axis. A sample without tilt has no
// defined orientation and yields geometry.ErrZeroVector.
func (t Tip) Oblong(s geometry.Sample) ([4]vec.Vec2, error) {
	normal, err := geometry.Unit(s.Tilt())
	if err != nil {
		return [4]vec.Vec2{}, fmt.Errorf("pentip: sample at (%g, %g) has no tilt: %w", s.X, s.Y, err)
	}
	tangent := geometry.Rotate(normal, t.Skew)

	origin := s.Pos()
	n := normal.Mul(t.SizeNormal * s.Pressure)
	tg := tangent.Mul(t.SizeTangent * s.Pressure)
	a := origin.Add(n)
	d := origin.Sub(n)
	b := a.Add(tg)
	c := d.Add(tg)
	return [4]vec.Vec2{a, b, c, d}, nil
}

// Faces returns the four side faces swept by the tip edges when the tip
// moves from s0 to s1. Face k joins the tip edge from corner k to corner
// k+1 at s0 with the same edge at s1.
func (t Tip) Faces(s0, s1 geometry.Sample) ([4]geometry.Polygon, error) {
	p, err := t.Oblong(s0)
	if err != nil {
		return [4]geometry.Polygon{}, err
	}
	q, err := t.Oblong(s1)
	if err != nil {
		return [4]geometry.Polygon{}, err
	}
	return faces(p, q), nil
}

func faces(p, q [4]vec.Vec2) [4]geometry.Polygon {
	var res [4]geometry.Polygon
	for k := range 4 {
		k1 := (k + 1) % 4
		res[k] = geometry.Polygon{p[k], p[k1], q[k1], q[k]}
	}
	return res
}

// Polygons returns fill polygons covering the ink laid down by the tip
// along the given samples: the four faces of every consecutive pair and
// the oblong at every sample. Fewer than two samples produce no polygons.
func (t Tip) Polygons(samples []geometry.Sample) ([]geometry.Polygon, error) {
	if len(samples) < 2 {
		return nil, nil
	}

	oblongs := make([][4]vec.Vec2, len(samples))
	for i, s := range samples {
		o, err := t.Oblong(s)
		if err != nil {
			return nil, err
		}
		oblongs[i] = o
	}

	res := make([]geometry.Polygon, 0, 5*len(samples)-4)
	for i, o := range oblongs {
		if i > 0 {
			f := faces(oblongs[i-1], o)
			res = append(res, f[:]...)
		}
		res = append(res, geometry.Polygon{o[0], o[1], o[2], o[3]})
	}
	return res, nil
}
