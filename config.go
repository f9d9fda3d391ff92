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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/pentip"
	"seehuhn.de/go/ink/simplify"
)

// ErrInvalidConfig is returned by New and Config.Validate for unusable
// settings. The error also matches the sentinel of the component which
// rejected the setting, for example simplify.ErrInvalidConfig.
var ErrInvalidConfig = errors.New("ink: invalid configuration")

// Config holds the settings of a Canvas.
// All lengths are in world units.
type Config struct {
	// Simplify controls how raw samples are thinned out and smoothed.
	Simplify simplify.Config

	// Tip is the shape of the pen tip.
	Tip pentip.Tip

	// CellSize is the size of one raster cell.
	CellSize vec.Vec2

	// ViewportWidth and ViewportHeight give the size of the initial
	// viewport in pixels.
	ViewportWidth, ViewportHeight int
}

// DefaultConfig returns the settings used by the reference application: a
// chisel tip over 80×80 cells, shown in an 800×600 viewport.
func DefaultConfig() Config {
	return Config{
		Simplify: simplify.Config{
			QueueLength:     10,
			MinDistance:     1,
			MaxDistance:     5,
			SmoothingFactor: 0.1,
			MaxInsertions:   simplify.DefaultMaxInsertions,
		},
		Tip: pentip.Tip{
			SizeNormal:  15,
			SizeTangent: 10,
			Skew:        50 * math.Pi / 180,
		},
		CellSize:       vec.Vec2{X: 80, Y: 80},
		ViewportWidth:  800,
		ViewportHeight: 600,
	}
}

// Validate checks all settings and reports the first problem found.
func (c Config) Validate() error {
	if err := c.Simplify.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Tip.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !(c.CellSize.X > 0 && c.CellSize.Y > 0) ||
		math.IsInf(c.CellSize.X, 0) || math.IsInf(c.CellSize.Y, 0) {
		return fmt.Errorf("%w: cell size %g×%g", ErrInvalidConfig, c.CellSize.X, c.CellSize.Y)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("%w: viewport size %d×%d",
			ErrInvalidConfig, c.ViewportWidth, c.ViewportHeight)
	}
	return nil
}
