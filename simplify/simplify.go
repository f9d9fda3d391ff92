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

// Package simplify turns a noisy stream of pointer samples into a sequence
// of evenly spaced, smoothed points.
//
// Every accepted point triggers a resampling pass, which splits long gaps,
// and a single relaxation pass, which pulls every interior point towards the
// mean of its neighbours. Points which have fallen more than QueueLength
// positions behind the newest point are "ready": later passes still touch
// them, but the caller may commit them to the canvas.
package simplify

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/ink/internal/logging"
)

// ErrInvalidConfig is returned by New for unusable parameters.
var ErrInvalidConfig = errors.New("simplify: invalid configuration")

// Point is the arithmetic a Simplifier needs from its points.
// Both geometry.Sample and geometry.VecN implement it.
type Point[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float64) T
	Dist2(T) float64
}

// DefaultMaxInsertions is used when Config.MaxInsertions is zero.
const DefaultMaxInsertions = 4096

// Config holds the parameters of a Simplifier.
type Config struct {
	// QueueLength is the number of trailing points which are held back
	// because they may still move noticeably. Must be at least 1.
	QueueLength int

	// MinDistance is the anti-jitter threshold. Samples closer than this
	// to the last stored point are discarded. Must be >= 0.
	MinDistance float64

	// MaxDistance is the resampling threshold. Must exceed MinDistance.
	MaxDistance float64

	// SmoothingFactor is the relaxation strength, in [0, 0.5].
	SmoothingFactor float64

	// MaxInsertions caps the number of points inserted into a single gap.
	// Zero selects DefaultMaxInsertions.
	MaxInsertions int
}

// Validate checks the parameters.
func (c Config) Validate() error {
	switch {
	case c.QueueLength < 1:
		return fmt.Errorf("%w: queue length %d < 1", ErrInvalidConfig, c.QueueLength)
	case !(c.MinDistance >= 0) || math.IsInf(c.MinDistance, 0):
		return fmt.Errorf("%w: min distance %g", ErrInvalidConfig, c.MinDistance)
	case !(c.MaxDistance > c.MinDistance) || math.IsInf(c.MaxDistance, 0):
		return fmt.Errorf("%w: max distance %g must exceed min distance %g",
			ErrInvalidConfig, c.MaxDistance, c.MinDistance)
	case !(c.SmoothingFactor >= 0 && c.SmoothingFactor <= 0.5):
		return fmt.Errorf("%w: smoothing factor %g not in [0, 0.5]", ErrInvalidConfig, c.SmoothingFactor)
	case c.MaxInsertions < 0:
		return fmt.Errorf("%w: max insertions %d < 0", ErrInvalidConfig, c.MaxInsertions)
	}
	return nil
}

// Simplifier filters, resamples and smooths a stream of points.
//
// A Simplifier is not safe for concurrent use.
type Simplifier[T Point[T]] struct {
	points []T

	queueLength   int
	minDist2      float64
	maxDist       float64
	maxDist2      float64
	smoothing     float64
	maxInsertions int

	forces []T // scratch space for relax
}

// New returns an empty Simplifier.
func New[T Point[T]](cfg Config) (*Simplifier[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	maxIns := cfg.MaxInsertions
	if maxIns == 0 {
		maxIns = DefaultMaxInsertions
	}
	return &Simplifier[T]{
		queueLength:   cfg.QueueLength,
		minDist2:      cfg.MinDistance * cfg.MinDistance,
		maxDist:       cfg.MaxDistance,
		maxDist2:      cfg.MaxDistance * cfg.MaxDistance,
		smoothing:     cfg.SmoothingFactor,
		maxInsertions: maxIns,
	}, nil
}

// AddPoint offers a new point to the simplifier. The result is false if
// the point was discarded because it lies too close to the previous one.
func (s *Simplifier[T]) AddPoint(p T) bool {
	if len(s.points) == 0 {
		s.points = append(s.points, p)
		return true
	}
	if s.points[len(s.points)-1].Dist2(p) < s.minDist2 {
		return false
	}
	s.points = append(s.points, p)
	s.resample()
	s.relax()
	return true
}

// resample splits every gap longer than the maximum distance by inserting
// evenly spaced points. Inserted points are not revisited.
func (s *Simplifier[T]) resample() {
	for i := 0; i+1 < len(s.points); i++ {
		a, b := s.points[i], s.points[i+1]
		d2 := a.Dist2(b)
		if d2 <= s.maxDist2 {
			continue
		}

		n := int(math.Sqrt(d2) / s.maxDist)
		if n > s.maxInsertions {
			logging.Logger().Warn("simplify: gap too long, capping insertions",
				"length", math.Sqrt(d2), "needed", n, "cap", s.maxInsertions)
			n = s.maxInsertions
		}
		if n < 1 {
			continue
		}

		ab := b.Sub(a)
		step := 1 / float64(n+1)
		ins := make([]T, n)
		for k := range ins {
			ins[k] = a.Add(ab.Mul(float64(k+1) * step))
		}
		s.points = slices.Insert(s.points, i+1, ins...)
		i += n
	}
}

// relax applies one step of discrete Laplacian smoothing. The end points
// stay fixed.
func (s *Simplifier[T]) relax() {
	n := len(s.points)
	if n < 3 || s.smoothing == 0 {
		return
	}
	s.forces = slices.Grow(s.forces[:0], n)[:n]
	for i := 1; i < n-1; i++ {
		p := s.points[i]
		s.forces[i] = s.points[i-1].Sub(p).Add(s.points[i+1].Sub(p)).Mul(s.smoothing)
	}
	for i := 1; i < n-1; i++ {
		s.points[i] = s.points[i].Add(s.forces[i])
	}
}

// ReadyCount returns the number of points which are ready to be committed.
// Zero or a negative number means that nothing is ready.
func (s *Simplifier[T]) ReadyCount() int {
	return len(s.points) - s.queueLength
}

// Ready removes and returns the points which are ready to be committed.
// The result is nil if no points are ready.
func (s *Simplifier[T]) Ready() []T {
	n := s.ReadyCount()
	if n <= 0 {
		return nil
	}
	res := slices.Clone(s.points[:n])
	s.points = slices.Delete(s.points, 0, n)
	return res
}

// RemainingAndClear removes and returns all buffered points.
// This is used at the end of a stroke, when no more context will arrive.
func (s *Simplifier[T]) RemainingAndClear() []T {
	res := s.points
	s.points = nil
	return res
}

// Clear discards all buffered points.
func (s *Simplifier[T]) Clear() {
	s.points = s.points[:0]
}

// Len returns the number of buffered points.
func (s *Simplifier[T]) Len() int {
	return len(s.points)
}

// Points returns a copy of all buffered points, including the ones which
// are not ready yet.
func (s *Simplifier[T]) Points() []T {
	return slices.Clone(s.points)
}

// Last returns the most recently stored point.
func (s *Simplifier[T]) Last() (T, bool) {
	if len(s.points) == 0 {
		var zero T
		return zero, false
	}
	return s.points[len(s.points)-1], true
}
