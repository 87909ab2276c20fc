// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2bluenoise generates blue noise point sets on the unit sphere.
//
// Points are first sampled uniformly (white noise), then treated as equally
// charged particles: every iteration computes the pairwise repulsion from a
// snapshot of all positions, moves each point by a decaying step times its
// tangential force and projects it back onto the sphere, until the largest
// displacement drops below a tolerance or the iteration limit is reached.
// Forces and moves are scaled by the mean site spacing, so a displacement
// below the tolerance means the remaining forces are small.
package s2bluenoise

import (
	"iter"
	"log/slog"
	"math/rand/v2"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Sphere is a set of points on the unit sphere under relaxation. The number
// of points is fixed at construction.
type Sphere struct {
	sites s2.PointVector
	// next receives the candidates of the running iteration; it is swapped
	// with sites once the iteration is complete.
	next   s2.PointVector
	forces []r3.Vector

	opts  Options
	law   ForceLaw
	scale scale
	ctl   controller
	// residual is the largest scaled tangential force of the last iteration.
	residual float64
}

// New samples n points from src and relaxes them until a terminal state is
// reached.
func New(n int, src rand.Source, setters ...Option) (*Sphere, error) {
	s, err := NewRaw(n, src, setters...)
	if err != nil {
		return nil, err
	}
	s.Relax()
	return s, nil
}

// NewRaw samples n points from src without relaxing them. Call Step or Relax
// to run iterations.
func NewRaw(n int, src rand.Source, setters ...Option) (*Sphere, error) {
	if n < 0 {
		return nil, invalid("number of points must be non-negative, got %d", n)
	}
	if src == nil {
		return nil, invalid("nil randomness source")
	}
	opts, err := buildOptions(setters)
	if err != nil {
		return nil, err
	}
	sites := opts.Sampler(n, src)
	if len(sites) != n {
		return nil, invalid("sampler returned %d points, want %d", len(sites), n)
	}
	return newSphere(sites, opts), nil
}

// FromPoints starts relaxation from a copy of points. Each point is
// normalized; zero-length or non-finite points are rejected.
func FromPoints(points s2.PointVector, setters ...Option) (*Sphere, error) {
	opts, err := buildOptions(setters)
	if err != nil {
		return nil, err
	}
	sites := make(s2.PointVector, len(points))
	for i, p := range points {
		n := p.Norm()
		if n < normFloor || !isFinite(p.Vector) {
			return nil, invalid("point %d is not a valid direction: %v", i, p)
		}
		sites[i] = s2.Point{Vector: p.Mul(1 / n)}
	}
	return newSphere(sites, opts), nil
}

func newSphere(sites s2.PointVector, opts Options) *Sphere {
	return &Sphere{
		sites:  sites,
		next:   make(s2.PointVector, len(sites)),
		forces: make([]r3.Vector, len(sites)),
		opts:   opts,
		law:    ForceLaw{Exponent: opts.ForceExponent, Eps: opts.DistanceEps},
		scale:  newScale(len(sites), opts.ForceExponent),
		ctl:    newController(opts.Tolerance, opts.MaxIterations, len(sites)),
	}
}

// Step runs a single iteration and reports whether relaxation is still
// running. It does nothing once a terminal state has been reached.
func (s *Sphere) Step() bool {
	if s.ctl.state.Terminal() {
		return false
	}
	step := s.opts.stepAt(s.ctl.iteration)

	s.opts.ForceField.Forces(s.forces, s.sites, s.law)
	s.residual = integrate(s.next, s.sites, s.forces, step, s.scale)
	fallbacks := project(s.next, s.sites)
	displacement := maxDisplacement(s.sites, s.next)
	s.sites, s.next = s.next, s.sites

	state := s.ctl.advance(step, displacement)
	s.opts.Logger.Debug("relaxation step",
		slog.Int("iteration", s.ctl.iteration),
		slog.Float64("step", step),
		slog.Float64("displacement", displacement),
		slog.Float64("residual", s.residual),
		slog.Int("fallbacks", fallbacks),
	)
	if state.Terminal() {
		s.opts.Logger.Info("relaxation finished",
			slog.Int("points", len(s.sites)),
			slog.String("state", state.String()),
			slog.Int("iterations", s.ctl.iteration),
			slog.Float64("displacement", displacement),
			slog.Float64("residual", s.residual),
		)
	}
	return !state.Terminal()
}

// Relax steps until a terminal state is reached and returns it.
func (s *Sphere) Relax() State {
	for s.Step() {
	}
	return s.ctl.state
}

func (s *Sphere) Len() int {
	return len(s.sites)
}

func (s *Sphere) State() State {
	return s.ctl.state
}

// Iterations returns the number of completed iterations.
func (s *Sphere) Iterations() int {
	return s.ctl.iteration
}

// Displacement returns the largest angular displacement, in radians, of the
// last iteration.
func (s *Sphere) Displacement() float64 {
	return s.ctl.displacement
}

// Residual returns the largest tangential force of the last iteration, in
// units of the force between two sites at the mean spacing.
func (s *Sphere) Residual() float64 {
	return s.residual
}

// StepSize returns the step size used by the last iteration.
func (s *Sphere) StepSize() float64 {
	return s.ctl.step
}

// Options returns the effective options.
func (s *Sphere) Options() Options {
	return s.opts
}

// Sites returns a copy of the current points.
func (s *Sphere) Sites() s2.PointVector {
	sites := make(s2.PointVector, len(s.sites))
	copy(sites, s.sites)
	return sites
}

// All yields the current points with their indices.
func (s *Sphere) All() iter.Seq2[int, s2.Point] {
	return func(yield func(int, s2.Point) bool) {
		for i, p := range s.sites {
			if !yield(i, p) {
				return
			}
		}
	}
}

// XYZ yields the coordinates of the current points in index order.
func (s *Sphere) XYZ() iter.Seq[[3]float64] {
	return func(yield func([3]float64) bool) {
		for _, p := range s.sites {
			if !yield([3]float64{p.X, p.Y, p.Z}) {
				return
			}
		}
	}
}
