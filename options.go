// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2bluenoise

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/2dChan/s2bluenoise/sampler"
	"github.com/golang/geo/s2"
)

const (
	defaultForceExponent = 2
	defaultInitialStep   = 0.2
	defaultDecayRate     = 0.98
	defaultMinStep       = 0.05
	defaultTolerance     = 1e-5
	defaultMaxIterations = 500
	defaultDistanceEps   = 1e-6
)

// ErrInvalidArgument is wrapped by every error reporting a rejected point
// count, option value or input point.
var ErrInvalidArgument = errors.New("s2bluenoise: invalid argument")

// Sampler produces cnt independent points uniformly distributed on the unit
// sphere, drawing randomness from src.
type Sampler func(cnt int, src rand.Source) s2.PointVector

// Options holds the relaxation parameters.
type Options struct {
	// ForceExponent k of the 1/d^k repulsion.
	ForceExponent float64
	// InitialStep is the step size of the first iteration. Steps are
	// measured in units of the mean site spacing, so the same value suits
	// any number of sites.
	InitialStep float64
	DecayRate   float64
	Schedule    Schedule
	// MinStep floors the decaying step. With a positive floor, a converged
	// set has a remaining scaled force below about Tolerance/(MinStep*d).
	MinStep float64
	// Tolerance is the maximum per-site angular displacement, in radians,
	// below which relaxation is considered converged.
	Tolerance     float64
	MaxIterations int
	// DistanceEps clamps pair distances from below.
	DistanceEps float64

	ForceField ForceField
	Sampler    Sampler
	Logger     *slog.Logger
}

func defaultOptions() Options {
	return Options{
		ForceExponent: defaultForceExponent,
		InitialStep:   defaultInitialStep,
		DecayRate:     defaultDecayRate,
		MinStep:       defaultMinStep,
		Schedule:      Geometric,
		Tolerance:     defaultTolerance,
		MaxIterations: defaultMaxIterations,
		DistanceEps:   defaultDistanceEps,
		ForceField:    ExactField{},
		Sampler:       sampler.RandomPoints,
		Logger:        slog.New(slog.DiscardHandler),
	}
}

type Option func(*Options) error

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return invalid("%s must be positive and finite, got %v", name, v)
	}
	return nil
}

func WithForceExponent(k float64) Option {
	return func(o *Options) error {
		if err := positive("force exponent", k); err != nil {
			return err
		}
		o.ForceExponent = k
		return nil
	}
}

func WithInitialStep(step float64) Option {
	return func(o *Options) error {
		if err := positive("initial step", step); err != nil {
			return err
		}
		o.InitialStep = step
		return nil
	}
}

// WithDecayRate sets the schedule rate. Geometric decay requires a rate in
// (0, 1); harmonic decay requires a positive rate.
func WithDecayRate(rate float64) Option {
	return func(o *Options) error {
		if err := positive("decay rate", rate); err != nil {
			return err
		}
		o.DecayRate = rate
		return nil
	}
}

// WithMinStep sets the step floor. Zero lets the step decay without bound.
func WithMinStep(step float64) Option {
	return func(o *Options) error {
		if !(step >= 0) || math.IsInf(step, 0) {
			return invalid("min step must be non-negative and finite, got %v", step)
		}
		o.MinStep = step
		return nil
	}
}

func WithSchedule(s Schedule) Option {
	return func(o *Options) error {
		if s != Geometric && s != Harmonic {
			return invalid("unknown schedule %d", int(s))
		}
		o.Schedule = s
		return nil
	}
}

func WithTolerance(tol float64) Option {
	return func(o *Options) error {
		if err := positive("tolerance", tol); err != nil {
			return err
		}
		o.Tolerance = tol
		return nil
	}
}

// WithMaxIterations sets the iteration ceiling. Zero leaves the sampled
// points untouched.
func WithMaxIterations(n int) Option {
	return func(o *Options) error {
		if n < 0 {
			return invalid("max iterations must be non-negative, got %d", n)
		}
		o.MaxIterations = n
		return nil
	}
}

func WithDistanceEps(eps float64) Option {
	return func(o *Options) error {
		if err := positive("distance eps", eps); err != nil {
			return err
		}
		o.DistanceEps = eps
		return nil
	}
}

func WithForceField(f ForceField) Option {
	return func(o *Options) error {
		if f == nil {
			return invalid("nil force field")
		}
		o.ForceField = f
		return nil
	}
}

func WithSampler(s Sampler) Option {
	return func(o *Options) error {
		if s == nil {
			return invalid("nil sampler")
		}
		o.Sampler = s
		return nil
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) error {
		if l == nil {
			return invalid("nil logger")
		}
		o.Logger = l
		return nil
	}
}

func buildOptions(setters []Option) (Options, error) {
	opts := defaultOptions()
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return Options{}, err
		}
	}
	if opts.Schedule == Geometric && opts.DecayRate >= 1 {
		return Options{}, invalid("geometric decay rate must be below 1, got %v", opts.DecayRate)
	}
	if opts.MinStep > opts.InitialStep {
		return Options{}, invalid("min step %v exceeds initial step %v", opts.MinStep, opts.InitialStep)
	}
	return opts, nil
}
