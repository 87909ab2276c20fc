// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2bluenoise

import (
	"errors"
	"log/slog"
	"math"
	"testing"
)

func TestOptions_Validation(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		wantErr bool
	}{
		{"exponent positive", WithForceExponent(3), false},
		{"exponent zero", WithForceExponent(0), true},
		{"exponent NaN", WithForceExponent(math.NaN()), true},
		{"step positive", WithInitialStep(0.1), false},
		{"step zero", WithInitialStep(0), true},
		{"step negative", WithInitialStep(-0.1), true},
		{"step infinite", WithInitialStep(math.Inf(1)), true},
		{"min step zero", WithMinStep(0), false},
		{"min step positive", WithMinStep(0.01), false},
		{"min step negative", WithMinStep(-0.01), true},
		{"min step NaN", WithMinStep(math.NaN()), true},
		{"decay positive", WithDecayRate(0.5), false},
		{"decay zero", WithDecayRate(0), true},
		{"schedule harmonic", WithSchedule(Harmonic), false},
		{"schedule unknown", WithSchedule(Schedule(7)), true},
		{"tolerance positive", WithTolerance(1e-6), false},
		{"tolerance zero", WithTolerance(0), true},
		{"tolerance negative", WithTolerance(-1), true},
		{"max iterations zero", WithMaxIterations(0), false},
		{"max iterations negative", WithMaxIterations(-1), true},
		{"distance eps positive", WithDistanceEps(1e-9), false},
		{"distance eps zero", WithDistanceEps(0), true},
		{"force field exact", WithForceField(ExactField{}), false},
		{"force field nil", WithForceField(nil), true},
		{"sampler nil", WithSampler(nil), true},
		{"logger default", WithLogger(slog.Default()), false},
		{"logger nil", WithLogger(nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			err := tt.opt(&opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("option error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("option error = %v, want wrapping ErrInvalidArgument", err)
			}
		})
	}
}

func TestBuildOptions_Steps(t *testing.T) {
	tests := []struct {
		name    string
		setters []Option
		wantErr bool
	}{
		{"default", nil, false},
		{"geometric below one", []Option{WithDecayRate(0.99)}, false},
		{"geometric one", []Option{WithDecayRate(1)}, true},
		{"geometric above one", []Option{WithDecayRate(2)}, true},
		{"harmonic above one", []Option{WithSchedule(Harmonic), WithDecayRate(2)}, false},
		{"min step at initial", []Option{WithInitialStep(0.05), WithMinStep(0.05)}, false},
		{"min step above initial", []Option{WithInitialStep(0.04)}, true},
		{"small initial without floor", []Option{WithInitialStep(0.04), WithMinStep(0)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildOptions(tt.setters)
			if (err != nil) != tt.wantErr {
				t.Errorf("buildOptions(...) error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildOptions_Defaults(t *testing.T) {
	opts, err := buildOptions(nil)
	if err != nil {
		t.Fatalf("buildOptions(nil) error = %v, want nil", err)
	}
	if opts.ForceExponent != defaultForceExponent {
		t.Errorf("opts.ForceExponent = %v, want %v", opts.ForceExponent, defaultForceExponent)
	}
	if opts.InitialStep != defaultInitialStep || opts.MinStep != defaultMinStep {
		t.Errorf("opts.InitialStep, opts.MinStep = %v, %v, want %v, %v",
			opts.InitialStep, opts.MinStep, defaultInitialStep, defaultMinStep)
	}
	if opts.Schedule != Geometric {
		t.Errorf("opts.Schedule = %v, want %v", opts.Schedule, Geometric)
	}
	if opts.ForceField == nil || opts.Sampler == nil || opts.Logger == nil {
		t.Errorf("buildOptions(nil) left nil collaborators: %+v", opts)
	}
}
