// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config loads s2bluenoise command configuration from YAML.
package config

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/2dChan/s2bluenoise"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Points     int              `yaml:"points"`
	Seed       uint64           `yaml:"seed"`
	Relaxation RelaxationConfig `yaml:"relaxation"`
	Force      ForceConfig      `yaml:"force"`
	Log        LogConfig        `yaml:"log"`
}

// RelaxationConfig mirrors s2bluenoise.Options.
type RelaxationConfig struct {
	ForceExponent float64 `yaml:"force_exponent"`
	InitialStep   float64 `yaml:"initial_step"`
	Schedule      string  `yaml:"schedule"`
	DecayRate     float64 `yaml:"decay_rate"`
	MinStep       float64 `yaml:"min_step"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	DistanceEps   float64 `yaml:"distance_eps"`
}

type ForceConfig struct {
	Method  string  `yaml:"method"`
	Theta   float64 `yaml:"theta"`
	Workers int     `yaml:"workers"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	return cfg, nil
}

// Options converts the relaxation and force sections into library options.
func (c *Config) Options() ([]s2bluenoise.Option, error) {
	r := c.Relaxation

	var schedule s2bluenoise.Schedule
	switch r.Schedule {
	case "", "geometric":
		schedule = s2bluenoise.Geometric
	case "harmonic":
		schedule = s2bluenoise.Harmonic
	default:
		return nil, fmt.Errorf("config: unknown schedule %q", r.Schedule)
	}

	var field s2bluenoise.ForceField
	switch c.Force.Method {
	case "", "exact":
		field = s2bluenoise.ExactField{Workers: c.Force.Workers}
	case "barneshut":
		field = s2bluenoise.BarnesHutField{Theta: c.Force.Theta, Workers: c.Force.Workers}
	default:
		return nil, fmt.Errorf("config: unknown force method %q", c.Force.Method)
	}

	return []s2bluenoise.Option{
		s2bluenoise.WithForceExponent(r.ForceExponent),
		s2bluenoise.WithInitialStep(r.InitialStep),
		s2bluenoise.WithSchedule(schedule),
		s2bluenoise.WithDecayRate(r.DecayRate),
		s2bluenoise.WithMinStep(r.MinStep),
		s2bluenoise.WithTolerance(r.Tolerance),
		s2bluenoise.WithMaxIterations(r.MaxIterations),
		s2bluenoise.WithDistanceEps(r.DistanceEps),
		s2bluenoise.WithForceField(field),
	}, nil
}

// Logger builds a logger writing to w according to the log section.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	hopts := &slog.HandlerOptions{Level: level}

	switch c.Log.Format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}
	return nil, fmt.Errorf("config: unknown log format %q", c.Log.Format)
}
