// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/2dChan/s2bluenoise/config"
	"github.com/gocarina/gocsv"
)

func TestRun_WritesCSV(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load(\"\") error = %v, want nil", err)
	}
	cfg.Points = 32
	cfg.Relaxation.MaxIterations = 5

	out := filepath.Join(t.TempDir(), "points.csv")
	if err := run(cfg, out); err != nil {
		t.Fatalf("run(...) error = %v, want nil", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("os.Open(%q) error = %v", out, err)
	}
	defer f.Close()

	var records []pointRecord
	if err := gocsv.Unmarshal(f, &records); err != nil {
		t.Fatalf("gocsv.Unmarshal(...) error = %v, want nil", err)
	}
	if len(records) != cfg.Points {
		t.Fatalf("len(records) = %v, want %v", len(records), cfg.Points)
	}
	for i, r := range records {
		if r.Index != i {
			t.Errorf("records[%d].Index = %v, want %v", i, r.Index, i)
		}
		if n := math.Sqrt(r.X*r.X + r.Y*r.Y + r.Z*r.Z); math.Abs(n-1) > 1e-9 {
			t.Errorf("records[%d] norm = %v, want ~1.0", i, n)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name       string
		points     int
		seed       int64
		wantPoints int
		wantSeed   uint64
	}{
		{"keep config", -1, -1, 1024, 1},
		{"zero seed", -1, 0, 1024, 0},
		{"zero points", 0, 7, 0, 7},
		{"both", 50, 42, 50, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load("")
			if err != nil {
				t.Fatalf("config.Load(\"\") error = %v, want nil", err)
			}
			applyOverrides(cfg, tt.points, tt.seed)
			if cfg.Points != tt.wantPoints || cfg.Seed != tt.wantSeed {
				t.Errorf("applyOverrides(cfg, %d, %d) = points %v, seed %v, want %v, %v",
					tt.points, tt.seed, cfg.Points, cfg.Seed, tt.wantPoints, tt.wantSeed)
			}
		})
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load(\"\") error = %v, want nil", err)
	}
	cfg.Points = -1
	if err := run(cfg, filepath.Join(t.TempDir(), "points.csv")); err == nil {
		t.Errorf("run(...) error = nil, want non-nil")
	}
}
