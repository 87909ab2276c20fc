// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2bluenoise

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// forceFloor is the tangential force magnitude below which a site is treated
// as being in equilibrium and left in place.
const forceFloor = 1e-12

// Schedule selects how the step size decays with the iteration index.
type Schedule int

const (
	// Geometric decay: step(t) = initial * rate^t.
	Geometric Schedule = iota
	// Harmonic decay: step(t) = initial / (1 + rate*t).
	Harmonic
)

func (s Schedule) String() string {
	switch s {
	case Geometric:
		return "geometric"
	case Harmonic:
		return "harmonic"
	}
	return "unknown"
}

// Step returns the step size for iteration t (zero-based).
func (s Schedule) Step(initial, rate float64, t int) float64 {
	if s == Harmonic {
		return initial / (1 + rate*float64(t))
	}
	return initial * math.Pow(rate, float64(t))
}

// scale converts raw forces into moves. With n sites the mean spacing is
// d = sqrt(4*pi/n) and a neighbour at that distance pushes with 1/d^k, so
// forces are measured in units of 1/d^k and moves in units of d.
type scale struct {
	spacing float64
	unit    float64
}

func newScale(n int, exponent float64) scale {
	spacing := math.Sqrt(4 * math.Pi / float64(max(n, 1)))
	return scale{spacing: spacing, unit: math.Pow(spacing, exponent)}
}

// stepAt returns the step size of iteration t, never below o.MinStep.
func (o Options) stepAt(t int) float64 {
	return max(o.Schedule.Step(o.InitialStep, o.DecayRate, t), o.MinStep)
}

// integrate moves every site of src by step*F_t, with F_t in units of
// sc.unit and the move in units of sc.spacing, writing the un-normalized
// candidates to dst. A move is capped at step*sc.spacing, which is reached
// once the scaled force exceeds one. It returns the largest scaled force.
func integrate(dst, src s2.PointVector, forces []r3.Vector, step float64, sc scale) float64 {
	var residual float64
	for i, p := range src {
		f := forces[i]
		n := f.Norm()
		if n < forceFloor || math.IsNaN(n) {
			dst[i] = p
			continue
		}
		g := n * sc.unit
		residual = max(residual, g)
		dst[i] = s2.Point{Vector: p.Add(f.Mul(step * sc.spacing * min(g, 1) / n))}
	}
	return residual
}
