// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2bluenoise

import (
	"math"

	"github.com/golang/geo/r3"
)

// tangent returns the component of f lying in the plane tangent to the unit
// sphere at p: f - (f·p)p.
func tangent(f, p r3.Vector) r3.Vector {
	return f.Sub(p.Mul(f.Dot(p)))
}

// invPow returns 1/d^k. Integer exponents avoid math.Pow in the pair loop.
func invPow(d, k float64) float64 {
	switch k {
	case 1:
		return 1 / d
	case 2:
		return 1 / (d * d)
	case 3:
		return 1 / (d * d * d)
	}
	return math.Pow(d, -k)
}

func isFinite(v r3.Vector) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
