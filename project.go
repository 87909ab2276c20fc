// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2bluenoise

import (
	"github.com/golang/geo/s2"
)

// normFloor is the candidate length below which normalization is refused.
const normFloor = 1e-8

// project renormalizes candidates onto the unit sphere in place. Candidates
// that are too short or not finite are replaced by their pre-iteration
// position from prev. It returns how many sites fell back.
func project(candidates, prev s2.PointVector) int {
	fallbacks := 0
	for i, c := range candidates {
		n := c.Norm()
		if n < normFloor || !isFinite(c.Vector) {
			candidates[i] = prev[i]
			fallbacks++
			continue
		}
		candidates[i] = s2.Point{Vector: c.Mul(1 / n)}
	}
	return fallbacks
}

// maxDisplacement returns the largest angle, in radians, between
// corresponding sites of a and b.
func maxDisplacement(a, b s2.PointVector) float64 {
	var m float64
	for i := range a {
		m = max(m, a[i].Distance(b[i]).Radians())
	}
	return m
}
