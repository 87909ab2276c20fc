// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package sampler generates white noise points on the S2 sphere.
package sampler

import (
	"math"
	"math/rand/v2"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomPoints returns cnt independent points uniformly distributed over the
// sphere surface. The sine of the latitude is drawn uniformly from [-1, 1],
// which keeps the density constant per unit area instead of crowding the
// poles.
func RandomPoints(cnt int, src rand.Source) s2.PointVector {
	sinLat := distuv.Uniform{Min: -1, Max: 1, Src: src}
	lng := distuv.Uniform{Min: -math.Pi, Max: math.Pi, Src: src}

	points := make(s2.PointVector, cnt)
	for i := range cnt {
		points[i] = s2.PointFromLatLng(s2.LatLng{
			Lat: s1.Angle(math.Asin(sinLat.Rand())),
			Lng: s1.Angle(lng.Rand()),
		})
	}
	return points
}

// NewSource returns a deterministic randomness source for seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// GenerateRandomPoints is RandomPoints with a source seeded by seed.
func GenerateRandomPoints(cnt int, seed uint64) s2.PointVector {
	return RandomPoints(cnt, NewSource(seed))
}
