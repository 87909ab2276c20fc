// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package quality measures how evenly a point set covers the S2 sphere.
package quality

import (
	"math"

	"github.com/2dChan/s2bluenoise/s2delaunay"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"gonum.org/v1/gonum/stat"
)

// Report summarizes the spacing of a point set. Blue noise has a large
// minimum separation and small relative spreads.
type Report struct {
	NumPoints int
	// MinSeparation is the smallest angle between any two points.
	MinSeparation s1.Angle
	// Nearest-neighbour angle statistics, in radians.
	NearestMean   float64
	NearestStdDev float64
	// AreaCV is the coefficient of variation of Delaunay triangle areas.
	AreaCV float64
}

// MinSeparation returns the smallest angle between two distinct indices of
// points by comparing every pair. It returns math.Pi for fewer than two
// points.
func MinSeparation(points s2.PointVector) s1.Angle {
	m := s1.Angle(math.Pi)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			m = min(m, points[i].Distance(points[j]))
		}
	}
	return m
}

// Analyze triangulates points (at least 4) and reports spacing statistics.
// The nearest neighbour of every point is one of its Delaunay neighbours,
// so only triangulation edges are inspected.
func Analyze(points s2.PointVector) (Report, error) {
	dt, err := s2delaunay.NewTriangulation(points)
	if err != nil {
		return Report{}, err
	}

	nearest := make([]float64, len(points))
	for i := range nearest {
		nearest[i] = math.Pi
	}
	for _, e := range dt.Edges() {
		d := points[e[0]].Distance(points[e[1]]).Radians()
		nearest[e[0]] = min(nearest[e[0]], d)
		nearest[e[1]] = min(nearest[e[1]], d)
	}

	areas := make([]float64, len(dt.Triangles))
	for i := range dt.Triangles {
		areas[i] = s2.PointArea(dt.TriangleVertices(i))
	}

	r := Report{NumPoints: len(points), MinSeparation: s1.Angle(math.Pi)}
	for _, d := range nearest {
		r.MinSeparation = min(r.MinSeparation, s1.Angle(d))
	}
	r.NearestMean, r.NearestStdDev = stat.MeanStdDev(nearest, nil)
	areaMean, areaStd := stat.MeanStdDev(areas, nil)
	if areaMean > 0 {
		r.AreaCV = areaStd / areaMean
	}
	return r, nil
}
