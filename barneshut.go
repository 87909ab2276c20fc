// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2bluenoise

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"gonum.org/v1/gonum/spatial/barneshut"
	gr3 "gonum.org/v1/gonum/spatial/r3"
)

const (
	defaultTheta = 0.5
	// exactThreshold is the number of sites below which the octree costs
	// more than summing every pair.
	exactThreshold = 64
)

// BarnesHutField approximates the force field with an octree, aggregating
// distant sites into their centre of charge. Theta is the opening angle
// (zero means 0.5); smaller values are more accurate and slower.
type BarnesHutField struct {
	Theta   float64
	Workers int
}

type charge struct {
	pos gr3.Vec
}

func (c *charge) Coord3() gr3.Vec { return c.pos }
func (c *charge) Mass() float64   { return 1 }

func (f BarnesHutField) Forces(dst []r3.Vector, sites s2.PointVector, law ForceLaw) {
	// The octree cannot separate coincident sites.
	if len(sites) < exactThreshold || hasDuplicates(sites) {
		ExactField{Workers: f.Workers}.Forces(dst, sites, law)
		return
	}

	theta := f.Theta
	if theta == 0 {
		theta = defaultTheta
	}

	charges := make([]*charge, len(sites))
	particles := make([]barneshut.Particle3, len(sites))
	for i, p := range sites {
		charges[i] = &charge{pos: gr3.Vec{X: p.X, Y: p.Y, Z: p.Z}}
		particles[i] = charges[i]
	}
	volume, err := barneshut.NewVolume(particles)
	if err != nil {
		ExactField{Workers: f.Workers}.Forces(dst, sites, law)
		return
	}

	// v points from the site towards the (possibly aggregated) source.
	repel := func(_, _ barneshut.Particle3, m1, m2 float64, v gr3.Vec) gr3.Vec {
		d := max(gr3.Norm(v), law.Eps)
		return gr3.Scale(-m1*m2*invPow(d, law.Exponent)/d, v)
	}

	parallelFor(len(sites), f.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			v := volume.ForceOn(charges[i], theta, repel)
			dst[i] = tangent(r3.Vector{X: v.X, Y: v.Y, Z: v.Z}, sites[i].Vector)
		}
	})
}

func hasDuplicates(sites s2.PointVector) bool {
	seen := make(map[r3.Vector]struct{}, len(sites))
	for _, p := range sites {
		if _, ok := seen[p.Vector]; ok {
			return true
		}
		seen[p.Vector] = struct{}{}
	}
	return false
}
