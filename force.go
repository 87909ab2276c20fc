// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2bluenoise

import (
	"runtime"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// parallelThreshold is the minimum number of sites for which force
// accumulation is split across goroutines.
const parallelThreshold = 64

// ForceLaw describes the pairwise repulsion: a contribution of magnitude
// 1/d^Exponent directed from p_j to p_i, with d clamped below at Eps.
type ForceLaw struct {
	Exponent float64
	Eps      float64
}

// Pair returns the repulsive contribution of q on p. For |p - q| < Eps the
// direction is undefined, so a vector orthogonal to p is used instead, with
// its sign chosen by sign (+1 or -1) so that a coincident pair splits apart.
func (l ForceLaw) Pair(p, q r3.Vector, sign float64) r3.Vector {
	diff := p.Sub(q)
	d := diff.Norm()
	if d < l.Eps {
		return p.Ortho().Mul(sign * invPow(l.Eps, l.Exponent))
	}
	return diff.Mul(invPow(d, l.Exponent) / d)
}

// ForceField computes the net tangential repulsive force on every site of a
// snapshot. Implementations must only read sites and write dst[i] for every
// i; len(dst) == len(sites).
type ForceField interface {
	Forces(dst []r3.Vector, sites s2.PointVector, law ForceLaw)
}

// ExactField evaluates all N(N-1) pairs.
type ExactField struct {
	// Workers bounds the number of goroutines. Zero means GOMAXPROCS.
	Workers int
}

func (f ExactField) Forces(dst []r3.Vector, sites s2.PointVector, law ForceLaw) {
	parallelFor(len(sites), f.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			p := sites[i].Vector
			var acc r3.Vector
			for j, q := range sites {
				if j == i {
					continue
				}
				sign := 1.0
				if j < i {
					sign = -1
				}
				acc = acc.Add(law.Pair(p, q.Vector, sign))
			}
			dst[i] = tangent(acc, p)
		}
	})
}

// parallelFor splits [0, n) into contiguous chunks and runs fn on each,
// returning once every chunk is done. Each index is handled by exactly one
// call, so results do not depend on the number of workers.
func parallelFor(n, workers int, fn func(start, end int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n < parallelThreshold || workers == 1 {
		fn(0, n)
		return
	}
	workers = min(workers, n)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(start, end)
		}()
	}
	wg.Wait()
}
