// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2delaunay computes Delaunay triangulations of points on the S2
// sphere as the convex hull of the points.
package s2delaunay

import (
	"errors"
	"fmt"
	"slices"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

type Triangulation struct {
	Vertices s2.PointVector
	// NOTE: Vertices of each triangle are sorted in CCW(look out of sphere)
	Triangles [][3]int
}

func (dt *Triangulation) TriangleVertices(tIdx int) (s2.Point, s2.Point, s2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Edges returns every triangulation edge once, as vertex index pairs with
// the smaller index first, sorted.
func (dt *Triangulation) Edges() [][2]int {
	numEdges := len(dt.Triangles) * 3 / 2
	seen := make(map[[2]int]struct{}, numEdges)
	edges := make([][2]int, 0, numEdges)
	for _, t := range dt.Triangles {
		for j := range 3 {
			a, b := t[j], t[(j+1)%3]
			e := [2]int{min(a, b), max(a, b)}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	slices.SortFunc(edges, func(x, y [2]int) int {
		if x[0] != y[0] {
			return x[0] - y[0]
		}
		return x[1] - y[1]
	})
	return edges
}

// Neighbors returns, for every vertex, the indices of the vertices it shares
// an edge with.
func (dt *Triangulation) Neighbors() [][]int {
	neighbors := make([][]int, len(dt.Vertices))
	for _, e := range dt.Edges() {
		neighbors[e[0]] = append(neighbors[e[0]], e[1])
		neighbors[e[1]] = append(neighbors[e[1]], e[0])
	}
	return neighbors
}

type TriangulationOptions struct {
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NOTE: All vertices must lie on a sphere.
func NewTriangulation(vertices s2.PointVector, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 4 {
		return nil,
			errors.New("s2delaunay: insufficient vertices for triangulation (minimum 4 required)")
	}
	numTriangles := 2 * (numVertices - 2)

	// Every vertex is on the hull, so their mean lies inside it even when
	// the origin does not.
	var inside r3.Vector
	r3vertices := make([]r3.Vector, numVertices)
	for i, p := range vertices {
		r3vertices[i] = p.Vector
		inside = inside.Add(p.Vector)
	}
	inside = inside.Mul(1 / float64(numVertices))

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(r3vertices, true, true, opts.Eps)
	if len(ch.Indices) != numTriangles*3 {
		return nil, errors.New("s2delaunay: inconsistent number of indices returned from QuickHull")
	}

	dt := &Triangulation{
		Vertices:  vertices,
		Triangles: make([][3]int, numTriangles),
	}
	for i := range numTriangles {
		copy(dt.Triangles[i][:], ch.Indices[i*3:i*3+3])
		sortTriangleVerticesCCW(&dt.Triangles[i], dt.Vertices, inside)
	}

	return dt, nil
}

// sortTriangleVerticesCCW orders t so that its normal points away from
// inside, a point in the interior of the hull.
func sortTriangleVerticesCCW(t *[3]int, v s2.PointVector, inside r3.Vector) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	norm := p1.Sub(p0.Vector).Cross(p2.Sub(p0.Vector))
	if norm.Dot(p0.Sub(inside)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}
