// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull2d computes planar convex hulls in the form expected by
// mintriangle: counter-clockwise, without duplicate or collinear vertices.

package hull2d

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-9
)

type HullOptions struct {
	Eps float64
}

type HullOption func(*HullOptions) error

func WithEps(eps float64) HullOption {
	return func(o *HullOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// ConvexHull returns the vertices of the convex hull of points in
// counter-clockwise order. A single distinct point yields one vertex and
// collinear points yield the two extreme points.
//
// The points are lifted into the z=0 plane and closed off with an apex above
// their centroid, so QuickHull always sees a solid pyramid whose base is the
// planar hull. The base is nearly flat at the QuickHull tolerance, so its
// result is checked against every input point and replaced by a monotone
// chain when it is not the hull.
func ConvexHull(points []r2.Point, setters ...HullOption) ([]r2.Point, error) {
	opts := HullOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if len(points) == 0 {
		return nil, errors.New("hull2d: no points given")
	}

	bound := r2.RectFromPoints(points...)
	size := bound.Size()
	tol := opts.Eps * max(1.0, size.X, size.Y)

	if hull, ok := degenerateHull(points, tol); ok {
		return hull, nil
	}

	hull := pyramidHull(points, bound, opts.Eps)
	hull = removeRedundant(hull, tol)
	if !isHullOf(hull, points, tol) {
		hull = monotoneChain(points, tol)
	}
	if len(hull) < 3 {
		return nil, fmt.Errorf("hull2d: inconsistent hull with %d vertices", len(hull))
	}

	return hull, nil
}

// pyramidHull returns the base vertices of the QuickHull solid, ordered
// counter-clockwise.
func pyramidHull(points []r2.Point, bound r2.Rect, eps float64) []r2.Point {
	numPoints := len(points)
	cloud := make([]r3.Vector, numPoints+1)
	for i, p := range points {
		cloud[i] = r3.Vector{X: p.X, Y: p.Y}
	}
	center := bound.Center()
	size := bound.Size()
	cloud[numPoints] = r3.Vector{X: center.X, Y: center.Y, Z: max(size.X, size.Y)}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(cloud, true, true, eps)

	seen := make(map[int]bool)
	hull := make([]r2.Point, 0)
	for _, idx := range ch.Indices {
		if idx == numPoints || seen[idx] {
			continue
		}
		seen[idx] = true
		hull = append(hull, points[idx])
	}
	if len(hull) < 3 {
		return hull
	}

	sortCCW(hull)
	return hull
}

// monotoneChain builds the hull with Andrew's algorithm, dropping vertices
// whose turn is within tol of straight.
func monotoneChain(points []r2.Point, tol float64) []r2.Point {
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(p, q r2.Point) int {
		if c := cmp.Compare(p.X, q.X); c != 0 {
			return c
		}
		return cmp.Compare(p.Y, q.Y)
	})

	turnsLeft := func(a, b, c r2.Point) bool {
		u, w := b.Sub(a), c.Sub(b)
		return u.Cross(w) > tol*(u.Norm()+w.Norm())
	}

	lower := make([]r2.Point, 0, len(sorted))
	for _, p := range sorted {
		for len(lower) >= 2 && !turnsLeft(lower[len(lower)-2], lower[len(lower)-1], p) {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]r2.Point, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && !turnsLeft(upper[len(upper)-2], upper[len(upper)-1], p) {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return removeRedundant(hull, tol)
}

// isHullOf reports whether hull is a strictly convex counter-clockwise
// polygon with every point inside it or within tol of its boundary.
func isHullOf(hull, points []r2.Point, tol float64) bool {
	n := len(hull)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b, c := hull[i], hull[(i+1)%n], hull[(i+2)%n]
		if b.Sub(a).Cross(c.Sub(b)) <= 0 {
			return false
		}
	}
	for _, p := range points {
		for i := 0; i < n; i++ {
			a, b := hull[i], hull[(i+1)%n]
			edge := b.Sub(a)
			if edge.Cross(p.Sub(a)) < -tol*edge.Norm() {
				return false
			}
		}
	}
	return true
}

// degenerateHull handles point sets spanning less than two dimensions.
func degenerateHull(points []r2.Point, tol float64) ([]r2.Point, bool) {
	origin := points[0]
	far, farDist := origin, 0.0
	for _, p := range points {
		if d := p.Sub(origin).Norm(); d > farDist {
			far, farDist = p, d
		}
	}
	if farDist <= tol {
		return []r2.Point{origin}, true
	}

	dir := far.Sub(origin).Normalize()
	lo, hi := origin, origin
	loDot, hiDot := 0.0, 0.0
	for _, p := range points {
		v := p.Sub(origin)
		if math.Abs(dir.Cross(v)) > tol {
			return nil, false
		}
		if d := dir.Dot(v); d < loDot {
			lo, loDot = p, d
		} else if d > hiDot {
			hi, hiDot = p, d
		}
	}
	return []r2.Point{lo, hi}, true
}

// sortCCW orders the vertices of a convex polygon by their angle around its
// centroid.
func sortCCW(hull []r2.Point) {
	var centroid r2.Point
	for _, p := range hull {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float64(len(hull)))

	slices.SortFunc(hull, func(p, q r2.Point) int {
		ap := math.Atan2(p.Y-centroid.Y, p.X-centroid.X)
		aq := math.Atan2(q.Y-centroid.Y, q.X-centroid.X)
		switch {
		case ap < aq:
			return -1
		case ap > aq:
			return 1
		}
		return 0
	})
}

// removeRedundant drops vertices that coincide with, or lie on the segment
// between, their neighbours.
func removeRedundant(hull []r2.Point, tol float64) []r2.Point {
	for changed := true; changed && len(hull) >= 3; {
		changed = false
		n := len(hull)
		for i := 0; i < n; i++ {
			prev, cur, next := hull[(i+n-1)%n], hull[i], hull[(i+1)%n]
			u, w := cur.Sub(prev), next.Sub(cur)
			if u.Norm() <= tol || math.Abs(u.Cross(w)) <= tol*(u.Norm()+w.Norm()) {
				hull = slices.Delete(hull, i, i+1)
				changed = true
				break
			}
		}
	}
	return hull
}
