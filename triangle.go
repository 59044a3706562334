// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mintriangle

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Triangle is an enclosing triangle and its area.
// Vertex i lies opposite the i-th side, so Midpoints()[i] is the midpoint of
// the side not containing Vertices[i].
type Triangle struct {
	Vertices [3]r2.Point
	Area     float64
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (t *Triangle) Vertex(i int) (r2.Point, error) {
	if i < 0 || i >= len(t.Vertices) {
		return r2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, len(t.Vertices))
	}
	return t.Vertices[i], nil
}

// Midpoints returns the midpoints of the sides opposite each vertex.
func (t *Triangle) Midpoints() [3]r2.Point {
	v := t.Vertices
	return [3]r2.Point{
		midpoint(v[1], v[2]),
		midpoint(v[0], v[2]),
		midpoint(v[0], v[1]),
	}
}

// Bound returns the axis-aligned bounding rectangle of the triangle.
func (t *Triangle) Bound() r2.Rect {
	return r2.RectFromPoints(t.Vertices[:]...)
}

// Contains reports whether p lies inside the triangle or within distance eps
// of its boundary.
func (t *Triangle) Contains(p r2.Point, eps float64) bool {
	v := t.Vertices
	orient := sign(v[1].Sub(v[0]).Cross(v[2].Sub(v[0])))
	if orient == 0 {
		for i := 0; i < 3; i++ {
			if distanceToSegment(p, v[i], v[(i+1)%3]) <= eps {
				return true
			}
		}
		return false
	}

	for i := 0; i < 3; i++ {
		u, w := v[i], v[(i+1)%3]
		edge := w.Sub(u)
		// Signed distance of p from the edge, positive towards the interior.
		d := float64(orient) * edge.Cross(p.Sub(u)) / edge.Norm()
		if d < -eps {
			return false
		}
	}
	return true
}

func distanceToSegment(p, a, b r2.Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Sub(a).Norm()
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/lenSq))
	return p.Sub(a.Add(ab.Mul(t))).Norm()
}
