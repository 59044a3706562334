// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mintriangle

import (
	"github.com/golang/geo/r2"
)

// iteration is a local triangle accepted for the flush edge ending at c.
// Vertex i lies opposite side i, where sides are ordered A, B, C.
type iteration struct {
	c        int
	ptr      pointers
	sides    sides
	vertices [3]r2.Point
}

// localTriangle intersects the three sides pairwise. It reports false when
// any two of them are parallel.
func (s *solver) localTriangle(sd sides) ([3]r2.Point, bool) {
	la, lb, lc := sd.a.line(), sd.b.line(), sd.c.line()

	vC, ok := s.tol.intersect(la, lb)
	if !ok {
		return [3]r2.Point{}, false
	}
	vB, ok := s.tol.intersect(la, lc)
	if !ok {
		return [3]r2.Point{}, false
	}
	vA, ok := s.tol.intersect(lb, lc)
	if !ok {
		return [3]r2.Point{}, false
	}
	return [3]r2.Point{vA, vB, vC}, true
}

// isValidMinimal checks that the midpoint of every side touches the polygon:
// a tangent side at its tangent vertex, a flush side within its edge.
func (s *solver) isValidMinimal(v [3]r2.Point, sd sides, ptr pointers) bool {
	midA := midpoint(v[1], v[2])
	midB := midpoint(v[0], v[2])
	midC := midpoint(v[0], v[1])

	var aValid, bValid bool
	if sd.flag == sideATangent {
		aValid = s.tol.pointsEqual(midA, s.polygon[s.predecessor(ptr.a)])
	} else {
		aValid = s.tol.onSegment(midA, sd.a.start, sd.a.end)
	}
	if sd.flag == sideBTangent {
		bValid = s.tol.pointsEqual(midB, s.polygon[ptr.b])
	} else {
		bValid = s.tol.onSegment(midB, sd.b.start, sd.b.end)
	}

	// Side C is already known to be flush when A and B both are.
	cValid := sd.flag == sidesFlush || s.tol.onSegment(midC, sd.c.start, sd.c.end)

	return aValid && bValid && cValid
}

// run sweeps every flush edge once and calls accept for each valid local
// triangle, in order of c. It returns the final pointer state.
func (s *solver) run(accept func(it iteration)) (pointers, error) {
	ptr := pointers{a: 1, b: 2}
	for c := 0; c < s.n; c++ {
		var (
			sd  sides
			err error
		)
		ptr, sd, err = s.step(ptr, c)
		if err != nil {
			return ptr, err
		}

		v, ok := s.localTriangle(sd)
		if !ok || !s.isValidMinimal(v, sd, ptr) {
			continue
		}
		accept(iteration{c: c, ptr: ptr, sides: sd, vertices: v})
	}
	return ptr, nil
}
