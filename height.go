// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mintriangle

import (
	"math"

	"github.com/golang/geo/r2"
)

// crossing tells where the line through a gamma point and a polygon vertex
// meets the polygon relative to that vertex.
type crossing int

const (
	crossingCritical crossing = iota
	crossingBelow
	crossingAbove
)

func (c crossing) String() string {
	switch c {
	case crossingBelow:
		return "below"
	case crossingAbove:
		return "above"
	}
	return "critical"
}

// height returns the distance from vertex i to the flush line of edge (c-1, c).
func (s *solver) height(i, c int) float64 {
	return s.heightOf(s.polygon[i], c)
}

// heightOf returns the distance from p to the flush line of edge (c-1, c).
func (s *solver) heightOf(p r2.Point, c int) float64 {
	return distanceToLine(p, s.polygon[c], s.polygon[s.predecessor(c)])
}

// gamma returns the point on line (a, a-1) lying at twice the height of
// vertex p above the flush line of edge (c-1, c), on the polygon side. It
// reports false when line (a, a-1) is parallel to the flush line.
func (s *solver) gamma(p, a, c int) (r2.Point, bool) {
	p1, p2, ok := s.offsetIntersections(p, c,
		s.polygon[a], s.polygon[s.predecessor(a)],
		s.polygon[c], s.polygon[s.predecessor(c)])
	if !ok {
		return r2.Point{}, false
	}
	return s.interiorOf(p1, p2, c), true
}

// vertexOnSideB returns the point on side B lying at twice the height of
// vertex a-1 above side C, on the polygon side.
func (s *solver) vertexOnSideB(sideB, sideC side, a, c int) (r2.Point, bool) {
	p1, p2, ok := s.offsetIntersections(s.predecessor(a), c,
		sideB.start, sideB.end, sideC.start, sideC.end)
	if !ok {
		return r2.Point{}, false
	}
	return s.interiorOf(p1, p2, c), true
}

// offsetIntersections intersects the line through (s1, e1) with both lines
// parallel to the line through (s2, e2) at distance 2*height(p).
func (s *solver) offsetIntersections(p, c int, s1, e1, s2, e2 r2.Point) (r2.Point, r2.Point, bool) {
	l1 := lineThrough(s1, e1)
	l2 := lineThrough(s2, e2)

	// Scaled by the norm of the normal so the shift is a Euclidean distance.
	d := 2 * s.height(p, c) * math.Hypot(l2.a, l2.b)
	up, down := l2.shift(d), l2.shift(-d)

	p1, ok1 := s.tol.intersect(l1, up)
	p2, ok2 := s.tol.intersect(l1, down)
	if !ok1 || !ok2 {
		return r2.Point{}, r2.Point{}, false
	}
	if s.tol.identicalLines(l1, up) || s.tol.identicalLines(l1, down) {
		return s1, e1, true
	}
	return p1, p2, true
}

// interiorOf picks whichever of p1, p2 lies on the same side of the flush
// line of edge (c-1, c) as the rest of the polygon.
func (s *solver) interiorOf(p1, p2 r2.Point, c int) r2.Point {
	if sameSide(p1, s.polygon[s.successor(c)], s.polygon[c], s.polygon[s.predecessor(c)]) {
		return p1
	}
	return p2
}

// crossesBelow reports whether the line through vertex p and g meets the
// polygon below p.
func (s *solver) crossesBelow(g r2.Point, p, c int) bool {
	return s.classifyCrossing(directedAngle(s.polygon[p], g), p, c) == crossingBelow
}

// crossesAbove reports whether the line through g and vertex p meets the
// polygon above p.
func (s *solver) crossesAbove(g r2.Point, p, c int) bool {
	return s.classifyCrossing(directedAngle(g, s.polygon[p]), p, c) == crossingAbove
}

// classifyCrossing classifies a line through vertex p, given by its directed
// angle, against the edges adjacent to p and the flush edge (c-1, c).
func (s *solver) classifyCrossing(angle float64, p, c int) crossing {
	pred, succ := s.predecessor(p), s.successor(p)
	anglePred := directedAngle(s.polygon[pred], s.polygon[p])
	angleSucc := directedAngle(s.polygon[succ], s.polygon[p])
	angleFlush := directedAngle(s.polygon[s.predecessor(c)], s.polygon[c])

	if flush, ok := s.flushAngleBetween(angleFlush, anglePred, angleSucc); ok {
		switch {
		case s.tol.angleBetweenNonReflex(angle, anglePred, flush) || s.tol.equal(angle, anglePred):
			return s.aboveOrBelow(pred, p, c)
		case s.tol.angleBetweenNonReflex(angle, angleSucc, flush) || s.tol.equal(angle, angleSucc):
			return s.aboveOrBelow(succ, p, c)
		}
		return crossingCritical
	}

	if s.tol.angleBetweenNonReflex(angle, anglePred, angleSucc) ||
		(s.tol.equal(angle, anglePred) && !s.tol.equal(angle, angleFlush)) ||
		(s.tol.equal(angle, angleSucc) && !s.tol.equal(angle, angleFlush)) {
		return crossingBelow
	}
	return crossingCritical
}

// flushAngleBetween reports whether the flush edge angle, or its opposite,
// lies between the predecessor and successor edge angles, and returns the
// matching one.
func (s *solver) flushAngleBetween(flush, pred, succ float64) (float64, bool) {
	if s.tol.angleBetweenNonReflex(flush, pred, succ) {
		return flush, true
	}
	if s.tol.oppositeAngleBetweenNonReflex(flush, pred, succ) {
		return oppositeAngle(flush), true
	}
	return flush, false
}

// aboveOrBelow classifies a crossing on edge (neighbor, p) by comparing the
// heights of its endpoints.
func (s *solver) aboveOrBelow(neighbor, p, c int) crossing {
	if !s.tol.lessOrEqual(s.height(neighbor, c), s.height(p, c)) {
		return crossingAbove
	}
	return crossingBelow
}
