// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mintriangle

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// line is the set of points satisfying a*x + b*y + c = 0.
type line struct {
	a, b, c float64
}

// lineThrough returns the line determined by p and q.
// NOTE: p and q must be distinct, otherwise all coefficients vanish.
func lineThrough(p, q r2.Point) line {
	a := q.Y - p.Y
	b := p.X - q.X
	return line{a: a, b: b, c: -p.Y*b - p.X*a}
}

// shift returns the line parallel to l given by a*x + b*y + (c+d) = 0.
func (l line) shift(d float64) line {
	return line{a: l.a, b: l.b, c: l.c + d}
}

// eval returns the value of the line equation at p.
func (l line) eval(p r2.Point) float64 {
	return l.a*p.X + l.b*p.Y + l.c
}

// intersect returns the intersection point of l1 and l2. It reports false
// when the lines are parallel or coincident.
func (t tolerance) intersect(l1, l2 line) (r2.Point, bool) {
	det := l1.a*l2.b - l2.a*l1.b
	if t.equal(det, 0) {
		return r2.Point{}, false
	}

	// Solved in the form a*x + b*y = -c.
	c1, c2 := -l1.c, -l2.c
	return r2.Point{
		X: (c1*l2.b - c2*l1.b) / det,
		Y: (c2*l1.a - c1*l2.a) / det,
	}, true
}

// identicalLines reports whether l1 and l2 describe the same line, i.e. their
// coefficients are proportional.
func (t tolerance) identicalLines(l1, l2 line) bool {
	return t.equal(l1.a*l2.b, l2.a*l1.b) &&
		t.equal(l1.b*l2.c, l2.b*l1.c) &&
		t.equal(l1.a*l2.c, l2.a*l1.c)
}

// distanceToLine returns the distance from p to the line through lp and lq,
// or 0 if lp and lq coincide.
func distanceToLine(p, lp, lq r2.Point) float64 {
	d := lq.Sub(lp)
	den := d.Norm()
	if den == 0 {
		return 0
	}
	return math.Abs(d.Cross(lp.Sub(p))) / den
}

func triangleArea(p, q, r r2.Point) float64 {
	return math.Abs(q.Sub(p).Cross(r.Sub(p))) / 2
}

func midpoint(p, q r2.Point) r2.Point {
	return p.Add(q).Mul(0.5)
}

// onSegment reports whether p lies on the segment [s, e], using the equality
// case of the triangle inequality.
func (t tolerance) onSegment(p, s, e r2.Point) bool {
	d1 := p.Sub(s).Norm()
	d2 := p.Sub(e).Norm()
	return t.equal(d1+d2, s.Sub(e).Norm())
}

// sameSide reports whether p1 and p2 lie on the same side of the line through
// lp and lq. Points on the line only match other points on the line.
func sameSide(p1, p2, lp, lq r2.Point) bool {
	l := lineThrough(lp, lq)
	return sign(l.eval(p1)) == sign(l.eval(p2))
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// directedAngle returns the angle of the ray p->q measured counter-clockwise
// from the positive x-axis, in degrees within [0, 360).
func directedAngle(p, q r2.Point) float64 {
	d := q.Sub(p)
	angle := s1.Angle(math.Atan2(d.Y, d.X)).Degrees()
	if angle < 0 {
		return angle + 360
	}
	return angle
}

// oppositeAngle returns the angle pointing the other way. Angles up to and
// including 180 map into (180, 360].
func oppositeAngle(angle float64) float64 {
	if angle > 180 {
		return angle - 180
	}
	return angle + 180
}

// angleBetweenNonReflex reports whether x lies on the non-reflex arc bounded
// by lo and hi.
func (t tolerance) angleBetweenNonReflex(x, lo, hi float64) bool {
	if math.Abs(lo-hi) <= 180 {
		return angleBetween(x, lo, hi)
	}

	// The arc wraps around 0.
	if lo > hi {
		return (lo < x && t.lessOrEqual(x, 360)) || (t.lessOrEqual(0, x) && x < hi)
	}
	return (hi < x && t.lessOrEqual(x, 360)) || (t.lessOrEqual(0, x) && x < lo)
}

// angleBetween reports whether x lies strictly between lo and hi. The order of
// the bounds is picked from the truncated difference, so bounds exactly 180
// degrees apart only match when lo < hi.
func angleBetween(x, lo, hi float64) bool {
	if int(lo-hi)%180 > 0 {
		return hi < x && x < lo
	}
	return lo < x && x < hi
}

func (t tolerance) oppositeAngleBetweenNonReflex(x, lo, hi float64) bool {
	return t.angleBetweenNonReflex(oppositeAngle(x), lo, hi)
}
