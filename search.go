// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mintriangle

import (
	"fmt"

	"github.com/golang/geo/r2"
)

type sideKind int

const (
	flush sideKind = iota
	tangent
)

// side is the line through start and end. A flush side coincides with a
// polygon edge, a tangent side touches the polygon at a single vertex.
type side struct {
	start, end r2.Point
	kind       sideKind
}

func (sd side) line() line {
	return lineThrough(sd.start, sd.end)
}

// validation records which side of a local triangle is tangent and decides
// how its midpoints are checked.
type validation int

const (
	sideATangent validation = iota
	sideBTangent
	sidesFlush
)

func (v validation) String() string {
	switch v {
	case sideATangent:
		return "side A tangent"
	case sideBTangent:
		return "side B tangent"
	case sidesFlush:
		return "sides flush"
	}
	return fmt.Sprintf("validation(%d)", int(v))
}

// sides is the outcome of one step of the side search.
type sides struct {
	a, b, c side
	flag    validation
}

// pointers is the search state carried between steps. Indices only move
// forward, the counters record how far.
type pointers struct {
	a, b           int
	aSteps, bSteps int
}

// solver holds one search over a convex polygon.
type solver struct {
	polygon []r2.Point
	n       int
	tol     tolerance
}

func newSolver(polygon []r2.Point, eps float64) *solver {
	return &solver{
		polygon: polygon,
		n:       len(polygon),
		tol:     tolerance{eps: eps},
	}
}

func (s *solver) successor(i int) int {
	return (i + 1) % s.n
}

func (s *solver) predecessor(i int) int {
	if i == 0 {
		return s.n - 1
	}
	return i - 1
}

func (s *solver) advanceA(ptr pointers) pointers {
	ptr.a = s.successor(ptr.a)
	ptr.aSteps++
	return ptr
}

func (s *solver) advanceB(ptr pointers) pointers {
	ptr.b = s.successor(ptr.b)
	ptr.bSteps++
	return ptr
}

// maxLoop bounds a single pointer loop. On a convex polygon no loop moves a
// pointer around the polygon more than once.
func (s *solver) maxLoop() int {
	return 2 * s.n
}

func (s *solver) stalled(loop string, c int) error {
	return fmt.Errorf("%w: %s did not stop for c = %d", ErrNotConvex, loop, c)
}

func (s *solver) flushSide(start, end int) side {
	return side{start: s.polygon[start], end: s.polygon[end], kind: flush}
}

// step positions the three sides for the flush edge (c-1, c), advancing the
// pointers as needed.
func (s *solver) step(ptr pointers, c int) (pointers, sides, error) {
	var err error
	if ptr, err = s.advanceBToRightChain(ptr, c); err != nil {
		return ptr, sides{}, err
	}
	if ptr, err = s.moveAIfLowAndBIfHigh(ptr, c); err != nil {
		return ptr, sides{}, err
	}
	if ptr, err = s.searchForBTangency(ptr, c); err != nil {
		return ptr, sides{}, err
	}

	sd := sides{
		a: s.flushSide(s.predecessor(ptr.a), ptr.a),
		c: s.flushSide(s.predecessor(c), c),
	}
	if s.isNotBTangency(ptr, c) {
		sd, err = s.updateSidesBA(sd, ptr, c)
	} else {
		sd, err = s.updateSideB(sd, ptr, c)
	}
	return ptr, sd, err
}

// advanceBToRightChain moves b to the vertex of locally maximal height.
func (s *solver) advanceBToRightChain(ptr pointers, c int) (pointers, error) {
	for i := 0; s.tol.greaterOrEqual(s.height(s.successor(ptr.b), c), s.height(ptr.b, c)); i++ {
		if i >= s.maxLoop() {
			return ptr, s.stalled("advanceBToRightChain", c)
		}
		ptr = s.advanceB(ptr)
	}
	return ptr, nil
}

// moveAIfLowAndBIfHigh advances a while it is lower than b, unless the
// gamma line of a shows that b is the one to move.
func (s *solver) moveAIfLowAndBIfHigh(ptr pointers, c int) (pointers, error) {
	for i := 0; !s.tol.lessOrEqual(s.height(ptr.b, c), s.height(ptr.a, c)); i++ {
		if i >= s.maxLoop() {
			return ptr, s.stalled("moveAIfLowAndBIfHigh", c)
		}
		if g, ok := s.gamma(ptr.a, ptr.a, c); ok && s.crossesBelow(g, ptr.b, c) {
			ptr = s.advanceB(ptr)
		} else {
			ptr = s.advanceA(ptr)
		}
	}
	return ptr, nil
}

// searchForBTangency advances b while the gamma line of b still cuts into
// the polygon below b.
func (s *solver) searchForBTangency(ptr pointers, c int) (pointers, error) {
	for i := 0; ; i++ {
		g, ok := s.gamma(ptr.b, ptr.a, c)
		if !ok || !s.crossesBelow(g, ptr.b, c) ||
			!s.tol.greaterOrEqual(s.height(ptr.b, c), s.height(s.predecessor(ptr.a), c)) {
			return ptr, nil
		}
		if i >= s.maxLoop() {
			return ptr, s.stalled("searchForBTangency", c)
		}
		ptr = s.advanceB(ptr)
	}
}

func (s *solver) isNotBTangency(ptr pointers, c int) bool {
	if g, ok := s.gamma(ptr.b, ptr.a, c); ok && s.crossesAbove(g, ptr.b, c) {
		return true
	}
	return !s.tol.greaterOrEqual(s.height(ptr.b, c), s.height(s.predecessor(ptr.a), c))
}

// updateSidesBA makes side B flush with edge (b-1, b). If the midpoint of B
// then sits below vertex a-1, side A is turned into a tangent through a-1.
func (s *solver) updateSidesBA(sd sides, ptr pointers, c int) (sides, error) {
	sd.b = s.flushSide(s.predecessor(ptr.b), ptr.b)

	aPred := s.predecessor(ptr.a)
	mid, ok := s.midpointOfSideB(sd)
	if !ok || s.tol.greaterOrEqual(s.heightOf(mid, c), s.height(aPred, c)) {
		sd.flag = sidesFlush
		return sd, nil
	}

	v, ok := s.vertexOnSideB(sd.b, sd.c, ptr.a, c)
	if !ok {
		return sd, fmt.Errorf("%w: vertex C on side B for c = %d", ErrMissingConstruction, c)
	}
	sd.a = side{start: s.polygon[aPred], end: v, kind: tangent}
	sd.flag = sideATangent
	return sd, nil
}

// updateSideB makes side B the tangent through vertex b and gamma(b).
func (s *solver) updateSideB(sd sides, ptr pointers, c int) (sides, error) {
	g, ok := s.gamma(ptr.b, ptr.a, c)
	if !ok {
		return sd, fmt.Errorf("%w: gamma(b) for b = %d, c = %d", ErrMissingConstruction, ptr.b, c)
	}
	sd.b = side{start: g, end: s.polygon[ptr.b], kind: tangent}
	sd.flag = sideBTangent
	return sd, nil
}

// midpointOfSideB returns the midpoint between the points where side B meets
// sides C and A.
func (s *solver) midpointOfSideB(sd sides) (r2.Point, bool) {
	vA, ok := s.tol.intersect(sd.b.line(), sd.c.line())
	if !ok {
		return r2.Point{}, false
	}
	vC, ok := s.tol.intersect(sd.b.line(), sd.a.line())
	if !ok {
		return r2.Point{}, false
	}
	return midpoint(vA, vC), true
}
