// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package mintriangle finds the minimum area triangle enclosing a convex
// polygon in linear time.

package mintriangle

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/mintriangle/hull2d"
	"github.com/golang/geo/r2"
)

const (
	defaultEps = 1e-5
)

var (
	ErrEmptyPolygon        = errors.New("mintriangle: polygon has no vertices")
	ErrDuplicateVertex     = errors.New("mintriangle: polygon has coincident adjacent vertices")
	ErrNotConvex           = errors.New("mintriangle: polygon is not convex")
	ErrMissingConstruction = errors.New("mintriangle: required construction could not be computed")
	ErrNoTriangle          = errors.New("mintriangle: no enclosing triangle found")
)

type TriangleOptions struct {
	// Eps is the relative tolerance used by every approximate comparison.
	Eps float64
	// Hull configures the convex hull built by NewTriangleFromPoints.
	Hull []hull2d.HullOption
}

type TriangleOption func(*TriangleOptions) error

func WithEps(eps float64) TriangleOption {
	return func(o *TriangleOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithHullOptions passes setters on to hull2d.ConvexHull. Only
// NewTriangleFromPoints builds a hull, NewTriangle ignores them.
func WithHullOptions(setters ...hull2d.HullOption) TriangleOption {
	return func(o *TriangleOptions) error {
		o.Hull = append(o.Hull, setters...)
		return nil
	}
}

func newTriangleOptions(setters []TriangleOption) (TriangleOptions, error) {
	opts := TriangleOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// NewTriangle returns the minimum area triangle enclosing polygon.
// NOTE: polygon must be convex, consistently wound (CCW) and free of
// duplicate or collinear vertices. Convexity is trusted, not checked.
//
// Polygons with at most three vertices are returned as they are, repeating
// vertices cyclically when fewer than three are given.
//
// Comparisons are relative to max(1, |x|, |y|), so below unit scale the
// tolerance acts as an absolute Eps. Polygons with edges shorter than that
// are rejected as having duplicate vertices; scale them up or lower Eps with
// WithEps.
func NewTriangle(polygon []r2.Point, setters ...TriangleOption) (*Triangle, error) {
	opts, err := newTriangleOptions(setters)
	if err != nil {
		return nil, err
	}

	n := len(polygon)
	if n == 0 {
		return nil, ErrEmptyPolygon
	}
	if n <= 3 {
		t := &Triangle{}
		for i := 0; i < 3; i++ {
			t.Vertices[i] = polygon[i%n]
		}
		t.Area = triangleArea(t.Vertices[0], t.Vertices[1], t.Vertices[2])
		return t, nil
	}

	s := newSolver(polygon, opts.Eps)
	for i := 0; i < n; i++ {
		if s.tol.pointsEqual(polygon[i], polygon[s.successor(i)]) {
			return nil, fmt.Errorf("%w: %d and %d", ErrDuplicateVertex, i, s.successor(i))
		}
	}

	best := &Triangle{Area: math.Inf(1)}
	_, err = s.run(func(it iteration) {
		area := triangleArea(it.vertices[0], it.vertices[1], it.vertices[2])
		if area < best.Area {
			best.Vertices = it.vertices
			best.Area = area
		}
	})
	if err != nil {
		return nil, err
	}
	if math.IsInf(best.Area, 1) {
		return nil, ErrNoTriangle
	}

	return best, nil
}

// NewTriangleFromPoints returns the minimum area triangle enclosing an
// arbitrary point set, by way of its convex hull. The hull is configured
// through WithHullOptions, independently of Eps.
func NewTriangleFromPoints(points []r2.Point, setters ...TriangleOption) (*Triangle, error) {
	opts, err := newTriangleOptions(setters)
	if err != nil {
		return nil, err
	}
	polygon, err := hull2d.ConvexHull(points, opts.Hull...)
	if err != nil {
		return nil, fmt.Errorf("mintriangle: %w", err)
	}
	return NewTriangle(polygon, setters...)
}
