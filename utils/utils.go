// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar point sets and polygons.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// GenerateRandomPoints generates cnt random points uniformly distributed in bound.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, bound r2.Rect, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := 0; i < cnt; i++ {
		points[i] = r2.Point{
			X: bound.X.Lo + random.Float64()*bound.X.Length(),
			Y: bound.Y.Lo + random.Float64()*bound.Y.Length(),
		}
	}

	return points
}

// RegularPolygon returns the n vertices of a regular polygon inscribed in the
// circle of the given center and radius, in counter-clockwise order starting
// on the positive x-axis.
func RegularPolygon(n int, center r2.Point, radius float64) []r2.Point {
	vertices := make([]r2.Point, n)
	step := s1.Angle(2*math.Pi) / s1.Angle(n)

	for i := 0; i < n; i++ {
		angle := step * s1.Angle(i)
		vertices[i] = r2.Point{
			X: center.X + radius*math.Cos(angle.Radians()),
			Y: center.Y + radius*math.Sin(angle.Radians()),
		}
	}

	return vertices
}
