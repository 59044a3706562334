// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

var unitRect = r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1})

// GenerateRandomPoints

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, unitRect, tt.seed)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, ..., %v) len = %v, want %v", tt.cnt, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_InBound(t *testing.T) {
	const (
		cnt  = 100
		seed = 0
	)
	bound := r2.RectFromPoints(r2.Point{X: -50, Y: 10}, r2.Point{X: 150, Y: 20})
	points := GenerateRandomPoints(cnt, bound, seed)
	for i, p := range points {
		if !bound.ContainsPoint(p) {
			t.Errorf("GenerateRandomPoints(%v, %v, %v)[%d] = %v, want inside bound", cnt, bound,
				seed, i, p)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomPoints(cnt, unitRect, seed)
	b := GenerateRandomPoints(cnt, unitRect, seed)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, ..., %v) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}

// RegularPolygon

func TestRegularPolygon_OnCircle(t *testing.T) {
	const (
		epsilon = 1e-12
		radius  = 3.0
	)
	center := r2.Point{X: 1, Y: -2}
	for _, n := range []int{3, 4, 7, 12} {
		vertices := RegularPolygon(n, center, radius)
		if len(vertices) != n {
			t.Fatalf("RegularPolygon(%v, ...) len = %v, want %v", n, len(vertices), n)
		}
		for i, v := range vertices {
			if d := v.Sub(center).Norm(); math.Abs(d-radius) > epsilon {
				t.Errorf("RegularPolygon(%v, ...)[%d] distance = %v, want %v", n, i, d, radius)
			}
		}
	}
}

func TestRegularPolygon_CCW(t *testing.T) {
	for _, n := range []int{3, 5, 8} {
		vertices := RegularPolygon(n, r2.Point{}, 1)
		for i := 0; i < n; i++ {
			a, b, c := vertices[i], vertices[(i+1)%n], vertices[(i+2)%n]
			if cross := b.Sub(a).Cross(c.Sub(b)); cross <= 0 {
				t.Errorf("RegularPolygon(%v, ...) turn at %d = %v, want > 0", n, (i+1)%n, cross)
			}
		}
	}
}
