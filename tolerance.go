// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mintriangle

import (
	"math"

	"github.com/golang/geo/r2"
)

// tolerance holds the relative epsilon shared by every approximate comparison
// made during a search.
type tolerance struct {
	eps float64
}

// equal reports whether |x-y| <= eps*max(1, |x|, |y|).
func (t tolerance) equal(x, y float64) bool {
	return math.Abs(x-y) <= t.eps*max(1.0, math.Abs(x), math.Abs(y))
}

func (t tolerance) greaterOrEqual(x, y float64) bool {
	return x > y || t.equal(x, y)
}

func (t tolerance) lessOrEqual(x, y float64) bool {
	return x < y || t.equal(x, y)
}

func (t tolerance) pointsEqual(p, q r2.Point) bool {
	return t.equal(p.X, q.X) && t.equal(p.Y, q.Y)
}
