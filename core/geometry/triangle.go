package geometry

import (
	"fmt"
	"math"

	"github.com/aledsdavies/planar/core/geomerr"
	"github.com/aledsdavies/planar/core/invariant"
)

// Triangle is an immutable triangle defined by its three side lengths.
// The construction order is preserved for display; an ascending sorted copy
// backs the area and right-angle math.
type Triangle struct {
	side1, side2, side3 float64
	sorted              [3]float64
}

// NewTriangle constructs a triangle from three side lengths. All sides must
// be strictly positive and satisfy the strict triangle inequality; degenerate
// (collinear) triangles are rejected.
func NewTriangle(side1, side2, side3 float64) (*Triangle, error) {
	if side1 <= 0 || side2 <= 0 || side3 <= 0 {
		return nil, geomerr.Newf(geomerr.ErrInvalidArgument,
			"all sides must be positive, got %s, %s, %s",
			formatDimension(side1), formatDimension(side2), formatDimension(side3))
	}
	if side1+side2 <= side3 || side2+side3 <= side1 || side1+side3 <= side2 {
		return nil, geomerr.Newf(geomerr.ErrInvalidArgument,
			"sides %s, %s, %s do not satisfy the triangle inequality",
			formatDimension(side1), formatDimension(side2), formatDimension(side3))
	}

	sorted := [3]float64{side1, side2, side3}
	if sorted[0] > sorted[1] {
		sorted[0], sorted[1] = sorted[1], sorted[0]
	}
	if sorted[1] > sorted[2] {
		sorted[1], sorted[2] = sorted[2], sorted[1]
	}
	if sorted[0] > sorted[1] {
		sorted[0], sorted[1] = sorted[1], sorted[0]
	}

	return &Triangle{
		side1:  side1,
		side2:  side2,
		side3:  side3,
		sorted: sorted,
	}, nil
}

// Sides returns the three side lengths in construction order.
func (t *Triangle) Sides() (float64, float64, float64) {
	return t.side1, t.side2, t.side3
}

// Area computes the area using Heron's formula over the sorted sides.
// Floating error can push the radicand a hair below zero for near-degenerate
// triangles that still pass the inequality; the radicand is clamped at zero
// before the square root.
func (t *Triangle) Area() float64 {
	a, b, c := t.sorted[0], t.sorted[1], t.sorted[2]
	s := (a + b + c) / 2
	radicand := s * (s - a) * (s - b) * (s - c)
	if radicand < 0 {
		radicand = 0
	}
	area := math.Sqrt(radicand)
	invariant.NonNegative(area, "triangle area")
	return area
}

// IsRightTriangle checks the Pythagorean identity on the two shortest sides
// against the longest, within the fixed epsilon tolerance.
func (t *Triangle) IsRightTriangle() bool {
	a, b, c := t.sorted[0], t.sorted[1], t.sorted[2]
	return math.Abs(a*a+b*b-c*c) < epsilon
}

// Describe returns "Triangle(sides=<s1>, <s2>, <s3>)" in construction order,
// not sorted order.
func (t *Triangle) Describe() string {
	return fmt.Sprintf("Triangle(sides=%s, %s, %s)",
		formatDimension(t.side1), formatDimension(t.side2), formatDimension(t.side3))
}

// String implements fmt.Stringer by delegating to Describe.
func (t *Triangle) String() string {
	return t.Describe()
}
