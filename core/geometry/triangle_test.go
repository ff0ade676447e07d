package geometry

import (
	"math"
	"strings"
	"testing"

	"github.com/aledsdavies/planar/core/geomerr"
)

// TestNewTriangleInvalidSides verifies non-positive sides are rejected
func TestNewTriangleInvalidSides(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
	}{
		{"zero side", 0, 4, 5},
		{"negative side", -1, 4, 5},
		{"all zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri, err := NewTriangle(tt.a, tt.b, tt.c)
			if err == nil {
				t.Fatalf("NewTriangle(%v, %v, %v) expected error, got %v", tt.a, tt.b, tt.c, tri)
			}
			if !geomerr.IsInvalidArgument(err) {
				t.Errorf("error = %v, want INVALID_ARGUMENT", err)
			}
			if !strings.Contains(err.Error(), "positive") {
				t.Errorf("error %q should name the positivity failure", err)
			}
		})
	}
}

// TestNewTriangleInequalityViolation verifies degenerate and impossible
// triangles are rejected with a message distinguishable from the positivity
// failure
func TestNewTriangleInequalityViolation(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
	}{
		{"too long third side", 1, 1, 3},
		{"too long middle side", 1, 10, 2},
		{"degenerate collinear", 1, 2, 3},
		{"too long first side", 9, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri, err := NewTriangle(tt.a, tt.b, tt.c)
			if err == nil {
				t.Fatalf("NewTriangle(%v, %v, %v) expected error, got %v", tt.a, tt.b, tt.c, tri)
			}
			if !geomerr.IsInvalidArgument(err) {
				t.Errorf("error = %v, want INVALID_ARGUMENT", err)
			}
			if !strings.Contains(err.Error(), "triangle inequality") {
				t.Errorf("error %q should name the inequality failure", err)
			}
		})
	}
}

// TestTriangleArea verifies Heron's formula over the sorted sides
func TestTriangleArea(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    float64
	}{
		{"3-4-5 right triangle", 3, 4, 5, 6.0},
		{"equilateral side 2", 2, 2, 2, math.Sqrt(3)},
		{"5-12-13 right triangle", 5, 12, 13, 30.0},
		{"unsorted construction order", 13, 5, 12, 30.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri, err := NewTriangle(tt.a, tt.b, tt.c)
			if err != nil {
				t.Fatalf("NewTriangle(%v, %v, %v) error: %v", tt.a, tt.b, tt.c, err)
			}
			if got := tri.Area(); math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestTriangleAreaNearDegenerate verifies the radicand clamp keeps the area
// a real number for inequality-passing but nearly flat triangles
func TestTriangleAreaNearDegenerate(t *testing.T) {
	tri, err := NewTriangle(1, 1, 1.9999999999)
	if err != nil {
		t.Fatalf("NewTriangle error: %v", err)
	}
	area := tri.Area()
	if math.IsNaN(area) {
		t.Fatal("Area() = NaN for near-degenerate triangle")
	}
	if area < 0 {
		t.Fatalf("Area() = %v, want non-negative", area)
	}
}

// TestTriangleIsRight verifies right-angle detection via the Pythagorean
// identity on the sorted sides
func TestTriangleIsRight(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    bool
	}{
		{"3-4-5", 3, 4, 5, true},
		{"5-12-13", 5, 12, 13, true},
		{"hypotenuse first", 5, 3, 4, true},
		{"equilateral", 2, 2, 2, false},
		{"scalene", 2, 3, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri, err := NewTriangle(tt.a, tt.b, tt.c)
			if err != nil {
				t.Fatalf("NewTriangle(%v, %v, %v) error: %v", tt.a, tt.b, tt.c, err)
			}
			if got := tri.IsRightTriangle(); got != tt.want {
				t.Errorf("IsRightTriangle() = %t, want %t", got, tt.want)
			}
		})
	}
}

// TestTriangleDescribe verifies construction order is preserved in the
// description, not sorted order
func TestTriangleDescribe(t *testing.T) {
	tests := []struct {
		a, b, c float64
		want    string
	}{
		{3, 4, 5, "Triangle(sides=3, 4, 5)"},
		{5, 3, 4, "Triangle(sides=5, 3, 4)"},
		{2.5, 2.5, 3, "Triangle(sides=2.5, 2.5, 3)"},
	}

	for _, tt := range tests {
		tri, err := NewTriangle(tt.a, tt.b, tt.c)
		if err != nil {
			t.Fatalf("NewTriangle(%v, %v, %v) error: %v", tt.a, tt.b, tt.c, err)
		}
		if got := tri.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}

// TestTriangleSides verifies the accessor returns construction order
func TestTriangleSides(t *testing.T) {
	tri, err := NewTriangle(5, 3, 4)
	if err != nil {
		t.Fatalf("NewTriangle error: %v", err)
	}
	a, b, c := tri.Sides()
	if a != 5 || b != 3 || c != 4 {
		t.Errorf("Sides() = %v, %v, %v, want 5, 3, 4", a, b, c)
	}
}
