package geometry

import (
	"fmt"
	"math"

	"github.com/aledsdavies/planar/core/geomerr"
)

// Circle is an immutable circle defined by its radius.
type Circle struct {
	radius float64
}

// NewCircle constructs a circle. The radius must be strictly positive.
func NewCircle(radius float64) (*Circle, error) {
	if radius <= 0 {
		return nil, geomerr.Newf(geomerr.ErrInvalidArgument,
			"radius must be positive, got %s", formatDimension(radius))
	}
	return &Circle{radius: radius}, nil
}

// Radius returns the radius the circle was constructed with.
func (c *Circle) Radius() float64 {
	return c.radius
}

// Area computes the area as pi * r^2.
func (c *Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Circumference computes the circumference as 2 * pi * r.
func (c *Circle) Circumference() float64 {
	return 2 * math.Pi * c.radius
}

// Describe returns the canonical form "Circle(radius=<r>)".
func (c *Circle) Describe() string {
	return fmt.Sprintf("Circle(radius=%s)", formatDimension(c.radius))
}

// String implements fmt.Stringer by delegating to Describe.
func (c *Circle) String() string {
	return c.Describe()
}
