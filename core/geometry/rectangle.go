package geometry

import (
	"fmt"
	"math"

	"github.com/aledsdavies/planar/core/geomerr"
)

// Rectangle is an immutable rectangle defined by width and height.
type Rectangle struct {
	width, height float64
}

// NewRectangle constructs a rectangle. Both dimensions must be strictly
// positive.
func NewRectangle(width, height float64) (*Rectangle, error) {
	if width <= 0 || height <= 0 {
		return nil, geomerr.Newf(geomerr.ErrInvalidArgument,
			"width and height must be positive, got %s x %s",
			formatDimension(width), formatDimension(height))
	}
	return &Rectangle{width: width, height: height}, nil
}

// Width returns the width the rectangle was constructed with.
func (r *Rectangle) Width() float64 {
	return r.width
}

// Height returns the height the rectangle was constructed with.
func (r *Rectangle) Height() float64 {
	return r.height
}

// Area computes the area as width * height.
func (r *Rectangle) Area() float64 {
	return r.width * r.height
}

// IsSquare reports whether width and height are equal within the fixed
// epsilon tolerance.
func (r *Rectangle) IsSquare() bool {
	return math.Abs(r.width-r.height) < epsilon
}

// Describe returns the canonical form "Rectangle(width=<w>, height=<h>)".
func (r *Rectangle) Describe() string {
	return fmt.Sprintf("Rectangle(width=%s, height=%s)",
		formatDimension(r.width), formatDimension(r.height))
}

// String implements fmt.Stringer by delegating to Describe.
func (r *Rectangle) String() string {
	return r.Describe()
}
