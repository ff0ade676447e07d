// Package geometry implements a closed set of validated 2-D shape values.
//
// Every shape is immutable once constructed: the constructor validates its
// geometric preconditions and either returns a fully formed value or an
// INVALID_ARGUMENT error, never a partial shape. Derived quantities (area,
// circumference, predicates) are computed on demand, so shape values are safe
// to share across goroutines without locking.
package geometry

import "strconv"

// Shape is the capability every variant supports. The calculator and any
// generic caller interact with shapes exclusively through this interface;
// narrowing to a concrete type is reserved for kind-specific attributes.
type Shape interface {
	// Area computes the shape's area. Always succeeds for a validly
	// constructed shape.
	Area() float64

	// Describe returns the canonical human-readable form, e.g.
	// "Circle(radius=2)". Dimensions are rendered in their minimal decimal
	// form, matching how the literal was supplied.
	Describe() string
}

// epsilon is the fixed absolute tolerance for the right-angle and square
// predicates. This is a deliberate design constant, not user-configurable.
const epsilon = 1e-10

// formatDimension renders a dimension using its minimal decimal
// representation (5 -> "5", 3.14 -> "3.14", 0.5 -> "0.5").
func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
