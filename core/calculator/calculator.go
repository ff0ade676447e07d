// Package calculator provides stateless operations over shape values.
//
// Every operation is a pure function of its arguments: nothing is cached
// between calls, and the shape values themselves are immutable, so any
// operation may be called repeatedly with identical results.
package calculator

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/planar/core/geomerr"
	"github.com/aledsdavies/planar/core/geometry"
	"github.com/aledsdavies/planar/core/invariant"
)

// ShapeInfo is a per-call summary record for a single shape. The pointer
// fields are populated only for the kinds that define them and are never
// cached between calls.
type ShapeInfo struct {
	Type        string  `json:"type"`
	Area        float64 `json:"area"`
	Description string  `json:"description"`

	// Triangle only
	IsRightTriangle *bool `json:"is_right_triangle,omitempty"`

	// Circle only
	Radius        *float64 `json:"radius,omitempty"`
	Circumference *float64 `json:"circumference,omitempty"`
}

// Area computes the area of v through the shape capability. This is the
// type-erased entry point: for well-typed callers the interface already
// guarantees a shape, but values arriving through interface{} (mixed
// containers, decoded input) are rejected with a TYPE_MISMATCH error.
func Area(v interface{}) (float64, error) {
	shape, ok := v.(geometry.Shape)
	if !ok {
		return 0, geomerr.Newf(geomerr.ErrTypeMismatch,
			"value of type %T does not satisfy the shape capability", v)
	}
	area := shape.Area()
	invariant.NonNegative(area, "shape area")
	return area, nil
}

// TotalArea sums the areas of an ordered shape sequence. An empty or nil
// sequence sums to zero; a sequence of one is just that shape's area.
func TotalArea(shapes []geometry.Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	invariant.NonNegative(total, "total area")
	return total
}

// Info builds the summary record for a shape. Kind-conditional fields are
// selected by concrete type in fixed priority order: Triangle first, then
// Circle. Rectangle and any future kind carry only the common fields - an
// unknown kind is not a failure.
func Info(shape geometry.Shape) ShapeInfo {
	invariant.NotNil(shape, "shape")

	info := ShapeInfo{
		Type:        kindLabel(shape),
		Area:        shape.Area(),
		Description: shape.Describe(),
	}

	switch s := shape.(type) {
	case *geometry.Triangle:
		right := s.IsRightTriangle()
		info.IsRightTriangle = &right
	case *geometry.Circle:
		radius := s.Radius()
		circumference := s.Circumference()
		info.Radius = &radius
		info.Circumference = &circumference
	}

	return info
}

// kindLabel derives the variant name from the dynamic type, so unknown
// future kinds still get a usable label.
func kindLabel(shape geometry.Shape) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", shape), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
