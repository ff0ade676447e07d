package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aledsdavies/planar/core/geometry"
)

// parseShapeSpec parses a single CLI shape spec into a validated shape.
//
// Accepted forms:
//
//	circle:R
//	triangle:A,B,C
//	rectangle:W,H (also "rect:W,H")
//
// Construction errors (non-positive dimensions, failed triangle inequality)
// propagate unchanged so the caller sees the INVALID_ARGUMENT taxonomy.
func parseShapeSpec(spec string) (geometry.Shape, error) {
	kind, rest, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("invalid shape spec %q: want <kind>:<dimensions>", spec)
	}

	dims, err := parseDimensions(rest)
	if err != nil {
		return nil, fmt.Errorf("invalid shape spec %q: %w", spec, err)
	}

	switch strings.ToLower(kind) {
	case "circle":
		if len(dims) != 1 {
			return nil, fmt.Errorf("circle takes 1 dimension (radius), got %d", len(dims))
		}
		return geometry.NewCircle(dims[0])
	case "triangle":
		if len(dims) != 3 {
			return nil, fmt.Errorf("triangle takes 3 dimensions (sides), got %d", len(dims))
		}
		return geometry.NewTriangle(dims[0], dims[1], dims[2])
	case "rectangle", "rect":
		if len(dims) != 2 {
			return nil, fmt.Errorf("rectangle takes 2 dimensions (width, height), got %d", len(dims))
		}
		return geometry.NewRectangle(dims[0], dims[1])
	default:
		return nil, fmt.Errorf("unknown shape kind %q (want circle, triangle or rectangle)", kind)
	}
}

// parseDimensions parses a comma-separated dimension list.
func parseDimensions(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	dims := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("dimension %q is not a number", strings.TrimSpace(part))
		}
		dims = append(dims, v)
	}
	return dims, nil
}
