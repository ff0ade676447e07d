package main

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/planar/core/calculator"
)

// FormatInfo renders a shape info record as an indented text block.
//
// Format:
//
//	Circle(radius=5)
//	  area: 78.5398
//	  radius: 5
//	  circumference: 31.4159
func FormatInfo(info calculator.ShapeInfo, useColor bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", Colorize(info.Description, ColorCyan, useColor))
	fmt.Fprintf(&b, "  area: %.4f\n", info.Area)

	if info.IsRightTriangle != nil {
		fmt.Fprintf(&b, "  right triangle: %t\n", *info.IsRightTriangle)
	}
	if info.Radius != nil {
		fmt.Fprintf(&b, "  radius: %g\n", *info.Radius)
	}
	if info.Circumference != nil {
		fmt.Fprintf(&b, "  circumference: %.4f\n", *info.Circumference)
	}

	return b.String()
}
