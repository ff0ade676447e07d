package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/planar/core/calculator"
	"github.com/aledsdavies/planar/core/geometry"
)

func main() {
	var (
		noColor bool
		asJSON  bool
	)

	rootCmd := &cobra.Command{
		Use:          "planar",
		Short:        "Compute areas and properties of 2-D shapes",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	infoCmd := &cobra.Command{
		Use:   "info <shape-spec>...",
		Short: "Show area and properties for each shape",
		Long: `Show area and properties for each shape.

Shape specs:
  circle:R          e.g. circle:5
  triangle:A,B,C    e.g. triangle:3,4,5
  rectangle:W,H     e.g. rectangle:4,6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout(), args, asJSON, ShouldUseColor(noColor))
		},
	}
	infoCmd.Flags().BoolVar(&asJSON, "json", false, "Emit shape info records as JSON")

	totalCmd := &cobra.Command{
		Use:   "total <shape-spec>...",
		Short: "Sum the areas of the given shapes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTotal(cmd.OutOrStdout(), args)
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), ShouldUseColor(noColor))
		},
	}

	rootCmd.AddCommand(infoCmd, totalCmd, demoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseShapes turns CLI shape specs into validated shape values. The first
// failure halts parsing; there is no partial result.
func parseShapes(args []string) ([]geometry.Shape, error) {
	shapes := make([]geometry.Shape, 0, len(args))
	for _, arg := range args {
		shape, err := parseShapeSpec(arg)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

func runInfo(w io.Writer, args []string, asJSON, useColor bool) error {
	shapes, err := parseShapes(args)
	if err != nil {
		return err
	}

	infos := make([]calculator.ShapeInfo, 0, len(shapes))
	for _, shape := range shapes {
		infos = append(infos, calculator.Info(shape))
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	for _, info := range infos {
		fmt.Fprint(w, FormatInfo(info, useColor))
	}
	return nil
}

func runTotal(w io.Writer, args []string) error {
	shapes, err := parseShapes(args)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Total area: %.4f\n", calculator.TotalArea(shapes))
	return nil
}

// runDemo exercises every calculator operation against sample shapes.
func runDemo(w io.Writer, useColor bool) error {
	circle, err := geometry.NewCircle(5)
	if err != nil {
		return err
	}
	triangle, err := geometry.NewTriangle(3, 4, 5)
	if err != nil {
		return err
	}
	rectangle, err := geometry.NewRectangle(4, 6)
	if err != nil {
		return err
	}

	shapes := []geometry.Shape{circle, triangle, rectangle}
	for _, shape := range shapes {
		area, err := calculator.Area(shape)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s area: %.4f\n", calculator.Info(shape).Type, area)
	}

	fmt.Fprintf(w, "Triangle is right-angled: %t\n", triangle.IsRightTriangle())
	fmt.Fprintf(w, "Rectangle is square: %t\n", rectangle.IsSquare())
	fmt.Fprintf(w, "Total area: %.4f\n", calculator.TotalArea(shapes))

	for _, shape := range shapes {
		fmt.Fprintf(w, "\n%s", FormatInfo(calculator.Info(shape), useColor))
	}
	return nil
}
