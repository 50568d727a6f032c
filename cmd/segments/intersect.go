package main

import (
	"fmt"
	"os"

	"github.com/fatalistix/ledas-segments/pkg/analysis"
	"github.com/fatalistix/ledas-segments/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	startAX, startAY, startAZ float64
	endAX, endAY, endAZ       float64
	startBX, startBY, startBZ float64
	endBX, endBY, endBZ       float64
	tolerance                 float64
)

var intersectCmd = &cobra.Command{
	Use:   "intersect",
	Short: "Compute the intersection point of two segments",
	Long: `Compute the intersection point of two 3D line segments.
Each segment is given by the coordinates of its start and end points. The
intersection coordinates are printed space separated on the first line,
followed by a detailed report.`,
	Args: cobra.NoArgs,
	Run:  runIntersect,
}

func init() {
	rootCmd.AddCommand(intersectCmd)

	intersectCmd.Flags().Float64Var(&startAX, "x1", 0.0, "X coordinate of segment A start")
	intersectCmd.Flags().Float64Var(&startAY, "y1", 0.0, "Y coordinate of segment A start")
	intersectCmd.Flags().Float64Var(&startAZ, "z1", 0.0, "Z coordinate of segment A start")
	intersectCmd.Flags().Float64Var(&endAX, "x2", 0.0, "X coordinate of segment A end")
	intersectCmd.Flags().Float64Var(&endAY, "y2", 0.0, "Y coordinate of segment A end")
	intersectCmd.Flags().Float64Var(&endAZ, "z2", 0.0, "Z coordinate of segment A end")
	intersectCmd.Flags().Float64Var(&startBX, "x3", 0.0, "X coordinate of segment B start")
	intersectCmd.Flags().Float64Var(&startBY, "y3", 0.0, "Y coordinate of segment B start")
	intersectCmd.Flags().Float64Var(&startBZ, "z3", 0.0, "Z coordinate of segment B start")
	intersectCmd.Flags().Float64Var(&endBX, "x4", 0.0, "X coordinate of segment B end")
	intersectCmd.Flags().Float64Var(&endBY, "y4", 0.0, "Y coordinate of segment B end")
	intersectCmd.Flags().Float64Var(&endBZ, "z4", 0.0, "Z coordinate of segment B end")
	intersectCmd.Flags().Float64Var(&tolerance, "tolerance", geometry.DefaultTolerance,
		"maximum per-axis deviation for accepting an intersection")

	intersectCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
	intersectCmd.MarkFlagsRequiredTogether("x3", "y3", "z3", "x4", "y4", "z4")
}

func runIntersect(cmd *cobra.Command, args []string) {
	segA, err := geometry.NewSegment(
		geometry.NewPoint(startAX, startAY, startAZ),
		geometry.NewPoint(endAX, endAY, endAZ),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: segment A: %v\n", err)
		os.Exit(1)
	}

	segB, err := geometry.NewSegment(
		geometry.NewPoint(startBX, startBY, startBZ),
		geometry.NewPoint(endBX, endBY, endBZ),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: segment B: %v\n", err)
		os.Exit(1)
	}

	report := analysis.Intersect(segA, segB, tolerance)
	if report.Err != nil {
		fmt.Fprintln(os.Stderr, report)
		os.Exit(1)
	}

	p := report.Point
	fmt.Printf("%g %g %g\n", p.X(), p.Y(), p.Z())
	fmt.Println(report)
}
