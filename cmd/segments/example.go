package main

import (
	"fmt"
	"os"

	"github.com/fatalistix/ledas-segments/pkg/geometry"
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Run the built-in sample intersection",
	Long: `Intersect the sample segments (3, 0, 1e-7) -> (1, 0, 0) and
(0, 1, 0) -> (0, 4, 0) with the default tolerance and print the
intersection coordinates separated by spaces.`,
	Args: cobra.NoArgs,
	Run:  runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, args []string) {
	segA, err := geometry.NewSegment(
		geometry.NewPoint(3, 0, 1e-7),
		geometry.NewPoint(1, 0, 0),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	segB, err := geometry.NewSegment(
		geometry.NewPoint(0, 1, 0),
		geometry.NewPoint(0, 4, 0),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p, err := geometry.Intersect(segA, segB, geometry.DefaultTolerance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%g %g %g\n", p.X(), p.Y(), p.Z())
}
