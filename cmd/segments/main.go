package main

import (
	"fmt"
	"os"

	"github.com/fatalistix/ledas-segments/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "segments",
	Short: "A CLI tool for intersecting line segments in 3D space",
	Long: `segments computes the intersection point of two 3D line segments using
exact parametric linear algebra. The x and y axis equations are solved
directly and the z axis equation validates the solution within a tolerance.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
