// Package analysis provides reporting helpers around the geometry core.
package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatalistix/ledas-segments/pkg/geometry"
)

// Distance calculates the straight-line distance between two points
func Distance(p, q geometry.Point) float64 {
	dx := p.X() - q.X()
	dy := p.Y() - q.Y()
	dz := p.Z() - q.Z()
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// FormatPoint formats a 3D point
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", p.X(), p.Y(), p.Z())
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// Report contains the inputs and outcome of a single intersection attempt
type Report struct {
	A, B      geometry.Segment
	Tolerance float64
	Point     geometry.Point
	Err       error
}

// Intersect runs the intersection for two segments and captures the outcome
func Intersect(a, b geometry.Segment, tolerance float64) Report {
	r := Report{A: a, B: b, Tolerance: tolerance}
	r.Point, r.Err = geometry.Intersect(a, b, tolerance)
	return r
}

// String renders the report for console output
func (r Report) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Segment A: %s -> %s (length: %s)\n",
		FormatPoint(r.A.Start()), FormatPoint(r.A.End()),
		FormatMeasurement(Distance(r.A.Start(), r.A.End()), ""))
	fmt.Fprintf(&sb, "Segment B: %s -> %s (length: %s)\n",
		FormatPoint(r.B.Start()), FormatPoint(r.B.End()),
		FormatMeasurement(Distance(r.B.Start(), r.B.End()), ""))
	fmt.Fprintf(&sb, "Tolerance: %g\n", r.Tolerance)

	if r.Err != nil {
		fmt.Fprintf(&sb, "Result: %v", r.Err)
	} else {
		fmt.Fprintf(&sb, "Intersection: %s", FormatPoint(r.Point))
	}
	return sb.String()
}
