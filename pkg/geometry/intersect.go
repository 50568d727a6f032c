// Package geometry computes the intersection of line segments embedded in
// 3D space using exact parametric linear algebra.
package geometry

import "errors"

// DefaultTolerance is the per-axis tolerance used by callers without a
// specific accuracy requirement.
const DefaultTolerance = 1e-6

// ErrNoIntersection is returned by Intersect when the segments do not cross
// within the given tolerance.
var ErrNoIntersection = errors.New("segments do not intersect")

// Intersect computes the point where segments a and b cross.
//
// Each segment is expressed per axis as a parametric line value = slope*t +
// intercept. The x and y equations form a 2x2 linear system that is solved
// directly for the two parameters; the z equation is reserved for validating
// the solution. A candidate is accepted when on every axis the two parametric
// values differ by at most tolerance, and the returned point is segment b
// evaluated at its parameter.
//
// Solving with x/y and validating with z is axis-order dependent and not
// rotation invariant: configurations whose direction information lives mostly
// in the y/z plane (for example a first segment with zero x extent) are
// reported as non-intersecting even when the segments touch. This is kept for
// compatibility with the original algorithm, as is its asymmetry: swapping
// the arguments can change the outcome.
//
// Zero divisors are not special-cased. They produce non-finite intermediate
// values whose tolerance comparisons evaluate false, so parallel or otherwise
// degenerate configurations report ErrNoIntersection instead of panicking.
// A negative tolerance is accepted but inverts the acceptance band and will
// generally reject everything; choosing a sensible tolerance is the caller's
// responsibility.
func Intersect(a, b Segment, tolerance float64) (Point, error) {
	a1 := a.end.x - a.start.x
	b1 := a.start.x
	c1 := a.end.y - a.start.y
	d1 := a.start.y
	e1 := a.end.z - a.start.z
	f1 := a.start.z

	a2 := b.end.x - b.start.x
	b2 := b.start.x
	c2 := b.end.y - b.start.y
	d2 := b.start.y
	e2 := b.end.z - b.start.z
	f2 := b.start.z

	s := (d2*a1 - c1*b2 + c1*b1 - d1*a1) / (c1*a2 - c2*a1)
	t := (a2*s + b2 - b1) / a1

	if within(a1*t+b1, a2*s+b2, tolerance) &&
		within(c1*t+d1, c2*s+d2, tolerance) &&
		within(e1*t+f1, e2*s+f2, tolerance) {
		return NewPoint(a2*s+b2, c2*s+d2, e2*s+f2), nil
	}
	return Point{}, ErrNoIntersection
}

// within reports whether got lies in [want-tolerance, want+tolerance].
// The two-sided comparison keeps the original algorithm's treatment of NaN
// and infinite operands, which math.Abs would alter.
func within(want, got, tolerance float64) bool {
	return want-tolerance <= got && got <= want+tolerance
}
