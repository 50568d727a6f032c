package geometry

import (
	"errors"
	"math"
	"testing"
)

func mustSegment(t *testing.T, start, end Point) Segment {
	t.Helper()
	seg, err := NewSegment(start, end)
	if err != nil {
		t.Fatalf("NewSegment failed: %v", err)
	}
	return seg
}

func assertPointNear(t *testing.T, got, expected Point, eps float64) {
	t.Helper()
	if math.Abs(got.X()-expected.X()) > eps ||
		math.Abs(got.Y()-expected.Y()) > eps ||
		math.Abs(got.Z()-expected.Z()) > eps {
		t.Errorf("Intersect failed: expected %v, got %v", expected, got)
	}
}

func TestIntersectCrossingSegments(t *testing.T) {
	a := mustSegment(t, NewPoint(0, 0, 0), NewPoint(2, 0, 0))
	b := mustSegment(t, NewPoint(1, -1, 0), NewPoint(1, 1, 0))

	p, err := Intersect(a, b, DefaultTolerance)
	if err != nil {
		t.Fatalf("Intersect failed: %v", err)
	}
	assertPointNear(t, p, NewPoint(1, 0, 0), 1e-9)
}

func TestIntersectSampleSegments(t *testing.T) {
	// The sample configuration shipped with the example command. By hand:
	// s = -2/6, t = 3/2, and segment b evaluated at s gives (0, 3s+1, 0),
	// which is (0, 0, 0) up to float64 rounding.
	a := mustSegment(t, NewPoint(3, 0, 1e-7), NewPoint(1, 0, 0))
	b := mustSegment(t, NewPoint(0, 1, 0), NewPoint(0, 4, 0))

	p, err := Intersect(a, b, DefaultTolerance)
	if err != nil {
		t.Fatalf("Intersect failed: %v", err)
	}
	assertPointNear(t, p, NewPoint(0, 0, 0), 1e-9)
}

func TestIntersectNearMissWithinTolerance(t *testing.T) {
	// The segments miss each other by 1e-7 along z, which the default
	// tolerance absorbs. The reported point lies on segment b.
	a := mustSegment(t, NewPoint(0, 0, 1e-7), NewPoint(2, 0, 1e-7))
	b := mustSegment(t, NewPoint(1, -1, 0), NewPoint(1, 1, 0))

	p, err := Intersect(a, b, DefaultTolerance)
	if err != nil {
		t.Fatalf("Intersect failed: %v", err)
	}
	assertPointNear(t, p, NewPoint(1, 0, 0), 1e-9)
}

func TestIntersectSkewSegments(t *testing.T) {
	// Same projection onto the x/y plane as a crossing pair, but separated
	// by 1 along z.
	a := mustSegment(t, NewPoint(0, 0, 1), NewPoint(2, 0, 1))
	b := mustSegment(t, NewPoint(1, -1, 0), NewPoint(1, 1, 0))

	if _, err := Intersect(a, b, DefaultTolerance); !errors.Is(err, ErrNoIntersection) {
		t.Errorf("Intersect failed: expected ErrNoIntersection, got %v", err)
	}
}

func TestIntersectZeroXSlope(t *testing.T) {
	// Segment a has no x extent, so solving for t divides by zero. The
	// segments touch at (0, 1, 0), but the non-finite parameter must route
	// to ErrNoIntersection without panicking.
	a := mustSegment(t, NewPoint(0, 0, 0), NewPoint(0, 2, 0))
	b := mustSegment(t, NewPoint(-1, 1, 0), NewPoint(1, 1, 0))

	if _, err := Intersect(a, b, DefaultTolerance); !errors.Is(err, ErrNoIntersection) {
		t.Errorf("Intersect failed: expected ErrNoIntersection, got %v", err)
	}
}

func TestIntersectAsymmetry(t *testing.T) {
	// The algorithm treats its arguments asymmetrically: with the zero x
	// slope on the first segment the intersection is missed, with the
	// arguments swapped it is found.
	a := mustSegment(t, NewPoint(0, 0, 0), NewPoint(0, 2, 0))
	b := mustSegment(t, NewPoint(-1, 1, 0), NewPoint(1, 1, 0))

	if _, err := Intersect(a, b, DefaultTolerance); !errors.Is(err, ErrNoIntersection) {
		t.Fatalf("Intersect failed: expected ErrNoIntersection, got %v", err)
	}

	p, err := Intersect(b, a, DefaultTolerance)
	if err != nil {
		t.Fatalf("Intersect failed: %v", err)
	}
	assertPointNear(t, p, NewPoint(0, 1, 0), 1e-9)
}

func TestIntersectParallelSegments(t *testing.T) {
	// Parallel directions make the s denominator zero; the infinite
	// parameter must route to ErrNoIntersection without panicking.
	a := mustSegment(t, NewPoint(0, 0, 0), NewPoint(1, 1, 0))
	b := mustSegment(t, NewPoint(1, 0, 0), NewPoint(2, 1, 0))

	if _, err := Intersect(a, b, DefaultTolerance); !errors.Is(err, ErrNoIntersection) {
		t.Errorf("Intersect failed: expected ErrNoIntersection, got %v", err)
	}
}

func TestIntersectCollinearSegments(t *testing.T) {
	// Overlapping collinear segments make both the numerator and the
	// denominator zero, so s is NaN and every comparison fails.
	a := mustSegment(t, NewPoint(0, 0, 0), NewPoint(2, 2, 0))
	b := mustSegment(t, NewPoint(1, 1, 0), NewPoint(3, 3, 0))

	if _, err := Intersect(a, b, DefaultTolerance); !errors.Is(err, ErrNoIntersection) {
		t.Errorf("Intersect failed: expected ErrNoIntersection, got %v", err)
	}
}

func TestIntersectNegativeTolerance(t *testing.T) {
	// A negative tolerance inverts the acceptance band and rejects even an
	// exact crossing.
	a := mustSegment(t, NewPoint(0, 0, 0), NewPoint(2, 0, 0))
	b := mustSegment(t, NewPoint(1, -1, 0), NewPoint(1, 1, 0))

	if _, err := Intersect(a, b, -1e-6); !errors.Is(err, ErrNoIntersection) {
		t.Errorf("Intersect failed: expected ErrNoIntersection, got %v", err)
	}
}
