package geometry

// Point represents an immutable location in 3D space
type Point struct {
	x, y, z float64
}

// NewPoint creates a point from its three coordinates.
// Any float64 values are accepted, including NaN and infinities.
func NewPoint(x, y, z float64) Point {
	return Point{x: x, y: y, z: z}
}

// X returns the x coordinate
func (p Point) X() float64 { return p.x }

// Y returns the y coordinate
func (p Point) Y() float64 { return p.y }

// Z returns the z coordinate
func (p Point) Z() float64 { return p.z }

// Equal reports whether both points have exactly the same coordinates.
// The comparison is component-wise with no tolerance, so points holding
// NaN coordinates never compare equal.
func (p Point) Equal(other Point) bool {
	return p == other
}
