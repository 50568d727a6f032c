package geometry

import "errors"

// ErrDegenerateSegment is returned by NewSegment when the start and end
// points coincide.
var ErrDegenerateSegment = errors.New("degenerate segment: start and end points coincide")

// Segment represents an immutable directed segment between two distinct points
type Segment struct {
	start, end Point
}

// NewSegment creates a segment from start to end. The points must differ in
// at least one coordinate by exact comparison; a segment between coinciding
// points has no direction and is rejected with ErrDegenerateSegment.
func NewSegment(start, end Point) (Segment, error) {
	if start.Equal(end) {
		return Segment{}, ErrDegenerateSegment
	}
	return Segment{start: start, end: end}, nil
}

// Start returns a copy of the segment's start point
func (s Segment) Start() Point { return s.start }

// End returns a copy of the segment's end point
func (s Segment) End() Point { return s.end }
