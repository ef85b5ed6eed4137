package advanced

import "fmt"

// Points are plain values. Nothing in this package keeps a reference to a
// caller's point, and nothing ever modifies one.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// A segment is directed. For obstacle rings, the direction encodes which side
// of the segment is inside the obstacle.
type Segment struct {
	Start Point
	End   Point
}

func (s Segment) String() string {
	return fmt.Sprintf("%v→%v", s.Start, s.End)
}

// Swap the endpoints of the segment
func (s Segment) Reverse() Segment {
	return Segment{s.End, s.Start}
}

// A polygon is an implicitly closed ring of points. The last point connects
// back to the first.
type Polygon struct {
	Points []Point
}

// An unordered set of rings. Winding is up to the caller.
type PolygonList []Polygon

// A polygon with holes.
type Region struct {
	Exterior  Polygon
	Interiors []Polygon
}

type MultiRegion []Region

type SegmentList []Segment

// Anything that can be flattened into obstacle segments.
type Obstacles interface {
	Segments() []Segment
}
