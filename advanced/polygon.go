package advanced

import (
	"math"
	"slices"
)

// Flattening shapes into obstacle segments. Each ring contributes one segment
// per edge, in ring order. An explicit closing point (last == first) doesn't
// produce a zero length edge.

func (poly Polygon) Segments() []Segment {
	points := poly.Points
	if len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	if len(points) < 2 {
		return nil
	}
	segments := make([]Segment, 0, len(points))
	for i, vertex := range points {
		nextVertex := points[CircularIndex(i+1, len(points))]
		segments = append(segments, Segment{vertex, nextVertex})
	}
	return segments
}

func (list PolygonList) Segments() []Segment {
	var segments []Segment
	for _, poly := range list {
		segments = append(segments, poly.Segments()...)
	}
	return segments
}

// Exterior ring first, then the holes.
func (r Region) Segments() []Segment {
	segments := r.Exterior.Segments()
	for _, interior := range r.Interiors {
		segments = append(segments, interior.Segments()...)
	}
	return segments
}

func (m MultiRegion) Segments() []Segment {
	var segments []Segment
	for _, region := range m {
		segments = append(segments, region.Segments()...)
	}
	return segments
}

func (list SegmentList) Segments() []Segment {
	return list
}

// Even-odd point-in-polygon. Output is not defined for points exactly on an
// edge.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for _, segment := range poly.Segments() {
		if (segment.Start.Y > p.Y) != (segment.End.Y > p.Y) {
			// x coordinate where the edge crosses the horizontal through p
			x := segment.Start.X + (p.Y-segment.Start.Y)*(segment.End.X-segment.Start.X)/(segment.End.Y-segment.Start.Y)
			if x > p.X {
				crossingCount++
			}
		}
	}
	return crossingCount
}

// A point is inside a region if it's inside the exterior and outside every
// hole.
func (r Region) ContainsPointByEvenOdd(p Point) bool {
	if !r.Exterior.ContainsPointByEvenOdd(p) {
		return false
	}
	for _, interior := range r.Interiors {
		if interior.ContainsPointByEvenOdd(p) {
			return false
		}
	}
	return true
}

func (r Region) IsEmpty() bool {
	return len(r.Exterior.Points) == 0
}

// Shoelace formula. Positive for counterclockwise rings.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for _, segment := range poly.Segments() {
		area += Cross(segment.Start, segment.End)
	}
	return area / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

// The same ring wound the other way. The receiver is not modified.
func (poly Polygon) Reverse() Polygon {
	points := slices.Clone(poly.Points)
	slices.Reverse(points)
	return Polygon{Points: points}
}
