package advanced

import "math"

// A ray starts at Origin and passes through Through. Only the forward half
// (t ≥ 0) counts.
type Ray struct {
	Origin  Point
	Through Point
}

func (r Ray) Direction() Point {
	return Sub(r.Through, r.Origin)
}

// Find where the ray first meets the segment. The tolerance is used for the
// parallel test and for accepting hits that land a hair behind the origin due
// to rounding. Pass RayTolerance unless you have a reason not to.
//
// If the ray runs along the segment, the answer is the origin when the origin
// lies within the segment, or else the endpoint the ray reaches first.
func (r Ray) Intersect(segment Segment, tolerance float64) (Point, bool) {
	origin := r.Origin
	direction := r.Direction()
	a, b := segment.Start, segment.End
	ao := Sub(origin, a)
	ab := Sub(b, a)
	det := Cross(ab, direction)

	if math.Abs(det) < tolerance {
		if Orient(a, b, origin) != Collinear {
			return Point{}, false
		}
		distA := Dot(ao, direction)
		distB := Dot(Sub(origin, b), direction)
		if distA > 0 && distB > 0 {
			// The whole segment is behind us
			return Point{}, false
		}
		if (distA > 0) != (distB > 0) {
			return origin, true
		}
		if distA > distB {
			return a, true
		}
		return b, true
	}

	u := Cross(ao, direction) / det
	if u < 0 || u > 1 {
		return Point{}, false
	}
	t := -Cross(ab, ao) / det
	if math.Abs(t) < tolerance || t > 0 {
		return Add(origin, Scale(direction, t)), true
	}
	return Point{}, false
}
