package advanced

// Orders segments by how near they are to an origin, as seen along a common
// ray. This is the key of the sweep's active set.
//
// The order is only meaningful for segments that are crossed by some shared
// ray from the origin and that do not cross each other along it, which is
// exactly what the active set holds at any instant. Outside that situation it
// is not guaranteed to be transitive.
//
// A SegmentOrder is tied to one origin, and so to one sweep. Build a new one
// for every call.
type SegmentOrder struct {
	Origin Point
}

// Compare returns a negative number if s is nearer to the origin than other, a
// positive number if it is farther, and zero if they are the same segment
// (in either direction).
//
// Both segments must not be collinear with the origin. Violating this panics.
func (o SegmentOrder) Compare(s, other Segment) int {
	a, b := s.Start, s.End
	c, d := other.Start, other.End

	if Orient(o.Origin, a, b) == Collinear {
		fatalCollinear(o.Origin, s)
	}
	if Orient(o.Origin, c, d) == Collinear {
		fatalCollinear(o.Origin, other)
	}

	// Arrange the endpoints so that a shared endpoint, if any, is a and c
	if ApproxEqual(b, c) || ApproxEqual(b, d) {
		a, b = b, a
	}
	if ApproxEqual(a, d) {
		c, d = d, c
	}

	if ApproxEqual(a, c) {
		if ApproxEqual(b, d) {
			return 0
		}
		// The far endpoints are on opposite sides of the ray through the shared
		// endpoint, so the two can only meet there
		if Orient(o.Origin, a, d) != Orient(o.Origin, a, b) {
			return 1
		}
		if Orient(a, b, d) != Orient(a, b, o.Origin) {
			return -1
		}
		return 1
	}

	cda := Orient(c, d, a)
	cdb := Orient(c, d, b)

	switch {
	case cda == Collinear && cdb == Collinear:
		// Both on the same line. Whichever starts nearer is nearer.
		if Distance(o.Origin, a) < Distance(o.Origin, c) {
			return -1
		}
		return 1
	case cda == cdb || cda == Collinear || cdb == Collinear:
		// s lies entirely on one side of the line through other. It is nearer
		// iff the origin is on that side too.
		cdo := Orient(c, d, o.Origin)
		if cdo == cda || cdo == cdb {
			return -1
		}
		return 1
	}

	// s straddles the line through other, so other must lie on one side of s
	if Orient(a, b, o.Origin) != Orient(a, b, c) {
		return -1
	}
	return 1
}

// Is s strictly nearer to the origin than other?
func (o SegmentOrder) Less(s, other Segment) bool {
	return o.Compare(s, other) < 0
}
