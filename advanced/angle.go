package advanced

// Orders points by the angle they make around an origin. The sweep starts
// pointing straight up and turns clockwise, so the right half plane (including
// the vertical line through the origin) comes first, then the left half.
//
// Points collinear with the origin are ordered nearest first, except on the
// vertical line itself, where the order is by y (see Compare).
type AngleOrder struct {
	Origin Point
}

// Compare returns a negative number if a comes before b, a positive number if
// it comes after, and zero only for points that are indistinguishable.
func (o AngleOrder) Compare(a, b Point) int {
	aLeft := a.X < o.Origin.X
	bLeft := b.X < o.Origin.X
	if aLeft != bLeft {
		if bLeft {
			return -1
		}
		return 1
	}

	// Both on the vertical line through the origin. Upward rays come first;
	// below the origin the order flips.
	if Equal(a.X, o.Origin.X) && Equal(b.X, o.Origin.X) {
		if a.Y >= o.Origin.Y || b.Y >= o.Origin.Y {
			return compareFloats(b.Y, a.Y)
		}
		return compareFloats(a.Y, b.Y)
	}

	det := Cross(Sub(a, o.Origin), Sub(b, o.Origin))
	if Equal(det, 0) {
		return compareFloats(Distance(a, o.Origin), Distance(b, o.Origin))
	}
	if det < 0 {
		return -1
	}
	return 1
}

func (o AngleOrder) Less(a, b Point) bool {
	return o.Compare(a, b) < 0
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
