package advanced

type Orientation int

const (
	Collinear Orientation = iota
	LeftTurn
	RightTurn
)

// Classify the turn a→b→c by the sign of the cross product. This is an exact
// test with no tolerance.
func Orient(a, b, c Point) Orientation {
	det := Cross(Sub(b, a), Sub(c, a))
	switch {
	case det > 0:
		return LeftTurn
	case det < 0:
		return RightTurn
	}
	return Collinear
}

func (o Orientation) String() string {
	switch o {
	case LeftTurn:
		return "left"
	case RightTurn:
		return "right"
	}
	return "collinear"
}
