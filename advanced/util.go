package advanced

import "math"

// Machine epsilon for float64. Coincidence checks (are these two points the
// same vertex?) use this, not the much looser ray tolerance.
const Epsilon = 0x1p-52

// Default tolerance for the parallel and behind-the-origin checks in
// Ray.Intersect.
const RayTolerance = 1e-4

// Tolerance based equality for scalars. Only used for values we expect to be
// bit-for-bit equal, give or take a rounding step.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Two points are considered the same vertex if they are no further apart than
// Epsilon.
func ApproxEqual(a, b Point) bool {
	return Distance(a, b) <= Epsilon
}

func Sub(a, b Point) Point {
	return Point{a.X - b.X, a.Y - b.Y}
}

func Add(a, b Point) Point {
	return Point{a.X + b.X, a.Y + b.Y}
}

func Scale(p Point, f float64) Point {
	return Point{p.X * f, p.Y * f}
}

func Dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// The z component of the 3D cross product of two vectors in the plane.
func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
