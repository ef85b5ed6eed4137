package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(size float64) Polygon {
	return Polygon{Points: []Point{{-size, -size}, {size, -size}, {size, size}, {-size, size}}}
}

func TestPolygonSegments(t *testing.T) {
	poly := Polygon{Points: []Point{{0, 0}, {1, 0}, {0, 1}}}
	expected := []Segment{
		{Point{0, 0}, Point{1, 0}},
		{Point{1, 0}, Point{0, 1}},
		{Point{0, 1}, Point{0, 0}},
	}
	assert.Equal(t, expected, poly.Segments())

	t.Run("explicitly closed", func(t *testing.T) {
		closed := Polygon{Points: append(append([]Point(nil), poly.Points...), Point{0, 0})}
		assert.Equal(t, expected, closed.Segments())
	})

	t.Run("degenerate", func(t *testing.T) {
		assert.Empty(t, Polygon{}.Segments())
		assert.Empty(t, Polygon{Points: []Point{{1, 1}}}.Segments())
	})
}

func TestRegionSegments(t *testing.T) {
	region := Region{Exterior: square(10), Interiors: []Polygon{square(1)}}
	segments := region.Segments()
	assert.Len(t, segments, 8)
	// Exterior first
	assert.Equal(t, Segment{Point{-10, -10}, Point{10, -10}}, segments[0])
	assert.Equal(t, Segment{Point{-1, -1}, Point{1, -1}}, segments[4])

	multi := MultiRegion{region, {Exterior: square(20)}}
	assert.Len(t, multi.Segments(), 12)

	list := PolygonList{square(1), square(2)}
	assert.Len(t, list.Segments(), 8)

	lines := SegmentList{{Point{0, 0}, Point{1, 1}}}
	assert.Equal(t, []Segment(lines), lines.Segments())
}

func TestContainsPointByEvenOdd(t *testing.T) {
	region := Region{Exterior: square(10), Interiors: []Polygon{square(1)}}
	assert.True(t, region.Exterior.ContainsPointByEvenOdd(Point{0, 0}))
	assert.False(t, region.ContainsPointByEvenOdd(Point{0, 0}))
	assert.True(t, region.ContainsPointByEvenOdd(Point{5, 5}))
	assert.False(t, region.ContainsPointByEvenOdd(Point{11, 0}))
	assert.False(t, region.IsEmpty())
	assert.True(t, Region{}.IsEmpty())
}

func TestSignedArea(t *testing.T) {
	ccw := square(1)
	assert.InDelta(t, 4, ccw.SignedArea(), Epsilon)
	assert.InDelta(t, -4, ccw.Reverse().SignedArea(), Epsilon)
	assert.InDelta(t, 4, ccw.Reverse().Area(), Epsilon)
}

func TestPolygonReverse(t *testing.T) {
	poly := Polygon{Points: []Point{{0, 0}, {1, 0}, {0, 1}}}
	assert.Equal(t, Polygon{Points: []Point{{0, 1}, {1, 0}, {0, 0}}}, poly.Reverse())
	assert.Equal(t, Point{0, 0}, poly.Points[0])
}
