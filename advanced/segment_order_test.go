package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentOrder_NoCommonEndpoints(t *testing.T) {
	origin := Point{0, 0}
	assertSegmentIsCloser(t, origin, Point{1, 1}, Point{1, -1}, Point{2, 1}, Point{2, -1})
	assertSegmentIsCloser(t, origin, Point{1, 1}, Point{1, -1}, Point{2, 2}, Point{2, 3})
}

func TestSegmentOrder_CommonEndpoints(t *testing.T) {
	origin := Point{0, 0}
	assertSegmentsAreEqual(t, origin, Point{1, 1}, Point{1, 0}, Point{1, 0}, Point{1, -1})
	assertSegmentsAreEqual(t, origin, Point{1, 1}, Point{1, 0}, Point{1, 0}, Point{1, 1})
	assertSegmentIsCloser(t, origin, Point{2, 0}, Point{1, 1}, Point{2, 1}, Point{2, 0})
	assertSegmentIsCloser(t, origin, Point{2, 1}, Point{2, 0}, Point{2, 0}, Point{3, 1})
}

func TestSegmentOrder_SameSegment(t *testing.T) {
	order := SegmentOrder{Origin: Point{0, 0}}
	s := Segment{Point{1, 1}, Point{1, -1}}
	assert.Equal(t, 0, order.Compare(s, s))
	assert.Equal(t, 0, order.Compare(s, s.Reverse()))
}

func TestSegmentOrder_NestedHorizontals(t *testing.T) {
	order := SegmentOrder{Origin: Point{0, 0}}
	segments := []Segment{
		{Point{-1, 1}, Point{1, 1}},
		{Point{-2, 2}, Point{3, 2}},
		{Point{-0.5, 3}, Point{0.5, 3}},
	}
	for i := range segments {
		for j := range segments {
			switch {
			case i < j:
				assert.True(t, order.Less(segments[i], segments[j]), "%v < %v", segments[i], segments[j])
			case i > j:
				assert.False(t, order.Less(segments[i], segments[j]), "%v < %v", segments[i], segments[j])
			}
		}
	}
}

func TestSegmentOrder_CollinearPanics(t *testing.T) {
	order := SegmentOrder{Origin: Point{0, 0}}
	collinear := Segment{Point{1, 1}, Point{2, 2}}
	other := Segment{Point{1, -1}, Point{1, 1}}

	for _, pair := range [][2]Segment{{collinear, other}, {other, collinear}} {
		err := func() (err error) {
			defer func() {
				err = HandleVisibilityPanicRecover(recover())
			}()
			order.Compare(pair[0], pair[1])
			return nil
		}()
		assert.ErrorIs(t, err, ErrCollinearSegment)
	}
}

// Check that ab is strictly closer than cd, regardless of endpoint order.
func assertSegmentIsCloser(t *testing.T, origin, a, b, c, d Point) {
	t.Helper()
	order := SegmentOrder{Origin: origin}
	for _, closer := range []Segment{{a, b}, {b, a}} {
		for _, farther := range []Segment{{c, d}, {d, c}} {
			assert.True(t, order.Less(closer, farther), "%v should be closer than %v", closer, farther)
			assert.False(t, order.Less(farther, closer), "%v should not be closer than %v", farther, closer)
		}
	}
}

// Check that neither of ab and cd is closer than the other.
func assertSegmentsAreEqual(t *testing.T, origin, a, b, c, d Point) {
	t.Helper()
	order := SegmentOrder{Origin: origin}
	for _, s := range []Segment{{a, b}, {b, a}} {
		for _, other := range []Segment{{c, d}, {d, c}} {
			assert.False(t, order.Less(s, other), "%v should not be closer than %v", s, other)
			assert.False(t, order.Less(other, s), "%v should not be closer than %v", other, s)
		}
	}
}
