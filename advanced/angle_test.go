package advanced

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngleOrder_GeneralPosition(t *testing.T) {
	order := AngleOrder{Origin: Point{0, 0}}
	assertBefore := func(a, b Point) {
		assert.True(t, order.Less(a, b), "%v should come before %v", a, b)
		assert.False(t, order.Less(b, a), "%v should not come before %v", b, a)
	}

	assertBefore(Point{0, 1}, Point{1, 1})
	assertBefore(Point{1, 1}, Point{1, -1})
	assertBefore(Point{1, 0}, Point{-1, -1})
	assertBefore(Point{0, 1}, Point{0, -1})
	assertBefore(Point{0, -1}, Point{-1, -1})
	assertBefore(Point{-1, -1}, Point{-1, 1})
}

func TestAngleOrder_CollinearWithOrigin(t *testing.T) {
	order := AngleOrder{Origin: Point{0, 0}}

	assert.True(t, order.Less(Point{1, 0}, Point{2, 0}))
	assert.False(t, order.Less(Point{2, 0}, Point{1, 0}))

	assert.False(t, order.Less(Point{1, 0}, Point{1, 0}))
	assert.Equal(t, 0, order.Compare(Point{1, 0}, Point{1, 0}))
	assert.False(t, order.Less(Point{0, 0}, Point{0, 0}))
	assert.Equal(t, 0, order.Compare(Point{0, 0}, Point{0, 0}))
}

func TestAngleOrder_OffsetOrigin(t *testing.T) {
	origin := Point{10, -5}
	order := AngleOrder{Origin: origin}
	shifted := AngleOrder{Origin: Point{0, 0}}
	points := []Point{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, shifted.Compare(a, b), order.Compare(Add(a, origin), Add(b, origin)), "%v vs %v", a, b)
		}
	}
}

// Every pair of distinct grid points is strictly ordered, and sorting gives a
// sequence that is consistent pairwise.
func TestAngleOrder_StrictTotalOrder(t *testing.T) {
	order := AngleOrder{Origin: Point{0, 0}}
	var points []Point
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			if x == 0 && y == 0 {
				continue
			}
			points = append(points, Point{float64(x), float64(y)})
		}
	}

	for _, a := range points {
		for _, b := range points {
			if a == b {
				assert.Equal(t, 0, order.Compare(a, b))
				continue
			}
			require.NotEqual(t, 0, order.Compare(a, b), "%v vs %v", a, b)
			require.Equal(t, -order.Compare(a, b), order.Compare(b, a), "%v vs %v", a, b)
		}
	}

	slices.SortFunc(points, order.Compare)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			assert.True(t, order.Less(points[i], points[j]), "%v should come before %v", points[i], points[j])
		}
	}

	// The sweep starts straight up and turns clockwise
	assert.Equal(t, Point{0, 3}, points[0])
	assert.Equal(t, Point{-1, 3}, points[len(points)-1])
}
