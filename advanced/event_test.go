package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent(t *testing.T) {
	segment := Segment{Point{1, 1}, Point{1, -1}}
	start := StartEvent(segment)
	end := EndEvent(segment.Reverse())

	assert.Equal(t, Point{1, 1}, start.Point())
	assert.Equal(t, Point{1, -1}, end.Point())
	assert.Equal(t, "start", start.Kind.String())
	assert.Equal(t, "end", end.Kind.String())
}

func TestSegmentDbgName(t *testing.T) {
	a := Segment{Point{1, 1}, Point{1, -1}}

	assert.Equal(t, SegmentDbgName(a), SegmentDbgName(a.Reverse()))
	// Both events of a segment read the same, apart from colour
	assert.Contains(t, StartEvent(a).String(), SegmentDbgName(a))
	assert.Contains(t, EndEvent(a.Reverse()).String(), SegmentDbgName(a))
}
