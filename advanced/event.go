package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/visibility/dbg"
)

type EventKind int

const (
	StartVertex EventKind = iota
	EndVertex
)

func (k EventKind) String() string {
	if k == StartVertex {
		return "start"
	}
	return "end"
}

// A sweep event. The event happens at Segment.Start. End events store their
// segment reversed, so that Start is the segment's far end in sweep order.
type Event struct {
	Kind    EventKind
	Segment Segment
}

func StartEvent(segment Segment) Event {
	return Event{StartVertex, segment}
}

func EndEvent(segment Segment) Event {
	return Event{EndVertex, segment}
}

func (e Event) Point() Point {
	return e.Segment.Start
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s at %v", e.Kind, e.DbgName(), e.Point())
}

// A readable name for the event's segment, coloured by kind. Both events of a
// segment get the same name.
func (e Event) DbgName() string {
	name := SegmentDbgName(e.Segment)
	if e.Kind == StartVertex {
		return aurora.Green(name).String()
	}
	return aurora.Red(name).String()
}

// Segments are named independent of direction, so that the reversed copy in an
// end event is recognisable as the same obstacle.
func SegmentDbgName(s Segment) string {
	if s.End.X < s.Start.X || (s.End.X == s.Start.X && s.End.Y < s.Start.Y) {
		s = s.Reverse()
	}
	return dbg.Name(s)
}
