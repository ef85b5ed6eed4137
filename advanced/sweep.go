package advanced

import (
	"slices"

	"github.com/google/btree"
)

// Radial sweep for the visibility polygon of a point among line segment
// obstacles.
//
// Every obstacle segment that is not collinear with the origin is oriented so
// that the origin is on its right, which means the sweep (clockwise, starting
// straight up) meets its start before its end. Each endpoint becomes an event.
// The active set holds the segments crossed by the current sweep ray, nearest
// first. Whenever an event's segment is nearer than everything active, the
// boundary jumps between that segment and the nearest active one, and we emit
// both the event point and the point where the ray through it hits the
// nearest active segment.
//
// Nothing is synthesized at infinity. If the obstacles don't enclose the
// origin, the result is whatever the emitted vertices make, which is usually
// not what you want. Add a bounding box.

// Degree of the active set's B-tree. The set rarely holds more than a few
// dozen segments.
const activeSetDegree = 8

// A numerical inconsistency in the sweep that we survived. These should not
// happen, but floating point error can cause them.
type Diagnostic struct {
	Event   Event
	Nearest Segment
	Message string
}

// Compute the visibility polygon of origin among segments.
//
// The returned polygon's winding is whatever the sweep produces (clockwise for
// a typical enclosed origin) and is not normalised. Diagnostics are returned
// alongside, and also logged at warn level on the configured logger.
func PointVisibility(origin Point, segments []Segment, opts ...Option) (Polygon, []Diagnostic) {
	options := newOptions(opts)
	order := SegmentOrder{Origin: origin}
	state := btree.NewG[Segment](activeSetDegree, order.Less)
	events := make([]Event, 0, len(segments)*2)

	for _, segment := range segments {
		switch Orient(origin, segment.Start, segment.End) {
		case Collinear:
			// Degenerate from here. It can't block anything the segments around it
			// don't already block.
			continue
		case RightTurn:
			events = append(events, StartEvent(segment), EndEvent(segment.Reverse()))
		case LeftTurn:
			segment = segment.Reverse()
			events = append(events, StartEvent(segment), EndEvent(segment.Reverse()))
		}

		// Seed the state with the segments the initial (upward) ray crosses
		a, b := segment.Start, segment.End
		if a.X > b.X {
			a, b = b, a
		}
		if (Equal(b.X, origin.X) || (a.X < origin.X && origin.X < b.X)) && Orient(a, b, origin) == RightTurn {
			state.ReplaceOrInsert(segment)
		}
	}

	sortEventsByAngle(origin, events)
	options.Logger.Debug("sweeping", "origin", origin, "events", len(events), "initial", state.Len())

	var vertices []Point
	var diagnostics []Diagnostic
	for _, event := range events {
		segment := event.Segment

		if event.Kind == EndVertex {
			state.Delete(segment)
		}

		nearest, ok := state.Min()
		if !ok {
			vertices = append(vertices, event.Point())
		} else if order.Less(segment, nearest) {
			intersection, hit := castToNearest(origin, event.Point(), nearest, options.RayTolerance)
			if !hit {
				diagnostic := Diagnostic{
					Event:   event,
					Nearest: nearest,
					Message: "ray through event missed the nearest active segment",
				}
				diagnostics = append(diagnostics, diagnostic)
				options.Logger.Warn(diagnostic.Message,
					"kind", event.Kind,
					"point", event.Point(),
					"nearest", nearest,
					"origin", origin,
				)
			} else if event.Kind == StartVertex {
				vertices = append(vertices, intersection, event.Point())
			} else {
				vertices = append(vertices, event.Point(), intersection)
			}
		}

		if event.Kind == StartVertex {
			state.ReplaceOrInsert(segment)
		}
	}

	vertices = CompactCollinear(vertices)
	return Polygon{Points: vertices}, diagnostics
}

// Where the ray from origin through point first meets nearest. A point that is
// already an endpoint of nearest is its own answer; casting there lands a
// rounding step past the end of the segment.
func castToNearest(origin, point Point, nearest Segment, tolerance float64) (Point, bool) {
	if ApproxEqual(point, nearest.Start) {
		return nearest.Start, true
	}
	if ApproxEqual(point, nearest.End) {
		return nearest.End, true
	}
	return Ray{Origin: origin, Through: point}.Intersect(nearest, tolerance)
}

// Sort events into sweep order. Events at the same point put ends before
// starts, so the state never holds two segments that only touch. Ties between
// events of the same kind keep their input order.
func sortEventsByAngle(origin Point, events []Event) {
	angleOrder := AngleOrder{Origin: origin}
	slices.SortStableFunc(events, func(a, b Event) int {
		if ApproxEqual(a.Point(), b.Point()) {
			switch {
			case a.Kind == EndVertex && b.Kind == StartVertex:
				return -1
			case a.Kind == StartVertex && b.Kind == EndVertex:
				return 1
			}
			return 0
		}
		return angleOrder.Compare(a.Point(), b.Point())
	})
}

// Drop every vertex that is exactly collinear with its neighbours, treating
// the slice as a ring. Works in place with a single pass: each vertex is tested
// against the last vertex kept so far and its successor in the input.
func CompactCollinear(vertices []Point) []Point {
	top := 0
	for i := range vertices {
		prev := len(vertices) - 1
		if top > 0 {
			prev = top - 1
		}
		next := CircularIndex(i+1, len(vertices))

		if Orient(vertices[prev], vertices[i], vertices[next]) != Collinear {
			vertices[top] = vertices[i]
			top++
		}
	}
	return vertices[:top]
}
