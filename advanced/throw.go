package advanced

import "github.com/pkg/errors"

// Threading errors through every comparator call would mean the ordered
// container could fail on insert, which it has no way to report. Instead,
// contract violations panic, and the public API recovers to convert them to
// an error.

// Returned (wrapped) when a segment collinear with the origin reaches the
// segment order. The sweep filters those out, so seeing this means a caller
// used SegmentOrder directly with bad input.
var ErrCollinearSegment = errors.New("segment is collinear with the origin")

// The panic payload for contract violations. Anything else that panics is a
// real bug and is not ours to swallow.
type VisibilityError struct {
	err error
}

func (e VisibilityError) Error() string {
	return e.err.Error()
}

func (e VisibilityError) Unwrap() error {
	return e.err
}

// Panic with a VisibilityError.
func fatalf(format string, args ...interface{}) {
	panic(VisibilityError{errors.Errorf(format, args...)})
}

func fatalCollinear(origin Point, segment Segment) {
	panic(VisibilityError{errors.Wrapf(ErrCollinearSegment, "segment %v, origin %v", segment, origin)})
}

func HandleVisibilityPanicRecover(r interface{}) error {
	if r != nil {
		if visibilityError, ok := r.(VisibilityError); ok {
			return visibilityError
		}
		panic(r)
	}
	return nil
}
