// Visibility polygons for Go.
//
// Given a viewpoint and a set of opaque line segments, this package computes
// the region that can be seen from the viewpoint: every point that can be
// joined to it by a straight line that crosses no obstacle. This is the usual
// building block for line of sight, 2D lighting and fog of war.
//
// The algorithm is a radial sweep and runs in O(n log n) time. The obstacles
// must enclose the viewpoint (add a bounding box if they don't); nothing is
// synthesized at infinity.
package visibility

import "github.com/osuushi/visibility/advanced"

type Point = advanced.Point
type Segment = advanced.Segment
type Polygon = advanced.Polygon
type PolygonList = advanced.PolygonList
type Region = advanced.Region
type MultiRegion = advanced.MultiRegion
type SegmentList = advanced.SegmentList
type Obstacles = advanced.Obstacles
type Option = advanced.Option

var (
	WithLogger       = advanced.WithLogger
	WithRayTolerance = advanced.WithRayTolerance
)

// Compute the visibility polygon of origin among the obstacles.
//
// Each edge of each ring is an obstacle. Segments that lie on a line through
// the origin are ignored. If nothing usable is left, the result is empty.
// Diagnostics from the sweep are logged (see WithLogger); use
// advanced.PointVisibility to get them as values.
func Compute(origin Point, obstacles Obstacles, opts ...Option) (result Polygon, err error) {
	defer func() {
		recoveredErr := advanced.HandleVisibilityPanicRecover(recover())
		if recoveredErr != nil {
			result = Polygon{}
			err = recoveredErr
		}
	}()
	result, _ = advanced.PointVisibility(origin, obstacles.Segments(), opts...)
	return result, nil
}

// Approximate the area visible from a region, as the union of the visibility
// polygons of the region's exterior vertices. See advanced.RegionVisibility
// for why this is only an approximation.
func ComputeRegion(region Region, obstacles Region, opts ...Option) (result Region, err error) {
	defer func() {
		recoveredErr := advanced.HandleVisibilityPanicRecover(recover())
		if recoveredErr != nil {
			result = Region{}
			err = recoveredErr
		}
	}()
	result, _ = advanced.RegionVisibility(region, obstacles, opts...)
	return result, nil
}
