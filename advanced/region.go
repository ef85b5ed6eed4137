package advanced

import (
	polyclip "github.com/akavel/polyclip-go"
)

// Approximate visibility of a whole region: the union, over every vertex of
// the region's exterior, of that vertex's visibility polygon.
//
// This is NOT the set of points visible from somewhere in the region. A point
// can be visible from the middle of an edge and from no vertex at all. It is
// good enough for fog-of-war style uses where the region is small relative to
// the obstacles.
//
// If the region overlaps the obstacles, the overlap is cut out of the obstacles
// first, so the region doesn't block its own view.
func RegionVisibility(region Region, obstacles Region, opts ...Option) (Region, []Diagnostic) {
	obstacleSegments := obstacles.Segments()
	regionClip := toClipPolygon(region)
	obstacleClip := toClipPolygon(obstacles)
	if len(regionClip.Construct(polyclip.INTERSECTION, obstacleClip)) > 0 {
		remaining := obstacleClip.Construct(polyclip.DIFFERENCE, regionClip)
		obstacleSegments = fromClipPolygon(remaining).Segments()
	}

	var union polyclip.Polygon
	var diagnostics []Diagnostic
	for _, vertex := range region.Exterior.Points {
		visible, vertexDiagnostics := PointVisibility(vertex, obstacleSegments, opts...)
		diagnostics = append(diagnostics, vertexDiagnostics...)
		if len(visible.Points) < 3 {
			continue
		}
		union = union.Construct(polyclip.UNION, polyclip.Polygon{toContour(visible)})
	}

	return regionFromContours(fromClipPolygon(union)), diagnostics
}

func toContour(poly Polygon) polyclip.Contour {
	contour := make(polyclip.Contour, 0, len(poly.Points))
	for _, p := range poly.Points {
		contour = append(contour, polyclip.Point{X: p.X, Y: p.Y})
	}
	return contour
}

func toClipPolygon(region Region) polyclip.Polygon {
	var result polyclip.Polygon
	if len(region.Exterior.Points) >= 3 {
		result = append(result, toContour(region.Exterior))
	}
	for _, interior := range region.Interiors {
		if len(interior.Points) >= 3 {
			result = append(result, toContour(interior))
		}
	}
	return result
}

func fromClipPolygon(clip polyclip.Polygon) PolygonList {
	list := make(PolygonList, 0, len(clip))
	for _, contour := range clip {
		poly := Polygon{Points: make([]Point, 0, len(contour))}
		for _, p := range contour {
			poly.Points = append(poly.Points, Point{p.X, p.Y})
		}
		list = append(list, poly)
	}
	return list
}

// The clipper hands back bare contours with no nesting information. Take the
// largest as the exterior. A contour is a hole if the exterior is the only
// other contour around it. Deeper contours (islands inside holes) can't be
// represented by a single Region and are dropped, as are contours outside the
// exterior.
//
// The exterior is wound counterclockwise and holes clockwise.
func regionFromContours(list PolygonList) Region {
	exteriorIndex := -1
	for i, poly := range list {
		if len(poly.Points) < 3 {
			continue
		}
		if exteriorIndex < 0 || poly.Area() > list[exteriorIndex].Area() {
			exteriorIndex = i
		}
	}
	if exteriorIndex < 0 {
		return Region{}
	}

	exterior := list[exteriorIndex]
	region := Region{Exterior: windCounterclockwise(exterior)}
	for i, poly := range list {
		if i == exteriorIndex || len(poly.Points) < 3 {
			continue
		}
		if !exterior.ContainsPointByEvenOdd(poly.Points[0]) {
			continue
		}
		if nestingDepth(list, i) != 1 {
			continue
		}
		region.Interiors = append(region.Interiors, windCounterclockwise(poly).Reverse())
	}
	return region
}

// How many other contours enclose the first vertex of list[index].
func nestingDepth(list PolygonList, index int) int {
	depth := 0
	for i, poly := range list {
		if i == index || len(poly.Points) < 3 {
			continue
		}
		if poly.ContainsPointByEvenOdd(list[index].Points[0]) {
			depth++
		}
	}
	return depth
}

func windCounterclockwise(poly Polygon) Polygon {
	if poly.SignedArea() < 0 {
		return poly.Reverse()
	}
	return poly
}
