// Package scene loads obstacle scenes for visibility computations and renders
// the results. It exists for fixtures, debugging and the demo command; the
// visibility packages don't depend on it.
package scene

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/visibility/advanced"
	"github.com/pkg/errors"
)

// The id of the SVG circle whose centre is the viewpoint.
const OriginID = "origin"

type Scene struct {
	Origin    advanced.Point
	HasOrigin bool
	// Closed rings, from <polygon> elements or plain text input
	Rings advanced.PolygonList
	// Loose segments, from <line> and <polyline> elements
	Lines advanced.SegmentList
}

// Every obstacle segment in the scene, rings first.
func (s *Scene) Segments() []advanced.Segment {
	return append(s.Rings.Segments(), s.Lines...)
}

// Parse an SVG document. Shapes are read in document order:
//
//	<polygon points="x,y x,y ..."/>   a closed ring
//	<polyline points="x,y x,y ..."/>  an open chain of segments
//	<line x1 y1 x2 y2/>               a single segment
//	<circle id="origin" cx cy/>       the viewpoint
//
// This is not a full SVG parser. Transforms, paths and units are ignored.
// Coordinates are taken as-is, so the y axis points down.
func Load(r io.Reader) (*Scene, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	s := &Scene{}
	if err := s.visit(root); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) visit(el *svgparser.Element) error {
	switch el.Name {
	case "polygon":
		points, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return errors.Wrap(err, "polygon")
		}
		s.Rings = append(s.Rings, advanced.Polygon{Points: points})
	case "polyline":
		points, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return errors.Wrap(err, "polyline")
		}
		for i := 1; i < len(points); i++ {
			s.Lines = append(s.Lines, advanced.Segment{Start: points[i-1], End: points[i]})
		}
	case "line":
		coords, err := parseAttributes(el, "x1", "y1", "x2", "y2")
		if err != nil {
			return errors.Wrap(err, "line")
		}
		s.Lines = append(s.Lines, advanced.Segment{
			Start: advanced.Point{X: coords[0], Y: coords[1]},
			End:   advanced.Point{X: coords[2], Y: coords[3]},
		})
	case "circle":
		if el.Attributes["id"] == OriginID {
			coords, err := parseAttributes(el, "cx", "cy")
			if err != nil {
				return errors.Wrap(err, "origin")
			}
			s.Origin = advanced.Point{X: coords[0], Y: coords[1]}
			s.HasOrigin = true
		}
	}

	for _, child := range el.Children {
		if err := s.visit(child); err != nil {
			return err
		}
	}
	return nil
}

func parseAttributes(el *svgparser.Element, names ...string) ([]float64, error) {
	values := make([]float64, 0, len(names))
	for _, name := range names {
		raw, ok := el.Attributes[name]
		if !ok {
			return nil, errors.Errorf("missing attribute %q", name)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s value %q", name, raw)
		}
		values = append(values, value)
	}
	return values, nil
}

// Parse an SVG points list. Both "x,y x,y" and "x y x y" are accepted.
func parsePoints(pointString string) ([]advanced.Point, error) {
	fields := strings.FieldsFunc(pointString, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", pointString)
	}
	points := make([]advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, advanced.Point{X: x, Y: y})
	}
	return points, nil
}

// Read rings from plain text. Input should be newline separated points in the
// form "x y", with each ring separated by an extra newline.
func ReadPolygons(in io.Reader) (advanced.PolygonList, error) {
	polygons := advanced.PolygonList{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []advanced.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, advanced.Polygon{Points: points})
				points = []advanced.Point{}
			}
			continue
		}

		// Parse the point out of the line
		point, err := ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, advanced.Polygon{Points: points})
	}
	return polygons, nil
}

// Parse "x y" or "x,y" into a point.
func ParsePoint(line string) (advanced.Point, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected two coordinates, got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}
