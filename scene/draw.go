package scene

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/visibility/advanced"
)

// Padding around the scene, in pixels
const drawPadding = 20

// Render the scene and a visibility polygon. The visibility polygon is filled,
// obstacles are stroked on top and the origin is a dot. The y axis is flipped
// so the picture matches the usual math orientation.
func (s *Scene) Draw(visible advanced.Polygon, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p advanced.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, segment := range s.Segments() {
		extend(segment.Start)
		extend(segment.End)
	}
	for _, p := range visible.Points {
		extend(p)
	}
	if s.HasOrigin {
		extend(s.Origin)
	}
	if math.IsInf(minX, 1) {
		// Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	if len(visible.Points) > 0 {
		c.MoveTo(visible.Points[0].X, visible.Points[0].Y)
		for _, p := range visible.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(1, 1, 0.3, 0.6)
		c.Fill()
	}

	// Line width is in user space, so undo the scale
	c.SetLineWidth(2 / scale)
	c.SetRGB(0, 1, 1)
	for _, segment := range s.Segments() {
		c.DrawLine(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
		c.Stroke()
	}

	if s.HasOrigin {
		c.SetRGB(1, 0.2, 0.2)
		c.DrawCircle(s.Origin.X, s.Origin.Y, 4/scale)
		c.Fill()
	}
	return c
}

// Print a PNG to the terminal (iTerm only).
func Preview(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
