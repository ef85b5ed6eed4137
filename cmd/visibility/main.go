package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/osuushi/visibility"
	"github.com/osuushi/visibility/scene"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of visibility polygons. Reads a scene, computes what can be seen from
// its origin, prints the polygon as one "x y" point per line and optionally
// renders a PNG.
//
// The scene is either an SVG file (see scene.Load) or, if no file is given,
// rings on stdin in the form "x y", with each ring separated by an extra
// newline. Stdin has no way to carry an origin, so --origin is required then.
var (
	app = kingpin.New("visibility", "Compute the visibility polygon of a point among obstacles.")

	svgFile  = app.Flag("svg", "SVG scene to read instead of stdin.").ExistingFile()
	origin   = app.Flag("origin", "Viewpoint as \"x,y\". Overrides the scene's origin circle.").String()
	outFile  = app.Flag("out", "Write a PNG rendering to this path.").String()
	scale    = app.Flag("scale", "Pixels per unit for the rendering.").Default("1").Float64()
	preview  = app.Flag("imgcat", "Print the rendering to the terminal (iTerm only).").Bool()
	logLevel = app.Flag("log-level", "Log level (debug, info, warn, error).").Default("warn").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		app.Fatalf("invalid log level %q", *logLevel)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	if err := run(logger, os.Stdin, os.Stdout); err != nil {
		logger.Fatal("visibility failed", "err", err)
	}
}

func run(logger *log.Logger, in io.Reader, out io.Writer) error {
	s, err := readScene(in)
	if err != nil {
		return err
	}
	if *origin != "" {
		p, err := scene.ParsePoint(*origin)
		if err != nil {
			return errors.Wrap(err, "--origin")
		}
		s.Origin = p
		s.HasOrigin = true
	}
	if !s.HasOrigin {
		return errors.New("no origin: pass --origin or add <circle id=\"origin\"> to the scene")
	}
	logger.Info("read scene", "rings", len(s.Rings), "lines", len(s.Lines), "origin", s.Origin)

	polygon, err := visibility.Compute(s.Origin, s, visibility.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("computed visibility", "vertices", len(polygon.Points))

	var b strings.Builder
	for _, p := range polygon.Points {
		fmt.Fprintf(&b, "%g %g\n", p.X, p.Y)
	}
	if _, err := io.WriteString(out, b.String()); err != nil {
		return err
	}

	if *outFile == "" {
		return nil
	}
	c := s.Draw(polygon, *scale)
	if err := c.SavePNG(*outFile); err != nil {
		return errors.Wrapf(err, "writing %s", *outFile)
	}
	if *preview {
		scene.Preview(*outFile, out)
	}
	return nil
}

func readScene(in io.Reader) (*scene.Scene, error) {
	if *svgFile == "" {
		rings, err := scene.ReadPolygons(in)
		if err != nil {
			return nil, err
		}
		return &scene.Scene{Rings: rings}, nil
	}

	f, err := os.Open(*svgFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scene.Load(f)
}
