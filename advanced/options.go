package advanced

import (
	"github.com/charmbracelet/log"
)

// Per-call settings. The zero value is not useful; use newOptions.
type Options struct {
	// Receives a warning for every Diagnostic, and debug output about each
	// sweep.
	Logger *log.Logger
	// Tolerance for Ray.Intersect during the sweep.
	RayTolerance float64
}

type Option func(*Options)

// Send diagnostics to logger instead of log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Override RayTolerance. The tolerance must be positive.
func WithRayTolerance(tolerance float64) Option {
	return func(o *Options) {
		if !(tolerance > 0) {
			fatalf("ray tolerance must be positive, got %g", tolerance)
		}
		o.RayTolerance = tolerance
	}
}

func newOptions(opts []Option) Options {
	o := Options{
		Logger:       log.Default(),
		RayTolerance: RayTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}
