package render

import (
	"context"

	"github.com/matzehuels/svg2pdf/pkg/errors"
)

// DefaultDPI is the SVG reference resolution. A dpi equal to DefaultDPI
// renders at 1:1 scale.
const DefaultDPI = 96.0

// Renderer converts a single SVG file to a PDF file.
//
// Render blocks until the conversion finishes or ctx is cancelled. The
// output file is only expected to exist on a nil error.
type Renderer interface {
	// Name returns the backend identifier (e.g., "rsvg").
	Name() string

	// Available reports whether the backend can run on this system.
	Available() bool

	// Render converts inputPath to a PDF at outputPath, scaling by
	// dpi/DefaultDPI.
	Render(ctx context.Context, inputPath, outputPath string, dpi float64) error
}

// Backends returns all known backends in detection preference order.
func Backends() []Renderer {
	return []Renderer{RSVG{}, Inkscape{}, Canvas{}}
}

// Detect returns the backend to use for conversions.
//
// If preferred is non-empty it must name a known, available backend.
// Otherwise the first available backend from Backends is returned. The
// canvas backend is always available, so Detect only fails when an
// explicit preference cannot be satisfied.
func Detect(preferred string) (Renderer, error) {
	if preferred != "" {
		for _, r := range Backends() {
			if r.Name() != preferred {
				continue
			}
			if !r.Available() {
				return nil, errors.New(errors.ErrCodeBackendUnavailable,
					"backend %q is not available on this system", preferred)
			}
			return r, nil
		}
		return nil, errors.New(errors.ErrCodeBackendUnavailable,
			"unknown backend %q (must be 'rsvg', 'inkscape', or 'canvas')", preferred)
	}

	for _, r := range Backends() {
		if r.Available() {
			return r, nil
		}
	}
	return nil, errors.New(errors.ErrCodeBackendUnavailable, "no rendering backend available")
}
