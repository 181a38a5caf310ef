// Package render provides SVG-to-PDF rendering backends.
//
// # Overview
//
// All actual vector rendering is delegated to a backend behind the narrow
// [Renderer] interface. The batch converter and the CLI/TUI/HTTP surfaces
// never depend on a concrete backend, so any implementation can be
// substituted without touching them.
//
// Three backends ship with svg2pdf:
//
//   - rsvg: shells out to rsvg-convert (librsvg)
//   - inkscape: shells out to the inkscape binary
//   - canvas: pure Go via github.com/tdewolff/canvas, no external tools
//
// # Backend Selection
//
// [Detect] picks the first available backend, preferring external tools
// for rendering fidelity and falling back to the pure-Go canvas backend,
// which is always available:
//
//	backend, err := render.Detect("")         // auto-detect
//	backend, err := render.Detect("inkscape") // force a specific backend
//	err = backend.Render(ctx, "in.svg", "out.pdf", 96)
//
// External backends honor context cancellation by killing the child
// process; the canvas backend checks the context before rendering.
package render
