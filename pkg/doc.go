// Package pkg provides the core libraries for svg2pdf.
//
// # Overview
//
// svg2pdf converts SVG files to PDF, one or many at a time, delegating all
// vector rendering to swappable backends. The pkg directory is organized
// into small focused packages:
//
//   - [render] - rendering backends (rsvg, inkscape, pure-Go canvas)
//   - [convert] - batch conversion, output path resolution, failure isolation
//   - [config] - TOML configuration loading from XDG paths
//   - [errors] - structured errors with stable machine-readable codes
//   - [observability] - pluggable hooks for conversion and HTTP events
//   - [buildinfo] - version metadata injected at build time
//
// # Architecture
//
// The typical data flow through svg2pdf:
//
//	SVG input paths
//	         ↓
//	    [convert] package (validate, resolve output paths)
//	         ↓
//	    [render] package (backend renders each file)
//	         ↓
//	    PDF output files
//
// The CLI, TUI, and HTTP server under internal/ are thin surfaces over
// [convert.Run] and [convert.One]; they share all semantics.
package pkg
