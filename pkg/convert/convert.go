// Package convert implements the batch SVG-to-PDF converter.
//
// # Overview
//
// A batch is an ordered list of input paths, an optional output target,
// and a dpi value. [Run] resolves one output path per input, invokes a
// [render.Renderer] once per input, and returns one [Result] per input
// in input order.
//
// The one real design decision in this system is partial-failure
// isolation: a failing item (missing input, malformed SVG, unwritable
// output directory, backend failure) is recorded in its Result and does
// not stop the remaining items. Only interface misuse — an output file
// path with multiple inputs, a non-positive dpi, or two inputs that
// would resolve to the same output file — is a fatal usage error
// reported before any conversion begins.
//
// # Usage
//
//	backend, err := render.Detect("")
//	results, err := convert.Run(ctx, backend, convert.Request{
//	    Inputs: []string{"a.svg", "b.svg"},
//	    Output: "out/",
//	    DPI:    144,
//	})
package convert

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/svg2pdf/pkg/errors"
	"github.com/matzehuels/svg2pdf/pkg/observability"
	"github.com/matzehuels/svg2pdf/pkg/render"
)

// Request describes one conversion batch.
type Request struct {
	// Inputs are the SVG files to convert, in order. Must be non-empty.
	Inputs []string

	// Output is the optional output target. With a single input it may be
	// a file path (used verbatim) or an existing directory. With multiple
	// inputs it is treated as a directory and created if absent. Empty
	// places each PDF beside its source file.
	Output string

	// DPI controls rasterization density. Zero selects render.DefaultDPI;
	// negative or NaN values are usage errors.
	DPI float64
}

// Result records the outcome of converting a single input.
// A Result is immutable once returned.
type Result struct {
	Input  string // source SVG path as given
	Output string // resolved PDF path
	Err    error  // nil on success
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Failed counts the failed results in a batch.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// Run converts every input in req through r sequentially, in input order.
//
// The returned error is non-nil only for usage errors detected before any
// conversion starts, or for context cancellation mid-batch (in which case
// the results produced so far are returned alongside the error). Per-item
// failures are recorded in the corresponding Result.
func Run(ctx context.Context, r render.Renderer, req Request) ([]Result, error) {
	dpi := req.DPI
	if dpi == 0 {
		dpi = render.DefaultDPI
	}
	if dpi <= 0 || math.IsNaN(dpi) {
		return nil, errors.New(errors.ErrCodeInvalidDPI, "dpi must be greater than zero, got %g", dpi)
	}
	if len(req.Inputs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no input files given")
	}

	outputs, err := ResolveOutputs(req.Inputs, req.Output)
	if err != nil {
		return nil, err
	}

	batchID := uuid.New().String()
	hooks := observability.Convert()
	start := time.Now()
	hooks.OnBatchStart(ctx, batchID, len(req.Inputs))

	results := make([]Result, 0, len(req.Inputs))
	for i, input := range req.Inputs {
		if err := ctx.Err(); err != nil {
			hooks.OnBatchComplete(ctx, batchID, Failed(results), time.Since(start))
			return results, err
		}
		results = append(results, convertOne(ctx, r, hooks, batchID, input, outputs[i], dpi))
	}

	hooks.OnBatchComplete(ctx, batchID, Failed(results), time.Since(start))
	return results, nil
}

// convertOne converts a single input, classifying failures by error code.
func convertOne(ctx context.Context, r render.Renderer, hooks observability.ConvertHooks, batchID, input, output string, dpi float64) Result {
	hooks.OnItemStart(ctx, batchID, input)
	itemStart := time.Now()

	res := One(ctx, r, input, output, dpi)

	hooks.OnItemComplete(ctx, batchID, input, output, time.Since(itemStart), res.Err)
	return res
}

// One converts a single input to output through r, classifying failures by
// error code. It is the per-item primitive shared by Run, the interactive
// terminal UI, and the HTTP server. The output's parent directory is
// created if absent.
func One(ctx context.Context, r render.Renderer, input, output string, dpi float64) Result {
	return Result{Input: input, Output: output, Err: doConvert(ctx, r, input, output, dpi)}
}

func doConvert(ctx context.Context, r render.Renderer, input, output string, dpi float64) error {
	info, err := os.Stat(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInputNotFound, err, "input file not found: %s", input)
	}
	if info.IsDir() {
		return errors.New(errors.ErrCodeInputNotFound, "input is a directory: %s", input)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeOutputUnwritable, err, "create output directory %s", dir)
		}
	}

	if err := r.Render(ctx, input, output, dpi); err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "convert %s", input)
	}
	return nil
}
