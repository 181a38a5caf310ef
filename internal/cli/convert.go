package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matzehuels/svg2pdf/pkg/convert"
	"github.com/matzehuels/svg2pdf/pkg/errors"
	"github.com/matzehuels/svg2pdf/pkg/render"
)

// convertOpts holds the command-line flags for the root convert command.
type convertOpts struct {
	output  string  // output file or directory ("" places PDFs beside sources)
	dpi     float64 // rasterization density
	backend string  // preferred backend name ("" auto-detects)
}

// runConvert converts the given inputs and prints one status line per file.
// Non-SVG inputs are skipped with a notice and do not fail the batch.
// It returns an error if any conversion failed, which the caller turns into
// a non-zero exit code.
func runConvert(ctx context.Context, inputs []string, opts *convertOpts) error {
	logger := loggerFromContext(ctx)

	svgs := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if !strings.EqualFold(filepath.Ext(input), ".svg") {
			printInfo("Skipping %s (not an SVG file)", input)
			continue
		}
		svgs = append(svgs, input)
	}
	if len(svgs) == 0 {
		logger.Warn("No SVG inputs to convert")
		return nil
	}

	backend, err := render.Detect(opts.backend)
	if err != nil {
		return err
	}
	logger.Debugf("Using %s backend (dpi %g)", backend.Name(), opts.dpi)

	p := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Converting %d file(s)...", len(svgs)))
	spinner.Start()

	results, runErr := convert.Run(ctx, backend, convert.Request{
		Inputs: svgs,
		Output: opts.output,
		DPI:    opts.dpi,
	})
	spinner.Stop()

	for _, res := range results {
		if res.OK() {
			printSuccess("%s %s %s", res.Input, iconArrow, res.Output)
		} else {
			printError("%s: %s", res.Input, errors.UserMessage(res.Err))
		}
	}
	if runErr != nil {
		return runErr
	}

	if failed := convert.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(results))
	}
	p.done(fmt.Sprintf("Converted %d file(s)", len(results)))
	return nil
}
