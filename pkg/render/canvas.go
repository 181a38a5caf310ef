package render

import (
	"context"
	"os"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"github.com/matzehuels/svg2pdf/pkg/errors"
)

// Canvas renders in-process via github.com/tdewolff/canvas. It needs no
// external tools, which makes it the fallback backend.
type Canvas struct{}

// Name implements Renderer.
func (Canvas) Name() string { return "canvas" }

// Available implements Renderer. The canvas backend is always available.
func (Canvas) Available() bool { return true }

// Render implements Renderer.
func (c Canvas) Render(ctx context.Context, inputPath, outputPath string, dpi float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInputNotFound, err, "open %s", inputPath)
	}
	defer f.Close()

	cv, err := canvas.ParseSVG(f)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMalformedSVG, err, "parse %s", inputPath)
	}

	if err := renderers.Write(outputPath, cv, canvas.DPI(dpi)); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", outputPath)
	}
	return nil
}
