package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/matzehuels/svg2pdf/pkg/errors"
)

// Inkscape renders through the inkscape binary (1.x command-line export).
type Inkscape struct{}

// Name implements Renderer.
func (Inkscape) Name() string { return "inkscape" }

// Available implements Renderer.
func (Inkscape) Available() bool {
	_, err := exec.LookPath("inkscape")
	return err == nil
}

// Render implements Renderer.
func (i Inkscape) Render(ctx context.Context, inputPath, outputPath string, dpi float64) error {
	args := []string{
		inputPath,
		"--export-type=pdf",
		"--export-filename=" + outputPath,
		fmt.Sprintf("--export-dpi=%.2f", dpi),
	}

	cmd := exec.CommandContext(ctx, "inkscape", args...)

	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if errBuf.Len() > 0 {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "inkscape: %s", bytes.TrimSpace(errBuf.Bytes()))
		}
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "inkscape")
	}
	return nil
}
