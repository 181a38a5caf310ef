package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/matzehuels/svg2pdf/pkg/errors"
)

// RSVG renders through the rsvg-convert tool.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
type RSVG struct{}

// Name implements Renderer.
func (RSVG) Name() string { return "rsvg" }

// Available implements Renderer.
func (RSVG) Available() bool {
	_, err := exec.LookPath("rsvg-convert")
	return err == nil
}

// Render implements Renderer.
func (r RSVG) Render(ctx context.Context, inputPath, outputPath string, dpi float64) error {
	args := []string{"-f", "pdf", "-o", outputPath}
	if dpi != DefaultDPI {
		args = append(args, "-z", fmt.Sprintf("%.4f", dpi/DefaultDPI))
	}
	args = append(args, "--dpi-x", fmt.Sprintf("%.2f", dpi), "--dpi-y", fmt.Sprintf("%.2f", dpi))
	args = append(args, inputPath)

	cmd := exec.CommandContext(ctx, "rsvg-convert", args...)

	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if errBuf.Len() > 0 {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "rsvg-convert: %s", bytes.TrimSpace(errBuf.Bytes()))
		}
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "rsvg-convert")
	}
	return nil
}
