package convert

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/svg2pdf/pkg/errors"
)

// PDFPath returns input with its extension replaced by ".pdf".
func PDFPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
}

// stem returns the file name of input without its extension.
func stem(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ResolveOutputs maps each input to its output PDF path.
//
// The policy:
//   - no output target: each PDF is placed beside its source, same stem;
//   - single input: an existing directory target places the PDF inside it,
//     any other target is used verbatim;
//   - multiple inputs: the target is treated as a directory (created later,
//     at conversion time) and each PDF becomes <dir>/<stem>.pdf. A target
//     that exists as a regular file is a usage error.
//
// Two inputs resolving to the same output file (same stem funneled into
// one directory, or a duplicated input) is a usage error: silently
// overwriting one result with another would lose output.
func ResolveOutputs(inputs []string, output string) ([]string, error) {
	multiple := len(inputs) > 1

	if multiple && output != "" {
		if info, err := os.Stat(output); err == nil && !info.IsDir() {
			return nil, errors.New(errors.ErrCodeInvalidOutput,
				"output must be a directory when converting multiple files: %s", output)
		}
	}

	outputs := make([]string, len(inputs))
	for i, input := range inputs {
		outputs[i] = resolveOutput(input, output, multiple)
	}

	seen := make(map[string]string, len(outputs))
	for i, out := range outputs {
		if prev, ok := seen[out]; ok {
			return nil, errors.New(errors.ErrCodeConflict,
				"inputs %s and %s both resolve to %s", prev, inputs[i], out)
		}
		seen[out] = inputs[i]
	}
	return outputs, nil
}

// resolveOutput determines the output path for a single input.
func resolveOutput(input, output string, multiple bool) string {
	if output == "" {
		return PDFPath(input)
	}
	if multiple {
		return filepath.Join(output, stem(input)+".pdf")
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, stem(input)+".pdf")
	}
	return output
}
