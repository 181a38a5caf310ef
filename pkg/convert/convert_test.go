package convert

import (
	"context"
	stderrors "errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/svg2pdf/pkg/errors"
)

// fakeRenderer records calls and writes a placeholder PDF, failing for
// inputs listed in fail.
type fakeRenderer struct {
	fail  map[string]error
	calls []string
}

func (f *fakeRenderer) Name() string    { return "fake" }
func (f *fakeRenderer) Available() bool { return true }

func (f *fakeRenderer) Render(ctx context.Context, input, output string, dpi float64) error {
	f.calls = append(f.calls, input)
	if err, ok := f.fail[input]; ok {
		return err
	}
	return os.WriteFile(output, []byte("%PDF-1.4 fake"), 0o644)
}

// writeSVG creates a minimal SVG file and returns its path.
func writeSVG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunSingleNoOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeSVG(t, dir, "a.svg")

	r := &fakeRenderer{}
	results, err := Run(context.Background(), r, Request{Inputs: []string{input}})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Run() returned %d results, want 1", len(results))
	}

	want := filepath.Join(dir, "a.pdf")
	if results[0].Output != want {
		t.Errorf("Output = %q, want %q", results[0].Output, want)
	}
	if !results[0].OK() {
		t.Errorf("result failed: %v", results[0].Err)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestRunMultipleIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	a := writeSVG(t, dir, "a.svg")
	b := writeSVG(t, dir, "b.svg")
	out := filepath.Join(dir, "out")

	r := &fakeRenderer{}
	results, err := Run(context.Background(), r, Request{Inputs: []string{a, b}, Output: out, DPI: 144})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if info, err := os.Stat(out); err != nil || !info.IsDir() {
		t.Fatalf("output directory not created: %v", err)
	}
	for i, res := range results {
		if !res.OK() {
			t.Errorf("results[%d] failed: %v", i, res.Err)
		}
		if filepath.Dir(res.Output) != out {
			t.Errorf("results[%d].Output = %q, not inside %q", i, res.Output, out)
		}
	}
}

func TestRunFailureIsolation(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.svg")
	b := writeSVG(t, dir, "b.svg")

	r := &fakeRenderer{}
	results, err := Run(context.Background(), r, Request{Inputs: []string{missing, b}})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Run() returned %d results, want 2", len(results))
	}

	if results[0].OK() {
		t.Error("missing input should fail")
	}
	if !errors.Is(results[0].Err, errors.ErrCodeInputNotFound) {
		t.Errorf("results[0].Err = %v, want code %v", results[0].Err, errors.ErrCodeInputNotFound)
	}

	// The later file must still be attempted and succeed.
	if !results[1].OK() {
		t.Errorf("results[1] failed: %v", results[1].Err)
	}
	if len(r.calls) != 1 || r.calls[0] != b {
		t.Errorf("renderer calls = %v, want only %q", r.calls, b)
	}

	if Failed(results) != 1 {
		t.Errorf("Failed() = %d, want 1", Failed(results))
	}
}

func TestRunResultsInInputOrder(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeSVG(t, dir, "c.svg"),
		writeSVG(t, dir, "a.svg"),
		writeSVG(t, dir, "b.svg"),
	}

	results, err := Run(context.Background(), &fakeRenderer{}, Request{Inputs: inputs})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	for i, res := range results {
		if res.Input != inputs[i] {
			t.Errorf("results[%d].Input = %q, want %q", i, res.Input, inputs[i])
		}
	}
}

func TestRunUsageErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeSVG(t, dir, "a.svg")
	b := writeSVG(t, dir, "b.svg")
	existingFile := writeSVG(t, dir, "target.svg")

	tests := []struct {
		name string
		req  Request
		code errors.Code
	}{
		{"no inputs", Request{}, errors.ErrCodeInvalidInput},
		{"negative dpi", Request{Inputs: []string{a}, DPI: -1}, errors.ErrCodeInvalidDPI},
		{"nan dpi", Request{Inputs: []string{a}, DPI: math.NaN()}, errors.ErrCodeInvalidDPI},
		{"file target with multiple inputs", Request{Inputs: []string{a, b}, Output: existingFile}, errors.ErrCodeInvalidOutput},
		{"duplicate input", Request{Inputs: []string{a, a}}, errors.ErrCodeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRenderer{}
			_, err := Run(context.Background(), r, tt.req)
			if !errors.Is(err, tt.code) {
				t.Errorf("Run() error = %v, want code %v", err, tt.code)
			}
			if len(r.calls) != 0 {
				t.Errorf("renderer was called %d times, usage errors must stop the batch before conversion", len(r.calls))
			}
		})
	}
}

func TestRunWrapsPlainRendererErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeSVG(t, dir, "a.svg")

	r := &fakeRenderer{fail: map[string]error{a: stderrors.New("boom")}}
	results, err := Run(context.Background(), r, Request{Inputs: []string{a}})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !errors.Is(results[0].Err, errors.ErrCodeRenderFailed) {
		t.Errorf("Err = %v, want code %v", results[0].Err, errors.ErrCodeRenderFailed)
	}
}

func TestRunKeepsRendererErrorCodes(t *testing.T) {
	dir := t.TempDir()
	a := writeSVG(t, dir, "a.svg")

	r := &fakeRenderer{fail: map[string]error{
		a: errors.New(errors.ErrCodeMalformedSVG, "parse %s", a),
	}}
	results, err := Run(context.Background(), r, Request{Inputs: []string{a}})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !errors.Is(results[0].Err, errors.ErrCodeMalformedSVG) {
		t.Errorf("Err = %v, want code %v", results[0].Err, errors.ErrCodeMalformedSVG)
	}
}

func TestRunDefaultDPI(t *testing.T) {
	dir := t.TempDir()
	a := writeSVG(t, dir, "a.svg")

	// Zero dpi selects the default instead of failing validation.
	results, err := Run(context.Background(), &fakeRenderer{}, Request{Inputs: []string{a}, DPI: 0})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !results[0].OK() {
		t.Errorf("result failed: %v", results[0].Err)
	}
}

func TestRunCancelledContext(t *testing.T) {
	dir := t.TempDir()
	a := writeSVG(t, dir, "a.svg")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, &fakeRenderer{}, Request{Inputs: []string{a}})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(results) != 0 {
		t.Errorf("Run() returned %d results before cancellation, want 0", len(results))
	}
}

func TestOneCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	a := writeSVG(t, dir, "a.svg")
	out := filepath.Join(dir, "deep", "nested", "a.pdf")

	res := One(context.Background(), &fakeRenderer{}, a, out, 96)
	if !res.OK() {
		t.Fatalf("One() failed: %v", res.Err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestOneInputIsDirectory(t *testing.T) {
	dir := t.TempDir()

	res := One(context.Background(), &fakeRenderer{}, dir, filepath.Join(dir, "out.pdf"), 96)
	if !errors.Is(res.Err, errors.ErrCodeInputNotFound) {
		t.Errorf("Err = %v, want code %v", res.Err, errors.ErrCodeInputNotFound)
	}
}
