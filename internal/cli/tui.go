package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svg2pdf/pkg/config"
	"github.com/matzehuels/svg2pdf/pkg/convert"
	"github.com/matzehuels/svg2pdf/pkg/errors"
	"github.com/matzehuels/svg2pdf/pkg/render"
)

// newTUICmd creates the tui command, the interactive terminal surface.
func newTUICmd(cfg config.Config) *cobra.Command {
	var backendName string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal UI for converting SVG files",
		Long: `Open an interactive terminal UI for converting SVG files to PDF.

Paste or type file paths into the input field (most terminals paste
dropped files as paths), optionally set an output directory and dpi,
and press enter on an empty input field to convert. Per-file status is
shown as the batch progresses; a failing file does not stop the rest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := render.Detect(backendName)
			if err != nil {
				return err
			}
			model := NewConvertModel(cfg, backend)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&backendName, "backend", cfg.Backend,
		"rendering backend: rsvg, inkscape, canvas (default auto-detect)")

	return cmd
}

// List styles
var (
	tuiFocusStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	tuiNormalStyle = lipgloss.NewStyle().Foreground(colorWhite)
	tuiDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// Input fields, in focus order.
const (
	fieldPath = iota
	fieldOutput
	fieldDPI
	fieldCount
)

// fileStatus tracks the lifecycle of one queued file.
type fileStatus int

const (
	statusPending fileStatus = iota
	statusSkipped
	statusConverting
	statusDone
	statusFailed
)

// fileEntry is one row in the conversion queue.
type fileEntry struct {
	path   string
	output string     // resolved PDF path, set when conversion starts
	status fileStatus
	note   string // skip or failure reason
}

// itemDoneMsg reports the result of converting the file at index.
type itemDoneMsg struct {
	index  int
	result convert.Result
}

// ConvertModel is the bubbletea model for the interactive converter.
// State machine: idle → converting → idle.
type ConvertModel struct {
	backend    render.Renderer
	files      []fileEntry
	fields     [fieldCount]string
	focus      int
	converting bool
	status     string
	dpi        float64
}

// NewConvertModel creates a converter model seeded with configured defaults.
func NewConvertModel(cfg config.Config, backend render.Renderer) ConvertModel {
	m := ConvertModel{backend: backend}
	m.fields[fieldOutput] = cfg.OutputDir
	m.fields[fieldDPI] = strconv.FormatFloat(cfg.DPI, 'f', -1, 64)
	return m
}

func (m ConvertModel) Init() tea.Cmd {
	return nil
}

func (m ConvertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case itemDoneMsg:
		return m.updateItemDone(msg)
	}
	return m, nil
}

func (m ConvertModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.converting {
		// Field edits are frozen while a batch runs.
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if m.fields[m.focus] != "" {
			m.fields[m.focus] = ""
			return m, nil
		}
		return m, tea.Quit
	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case "enter":
		if m.focus == fieldPath && m.fields[fieldPath] != "" {
			m.addPaths(m.fields[fieldPath])
			m.fields[fieldPath] = ""
			return m, nil
		}
		return m.startBatch()
	case "backspace":
		if runes := []rune(m.fields[m.focus]); len(runes) > 0 {
			m.fields[m.focus] = string(runes[:len(runes)-1])
		}
	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.fields[m.focus] += string(msg.Runes)
		case tea.KeySpace:
			m.fields[m.focus] += " "
		}
	}
	return m, nil
}

// addPaths queues the whitespace-separated paths in raw. Terminals paste
// dropped files as space-separated, possibly quoted or brace-wrapped paths.
// Non-SVG and missing files are flagged immediately and excluded from
// conversion, matching the drag-and-drop behavior of a file-drop target.
func (m *ConvertModel) addPaths(raw string) {
	for _, tok := range strings.Fields(raw) {
		path := strings.Trim(tok, `"'{}`)
		if path == "" {
			continue
		}

		entry := fileEntry{path: path}
		switch {
		case strings.ToLower(filepath.Ext(path)) != ".svg":
			entry.status = statusSkipped
			entry.note = "not an SVG file"
		default:
			if _, err := os.Stat(path); err != nil {
				entry.status = statusSkipped
				entry.note = "file not found"
			}
		}
		m.files = append(m.files, entry)
	}
	m.status = ""
}

// startBatch validates the dpi and output fields, resolves output paths,
// and kicks off the first conversion.
func (m ConvertModel) startBatch() (tea.Model, tea.Cmd) {
	dpi, err := strconv.ParseFloat(strings.TrimSpace(m.fields[fieldDPI]), 64)
	if err != nil {
		m.status = StyleError.Render("dpi must be numeric")
		return m, nil
	}
	if dpi <= 0 {
		m.status = StyleError.Render("dpi must be greater than zero")
		return m, nil
	}
	m.dpi = dpi

	outputDir := strings.TrimSpace(m.fields[fieldOutput])
	seen := make(map[string]string)
	pending := 0
	for i := range m.files {
		if m.files[i].status != statusPending {
			continue
		}
		out := convert.PDFPath(m.files[i].path)
		if outputDir != "" {
			out = filepath.Join(outputDir, convert.PDFPath(filepath.Base(m.files[i].path)))
		}
		if prev, ok := seen[out]; ok {
			m.files[i].status = statusSkipped
			m.files[i].note = "output collides with " + prev
			continue
		}
		seen[out] = m.files[i].path
		m.files[i].output = out
		pending++
	}
	if pending == 0 {
		m.status = tuiDimStyle.Render("nothing to convert")
		return m, nil
	}

	m.converting = true
	m.status = ""
	return m.convertNext(-1)
}

// convertNext marks the next pending file after index as converting and
// returns the command that converts it. When no files remain the model
// returns to idle.
func (m ConvertModel) convertNext(index int) (tea.Model, tea.Cmd) {
	for i := index + 1; i < len(m.files); i++ {
		if m.files[i].status != statusPending {
			continue
		}
		m.files[i].status = statusConverting
		return m, convertFileCmd(m.backend, i, m.files[i].path, m.files[i].output, m.dpi)
	}

	m.converting = false
	done, failed := 0, 0
	for _, f := range m.files {
		switch f.status {
		case statusDone:
			done++
		case statusFailed:
			failed++
		}
	}
	summary := fmt.Sprintf("%d converted", done)
	if failed > 0 {
		summary += fmt.Sprintf(", %d failed", failed)
	}
	m.status = StyleSuccess.Render(summary)
	if failed > 0 {
		m.status = StyleWarning.Render(summary)
	}
	return m, nil
}

func (m ConvertModel) updateItemDone(msg itemDoneMsg) (tea.Model, tea.Cmd) {
	if msg.result.OK() {
		m.files[msg.index].status = statusDone
	} else {
		m.files[msg.index].status = statusFailed
		m.files[msg.index].note = errors.UserMessage(msg.result.Err)
	}
	return m.convertNext(msg.index)
}

// convertFileCmd converts a single file off the UI goroutine.
func convertFileCmd(backend render.Renderer, index int, input, output string, dpi float64) tea.Cmd {
	return func() tea.Msg {
		return itemDoneMsg{index: index, result: convert.One(context.Background(), backend, input, output, dpi)}
	}
}

func (m ConvertModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("SVG to PDF Converter"))
	b.WriteString("\n")
	b.WriteString(tuiDimStyle.Render(fmt.Sprintf("backend: %s  ·  tab: next field  ⏎ add/convert  esc: clear/quit", m.backend.Name())))
	b.WriteString("\n\n")

	b.WriteString(m.renderField(fieldPath, "Add SVGs", "paste or type a path, then ⏎"))
	b.WriteString(m.renderField(fieldOutput, "Output dir", "optional, blank = beside source"))
	b.WriteString(m.renderField(fieldDPI, "DPI", ""))
	b.WriteString("\n")

	if len(m.files) > 0 {
		b.WriteString(m.renderFiles())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	return b.String()
}

// renderField draws one labeled input row with a focus cursor.
func (m ConvertModel) renderField(field int, label, hint string) string {
	cursor := "  "
	style := tuiNormalStyle
	if m.focus == field && !m.converting {
		cursor = "▸ "
		style = tuiFocusStyle
	}

	value := m.fields[field]
	if value == "" && hint != "" {
		value = tuiDimStyle.Render(hint)
	} else {
		value = style.Render(value)
	}
	return fmt.Sprintf("%s%-11s %s\n", cursor, label, value)
}

// renderFiles draws the per-file status table.
func (m ConvertModel) renderFiles() string {
	rows := make([][]string, 0, len(m.files))
	for _, f := range m.files {
		var state string
		switch f.status {
		case statusPending:
			state = tuiDimStyle.Render("pending")
		case statusSkipped:
			state = StyleWarning.Render(iconWarning + " " + f.note)
		case statusConverting:
			state = tuiFocusStyle.Render("converting...")
		case statusDone:
			state = StyleSuccess.Render(iconSuccess + " " + f.output)
		case statusFailed:
			state = StyleError.Render(iconError + " " + f.note)
		}
		rows = append(rows, []string{filepath.Base(f.path), state})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("File", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}
