package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svg2pdf/pkg/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2025-12-20T14:32:01Z")
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the svg2pdf CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The root command itself performs batch conversion; tui, serve, backends,
// and completion are registered as subcommands. Configured defaults from
// ~/.config/svg2pdf/config.toml are applied as flag defaults, so flags
// always win over config and config wins over built-ins.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	cfg, cfgErr := config.Load()
	opts := convertOpts{
		output:  cfg.OutputDir,
		dpi:     cfg.DPI,
		backend: cfg.Backend,
	}

	root := &cobra.Command{
		Use:   "svg2pdf INPUT.svg [INPUT2.svg ...]",
		Short: "Convert SVG files to PDF",
		Long: `svg2pdf converts one or more SVG files to PDF documents.

All rendering is delegated to a pluggable backend (rsvg-convert, inkscape,
or the built-in pure-Go canvas renderer). A failing file is reported and
does not stop the remaining files; the exit code is non-zero if any
conversion failed.`,
		Version:      version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			if cfgErr != nil {
				logger.Warnf("Ignoring config: %v", cfgErr)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), args, &opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("svg2pdf %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.Flags().StringVarP(&opts.output, "output", "o", opts.output,
		"output file (single input) or directory (auto-created)")
	root.Flags().Float64Var(&opts.dpi, "dpi", opts.dpi, "dots per inch used when scaling")
	root.Flags().StringVar(&opts.backend, "backend", opts.backend,
		"rendering backend: rsvg, inkscape, canvas (default auto-detect)")

	root.AddCommand(newTUICmd(cfg))
	root.AddCommand(newServeCmd(cfg))
	root.AddCommand(newBackendsCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
