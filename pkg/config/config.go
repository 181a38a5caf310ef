// Package config loads user configuration for svg2pdf.
//
// Configuration lives at $XDG_CONFIG_HOME/svg2pdf/config.toml (falling
// back to ~/.config/svg2pdf/config.toml) and supplies defaults for the
// dpi, backend, and output directory settings. Command-line flags always
// override configured values, and configured values override built-in
// defaults. A missing config file is not an error.
//
// Example config.toml:
//
//	dpi = 144
//	backend = "rsvg"
//	output_dir = "~/Documents/pdf"
//
//	[serve]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/svg2pdf/pkg/errors"
	"github.com/matzehuels/svg2pdf/pkg/render"
)

// appName is the application name used for the config directory.
const appName = "svg2pdf"

// Config holds user-configurable defaults.
type Config struct {
	// DPI is the default rasterization density.
	DPI float64 `toml:"dpi"`

	// Backend names the preferred rendering backend. Empty means
	// auto-detect.
	Backend string `toml:"backend"`

	// OutputDir is the default output directory. Empty places PDFs
	// beside their sources.
	OutputDir string `toml:"output_dir"`

	// Serve holds HTTP server settings.
	Serve ServeConfig `toml:"serve"`
}

// ServeConfig holds settings for the serve command.
type ServeConfig struct {
	// Addr is the listen address (e.g., ":8080").
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DPI:   render.DefaultDPI,
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// Path returns the config file location using the XDG standard
// (~/.config/svg2pdf/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the user config, layering it over Default. A missing file
// yields the defaults without error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path, layering it over Default.
// A missing file yields the defaults without error; a malformed file is
// an error. On error the returned Config is Default, never a partially
// decoded or rejected one, so callers can use it unconditionally.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if cfg.DPI <= 0 {
		return Default(), errors.New(errors.ErrCodeInvalidDPI, "configured dpi must be greater than zero, got %g", cfg.DPI)
	}
	return cfg, nil
}
