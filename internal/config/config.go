// Package config decodes and validates the icon set that mkicons renders.
//
// The icon set is compiled into the binary from icons.default.toml (see the
// root appicons package). It names the glyph, colors, preferred font, log
// settings, and the ordered list of icons to produce.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"tools.zach/dev/appicons"
	"tools.zach/dev/appicons/internal/paths"
)

// CurrentVersion is the icon set schema version this build understands.
const CurrentVersion = 1

// ///////////////////////////////////////////////
// Configuration Types
// ///////////////////////////////////////////////

// Config represents the icon set.
type Config struct {
	// Version is the schema version of the icon set.
	Version int `toml:"version"`
	// Glyph is the single character drawn on every icon.
	Glyph string `toml:"glyph"`
	// Background is the canvas fill as a "#RRGGBB" hex color.
	Background string `toml:"background"`
	// Foreground is the glyph color as a "#RRGGBB" hex color.
	Foreground string `toml:"foreground"`
	// Font holds preferred font settings.
	Font FontConfig `toml:"font"`
	// Log holds logging settings.
	Log LogConfig `toml:"log"`
	// Icons lists the icons to render, in order.
	Icons []IconSpec `toml:"icons"`
}

// FontConfig holds preferred font settings.
type FontConfig struct {
	// Path is the TrueType, OpenType, or WOFF2 file tried first.
	Path string `toml:"path"`
	// ScaleDivisor sets the point size to icon size / ScaleDivisor.
	ScaleDivisor int `toml:"scale_divisor"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error, fail).
	Level string `toml:"level"`
	// File is an optional log file path. Empty means stderr.
	File string `toml:"file"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation.
	MaxSizeMB int `toml:"max_size_mb"`
}

// IconSpec describes one output icon.
type IconSpec struct {
	// Size is the square side length in pixels.
	Size int `toml:"size"`
	// File is the output file name, relative to the output directory.
	// Parse fills it with "icon-<size>.png" when omitted.
	File string `toml:"file"`
}

// ///////////////////////////////////////////////
// Defaults
// ///////////////////////////////////////////////

// validLogLevels lists the accepted log.level values.
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fail":  true,
}

// Builtin returns the icon set used for any field the TOML leaves unset.
func Builtin() *Config {
	return &Config{
		Version:    CurrentVersion,
		Glyph:      "A",
		Background: "#0a1929",
		Foreground: "#ffffff",
		Font: FontConfig{
			Path:         paths.PreferredFont,
			ScaleDivisor: 3,
		},
		Log: LogConfig{
			Level:     "warn",
			MaxSizeMB: 10,
		},
	}
}

// Default decodes the embedded icons.default.toml.
func Default() (*Config, error) {
	return Parse(appicons.DefaultIconsTOML)
}

// Parse decodes data on top of [Builtin] and validates the result.
// Icons are taken from data only; the builtin set has none. Icons without a
// file name get [paths.IconFileName] of their size.
func Parse(data []byte) (*Config, error) {
	cfg := Builtin()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse icon set: %w", err)
	}
	for i := range cfg.Icons {
		if cfg.Icons[i].File == "" && cfg.Icons[i].Size > 0 {
			cfg.Icons[i].File = paths.IconFileName(cfg.Icons[i].Size)
		}
	}
	if cfg.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported icon set version %d (want %d)", cfg.Version, CurrentVersion)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate icon set: %w", err)
	}
	return cfg, nil
}

// ///////////////////////////////////////////////
// Validation
// ///////////////////////////////////////////////

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Glyph) != 1 {
		return fmt.Errorf("glyph must be exactly one character, got %q", c.Glyph)
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := ParseHexColor(c.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if c.Font.ScaleDivisor <= 0 {
		return fmt.Errorf("font.scale_divisor must be > 0, got %d", c.Font.ScaleDivisor)
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be trace, debug, info, warn, error, or fail", c.Log.Level)
	}
	if c.Log.File != "" && c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be > 0 when log.file is set, got %d", c.Log.MaxSizeMB)
	}
	if len(c.Icons) == 0 {
		return fmt.Errorf("no icons defined")
	}
	seen := make(map[string]bool, len(c.Icons))
	for i, ic := range c.Icons {
		if ic.Size <= 0 {
			return fmt.Errorf("icons[%d].size must be > 0, got %d", i, ic.Size)
		}
		if ic.File == "" {
			return fmt.Errorf("icons[%d].file is empty", i)
		}
		if !strings.EqualFold(filepath.Ext(ic.File), paths.IconExt) {
			return fmt.Errorf("icons[%d].file %q must have a %s extension", i, ic.File, paths.IconExt)
		}
		if seen[ic.File] {
			return fmt.Errorf("icons[%d].file %q is listed more than once", i, ic.File)
		}
		seen[ic.File] = true
	}
	return nil
}

// Points returns the preferred font size in points for an icon of the given
// side length, using integer division.
func (f FontConfig) Points(size int) int {
	return size / f.ScaleDivisor
}
