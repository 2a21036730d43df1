package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses a "#RRGGBB" hex color string into an opaque
// color.NRGBA. The leading "#" is optional.
func ParseHexColor(hex string) (color.NRGBA, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Colors returns the parsed background and foreground colors.
func (c *Config) Colors() (bg, fg color.NRGBA, err error) {
	if bg, err = ParseHexColor(c.Background); err != nil {
		return bg, fg, fmt.Errorf("background: %w", err)
	}
	if fg, err = ParseHexColor(c.Foreground); err != nil {
		return bg, fg, fmt.Errorf("foreground: %w", err)
	}
	return bg, fg, nil
}
