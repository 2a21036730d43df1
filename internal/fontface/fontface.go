// Package fontface resolves the font face used to draw an icon glyph.
//
// Resolution order:
//  1. The preferred font file (TTF, OTF, or WOFF2) at the requested point size
//  2. [basicfont.Face7x13], which ignores the requested size
//
// Open never fails: any problem with the preferred font is logged and the
// fallback face is returned instead.
package fontface

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tdfont "github.com/tdewolff/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// dpi makes one point equal one pixel.
const dpi = 72

// Source identifies where a resolved face came from.
type Source int

const (
	SourcePreferred Source = iota
	SourceFallback
)

// String returns "preferred" or "fallback".
func (s Source) String() string {
	if s == SourcePreferred {
		return "preferred"
	}
	return "fallback"
}

// Face is a resolved font face.
type Face struct {
	font.Face
	// Source reports whether the preferred font or the fallback is in use.
	Source Source
	// Points is the point size of the preferred face, or 0 for the fallback.
	Points int
}

// errNoSize is returned for a non-positive point size.
var errNoSize = errors.New("font size must be > 0")

// Open loads the font at path scaled to points, falling back to the built-in
// bitmap face on any failure. The caller must Close the returned Face.
func Open(path string, points int, log *slog.Logger) *Face {
	face, err := openPreferred(path, points)
	if err != nil {
		log.Warn("preferred font unavailable, using built-in face",
			"path", path, "points", points, "error", err)
		return Fallback()
	}
	log.Debug("loaded preferred font", "path", path, "points", points)
	return &Face{Face: face, Source: SourcePreferred, Points: points}
}

// Fallback returns the built-in size-invariant face.
func Fallback() *Face {
	return &Face{Face: basicfont.Face7x13, Source: SourceFallback}
}

// openPreferred reads, converts, and parses the font file at path.
func openPreferred(path string, points int) (font.Face, error) {
	if points <= 0 {
		return nil, errNoSize
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	data, err = toSFNT(path, data)
	if err != nil {
		return nil, err
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(points),
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// toSFNT converts WOFF2 font data to SFNT format if needed.
func toSFNT(path string, data []byte) ([]byte, error) {
	if !isWOFF2(path, data) {
		return data, nil
	}
	sfnt, err := tdfont.ToSFNT(data)
	if err != nil {
		return nil, fmt.Errorf("convert woff2 to sfnt: %w", err)
	}
	return sfnt, nil
}

// isWOFF2 checks whether a font file is WOFF2 by extension or magic bytes.
// WOFF2 magic: 0x774F4632 ("wOF2")
func isWOFF2(path string, data []byte) bool {
	if strings.HasSuffix(strings.ToLower(path), ".woff2") {
		return true
	}
	return len(data) >= 4 && string(data[:4]) == "wOF2"
}
