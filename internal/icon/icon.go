// Package icon renders square app icons: a single glyph centered on a solid
// background, written out as PNG.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"tools.zach/dev/appicons/internal/config"
	"tools.zach/dev/appicons/internal/fontface"
	"tools.zach/dev/appicons/internal/logger"
	"tools.zach/dev/appicons/internal/paths"
	"tools.zach/dev/appicons/internal/pngfile"
)

// filePerm is the permission for written icon files.
const filePerm = 0o644

// ///////////////////////////////////////////////
// Style
// ///////////////////////////////////////////////

// Style holds the resolved look shared by every icon in a set.
type Style struct {
	Glyph      string
	Background color.NRGBA
	Foreground color.NRGBA
	Font       config.FontConfig
}

// StyleFromConfig resolves colors and font settings from an icon set.
func StyleFromConfig(cfg *config.Config) (Style, error) {
	bg, fg, err := cfg.Colors()
	if err != nil {
		return Style{}, err
	}
	return Style{
		Glyph:      cfg.Glyph,
		Background: bg,
		Foreground: fg,
		Font:       cfg.Font,
	}, nil
}

// ///////////////////////////////////////////////
// Geometry
// ///////////////////////////////////////////////

// BBox is the pixel extent of rendered text relative to a top-left anchor
// whose y coordinate sits on the font's ascent line.
type BBox struct {
	Left, Top, Right, Bottom int
}

// Width returns Right - Left.
func (b BBox) Width() int { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b BBox) Height() int { return b.Bottom - b.Top }

// Measure returns the bounding box text would occupy if drawn with its
// anchor at the origin.
//
// Outline faces report ink bounds. The basicfont.Face7x13 fallback reports
// its whole glyph cell instead, so fallback icons are centered on the cell
// rather than on the ink.
func Measure(face font.Face, text string) BBox {
	b, _ := font.BoundString(face, text)
	ascent := face.Metrics().Ascent
	return BBox{
		Left:   b.Min.X.Floor(),
		Top:    (b.Min.Y + ascent).Floor(),
		Right:  b.Max.X.Ceil(),
		Bottom: (b.Max.Y + ascent).Ceil(),
	}
}

// Placement returns the anchor position that centers bb on a size×size
// canvas. The offset from the anchor to the ink is not subtracted, so glyphs
// with ascender padding sit slightly low.
func Placement(size int, bb BBox) image.Point {
	return image.Pt(floorDiv(size-bb.Width(), 2), floorDiv(size-bb.Height(), 2))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ///////////////////////////////////////////////
// Renderer
// ///////////////////////////////////////////////

// Renderer draws icons in a fixed Style.
type Renderer struct {
	style Style
	dir   paths.OutputDir
	out   io.Writer
	log   *slog.Logger
}

// NewRenderer returns a Renderer that writes icons under dir and prints a
// confirmation line per icon to out.
func NewRenderer(style Style, dir string, out io.Writer, log *slog.Logger) *Renderer {
	return &Renderer{
		style: style,
		dir:   paths.OutputDir{Root: dir},
		out:   out,
		log:   log,
	}
}

// Render draws the glyph on a new size×size canvas and reports which font
// source was used.
func (r *Renderer) Render(size int) (*image.NRGBA, fontface.Source, error) {
	if size <= 0 {
		return nil, 0, fmt.Errorf("invalid icon size %d: must be > 0", size)
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.style.Background), image.Point{}, draw.Src)

	face := fontface.Open(r.style.Font.Path, r.style.Font.Points(size), r.log)
	defer face.Close()

	bb := Measure(face, r.style.Glyph)
	pos := Placement(size, bb)
	logger.Trace(r.log, "glyph placement",
		"size", size, "source", face.Source,
		"bbox", fmt.Sprintf("%d,%d,%d,%d", bb.Left, bb.Top, bb.Right, bb.Bottom),
		"x", pos.X, "y", pos.Y)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.style.Foreground),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(pos.X),
			Y: fixed.I(pos.Y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(r.style.Glyph)

	return img, face.Source, nil
}

// Create renders an icon of the given size and writes it to filename,
// replacing any existing file, then prints "Created <filename> (<size>x<size>)".
func (r *Renderer) Create(size int, filename string) error {
	img, source, err := r.Render(size)
	if err != nil {
		return err
	}

	path := r.dir.File(filename)
	if err := pngfile.Write(path, img, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	r.log.Info("created icon", "file", path, "size", size, "font", source)
	if _, err := fmt.Fprintf(r.out, "Created %s (%dx%d)\n", filename, size, size); err != nil {
		return fmt.Errorf("print confirmation: %w", err)
	}
	return nil
}
