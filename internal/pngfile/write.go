// Package pngfile encodes images as PNG and writes them to disk, replacing
// any existing file at the target path.
package pngfile

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"tools.zach/dev/appicons/internal/atomicfile"
)

// encoder uses best compression; icons are small and written once.
var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// Encode returns img encoded as PNG. Fully opaque images are stored as RGB.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes img and writes it to path with permissions perm, replacing
// any existing file. On failure the previous contents of path are untouched.
func Write(path string, img image.Image, perm os.FileMode) error {
	data, err := Encode(img)
	if err != nil {
		return err
	}
	return atomicfile.Write(path, data, perm)
}
