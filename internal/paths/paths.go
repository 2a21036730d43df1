// Package paths centralizes file names and fixed filesystem locations used
// across the project.
package paths

import (
	"path/filepath"
	"strconv"
)

// ///////////////////////////////////////////////
// Constants
// ///////////////////////////////////////////////

// PreferredFont is the bold TrueType font tried before falling back to the
// built-in bitmap face.
const PreferredFont = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"

// Icon file naming.
const (
	IconPrefix = "icon-"
	IconExt    = ".png"
	BinaryName = "mkicons"
)

// IconFileName returns the conventional file name for an icon of the given size.
// For example, IconFileName(192) returns "icon-192.png".
func IconFileName(size int) string {
	return IconPrefix + strconv.Itoa(size) + IconExt
}

// ///////////////////////////////////////////////
// OutputDir
// ///////////////////////////////////////////////

// OutputDir provides path construction rooted at the directory icons are
// written to.
type OutputDir struct {
	Root string
}

// File returns the full path for name inside the output directory. Absolute
// names are returned unchanged.
func (d OutputDir) File(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Root, name)
}
