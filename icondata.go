// Package appicons provides embedded assets for the mkicons command.
//
// The root package exists solely to embed [icons.default.toml] via
// [DefaultIconsTOML]. The config package decodes it to obtain the icon set.
package appicons

import _ "embed"

// DefaultIconsTOML holds the raw bytes of icons.default.toml, embedded at
// build time.
//
//go:embed icons.default.toml
var DefaultIconsTOML []byte
