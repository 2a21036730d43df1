// Package main implements mkicons, which writes the app icon set (icon-192.png
// and icon-512.png) into the working directory.
//
// Usage:
//
//	mkicons
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"tools.zach/dev/appicons/internal/config"
	"tools.zach/dev/appicons/internal/icon"
	"tools.zach/dev/appicons/internal/logger"
	"tools.zach/dev/appicons/internal/paths"
)

// ///////////////////////////////////////////////
// Version
// ///////////////////////////////////////////////

// version is set at build time via -ldflags "-X main.version=...". Bare
// builds fall back to the VCS info embedded by the Go toolchain.
var version = "dev"

// resolveVersion returns [version] if it was set via ldflags, otherwise a
// "dev+<hash>" tag built from embedded VCS settings.
func resolveVersion() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return version
	}
	hash := revision[:min(7, len(revision))]
	if dirty {
		return "dev+" + hash + ".dirty"
	}
	return "dev+" + hash
}

// ///////////////////////////////////////////////
// Main
// ///////////////////////////////////////////////

func main() {
	if err := run(os.Stdout, os.Stderr, "."); err != nil {
		os.Exit(1)
	}
}

// run renders every icon in the embedded set into dir. Confirmation lines go
// to stdout and log lines to stderr (or the configured log file). Errors are
// logged at FAIL before being returned.
func run(stdout, stderr io.Writer, dir string) error {
	log := logger.New(stderr, logger.LevelInfo)

	cfg, err := config.Default()
	if err != nil {
		logger.Fail(log, "load icon set", "error", err)
		return err
	}

	log, closer, err := openLog(cfg.Log, stderr)
	if err != nil {
		logger.Fail(logger.New(stderr, logger.LevelInfo), "open log", "error", err)
		return err
	}
	defer closer.Close()

	log.Debug(paths.BinaryName+" starting", "version", resolveVersion(), "icons", len(cfg.Icons))

	style, err := icon.StyleFromConfig(cfg)
	if err != nil {
		logger.Fail(log, "resolve style", "error", err)
		return err
	}

	r := icon.NewRenderer(style, dir, stdout, log)
	for _, ic := range cfg.Icons {
		if err := r.Create(ic.Size, ic.File); err != nil {
			logger.Fail(log, "create icon", "file", ic.File, "size", ic.Size, "error", err)
			return fmt.Errorf("create %s: %w", ic.File, err)
		}
	}
	return nil
}

// openLog returns the configured logger: a rotating file when cfg.File is
// set, stderr otherwise.
func openLog(cfg config.LogConfig, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level := logger.ParseLevel(cfg.Level)
	if cfg.File == "" {
		return logger.New(stderr, level), io.NopCloser(nil), nil
	}
	return logger.NewLogger(cfg.File, level, cfg.MaxSizeMB)
}
