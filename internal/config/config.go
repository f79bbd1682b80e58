// Package config holds runtime configuration: the CLI flag surface,
// the Config struct populated from it, and validation.
package config

import (
	"errors"
	"fmt"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings for one run. It is populated from
// parsed CLI flags by [FromContext] and checked by [Validate] before
// anything touches the filesystem.
type Config struct {
	// Path is the positional file or directory to check.
	Path string

	// Excludes are glob patterns pruned from the directory walk. Each
	// pattern is matched against the walked path and the basename.
	Excludes []string

	// Report shape.
	FullPath      bool // print paths as given instead of basenames
	Brief         bool // one line per problem file; suppresses the summary
	SkipOK        bool // verbose mode: omit fully supported files
	SkipUnfixable bool // verbose mode: omit bitmap-subtitle-only files

	// Display and diagnostics.
	ColorMode ColorMode // Default: "auto".
	Debug     bool      // Per-file probe stats on stderr.
	CheckOnly bool      // Run the ffprobe availability check and exit.
}

// Validate checks the color mode and the positional path requirement.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.CheckOnly {
		return nil
	}
	if c.Path == "" {
		return errors.New("no file or directory specified")
	}
	return nil
}
