package config

// This file defines the CLI flag surface. Parsed values flow into
// Config via FromContext; Validate runs on the result before the scan
// starts.

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// Flags returns the flag definitions for the framecheck command,
// grouped into report shape, display, and utility.
func Flags() []cli.Flag {
	return []cli.Flag{
		// Report shape.
		&cli.StringSliceFlag{
			Name:    "exclude",
			Aliases: []string{"e"},
			Usage:   "glob `PATTERN` pruned from the walk (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "fullpath",
			Usage: "print full paths instead of basenames",
		},
		&cli.BoolFlag{
			Name:    "brief",
			Aliases: []string{"b"},
			Usage:   "one line per problem file; no summary block",
		},
		&cli.BoolFlag{
			Name:  "skip-ok",
			Usage: "omit fully supported files from the report",
		},
		&cli.BoolFlag{
			Name:  "skip-unfixable",
			Usage: "omit files whose only problem is a bitmap subtitle",
		},

		// Display.
		&cli.StringFlag{
			Name:  "color",
			Value: "auto",
			Usage: "color output: auto, always or never",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "per-file probe diagnostics on stderr",
		},

		// Utility.
		&cli.BoolFlag{
			Name:    "check",
			Aliases: []string{"c"},
			Usage:   "verify ffprobe is available and exit",
		},
	}
}

// FromContext builds a Config from parsed flags and the positional
// argument. Flag parsing stops at the first positional, so a second
// argument is a misplaced flag and gets rejected, not dropped.
func FromContext(c *cli.Context) (Config, error) {
	cfg := Config{
		Path:          c.Args().First(),
		Excludes:      c.StringSlice("exclude"),
		FullPath:      c.Bool("fullpath"),
		Brief:         c.Bool("brief"),
		SkipOK:        c.Bool("skip-ok"),
		SkipUnfixable: c.Bool("skip-unfixable"),
		ColorMode:     ColorMode(strings.ToLower(c.String("color"))),
		Debug:         c.Bool("debug"),
		CheckOnly:     c.Bool("check"),
	}
	if !cfg.CheckOnly && c.NArg() > 1 {
		return Config{}, fmt.Errorf("need exactly one file or directory (flags go before the path)")
	}
	return cfg, nil
}
