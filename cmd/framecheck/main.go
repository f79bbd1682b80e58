// Command framecheck reports whether media files will play on a 2024
// Samsung Frame TV. Every candidate file is probed with ffprobe, its
// container and streams are classified against the TV's compatibility
// tables, and files that fail get suggested ffmpeg commands to fix
// them.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/backmassage/framecheck/internal/check"
	"github.com/backmassage/framecheck/internal/config"
	"github.com/backmassage/framecheck/internal/probe"
	"github.com/backmassage/framecheck/internal/report"
	"github.com/backmassage/framecheck/internal/scan"
)

// version is set at build time via -ldflags (e.g. Makefile).
var version = "1.0.0-dev"

func main() {
	app := &cli.App{
		Name:            "framecheck",
		Usage:           "check media files for Samsung Frame TV playback",
		ArgsUsage:       "<file-or-directory>",
		Version:         version,
		HideHelpCommand: true,
		Flags:           config.Flags(),
		Action:          run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "framecheck: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	// 1. Build config from flags; reject bad usage before any output.
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	configureColor(cfg.ColorMode)
	configureLogging(cfg.Debug)

	// 2. --check diagnoses the ffprobe install and exits.
	if cfg.CheckOnly {
		if !check.RunCheck(os.Stdout) {
			return cli.Exit("", 1)
		}
		return nil
	}

	// 3. Fail fast when the prober is missing.
	if err := check.EnsureFfprobe(); err != nil {
		return err
	}

	// 4. Cancel on SIGINT/SIGTERM so the walk stops between probes.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Scan, report, summarize.
	printer := report.NewPrinter(os.Stdout, report.Options{
		Brief:         cfg.Brief,
		FullPath:      cfg.FullPath,
		SkipOK:        cfg.SkipOK,
		SkipUnfixable: cfg.SkipUnfixable,
	})
	scanner := scan.New(scan.ProbeFunc(probe.Probe), printer, cfg.Excludes)

	sum, err := scanner.Run(ctx, cfg.Path)
	if err != nil {
		return err
	}
	printer.Summary(&sum)
	return nil
}

// configureColor maps the configured mode onto the color package's
// global switch. Auto keeps the library's own TTY and NO_COLOR
// detection.
func configureColor(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

// configureLogging routes diagnostics to stderr, leaving stdout to the
// report. Debug level adds per-file probe stats.
func configureLogging(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(logWriter(os.Stderr)).Level(level)
}

// logWriter builds the console writer for out. It follows the same
// color switch as the report, so --color never covers diagnostics too.
func logWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: out, NoColor: color.NoColor}
}
