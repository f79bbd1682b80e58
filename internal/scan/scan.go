// Package scan walks a file or directory tree, probes every candidate
// media file, and feeds the verdicts through the report printer while
// keeping the run summary.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/backmassage/framecheck/internal/compat"
	"github.com/backmassage/framecheck/internal/probe"
	"github.com/backmassage/framecheck/internal/report"
)

// Extensions worth probing. Everything else is skipped silently.
var mediaExtensions = map[string]bool{
	".mkv":  true,
	".mp4":  true,
	".mov":  true,
	".webm": true,
	".avi":  true,
}

// Prober abstracts the ffprobe call so tests can inject canned results.
type Prober interface {
	Probe(ctx context.Context, path string) (*probe.ProbeResult, error)
}

// ProbeFunc adapts a plain function to the Prober interface.
type ProbeFunc func(ctx context.Context, path string) (*probe.ProbeResult, error)

// Probe implements Prober.
func (f ProbeFunc) Probe(ctx context.Context, path string) (*probe.ProbeResult, error) {
	return f(ctx, path)
}

// Scanner drives the probe, classify, report flow over a tree.
type Scanner struct {
	prober   Prober
	printer  *report.Printer
	excludes []string
}

// New returns a Scanner using prober for inspection and printer for
// output. excludes are glob patterns matched against both the walked
// path and the basename.
func New(prober Prober, printer *report.Printer, excludes []string) *Scanner {
	return &Scanner{prober: prober, printer: printer, excludes: excludes}
}

// Run checks root, a single file or a directory tree, and returns the
// run summary. The error is non-nil only for an unusable root; per-file
// failures are counted in the summary instead.
func (s *Scanner) Run(ctx context.Context, root string) (report.Summary, error) {
	var sum report.Summary

	fi, err := os.Stat(root)
	if err != nil {
		return sum, fmt.Errorf("cannot access %q: %w", root, err)
	}
	switch {
	case fi.IsDir():
		dir, err := resolveRoot(root)
		if err != nil {
			return sum, fmt.Errorf("cannot access %q: %w", root, err)
		}
		s.walk(ctx, dir, &sum)
	case fi.Mode().IsRegular():
		s.checkFile(ctx, root, &sum)
	default:
		return sum, fmt.Errorf("%q is not a regular file or directory", root)
	}
	return sum, nil
}

// resolveRoot returns the target of a symlinked root directory.
// os.Stat follows links but filepath.WalkDir does not, so walking the
// link itself would see one non-directory entry and scan nothing.
func resolveRoot(root string) (string, error) {
	fi, err := os.Lstat(root)
	if err != nil {
		return "", err
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return root, nil
	}
	return filepath.EvalSymlinks(root)
}

// walk visits the tree under root in lexical order. Excluded
// directories are pruned whole; unreadable ones are logged and skipped
// without stopping the run. The root itself is never excluded.
func (s *Scanner) walk(ctx context.Context, root string, sum *report.Summary) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			log.Warn().Str("path", path).Msg("scan interrupted")
			return filepath.SkipAll
		}
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("cannot read directory")
			return nil
		}
		if d.IsDir() {
			if path != root && s.excluded(path, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.excluded(path, d.Name()) {
			return nil
		}
		s.checkFile(ctx, path, sum)
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("root", root).Msg("walk failed")
	}
}

// excluded reports whether path or its basename matches any exclude
// pattern. A malformed pattern never matches, the same way fnmatch
// treats one.
func (s *Scanner) excluded(path, name string) bool {
	return lo.SomeBy(s.excludes, func(pattern string) bool {
		byPath, _ := filepath.Match(pattern, path)
		byName, _ := filepath.Match(pattern, name)
		return byPath || byName
	})
}

// checkFile probes one candidate file and updates the summary. Files
// without a media extension are ignored entirely.
func (s *Scanner) checkFile(ctx context.Context, path string, sum *report.Summary) {
	if !mediaExtensions[strings.ToLower(filepath.Ext(path))] {
		return
	}

	pr, err := s.prober.Probe(ctx, path)
	if err != nil {
		// A probe cut short by cancellation is not a file problem.
		if ctx.Err() != nil {
			return
		}
		sum.Total++
		sum.Errors++
		s.printer.FileError(path, err)
		return
	}

	logFileStats(path, pr)

	v := compat.Evaluate(path, pr)
	sum.Total++
	if v.AllSupported {
		sum.OK++
	} else {
		sum.NotSupported++
	}
	s.printer.File(v)
}

// logFileStats emits the per-file debug line. The report contract on
// stdout stays untouched; this goes through the logger on stderr.
func logFileStats(path string, pr *probe.ProbeResult) {
	log.Debug().
		Str("file", filepath.Base(path)).
		Str("container", pr.Format.FormatName).
		Str("size", humanize.IBytes(uint64(pr.Format.Size))).
		Str("duration", formatDuration(pr.Format.Duration)).
		Int("streams", len(pr.Streams)).
		Msg("probed")
}

// formatDuration renders ffprobe's seconds value compactly, e.g. 23m57s.
func formatDuration(seconds float64) string {
	return time.Duration(seconds * float64(time.Second)).Round(time.Second).String()
}
