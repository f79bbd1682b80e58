// Package report renders per-file compatibility verdicts in verbose or
// brief form plus the end-of-run summary, color-coding supported
// (green), unsupported (red) and warning (yellow) elements.
package report

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/backmassage/framecheck/internal/compat"
	"github.com/backmassage/framecheck/internal/probe"
	"github.com/backmassage/framecheck/internal/suggest"
)

// Verdict colors. The color package disables itself when stdout is not
// a terminal or NO_COLOR is set; the --color flag overrides that.
var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

// Options control how verdicts are rendered for one run.
type Options struct {
	Brief         bool // one line per problem file, no summary
	FullPath      bool // print paths as given instead of basenames
	SkipOK        bool // verbose: omit fully supported files
	SkipUnfixable bool // verbose: omit files only a bitmap subtitle breaks
}

// Printer renders verdicts and the summary to a single writer.
type Printer struct {
	out  io.Writer
	opts Options
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer, opts Options) *Printer {
	return &Printer{out: out, opts: opts}
}

// File prints the report for one verdict, honoring the skip filters.
// Counting is the caller's job; a skipped file still counts.
func (p *Printer) File(v *compat.FileVerdict) {
	if p.opts.Brief {
		p.briefReport(v)
		return
	}
	p.verboseReport(v)
}

func (p *Printer) verboseReport(v *compat.FileVerdict) {
	if p.opts.SkipOK && v.AllSupported {
		return
	}
	if p.opts.SkipUnfixable && v.UnfixableOnly() {
		return
	}

	fmt.Fprintf(p.out, "----------------\n\n%s\n", p.displayName(v.Path))
	fmt.Fprintf(p.out, "  container: %s | %s\n", v.Container, verdictLabel(v.ContainerSupported))

	for _, s := range v.Streams {
		fmt.Fprintf(p.out, "    [%d] %s | %s | %s | %s\n",
			s.Index, s.Class, s.Codec, s.Language, verdictLabel(s.Supported))
		if !s.Supported && s.Bitmap {
			yellow.Fprintf(p.out, "  Note: Subtitle stream %d (%s) is bitmap-based and cannot be converted to srt. It will be copied as-is (may not be supported on your TV).\n",
				s.Index, s.Codec)
		}
	}

	if v.AllSupported {
		fmt.Fprintf(p.out, "  overall: %s\n", green.Sprint("ALL TRACKS SUPPORTED"))
	} else {
		fmt.Fprintf(p.out, "  overall: %s\n", red.Sprint("SOME TRACKS UNSUPPORTED"))
	}

	if v.NeedsRemux() {
		fmt.Fprintf(p.out, "\n  Suggested remuxing command:\n    %s\n", suggest.RemuxCommand(v))
		yellow.Fprintln(p.out, "    (This changes only the container; streams are copied without re-encoding)")
	}
	if v.NeedsTranscode() {
		fmt.Fprintf(p.out, "\n  Suggested ffmpeg command:\n    %s\n", suggest.TranscodeCommand(v))
	}
	fmt.Fprintln(p.out)
}

// briefReport prints one line per problem file: path, then a colored
// tag per element. Fully supported files stay silent.
func (p *Printer) briefReport(v *compat.FileVerdict) {
	if v.AllSupported {
		return
	}

	var line strings.Builder
	if !v.ContainerSupported {
		line.WriteString(red.Sprintf("[container:%s]", v.Container))
	}
	for _, s := range v.Streams {
		tag := fmt.Sprintf("[%d:%s:%s:%s]", s.Index, s.Class, s.Codec, s.Language)
		if s.Supported {
			line.WriteString(green.Sprint(tag))
		} else {
			line.WriteString(red.Sprint(tag))
		}
	}
	fmt.Fprintf(p.out, "%s:%s\n", p.displayName(v.Path), line.String())
}

// FileError prints the diagnostic line for a file the prober could not
// handle. Verbose mode shows the error text, brief mode the exit code.
func (p *Printer) FileError(path string, err error) {
	name := p.displayName(path)
	var re *probe.RunError

	if p.opts.Brief {
		code := -1
		if errors.As(err, &re) {
			code = re.ExitCode
		}
		fmt.Fprintf(p.out, "%s: %s\n", name, yellow.Sprintf("error: could not probe (%d)", code))
		return
	}

	msg := err.Error()
	if errors.As(err, &re) {
		msg = re.Message()
	}
	fmt.Fprintf(p.out, "%s: %s\n", name, yellow.Sprintf("error: %s", msg))
}

func (p *Printer) displayName(path string) string {
	if p.opts.FullPath {
		return path
	}
	return filepath.Base(path)
}

func verdictLabel(supported bool) string {
	if supported {
		return green.Sprint("OK")
	}
	return red.Sprint("NOT SUPPORTED")
}
