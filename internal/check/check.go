// Package check verifies that the external prober is usable: a fast
// preflight before a scan, and the interactive --check flow.
package check

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/fatih/color"
)

// ErrFfprobeNotFound is returned when the probe binary is missing from
// PATH.
var ErrFfprobeNotFound = errors.New("ffprobe not found in PATH (install ffmpeg)")

// EnsureFfprobe verifies the probe binary exists before a scan starts,
// so a missing install fails the run once instead of once per file.
func EnsureFfprobe() error {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// RunCheck performs the --check flow: locate ffprobe and report its
// version. Returns false when ffprobe is missing or unusable.
func RunCheck(out io.Writer) bool {
	path, err := exec.LookPath("ffprobe")
	if err != nil {
		color.New(color.FgRed).Fprintln(out, "ffprobe: not found in PATH")
		return false
	}
	fmt.Fprintf(out, "ffprobe: %s\n", path)

	version, err := ffprobeVersion()
	if err != nil {
		color.New(color.FgYellow).Fprintf(out, "ffprobe found but not runnable: %v\n", err)
		return false
	}
	color.New(color.FgGreen).Fprintln(out, version)
	return true
}

// ffprobeVersion returns the first line of `ffprobe -version`.
func ffprobeVersion() (string, error) {
	out, err := exec.Command("ffprobe", "-version").Output()
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(string(out))
	if idx := strings.IndexByte(line, '\n'); idx > 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line), nil
}
