// Package suggest builds the ffmpeg command lines offered for files
// that fail the compatibility check: a remux that only swaps the
// container, and a transcode that re-encodes exactly the unsupported
// streams.
package suggest

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/backmassage/framecheck/internal/compat"
)

// Fallback encoders for streams the TV cannot play.
const (
	videoFallback    = "libx264"
	audioFallback    = "aac"
	subtitleFallback = "srt"
)

// RemuxOutputName returns "remuxed_<basename>.mkv". The original
// extension stays embedded in the name.
func RemuxOutputName(path string) string {
	return "remuxed_" + filepath.Base(path) + ".mkv"
}

// TranscodeOutputName returns "fixed_<stem>.mkv".
func TranscodeOutputName(path string) string {
	base := filepath.Base(path)
	return "fixed_" + strings.TrimSuffix(base, filepath.Ext(base)) + ".mkv"
}

// RemuxCommand returns the ffmpeg invocation that repackages every
// stream unchanged into a Matroska container.
func RemuxCommand(v *compat.FileVerdict) string {
	return "ffmpeg -i " + ShellQuote(v.Path) +
		" -map 0 -c copy " + ShellQuote(RemuxOutputName(v.Path))
}

// TranscodeCommand returns the ffmpeg invocation that copies supported
// streams and re-encodes unsupported ones to TV-safe codecs.
//
// Stream maps appear in first-encounter order; codec options are
// grouped video, audio, subtitle, each indexed by the stream's ordinal
// within its kind to match ffmpeg's output numbering. Bitmap subtitles
// are always copied since they have no text to extract.
func TranscodeCommand(v *compat.FileVerdict) string {
	args := []string{"ffmpeg", "-i", ShellQuote(v.Path)}

	var videoOpts, audioOpts, subOpts []string
	nv, na, ns := 0, 0, 0

	for _, s := range v.Streams {
		switch s.Class {
		case compat.ClassVideo:
			if nv == 0 {
				args = append(args, "-map", "0:v")
			}
			videoOpts = append(videoOpts, "-c:v:"+strconv.Itoa(nv), codecChoice(s.Supported, videoFallback))
			nv++
		case compat.ClassAudio:
			if na == 0 {
				args = append(args, "-map", "0:a")
			}
			audioOpts = append(audioOpts, "-c:a:"+strconv.Itoa(na), codecChoice(s.Supported, audioFallback))
			na++
		case compat.ClassSubtitle:
			if ns == 0 {
				args = append(args, "-map", "0:s")
			}
			target := "copy"
			if !s.Supported && !s.Bitmap {
				target = subtitleFallback
			}
			subOpts = append(subOpts, "-c:s:"+strconv.Itoa(ns), target)
			ns++
		}
	}

	args = append(args, videoOpts...)
	args = append(args, audioOpts...)
	args = append(args, subOpts...)
	args = append(args, ShellQuote(TranscodeOutputName(v.Path)))
	return strings.Join(args, " ")
}

// codecChoice returns "copy" for supported streams, else the fallback
// encoder.
func codecChoice(supported bool, fallback string) string {
	if supported {
		return "copy"
	}
	return fallback
}
