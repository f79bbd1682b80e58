package compat

import "github.com/backmassage/framecheck/internal/probe"

// Class identifies the media category of a classified stream. The
// values double as the labels printed in reports.
type Class string

const (
	ClassVideo    Class = "video"
	ClassAudio    Class = "audio"
	ClassSubtitle Class = "subtitle"
)

// StreamVerdict pairs a probed stream with its classification.
type StreamVerdict struct {
	probe.StreamInfo
	Class     Class
	Supported bool
	Bitmap    bool // subtitle streams only
}

// FileVerdict is the complete compatibility assessment of one file.
type FileVerdict struct {
	Path                  string
	Container             string
	ContainerSupported    bool
	Streams               []StreamVerdict
	AllSupported          bool
	CanTranscode          bool
	HasUnfixableBitmapSub bool
	HasVideo              bool
	HasAudio              bool
}

// NeedsRemux reports whether a remux suggestion applies: something is
// unsupported and there is at least one video or audio stream to carry.
func (v *FileVerdict) NeedsRemux() bool {
	return !v.AllSupported && (v.HasVideo || v.HasAudio)
}

// NeedsTranscode reports whether a transcode suggestion applies on top
// of the remux.
func (v *FileVerdict) NeedsTranscode() bool {
	return v.NeedsRemux() && v.CanTranscode
}

// UnfixableOnly reports whether re-encoding cannot fix the file and a
// bitmap subtitle is among the problems.
func (v *FileVerdict) UnfixableOnly() bool {
	return !v.AllSupported && !v.CanTranscode && v.HasUnfixableBitmapSub
}

// Classify returns the category and verdict for one media stream.
// Non-media streams never reach here; Evaluate filters them out first.
func Classify(s probe.StreamInfo) (Class, bool) {
	switch s.Type {
	case probe.MediaVideo:
		return ClassVideo, VideoSupported(s.Codec, s.CodecTag, s.Profile)
	case probe.MediaAudio:
		return ClassAudio, AudioSupported(s.Codec)
	case probe.MediaSubtitle:
		return ClassSubtitle, SubtitleSupported(s.Codec)
	}
	return "", false
}

// Evaluate classifies every media stream of a probed file and folds the
// per-stream verdicts into the file-level flags.
//
// Folding rules:
//   - any unsupported video or audio stream makes the file transcodable
//   - an unsupported bitmap subtitle is unfixable; any other
//     unsupported subtitle converts to srt, which counts as
//     transcodable
//   - data and attachment streams are invisible to the verdict
func Evaluate(path string, pr *probe.ProbeResult) *FileVerdict {
	v := &FileVerdict{
		Path:      path,
		Container: pr.Format.FormatName,
	}
	if v.Container == "" {
		v.Container = "unknown"
	}
	v.ContainerSupported = ContainerSupported(v.Container)
	v.AllSupported = v.ContainerSupported

	for _, s := range pr.MediaStreams() {
		class, supported := Classify(s)
		sv := StreamVerdict{StreamInfo: s, Class: class, Supported: supported}

		switch class {
		case ClassVideo:
			v.HasVideo = true
			if !supported {
				v.CanTranscode = true
			}
		case ClassAudio:
			v.HasAudio = true
			if !supported {
				v.CanTranscode = true
			}
		case ClassSubtitle:
			sv.Bitmap = BitmapSubtitle(s.Codec)
			if !supported {
				if sv.Bitmap {
					v.HasUnfixableBitmapSub = true
				} else {
					v.CanTranscode = true
				}
			}
		}

		if !supported {
			v.AllSupported = false
		}
		v.Streams = append(v.Streams, sv)
	}
	return v
}
