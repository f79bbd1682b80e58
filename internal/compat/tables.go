package compat

import (
	"strings"

	"github.com/samber/lo"
)

// Codec identifiers below follow ffprobe codec_name spelling.

var supportedVideoCodecs = map[string]bool{
	"h264":       true,
	"hevc":       true,
	"mpeg2video": true,
	"vp9":        true,
	"av1":        true,
	"mjpeg":      true,
	"png":        true,
}

var supportedAudioCodecs = map[string]bool{
	"aac":       true,
	"ac3":       true,
	"eac3":      true,
	"mp3":       true,
	"pcm_s16le": true,
	"flac":      true,
	"vorbis":    true,
	"opus":      true,
	"wmav2":     true,
}

var supportedSubtitleCodecs = map[string]bool{
	"subrip":   true,
	"ass":      true,
	"ssa":      true,
	"webvtt":   true,
	"mov_text": true,
	"microdvd": true,
	"text":     true,
}

// bitmapSubtitleCodecs are image-based formats with no text to extract.
var bitmapSubtitleCodecs = map[string]bool{
	"hdmv_pgs_subtitle": true,
	"dvd_subtitle":      true,
}

// mpeg4VariantTags are FourCCs written by XviD/DivX-era encoders. The
// TV rejects these even though the codec id is plain mpeg4.
var mpeg4VariantTags = map[string]bool{
	"xvid": true,
	"divx": true,
	"dx50": true,
	"mp4v": true,
	"fmp4": true,
}

// mpeg4RejectedProfiles lists MPEG-4 part 2 profiles the TV cannot
// play. ffprobe spells the profile as a name, or as the raw number when
// built without profile names (Advanced Simple = 15, Simple Studio = 14).
var mpeg4RejectedProfiles = map[string]bool{
	"advanced simple profile": true,
	"simple studio profile":   true,
	"15":                      true,
	"14":                      true,
}

// supportedContainerNames are matched as substrings of ffprobe's
// format_name.
var supportedContainerNames = []string{
	"matroska", "mp4", "mov", "mpegts", "webm", "avi",
	"asf", "wav", "flac", "mp3", "ogg", "wmv",
}

// VideoSupported reports whether a video codec plays on the TV. For
// mpeg4 the codec id alone cannot distinguish plain MPEG-4 from the
// rejected XviD/DivX variants, so tag and profile break the tie.
func VideoSupported(codec, tag, profile string) bool {
	if supportedVideoCodecs[codec] {
		return true
	}
	if codec != "mpeg4" {
		return false
	}
	if mpeg4VariantTags[strings.ToLower(tag)] {
		return false
	}
	return !mpeg4RejectedProfiles[strings.ToLower(strings.TrimSpace(profile))]
}

// AudioSupported reports whether an audio codec plays on the TV.
func AudioSupported(codec string) bool {
	return supportedAudioCodecs[codec]
}

// SubtitleSupported reports whether a subtitle codec displays natively.
func SubtitleSupported(codec string) bool {
	return supportedSubtitleCodecs[codec]
}

// BitmapSubtitle reports whether a subtitle codec is image-based and
// therefore cannot be converted to a text form.
func BitmapSubtitle(codec string) bool {
	return bitmapSubtitleCodecs[codec]
}

// ContainerSupported reports whether the probed format name denotes a
// playable container.
func ContainerSupported(formatName string) bool {
	return lo.SomeBy(supportedContainerNames, func(name string) bool {
		return strings.Contains(formatName, name)
	})
}
