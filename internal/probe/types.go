package probe

import "github.com/samber/lo"

// MediaType is the broad stream category from ffprobe's codec_type.
type MediaType string

const (
	MediaVideo    MediaType = "video"
	MediaAudio    MediaType = "audio"
	MediaSubtitle MediaType = "subtitle"
	MediaOther    MediaType = "other" // data, attachments
)

// StreamInfo holds the probed properties of a single stream. CodecTag
// and Profile are populated for video streams only; Language falls back
// to "und" when the stream carries no language tag.
type StreamInfo struct {
	Index    int
	Type     MediaType
	Codec    string
	CodecTag string
	Profile  string
	Language string
}

// IsMedia reports whether the stream is video, audio or subtitle.
func (s StreamInfo) IsMedia() bool {
	return s.Type == MediaVideo || s.Type == MediaAudio || s.Type == MediaSubtitle
}

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename   string
	NbStreams  int
	FormatName string
	Duration   float64
	Size       int64
	BitRate    int64
}

// ProbeResult is the fully parsed output of a single ffprobe JSON call.
// Streams preserves probe order, including data and attachment streams.
type ProbeResult struct {
	Format  FormatInfo
	Streams []StreamInfo
}

// MediaStreams returns the video, audio and subtitle streams in probe
// order. Data and attachment streams are dropped; their positions stay
// visible as gaps in StreamInfo.Index.
func (p *ProbeResult) MediaStreams() []StreamInfo {
	return lo.Filter(p.Streams, func(s StreamInfo, _ int) bool {
		return s.IsMedia()
	})
}
