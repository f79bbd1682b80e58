package probe

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Realistic ffprobe JSON for a Matroska file with:
//   - 1 HEVC video stream (no FourCC tag, reported as "[0][0][0][0]")
//   - 1 AAC audio stream tagged jpn
//   - 1 ASS subtitle stream tagged eng
//   - 1 PGS subtitle stream without a language tag
//   - 1 attached font (must not surface as a media stream)
const sampleMatroska = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "hevc",
      "codec_type": "video",
      "codec_tag_string": "[0][0][0][0]",
      "profile": "Main 10",
      "tags": {}
    },
    {
      "index": 1,
      "codec_name": "aac",
      "codec_type": "audio",
      "codec_tag_string": "[0][0][0][0]",
      "profile": "LC",
      "tags": { "language": "jpn" }
    },
    {
      "index": 2,
      "codec_name": "ass",
      "codec_type": "subtitle",
      "codec_tag_string": "[0][0][0][0]",
      "tags": { "language": "eng" }
    },
    {
      "index": 3,
      "codec_name": "hdmv_pgs_subtitle",
      "codec_type": "subtitle",
      "codec_tag_string": "[0][0][0][0]",
      "tags": {}
    },
    {
      "index": 4,
      "codec_name": "ttf",
      "codec_type": "attachment",
      "tags": { "filename": "font.ttf" }
    }
  ],
  "format": {
    "filename": "/media/test/Show.S01E01.mkv",
    "nb_streams": 5,
    "format_name": "matroska,webm",
    "duration": "1437.123000",
    "size": "1234567890",
    "bit_rate": "6873456"
  }
}`

// XviD-encoded AVI: the codec id is plain mpeg4, the FourCC tells the
// variant.
const sampleXvidAvi = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mpeg4",
      "codec_type": "video",
      "codec_tag_string": "XVID",
      "profile": "Advanced Simple Profile",
      "tags": {}
    },
    {
      "index": 1,
      "codec_name": "mp3",
      "codec_type": "audio",
      "codec_tag_string": "U[0][0][0]",
      "tags": {}
    }
  ],
  "format": {
    "filename": "old_rip.avi",
    "nb_streams": 2,
    "format_name": "avi",
    "duration": "5400.000000",
    "size": "734003200",
    "bit_rate": "1087114"
  }
}`

// Minimal file: a single video stream, nothing else.
const sampleMinimal = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "codec_tag_string": "avc1",
      "profile": "High",
      "tags": {}
    }
  ],
  "format": {
    "filename": "minimal.mp4",
    "nb_streams": 1,
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "10.000",
    "size": "500000",
    "bit_rate": "400000"
  }
}`

func TestParseJSON_Matroska(t *testing.T) {
	pr, err := ParseJSON([]byte(sampleMatroska))
	require.NoError(t, err)

	// Format
	assert.Equal(t, "/media/test/Show.S01E01.mkv", pr.Format.Filename)
	assert.Equal(t, 5, pr.Format.NbStreams)
	assert.Equal(t, "matroska,webm", pr.Format.FormatName)
	assert.Equal(t, 1437.123, pr.Format.Duration)
	assert.Equal(t, int64(1234567890), pr.Format.Size)
	assert.Equal(t, int64(6873456), pr.Format.BitRate)

	// Every stream is kept, including the attachment.
	require.Len(t, pr.Streams, 5)

	v := pr.Streams[0]
	assert.Equal(t, MediaVideo, v.Type)
	assert.Equal(t, "hevc", v.Codec)
	assert.Equal(t, "", v.CodecTag, "Matroska placeholder tag must be cleared")
	assert.Equal(t, "Main 10", v.Profile)
	assert.Equal(t, "und", v.Language, "untagged streams default to und")

	a := pr.Streams[1]
	assert.Equal(t, MediaAudio, a.Type)
	assert.Equal(t, "aac", a.Codec)
	assert.Equal(t, "jpn", a.Language)
	assert.Empty(t, a.Profile, "profile is a video-only property")
	assert.Empty(t, a.CodecTag)

	textSub := pr.Streams[2]
	assert.Equal(t, MediaSubtitle, textSub.Type)
	assert.Equal(t, "ass", textSub.Codec)
	assert.Equal(t, "eng", textSub.Language)

	pgs := pr.Streams[3]
	assert.Equal(t, "hdmv_pgs_subtitle", pgs.Codec)
	assert.Equal(t, "und", pgs.Language)

	font := pr.Streams[4]
	assert.Equal(t, MediaOther, font.Type)
	assert.False(t, font.IsMedia())
}

func TestParseJSON_XvidAvi(t *testing.T) {
	pr, err := ParseJSON([]byte(sampleXvidAvi))
	require.NoError(t, err)

	require.Len(t, pr.Streams, 2)
	v := pr.Streams[0]
	assert.Equal(t, "mpeg4", v.Codec)
	assert.Equal(t, "XVID", v.CodecTag, "real FourCC tags pass through unchanged")
	assert.Equal(t, "Advanced Simple Profile", v.Profile)

	assert.Equal(t, "avi", pr.Format.FormatName)
}

func TestParseJSON_Minimal(t *testing.T) {
	pr, err := ParseJSON([]byte(sampleMinimal))
	require.NoError(t, err)

	require.Len(t, pr.Streams, 1)
	assert.Equal(t, "h264", pr.Streams[0].Codec)
	assert.Equal(t, "avc1", pr.Streams[0].CodecTag)
	assert.Equal(t, 10.0, pr.Format.Duration)
}

func TestMediaStreams(t *testing.T) {
	pr, err := ParseJSON([]byte(sampleMatroska))
	require.NoError(t, err)

	media := pr.MediaStreams()
	require.Len(t, media, 4, "the font attachment must be filtered out")

	// Probe order and original indexes survive the filter.
	indexes := make([]int, 0, len(media))
	for _, s := range media {
		indexes = append(indexes, s.Index)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, indexes)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := ParseJSON([]byte(`{invalid`))
	assert.Error(t, err)
}

func TestParseJSON_EmptyStreams(t *testing.T) {
	pr, err := ParseJSON([]byte(`{"streams":[],"format":{"filename":"empty.mkv","nb_streams":0}}`))
	require.NoError(t, err)
	assert.Empty(t, pr.Streams)
	assert.Empty(t, pr.MediaStreams())
	assert.Equal(t, "", pr.Format.FormatName)
}

func TestCleanCodecTag(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"matroska placeholder", "[0][0][0][0]", ""},
		{"partial placeholder", "[27][0][0][0]", ""},
		{"fourcc", "XVID", "XVID"},
		{"lowercase fourcc", "avc1", "avc1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cleanCodecTag(tc.in))
		})
	}
}

func TestRunError_Message(t *testing.T) {
	re := &RunError{
		Path:     "broken.mkv",
		ExitCode: 1,
		Stderr:   "first line of noise\nbroken.mkv: Invalid data found when processing input",
		Err:      errors.New("exit status 1"),
	}
	assert.Equal(t, "broken.mkv: Invalid data found when processing input", re.Message())
	assert.Equal(t, "ffprobe broken.mkv: broken.mkv: Invalid data found when processing input", re.Error())
}

func TestRunError_MessageWithoutStderr(t *testing.T) {
	wrapped := exec.ErrNotFound
	re := &RunError{Path: "x.mkv", ExitCode: -1, Err: wrapped}
	assert.Equal(t, wrapped.Error(), re.Message())
	assert.True(t, errors.Is(re, exec.ErrNotFound), "RunError must unwrap to its cause")
}
