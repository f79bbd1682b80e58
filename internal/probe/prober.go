package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Probe runs a single ffprobe JSON call against path and returns the
// parsed result. Invocation failures come back as a *RunError carrying
// the exit code and trailing stderr output.
func Probe(ctx context.Context, path string) (*ProbeResult, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		re := &RunError{Path: path, ExitCode: -1, Err: err}
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			re.ExitCode = ee.ExitCode()
			re.Stderr = strings.TrimSpace(string(ee.Stderr))
		}
		return nil, re
	}

	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a ProbeResult.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*ProbeResult, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

// RunError describes a failed ffprobe invocation.
type RunError struct {
	Path     string
	ExitCode int // -1 when ffprobe did not run or died on a signal
	Stderr   string
	Err      error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("ffprobe %s: %s", e.Path, e.Message())
}

func (e *RunError) Unwrap() error { return e.Err }

// Message returns a one-line description of the failure: the last
// stderr line when ffprobe produced one, the wrapped error otherwise.
func (e *RunError) Message() string {
	if e.Stderr != "" {
		lines := strings.Split(e.Stderr, "\n")
		return strings.TrimSpace(lines[len(lines)-1])
	}
	return e.Err.Error()
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Filename   string `json:"filename"`
	NbStreams  int    `json:"nb_streams"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
}

type ffprobeStream struct {
	Index          int               `json:"index"`
	CodecName      string            `json:"codec_name"`
	CodecType      string            `json:"codec_type"`
	CodecTagString string            `json:"codec_tag_string"`
	Profile        string            `json:"profile"`
	Tags           map[string]string `json:"tags"`
}

// --- Conversion from wire types to domain types ---

func buildResult(raw *ffprobeOutput) *ProbeResult {
	pr := &ProbeResult{
		Format:  convertFormat(&raw.Format),
		Streams: make([]StreamInfo, 0, len(raw.Streams)),
	}
	for i := range raw.Streams {
		pr.Streams = append(pr.Streams, convertStream(&raw.Streams[i]))
	}
	return pr
}

func convertFormat(f *ffprobeFormat) FormatInfo {
	return FormatInfo{
		Filename:   f.Filename,
		NbStreams:  f.NbStreams,
		FormatName: f.FormatName,
		Duration:   parseFloat(f.Duration),
		Size:       parseInt64(f.Size),
		BitRate:    parseInt64(f.BitRate),
	}
}

func convertStream(s *ffprobeStream) StreamInfo {
	info := StreamInfo{
		Index:    s.Index,
		Type:     mediaTypeOf(s.CodecType),
		Codec:    s.CodecName,
		Language: s.Tags["language"],
	}
	if info.Language == "" {
		info.Language = "und"
	}
	if info.Type == MediaVideo {
		info.CodecTag = cleanCodecTag(s.CodecTagString)
		info.Profile = s.Profile
	}
	return info
}

func mediaTypeOf(codecType string) MediaType {
	switch codecType {
	case "video":
		return MediaVideo
	case "audio":
		return MediaAudio
	case "subtitle":
		return MediaSubtitle
	}
	return MediaOther
}

// cleanCodecTag normalizes ffprobe's codec_tag_string. Containers
// without FourCC tags (Matroska among them) report "[0][0][0][0]",
// which is no tag at all.
func cleanCodecTag(tag string) string {
	if tag == "" || strings.HasPrefix(tag, "[") {
		return ""
	}
	return tag
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

func parseInt64(s string) int64 {
	s = strings.TrimSpace(s)
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
