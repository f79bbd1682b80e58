// Package probe inspects media files with ffprobe and exposes the
// results as typed structures.
//
// One ffprobe invocation per file returns the container format and
// every stream as JSON; nothing is demuxed in-process. The wire types
// mirror ffprobe's output shape and stay private; the exported types
// carry only what the compatibility check needs: stream index, type,
// codec, FourCC tag, profile and language.
package probe
