// Package compat holds the playback compatibility tables for the 2024
// Samsung Frame TV line and the classifier that folds probed streams
// into per-file verdicts.
//
// The tables are plain set-membership checks on ffprobe codec names.
// The one exception is MPEG-4 part 2: its codec id covers encoder
// variants the TV treats differently, so the verdict also consults the
// FourCC tag and the profile. Container names are matched as substrings
// because ffprobe reports compound demuxer names such as
// "mov,mp4,m4a,3gp,3g2,mj2".
package compat
