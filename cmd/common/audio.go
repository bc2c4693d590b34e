package common

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/samber/lo"
)

// audioExtensions is the set of file extensions treated as playable audio.
// Not all of them are decodable in-process; see ProbeDuration.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".ogg":  true,
	".flac": true,
	".wav":  true,
	".aac":  true,
	".m4a":  true,
	".opus": true,
}

// IsAudioFile reports whether path has a recognized audio extension.
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// ListAudioFiles returns the full paths of all audio files directly inside
// dir, in lexicographic order. Subdirectories are not entered.
func ListAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return !e.IsDir() && IsAudioFile(e.Name())
	})

	return lo.Map(files, func(e os.DirEntry, _ int) string {
		return filepath.Join(dir, e.Name())
	}), nil
}

// ProbeDuration estimates the playback duration of an audio file by decoding
// its container header. The second return value is false when the duration
// cannot be determined (unreadable file, unsupported or corrupt container),
// never an error: callers only branch on presence.
func ProbeDuration(path string) (time.Duration, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		// Recognized as audio by extension, but not decodable in-process
		return 0, false
	}
	if err != nil {
		return 0, false
	}
	defer func() { _ = streamer.Close() }()

	samples := streamer.Len()
	if samples <= 0 {
		return 0, false
	}

	return format.SampleRate.D(samples), true
}
