package playlist

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// EntryPath converts a track path into its m3u form: relative to the
// grandparent of the file, i.e. relative to the music-library root two
// levels up from the track, with forward slashes. MPD resolves playlist
// entries against its music directory, which is exactly that root.
func EntryPath(p string) string {
	root := filepath.Dir(filepath.Dir(p))
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

// WriteM3U writes the playlist to path, one entry per line, no header and
// no trailing metadata.
func WriteM3U(path string, entries []string) error {
	lines := lo.Map(entries, func(p string, _ int) string {
		return EntryPath(p)
	})
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644)
}
