package play

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseM3U(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "jukebox-play-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	content := "#EXTM3U\nrock/one.mp3\n\n  \nads/spot.mp3\n# a comment\nrock/two.mp3"
	path := filepath.Join(tmpDir, "test.m3u")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write playlist: %v", err)
	}

	entries, err := parseM3U(path)
	if err != nil {
		t.Fatalf("parseM3U failed: %v", err)
	}

	want := []string{"rock/one.mp3", "ads/spot.mp3", "rock/two.mp3"}
	if !slices.Equal(entries, want) {
		t.Errorf("parseM3U = %v, want %v", entries, want)
	}
}

func TestParseM3UMissingFile(t *testing.T) {
	if _, err := parseM3U(filepath.Join(os.TempDir(), "jukebox-missing.m3u")); err == nil {
		t.Error("Expected an error for a missing playlist")
	}
}
