package generate

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// fixtureDirs builds a music library with an ads folder (one ad) and a
// rock folder (two tracks), plus an empty playlists directory.
func fixtureDirs(t *testing.T) (musicDir string, playlistDir string) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "jukebox-generate-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	musicDir = filepath.Join(tmpDir, "music")
	playlistDir = filepath.Join(tmpDir, "playlists")
	for _, dir := range []string{
		filepath.Join(musicDir, "ads"),
		filepath.Join(musicDir, "rock"),
		playlistDir,
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create dir %s: %v", dir, err)
		}
	}
	for _, name := range []string{"ads/spot.mp3", "rock/one.mp3", "rock/two.mp3"} {
		if err := os.WriteFile(filepath.Join(musicDir, name), []byte("data"), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", name, err)
		}
	}
	return musicDir, playlistDir
}

func TestRunCancelledPickWritesNothing(t *testing.T) {
	musicDir, playlistDir := fixtureDirs(t)

	var titles []string
	err := run(runOpts{
		adEvery:     15,
		musicDir:    musicDir,
		playlistDir: playlistDir,
		name:        "jukebox",
		selectFrom: func(title string, items []string) (int, bool, error) {
			titles = append(titles, title)
			if len(titles) == 3 {
				return 0, false, nil
			}
			return 0, true, nil
		},
	})
	if err == nil {
		t.Fatal("Expected an error when the music folder pick is cancelled")
	}

	want := []string{"Select the ads folder", "Select the ad file", "Select the music folder"}
	if !slices.Equal(titles, want) {
		t.Errorf("Pick titles = %v, want %v", titles, want)
	}

	entries, err := os.ReadDir(playlistDir)
	if err != nil {
		t.Fatalf("Failed to read playlists directory: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("A cancelled run must not write anything, found %v", entries)
	}
}

func TestRunWritesPlaylist(t *testing.T) {
	musicDir, playlistDir := fixtureDirs(t)

	err := run(runOpts{
		adEvery:     15,
		musicDir:    musicDir,
		playlistDir: playlistDir,
		name:        "party",
		selectFrom: func(title string, items []string) (int, bool, error) {
			if title == "Select the music folder" {
				return slices.Index(items, "rock"), true, nil
			}
			return 0, true, nil
		},
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(playlistDir, "party.m3u"))
	if err != nil {
		t.Fatalf("Failed to read written playlist: %v", err)
	}

	// The fixture tracks are undecodable, so the average duration is
	// unknown and the playlist is the shuffled tracks without ads.
	got := strings.Split(string(data), "\n")
	slices.Sort(got)
	want := []string{"rock/one.mp3", "rock/two.mp3"}
	if !slices.Equal(got, want) {
		t.Errorf("Playlist entries = %v, want %v", got, want)
	}
}

func TestListSubdirsAndFiles(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "jukebox-generate-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	mkdir := func(name string) {
		if err := os.Mkdir(filepath.Join(tmpDir, name), 0755); err != nil {
			t.Fatalf("Failed to create dir %s: %v", name, err)
		}
	}
	createFile := func(name string) {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", name, err)
		}
	}

	mkdir("rock")
	mkdir("ads")
	createFile("spot.mp3")
	createFile("notes.txt")

	dirs, err := listSubdirs(tmpDir)
	if err != nil {
		t.Fatalf("listSubdirs failed: %v", err)
	}
	if !slices.Equal(dirs, []string{"ads", "rock"}) {
		t.Errorf("listSubdirs = %v, want [ads rock]", dirs)
	}

	files, err := listFiles(tmpDir)
	if err != nil {
		t.Fatalf("listFiles failed: %v", err)
	}
	if !slices.Equal(files, []string{"notes.txt", "spot.mp3"}) {
		t.Errorf("listFiles = %v, want [notes.txt spot.mp3]", files)
	}
}

func TestCheckDir(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "jukebox-generate-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	if err := checkDir(tmpDir); err != nil {
		t.Errorf("Expected no error for an existing directory, got %v", err)
	}

	if err := checkDir(filepath.Join(tmpDir, "missing")); err == nil {
		t.Error("Expected an error for a missing directory")
	}

	file := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := checkDir(file); err == nil {
		t.Error("Expected an error for a plain file")
	}
}
