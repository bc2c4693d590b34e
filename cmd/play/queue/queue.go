package queue

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	ErrQueueEmpty        = errors.New("queue is empty")
	ErrAlreadyPlaying    = errors.New("already playing")
	ErrNotPlaying        = errors.New("not currently playing")
	ErrUnsupportedFormat = errors.New("unsupported format: cannot decode for playback")
)

// decodableExtensions are the containers the in-process decoders handle.
// This is a subset of the extensions accepted into playlists.
var decodableExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
}

// Queue plays a fixed, ordered list of songs from start to finish.
// Unlike a library player it never reorders or loops: the playlist on disk
// already encodes the intended order, ad breaks included.
type Queue struct {
	mu sync.RWMutex

	songs []*Song
	index int // Current position (-1 before playback starts)

	state      PlaybackState
	playbackID uint64 // Incremented on each new song, used to ignore stale callbacks

	player   *player
	done     chan struct{}
	finished bool
}

// New creates an empty playback queue.
func New() *Queue {
	return &Queue{
		index:  -1,
		state:  StateStopped,
		player: newPlayer(),
		done:   make(chan struct{}),
	}
}

// Load reads an audio file into memory and appends it to the queue.
func (q *Queue) Load(path string) (*Song, error) {
	if !decodableExtensions[strings.ToLower(filepath.Ext(path))] {
		return nil, ErrUnsupportedFormat
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	song := &Song{
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path: path,
		Data: data,
	}

	q.mu.Lock()
	q.songs = append(q.songs, song)
	q.mu.Unlock()

	return song, nil
}

// Count returns the number of loaded songs.
func (q *Queue) Count() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.songs)
}

// Current returns the song at the playback position, or nil.
func (q *Queue) Current() *Song {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.index >= 0 && q.index < len(q.songs) {
		return q.songs[q.index]
	}
	return nil
}

// Index returns the current playback position (-1 before playback starts).
func (q *Queue) Index() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.index
}

// Done is closed once playback has run past the last song.
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

// Play starts playback from the beginning, or resumes when paused.
func (q *Queue) Play() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.songs) == 0 {
		return ErrQueueEmpty
	}

	if q.state == StatePaused {
		q.player.resume()
		q.state = StatePlaying
		return nil
	}

	if q.state == StatePlaying {
		return ErrAlreadyPlaying
	}

	if q.index < 0 {
		q.index = 0
	}
	return q.playCurrentLocked()
}

// playCurrentLocked starts the song at the current index.
// Must be called with the lock held.
func (q *Queue) playCurrentLocked() error {
	song := q.songs[q.index]
	q.playbackID++
	currentID := q.playbackID
	err := q.player.playSong(song, func() { q.onSongFinished(currentID) })
	if err != nil {
		q.state = StateStopped
		return err
	}
	q.state = StatePlaying
	return nil
}

// onSongFinished advances past a naturally finished song. The id parameter
// filters out stale callbacks from songs replaced by Next/Previous.
func (q *Queue) onSongFinished(id uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if id != q.playbackID {
		return
	}

	q.index++
	for q.index < len(q.songs) {
		if err := q.playCurrentLocked(); err == nil {
			return
		}
		// Undecodable mid-run, move on to the next entry
		q.index++
	}

	q.state = StateStopped
	q.finishLocked()
}

// Pause pauses playback.
func (q *Queue) Pause() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != StatePlaying {
		return ErrNotPlaying
	}

	q.player.pause()
	q.state = StatePaused
	return nil
}

// Stop halts playback without marking the queue finished.
func (q *Queue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.player.stop()
	q.state = StateStopped
}

// Next skips to the next song. Skipping past the last song ends the queue.
func (q *Queue) Next() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.songs) == 0 {
		return ErrQueueEmpty
	}

	if q.index+1 >= len(q.songs) {
		q.player.stop()
		q.state = StateStopped
		q.finishLocked()
		return nil
	}

	q.index++
	if q.state == StatePlaying || q.state == StatePaused {
		return q.playCurrentLocked()
	}
	return nil
}

// Previous restarts from the preceding song (clamped at the first).
func (q *Queue) Previous() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.songs) == 0 {
		return ErrQueueEmpty
	}

	if q.index > 0 {
		q.index--
	}
	if q.state == StatePlaying || q.state == StatePaused {
		return q.playCurrentLocked()
	}
	return nil
}

// Position returns the playback position within the current song.
func (q *Queue) Position() time.Duration {
	return q.player.position()
}

// Duration returns the duration of the current song.
func (q *Queue) Duration() time.Duration {
	return q.player.duration()
}

// IsPlaying returns true if a song is currently playing.
func (q *Queue) IsPlaying() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.state == StatePlaying
}

// IsPaused returns true if playback is paused.
func (q *Queue) IsPaused() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.state == StatePaused
}

// finishLocked marks the queue as done. Must be called with the lock held.
func (q *Queue) finishLocked() {
	if !q.finished {
		q.finished = true
		close(q.done)
	}
}
