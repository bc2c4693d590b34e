//go:build (linux && cgo) || windows || darwin

package queue

import (
	"bytes"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// AudioAvailable indicates whether audio playback is supported in this build.
const AudioAvailable = true

// player handles the actual audio output using beep.
type player struct {
	mu sync.Mutex

	initialized bool
	sampleRate  beep.SampleRate
	ctrl        *beep.Ctrl
	streamer    beep.StreamSeekCloser
	format      beep.Format
	resampled   beep.Streamer
}

// newPlayer creates a new audio player.
func newPlayer() *player {
	return &player{
		sampleRate: beep.SampleRate(44100),
	}
}

// decodeSong decodes a song's in-memory data based on its file extension.
func decodeSong(song *Song) (beep.StreamSeekCloser, beep.Format, error) {
	r := nopCloser{bytes.NewReader(song.Data)}
	switch strings.ToLower(filepath.Ext(song.Path)) {
	case ".mp3":
		return mp3.Decode(r)
	case ".wav":
		return wav.Decode(r)
	case ".flac":
		return flac.Decode(r)
	case ".ogg":
		return vorbis.Decode(r)
	}
	return nil, beep.Format{}, ErrUnsupportedFormat
}

// playSong starts playing a song from its in-memory data.
func (p *player) playSong(song *Song, onDone func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Stop any current playback
	p.stopLocked()

	streamer, format, err := decodeSong(song)
	if err != nil {
		return err
	}

	p.streamer = streamer
	p.format = format

	if !p.initialized {
		err = speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/10))
		if err != nil {
			_ = streamer.Close()
			return err
		}
		p.initialized = true
	}

	// Resample if needed to match the speaker sample rate
	p.resampled = beep.Resample(4, format.SampleRate, p.sampleRate, streamer)

	// Create control for pause/resume
	p.ctrl = &beep.Ctrl{Streamer: p.resampled, Paused: false}

	// The callback fires on the speaker goroutine without p.mu held, so it
	// captures onDone as a value instead of reading it back off the player.
	// Stale invocations are filtered by the queue's playback id.
	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		// Run the callback in a separate goroutine to avoid deadlock
		// when the callback starts the next song
		go onDone()
	})))

	return nil
}

// pause pauses playback.
func (p *player) pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = true
		speaker.Unlock()
	}
}

// resume resumes playback.
func (p *player) resume() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
	}
}

// stop stops playback completely.
func (p *player) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// stopLocked stops playback (must be called with lock held).
func (p *player) stopLocked() {
	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = true
		speaker.Unlock()
	}
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.resampled = nil
}

// position returns the current playback position.
func (p *player) position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}

	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()

	return p.format.SampleRate.D(pos)
}

// duration returns the total duration of the current song.
func (p *player) duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}

	return p.format.SampleRate.D(p.streamer.Len())
}

// nopCloser wraps a bytes.Reader to implement io.ReadCloser.
type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }
