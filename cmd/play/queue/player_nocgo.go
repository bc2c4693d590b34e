//go:build !((linux && cgo) || windows || darwin)

package queue

import (
	"time"
)

// AudioAvailable indicates whether audio playback is supported in this build.
// Audio on linux requires CGO for the native sound libraries.
const AudioAvailable = false

// player is a no-op audio player for builds without audio support.
type player struct{}

// newPlayer creates a new no-op player.
func newPlayer() *player {
	return &player{}
}

// playSong is a no-op without audio support.
func (p *player) playSong(song *Song, onDone func()) error {
	return nil
}

// pause is a no-op without audio support.
func (p *player) pause() {}

// resume is a no-op without audio support.
func (p *player) resume() {}

// stop is a no-op without audio support.
func (p *player) stop() {}

// position returns 0 without audio support.
func (p *player) position() time.Duration {
	return 0
}

// duration returns 0 without audio support.
func (p *player) duration() time.Duration {
	return 0
}
