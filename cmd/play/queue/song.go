package queue

// Song is one playlist entry loaded into memory for playback.
type Song struct {
	Name string // Display name (filename without extension)
	Path string // Original file path, also decides the decoder
	Data []byte // Raw encoded audio data
}

// PlaybackState represents the current state of playback.
type PlaybackState string

const (
	StateStopped PlaybackState = "stopped"
	StatePlaying PlaybackState = "playing"
	StatePaused  PlaybackState = "paused"
)
