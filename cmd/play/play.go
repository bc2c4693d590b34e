package play

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/jukebox/cmd/common"
	"github.com/gigurra/jukebox/cmd/generate/playlist"
	"github.com/gigurra/jukebox/cmd/play/queue"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type Params struct {
	Playlist       string               `pos:"true" help:"Playlist file (.m3u) to play."`
	MusicDirectory boa.Required[string] `short:"m" help:"Music library root that playlist entries are relative to."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "play",
		Short: "Play a generated playlist through the speakers",
		Long: `Play the entries of an .m3u playlist in order.

Controls:
  SPACE - Pause/resume
  n     - Next song
  p     - Previous song
  q     - Quit`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params); err != nil {
				fmt.Fprintf(os.Stderr, "play: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params) error {
	if !queue.AudioAvailable {
		return fmt.Errorf("audio playback is not available in this build")
	}

	entries, err := parseM3U(params.Playlist)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("playlist %s has no entries", params.Playlist)
	}

	musicDir := params.MusicDirectory.Value()

	q := queue.New()
	for _, entry := range entries {
		path := entry
		if !filepath.IsAbs(path) {
			path = filepath.Join(musicDir, filepath.FromSlash(entry))
		}
		if _, err := q.Load(path); err != nil {
			slog.Warn("skipping playlist entry", "entry", entry, "error", err)
		}
	}
	if q.Count() == 0 {
		return fmt.Errorf("no playable entries in %s", params.Playlist)
	}

	return runPlayback(q)
}

// parseM3U reads playlist entries, skipping blank lines and # comments.
func parseM3U(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read playlist: %w", err)
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}

func runPlayback(q *queue.Queue) error {
	// Raw mode so single key presses arrive without enter
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer func() { _ = term.Restore(int(os.Stdin.Fd()), oldState) }()

	inputChan := make(chan byte, 10)
	go readInput(inputChan)

	if err := q.Play(); err != nil {
		return err
	}

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	lastIndex := -1
	for {
		select {
		case key := <-inputChan:
			switch key {
			case 'q':
				q.Stop()
				fmt.Print("\r\n")
				return nil
			case 'n':
				_ = q.Next()
			case 'p':
				_ = q.Previous()
			case ' ':
				if q.IsPaused() {
					_ = q.Play()
				} else if q.IsPlaying() {
					_ = q.Pause()
				}
			}
		case <-q.Done():
			fmt.Print("Playlist finished.\r\n")
			return nil
		case <-ticker.C:
			if idx := q.Index(); idx != lastIndex {
				if song := q.Current(); song != nil {
					lastIndex = idx
					fmt.Printf("Playing [%d/%d] %s (%s)\r\n",
						idx+1, q.Count(), song.Name, playlist.FormatHMS(q.Duration()))
				}
			}
		}
	}
}

func readInput(ch chan<- byte) {
	reader := bufio.NewReader(os.Stdin)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return
		}
		ch <- b
	}
}
