package generate

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/GiGurra/cmder"
	"github.com/gigurra/jukebox/cmd/common"
	"github.com/gigurra/jukebox/cmd/generate/playlist"
	"github.com/gigurra/jukebox/cmd/picker"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type Params struct {
	AdEvery           int                  `short:"a" help:"Minutes between ads." default:"15"`
	MusicDirectory    boa.Required[string] `short:"m" help:"MPD music directory."`
	PlaylistDirectory boa.Required[string] `short:"p" help:"MPD playlists directory."`
	Name              string               `short:"n" help:"Playlist name, without extension." default:"jukebox"`
	Refresh           bool                 `help:"Run 'mpc update' after writing the playlist." optional:"true"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "generate",
		Short:       "Build a shuffled playlist with ads at a fixed time cadence",
		Long:        "Interactively pick an ad track and a music folder, then write a shuffled .m3u playlist with the ad inserted approximately every --ad-every minutes of music.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params); err != nil {
				fmt.Fprintf(os.Stderr, "generate: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

// selectorFunc presents items under a title and returns the confirmed
// index, or ok=false when the operator backs out.
type selectorFunc func(title string, items []string) (int, bool, error)

type runOpts struct {
	adEvery     int
	musicDir    string
	playlistDir string
	name        string
	refresh     bool
	selectFrom  selectorFunc
}

func Run(params *Params) error {
	return run(runOpts{
		adEvery:     params.AdEvery,
		musicDir:    params.MusicDirectory.Value(),
		playlistDir: params.PlaylistDirectory.Value(),
		name:        params.Name,
		refresh:     params.Refresh,
		selectFrom:  picker.Run,
	})
}

func run(opts runOpts) error {
	musicDir := opts.musicDir
	playlistDir := opts.playlistDir

	if opts.adEvery < 0 {
		return fmt.Errorf("minutes between ads must not be negative")
	}
	if err := checkDir(musicDir); err != nil {
		return fmt.Errorf("music directory: %w", err)
	}
	if err := checkDir(playlistDir); err != nil {
		return fmt.Errorf("playlists directory: %w", err)
	}

	folders, err := listSubdirs(musicDir)
	if err != nil {
		return fmt.Errorf("failed to list music directory: %w", err)
	}

	adsFolder, ok, err := choose(opts.selectFrom, "Select the ads folder", musicDir, folders)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("an ads folder must be chosen")
	}

	adFiles, err := listFiles(adsFolder)
	if err != nil {
		return fmt.Errorf("failed to list ads folder: %w", err)
	}

	adFile, ok, err := choose(opts.selectFrom, "Select the ad file", adsFolder, adFiles)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("an ad file must be chosen")
	}

	musicFolder, ok, err := choose(opts.selectFrom, "Select the music folder", musicDir, folders)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("a music folder must be chosen")
	}

	tracks, err := common.ListAudioFiles(musicFolder)
	if err != nil {
		return fmt.Errorf("failed to list music folder: %w", err)
	}
	if len(tracks) == 0 {
		fmt.Println("No audio files found.")
		return nil
	}

	avg := playlist.AverageDuration(tracks, common.ProbeDuration)
	cadence := playlist.SongsBetweenAds(opts.adEvery, avg)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	entries := playlist.Assemble(tracks, adFile, cadence, rng)

	if cadence == 0 {
		fmt.Println("Could not determine the average song duration. No ads will be inserted.")
	} else {
		total := playlist.TotalDuration(entries, common.ProbeDuration)
		fmt.Printf("Estimated total playlist duration: %s (HH:MM:SS).\n", playlist.FormatHMS(total))
		fmt.Printf("Ads will be inserted approximately every %d songs (avg song length %.2f minutes).\n", cadence, avg.Minutes())
	}

	outPath := filepath.Join(playlistDir, opts.name+".m3u")
	if err := playlist.WriteM3U(outPath, entries); err != nil {
		return fmt.Errorf("failed to write playlist: %w", err)
	}
	fmt.Printf("Wrote %s (%d entries).\n", outPath, len(entries))

	if opts.refresh {
		return refreshMpd()
	}
	return nil
}

// choose shows names as a list and resolves the confirmed pick back to its
// full path by index into the same listing, so duplicate display names can
// never resolve to the wrong entry.
func choose(selectFrom selectorFunc, title, dir string, names []string) (string, bool, error) {
	idx, ok, err := selectFrom(title, names)
	if err != nil {
		return "", false, fmt.Errorf("selection failed: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return filepath.Join(dir, names[idx]), true, nil
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func listSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	dirs := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return e.IsDir()
	})
	return lo.Map(dirs, func(e os.DirEntry, _ int) string {
		return e.Name()
	}), nil
}

func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return !e.IsDir()
	})
	return lo.Map(files, func(e os.DirEntry, _ int) string {
		return e.Name()
	}), nil
}

// refreshMpd asks a running MPD to rescan its database via mpc, so the new
// playlist shows up without waiting for the next scheduled update.
func refreshMpd() error {
	if err := checkMpc(); err != nil {
		return err
	}

	result := cmder.New("mpc", "update").
		WithAttemptTimeout(30 * time.Second).
		Run(context.Background())
	if result.Err != nil {
		if result.Combined != "" {
			return fmt.Errorf("mpc update failed: %w\n%s", result.Err, result.Combined)
		}
		return fmt.Errorf("mpc update failed: %w", result.Err)
	}
	return nil
}

func checkMpc() error {
	result := cmder.New("mpc", "version").
		WithAttemptTimeout(5 * time.Second).
		Run(context.Background())
	if result.Err != nil {
		if result.Combined != "" {
			return fmt.Errorf("mpc not found or not working: %w\n%s", result.Err, result.Combined)
		}
		return fmt.Errorf("mpc not found or not working: %w", result.Err)
	}
	return nil
}
