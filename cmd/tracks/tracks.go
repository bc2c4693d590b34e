package tracks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/jukebox/cmd/common"
	"github.com/gigurra/jukebox/cmd/generate/playlist"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type Params struct {
	Dir string `pos:"true" optional:"true" help:"Folder to inspect. Defaults to the current directory." default:"."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "tracks",
		Short:       "List a folder's audio files with estimated durations",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params); err != nil {
				fmt.Fprintf(os.Stderr, "tracks: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params) error {
	files, err := common.ListAudioFiles(params.Dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", params.Dir, err)
	}
	if len(files) == 0 {
		fmt.Println("No audio files found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(getTermWidth())

	t.AppendHeader(table.Row{"Name", "Format", "Duration"})

	var total time.Duration
	known := 0
	for _, f := range files {
		durationStr := "?"
		if d, ok := common.ProbeDuration(f); ok {
			durationStr = playlist.FormatHMS(d)
			total += d
			known++
		}
		format := strings.TrimPrefix(strings.ToLower(filepath.Ext(f)), ".")
		t.AppendRow(table.Row{filepath.Base(f), format, durationStr})
	}

	t.AppendFooter(table.Row{fmt.Sprintf("%d tracks", len(files)), "", playlist.FormatHMS(total)})
	t.Render()

	if known > 0 {
		avg := total / time.Duration(known)
		fmt.Printf("\nAverage track length: %.2f minutes (%d of %d measurable)\n", avg.Minutes(), known, len(files))
	} else {
		fmt.Println("\nNo track durations could be measured.")
	}

	return nil
}

func getTermWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	if width, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && width > 0 {
		return width
	}
	return 120
}
