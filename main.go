package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/jukebox/cmd/generate"
	"github.com/gigurra/jukebox/cmd/play"
	"github.com/gigurra/jukebox/cmd/tracks"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "jukebox",
		Short:   "Generate shuffled MPD playlists with scheduled ad breaks",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			generate.Cmd(),
			tracks.Cmd(),
			play.Cmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
