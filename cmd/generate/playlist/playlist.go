package playlist

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/samber/lo"
)

// Prober estimates the playback duration of an audio file.
// The boolean is false when the duration is unknown.
type Prober func(path string) (time.Duration, bool)

// AverageDuration returns the mean duration over all tracks the prober
// could measure. Tracks with unknown durations are excluded from the mean.
// Returns 0 when no track could be measured, which downstream code treats
// as "estimation impossible" (no ads are inserted in that mode).
func AverageDuration(tracks []string, probe Prober) time.Duration {
	var sum time.Duration
	var n int
	for _, t := range tracks {
		if d, ok := probe(t); ok {
			sum += d
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / time.Duration(n)
}

// SongsBetweenAds converts a target minutes-between-ads value and an
// average track duration into the number of songs between ad insertions.
// Returns 0 when avg is 0 (unknown), meaning no ads at all; otherwise at
// least 1, using round-half-away-from-zero.
func SongsBetweenAds(adEveryMinutes int, avg time.Duration) int {
	if avg <= 0 {
		return 0
	}
	n := int(math.Round(float64(adEveryMinutes) * 60 / avg.Seconds()))
	return max(n, 1)
}

// Assemble shuffles tracks uniformly with rng and appends ad after every
// full run of cadence tracks. A trailing run shorter than cadence gets no
// ad: ads only punctuate complete cadence windows. An empty ad or a
// cadence of 0 disables insertion, leaving just the shuffled tracks.
func Assemble(tracks []string, ad string, cadence int, rng *rand.Rand) []string {
	shuffled := make([]string, len(tracks))
	copy(shuffled, tracks)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if ad == "" || cadence <= 0 {
		return shuffled
	}

	out := make([]string, 0, len(shuffled)+len(shuffled)/cadence)
	for i := 0; i < len(shuffled); i += cadence {
		end := min(i+cadence, len(shuffled))
		out = append(out, shuffled[i:end]...)
		if end-i == cadence {
			out = append(out, ad)
		}
	}
	return out
}

// TotalDuration sums the durations over all playlist entries, counting
// entries with unknown durations as zero. Best effort by design, unlike
// AverageDuration which must exclude unknowns to keep the mean honest.
func TotalDuration(entries []string, probe Prober) time.Duration {
	return lo.SumBy(entries, func(p string) time.Duration {
		d, _ := probe(p)
		return d
	})
}

// FormatHMS renders a duration as HH:MM:SS, truncating each component.
func FormatHMS(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s%3600/60, s%60)
}
