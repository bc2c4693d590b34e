// Package common holds the helpers shared by the jukebox subcommands:
// flag enrichment, audio file classification and duration probing.
package common

import "github.com/GiGurra/boa/pkg/boa"

// DefaultParamEnricher derives flag names and short forms for each
// subcommand's Params struct, so the structs only declare what differs
// from the derived defaults.
func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}
