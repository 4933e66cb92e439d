package config

import (
	_ "embed"
)

//go:embed defaults/wordmatch.yaml
var defaultMatchYAML []byte

// DefaultMatchConfig returns the built-in configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Layout: LayoutConfig{
			Columns:    4,
			CardWidth:  14,
			CardHeight: 3,
			PadX:       2,
			PadY:       1,
			OriginX:    2,
			OriginY:    2,
		},
		Timing: TimingConfig{
			RevealDelayMs:  500,
			LevelMessageMs: 1500,
			FinalMessageMs: 2500,
		},
	}
}
