// Package config provides YAML-based configuration for the card grid layout
// and the pacing of reveals and messages.
package config

// MatchConfig contains all configuration for the matching game.
type MatchConfig struct {
	Layout LayoutConfig `yaml:"layout"`
	Timing TimingConfig `yaml:"timing"`
}

// LayoutConfig places cards on screen. Card i of a level sits at column
// i mod Columns, row i div Columns.
type LayoutConfig struct {
	Columns    int `yaml:"columns" validate:"min=1"`
	CardWidth  int `yaml:"card_width" validate:"min=3"`
	CardHeight int `yaml:"card_height" validate:"min=3"`
	PadX       int `yaml:"pad_x" validate:"min=0"`
	PadY       int `yaml:"pad_y" validate:"min=0"`
	OriginX    int `yaml:"origin_x" validate:"min=0"`
	OriginY    int `yaml:"origin_y" validate:"min=0"`
}

// TimingConfig defines how long input stays suspended, in milliseconds.
type TimingConfig struct {
	RevealDelayMs  int `yaml:"reveal_delay_ms" validate:"min=0"`
	LevelMessageMs int `yaml:"level_message_ms" validate:"min=0"`
	FinalMessageMs int `yaml:"final_message_ms" validate:"min=0"`
}
