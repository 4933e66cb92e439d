package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for the card shuffle, 0 means time based
}

// DefaultTickRate matches the frame clock of the matching game.
const DefaultTickRate = 30

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// TicksFor converts a duration in milliseconds to a whole number of ticks at
// the configured rate. Any positive duration lasts at least one tick.
func (c RuntimeConfig) TicksFor(ms int) int {
	if ms <= 0 {
		return 0
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	ticks := ms * rate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// GameState is the status the game reports to the platform after each tick.
type GameState struct {
	GameOver bool // The session ended, either by completion or quit
	Quit     bool // The player asked to quit
	Busy     bool // Input is suspended (reveal delay or message on screen)
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
