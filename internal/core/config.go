package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW       int           // Screen width in characters
	ScreenH       int           // Screen height in characters
	TickInterval  time.Duration // Time between simulation ticks
	StartingLives int           // Lives at the start of a game
	Seed          int64         // RNG seed for deterministic gameplay
	Difficulty    string        // Preset name, stored with scores
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickInterval:  50 * time.Millisecond,
		StartingLives: 3,
		Seed:          0, // 0 means use current time in platform layer
		Difficulty:    "normal",
	}
}

// TickIntervalMs returns the tick interval in whole milliseconds, at least 1.
func (c RuntimeConfig) TickIntervalMs() int {
	return max(1, int(c.TickInterval/time.Millisecond))
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives
	Level    int    // Current level, 1-indexed
	Phase    string // Round phase name for display
	GameOver bool   // Whether the game has ended
	Quit     bool   // Whether the game accepted a quit request
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
