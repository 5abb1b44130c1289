package tui

import (
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// RuntimeFor fills the timing, lives and difficulty label of rt from the game
// config. A non-empty preset overrides the config's own timing and lives.
// The combined configuration is validated before it is returned.
func RuntimeFor(rt core.RuntimeConfig, game config.PacmanConfig, preset config.DifficultyPreset) (core.RuntimeConfig, error) {
	if preset != "" {
		if err := config.ApplyPacmanPreset(&game, preset); err != nil {
			return rt, err
		}
	}
	if err := game.Validate(); err != nil {
		return rt, err
	}

	rt.TickInterval = game.TickInterval()
	rt.StartingLives = game.Gameplay.StartingLives
	rt.Difficulty = game.Label()
	return rt, nil
}
