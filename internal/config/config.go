// Package config provides YAML-based game configuration loading and
// difficulty presets for the pacman platform.
package config

import (
	"time"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

// PacmanConfig contains all configuration for the Pac-Man game.
type PacmanConfig struct {
	Timing   PacmanTiming   `yaml:"timing"`
	Gameplay PacmanGameplay `yaml:"gameplay"`
	Map      PacmanMap      `yaml:"map"`
}

// PacmanTiming defines the tick clock and the intro countdown.
type PacmanTiming struct {
	TickIntervalMs int `yaml:"tick_interval_ms"`
	IntroMs        int `yaml:"intro_ms"`
}

// PacmanGameplay defines lives and board geometry.
type PacmanGameplay struct {
	StartingLives int `yaml:"starting_lives"`
	TileSize      int `yaml:"tile_size"`
	FunnelRow     int `yaml:"funnel_row"` // Row where adversaries leaving the pen are sent up
}

// PacmanMap optionally overrides the built-in maze.
// An empty layout keeps the default one.
type PacmanMap struct {
	Layout []string `yaml:"layout"`
}

// TickInterval returns the tick interval as a duration.
func (c PacmanConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMs) * time.Millisecond
}

// Options converts the config into round construction parameters.
// The seed is supplied by the caller.
func (c PacmanConfig) Options(seed int64) pacman.Options {
	opts := pacman.Options{
		TileSize:      c.Gameplay.TileSize,
		FunnelRow:     c.Gameplay.FunnelRow,
		TickInterval:  c.TickInterval(),
		IntroDuration: time.Duration(c.Timing.IntroMs) * time.Millisecond,
		StartingLives: c.Gameplay.StartingLives,
		Seed:          seed,
	}
	if len(c.Map.Layout) > 0 {
		opts.Layout = pacman.Layout(c.Map.Layout)
	}
	return opts
}
