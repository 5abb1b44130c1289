package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default Pac-Man configuration.
// It matches the normal preset.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Timing: PacmanTiming{
			TickIntervalMs: 50,
			IntroMs:        1200,
		},
		Gameplay: PacmanGameplay{
			StartingLives: 3,
			TileSize:      32,
			FunnelRow:     9,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPacmanYAML
}
