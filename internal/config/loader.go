package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// LoadPacman loads Pac-Man configuration.
// Search order: customPath -> ~/.pacman/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default
//
// Fields missing from a file keep their default values. The result is not
// validated; call Validate after applying a preset.
func LoadPacman(customPath string) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()

	// A custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("pacman.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", "pacman.yaml")); ok {
		return loaded, nil
	}

	embedded := DefaultPacmanConfig()
	if err := yaml.Unmarshal(defaultPacmanYAML, &embedded); err != nil {
		return DefaultPacmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (PacmanConfig, bool) {
	cfg := DefaultPacmanConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pacman", "configs", filename)
}

// Validate rejects values the simulation cannot start with. A bad layout is
// reported with the parser's own error so callers can match it with errors.Is.
func (c PacmanConfig) Validate() error {
	if c.Timing.TickIntervalMs <= 0 {
		return fmt.Errorf("%w: tick_interval_ms must be positive, got %d", ErrInvalid, c.Timing.TickIntervalMs)
	}
	if c.Timing.IntroMs < 0 {
		return fmt.Errorf("%w: intro_ms must not be negative, got %d", ErrInvalid, c.Timing.IntroMs)
	}
	if c.Gameplay.StartingLives <= 0 {
		return fmt.Errorf("%w: starting_lives must be positive, got %d", ErrInvalid, c.Gameplay.StartingLives)
	}
	if c.Gameplay.FunnelRow < 0 || c.Gameplay.FunnelRow >= pacman.Rows {
		return fmt.Errorf("%w: funnel_row must be in 0..%d, got %d", ErrInvalid, pacman.Rows-1, c.Gameplay.FunnelRow)
	}

	layout := pacman.DefaultLayout
	if len(c.Map.Layout) > 0 {
		layout = pacman.Layout(c.Map.Layout)
	}
	if _, err := pacman.ParseLayout(layout, c.Gameplay.TileSize); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
