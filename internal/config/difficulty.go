package config

import (
	"errors"
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ErrUnknownPreset is returned for a difficulty name that is not a preset.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// PresetSettings is what a preset changes: the tick clock and the lives.
// A faster clock makes every occupant move faster and shortens the intro
// measured in ticks.
type PresetSettings struct {
	TickIntervalMs int
	StartingLives  int
}

var presets = map[DifficultyPreset]PresetSettings{
	DifficultyEasy:   {TickIntervalMs: 60, StartingLives: 4},
	DifficultyNormal: {TickIntervalMs: 50, StartingLives: 3},
	DifficultyHard:   {TickIntervalMs: 40, StartingLives: 2},
}

// Presets returns the preset names from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset resolves a preset name, case-insensitively.
// An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("%w: %q (want easy, normal or hard)", ErrUnknownPreset, name)
	}
	return p, nil
}

// SettingsFor returns the settings of a preset.
func SettingsFor(preset DifficultyPreset) (PresetSettings, bool) {
	s, ok := presets[preset]
	return s, ok
}

// ApplyPacmanPreset overwrites the tick interval and starting lives with the preset's values.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) error {
	s, ok := presets[preset]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	cfg.Timing.TickIntervalMs = s.TickIntervalMs
	cfg.Gameplay.StartingLives = s.StartingLives
	return nil
}

// CustomLabel names a configuration whose timing and lives match no preset.
const CustomLabel = "custom"

// Label returns the preset whose settings the config carries, or CustomLabel.
func (c PacmanConfig) Label() string {
	for _, p := range Presets() {
		s := presets[p]
		if s.TickIntervalMs == c.Timing.TickIntervalMs && s.StartingLives == c.Gameplay.StartingLives {
			return string(p)
		}
	}
	return CustomLabel
}
