// pacman plays a tile-grid Pac-Man in the terminal.
//
// Usage:
//
//	pacman play              - Play one game
//	pacman menu              - Pick a difficulty interactively, then play
//	pacman serve             - Start SSH server for remote play
//	pacman scores            - Show high scores
//	pacman difficulties      - List difficulty presets
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible adversary movement
//	--db <path>          - Set database path (default: ~/.pacman/scores.db)
//	--config <path>      - Load game config from a YAML file
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTickMs     int
	flagLives      int
	flagVerbose    bool
)

// logger reports non-fatal problems such as an unavailable scores database.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pacman"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `A tile-grid Pac-Man: clear every pellet, avoid the four adversaries.

Available commands:
  play          - Play one game
  menu          - Difficulty picker, scoreboard and play loop
  serve         - Start SSH server for remote play
  scores        - View high scores
  difficulties  - List difficulty presets

Examples:
  pacman play
  pacman play --difficulty hard
  pacman menu
  pacman serve --ssh :2222
  pacman scores --difficulty easy`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pacman/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagTickMs, "tick-ms", 0, "Override tick interval in milliseconds")
	rootCmd.PersistentFlags().IntVar(&flagLives, "lives", 0, "Override starting lives")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
}

// loadGameConfig loads the config file and applies --difficulty, --tick-ms
// and --lives on top, in that order. The result is validated.
func loadGameConfig() (config.PacmanConfig, error) {
	cfg, err := config.LoadPacman(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		if err := config.ApplyPacmanPreset(&cfg, preset); err != nil {
			return cfg, err
		}
	}
	if flagTickMs != 0 {
		cfg.Timing.TickIntervalMs = flagTickMs
	}
	if flagLives != 0 {
		cfg.Gameplay.StartingLives = flagLives
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logger.Debug("config loaded",
		"tick_ms", cfg.Timing.TickIntervalMs,
		"lives", cfg.Gameplay.StartingLives,
		"difficulty", cfg.Label(),
	)
	return cfg, nil
}

// terminalRuntime returns a runtime config sized to the current terminal.
func terminalRuntime() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed
	return rt
}

// exitOnError prints err and exits with status 1.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
