package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game",
	Long: `Start a game straight away.

Controls:
  Arrows/WASD/HJKL  - Steer
  Any key           - Restart (after game over)
  Esc/B             - Leave (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Without --difficulty the config file's timing and lives are used as is.

Examples:
  pacman play
  pacman play --difficulty easy
  pacman play --tick-ms 80 --lives 5
  pacman play --seed 42
  pacman play --config ./my-pacman.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	exitOnError(err)

	rt, err := tui.RuntimeFor(terminalRuntime(), gameCfg, "")
	exitOnError(err)
	pacman.SetOptions(gameCfg.Options(rt.Seed))

	game, err := registry.Create(pacman.ID)
	exitOnError(err)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, logger, rt)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	exitOnError(runErr)
}
