package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Start in interactive menu mode.

Pick a difficulty with the arrow keys or j/k and press Enter to play.
Tab opens the scoreboard. After a game you return to the menu.
The chosen preset replaces the config's timing and lives.

Examples:
  pacman menu
  pacman menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	exitOnError(err)
	pacman.SetOptions(gameCfg.Options(flagSeed))

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := terminalRuntime()
	if flagDifficulty != "" {
		cfg.Difficulty = gameCfg.Label()
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		rt, err := tui.RuntimeFor(cfg, gameCfg, menuResult.Preset)
		if err != nil {
			logger.Error("invalid game configuration", "preset", menuResult.Preset, "error", err)
			continue
		}
		// A fixed --seed repeats the same game every time.
		if flagSeed == 0 {
			rt.Seed = time.Now().UnixNano()
		}

		game, err := registry.Create(pacman.ID)
		if err != nil {
			logger.Error("cannot create game", "error", err)
			return
		}

		if err := tui.Run(game, store, logger, rt); err != nil {
			logger.Error("game failed", "error", err)
		}
	}
}
