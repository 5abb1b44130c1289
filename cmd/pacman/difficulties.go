package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:     "difficulties",
	Aliases: []string{"presets"},
	Short:   "List difficulty presets",
	Long:    `Shows the tick interval and starting lives of every difficulty preset.`,
	Args:    cobra.NoArgs,
	Run:     runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	fmt.Println("Difficulty presets:")
	fmt.Println()

	fmt.Printf("  %-8s  %-8s  %s\n", "Name", "Tick", "Lives")
	fmt.Printf("  %-8s  %-8s  %s\n", "----", "----", "-----")

	for _, p := range config.Presets() {
		s, _ := config.SettingsFor(p)
		fmt.Printf("  %-8s  %-8s  %d\n", p, fmt.Sprintf("%dms", s.TickIntervalMs), s.StartingLives)
	}

	fmt.Println()
	fmt.Println("Run 'pacman play --difficulty <name>' to play one.")
}
