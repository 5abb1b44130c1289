// Package tui provides the Bubble Tea integration for the pacman platform.
// It owns the periodic tick, maps keys to game actions and serves sessions over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after the interval.
// The next tick is only scheduled once this one has been handled, so ticks never overlap.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
