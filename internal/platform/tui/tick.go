// Package tui provides the Bubble Tea integration for the arcade: the game
// loop, input mapping, menus, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends tick messages at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate < 1 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
