// Package tui provides the Bubble Tea front end for the runner. It owns
// the terminal frame loop, input mapping, the level picker, and the SSH
// session wiring.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the frame rate used when the caller does not set one.
const DefaultFPS = 60

// TickMsg carries the wall-clock time of one frame tick. The model derives
// the simulation step from the gap between consecutive ticks, so a stalled
// terminal slows the game down instead of teleporting the player.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
