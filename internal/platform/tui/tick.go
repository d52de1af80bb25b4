// Package tui provides the Bubble Tea integration for cardstorm.
// It handles the terminal UI loop, input mapping, and run orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fallbackTickRate guards against a zero or negative --fps value.
const fallbackTickRate = 60

// TickMsg is sent to trigger a simulation tick. It carries the wall-clock
// time so the model can feed real elapsed seconds into the simulation;
// the sim itself never reads a clock.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// requested rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = fallbackTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
