// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick loop that scheduled it, so a model drops ticks
// left over from a game that has already been closed.
type TickMsg struct {
	Loop int64
	Time time.Time
}

var loopIDs atomic.Int64

// newLoopID returns a process-unique tick loop identifier.
func newLoopID() int64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(loop int64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
