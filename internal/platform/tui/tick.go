// Package tui runs games in the terminal with Bubble Tea: the fixed-rate
// tick loop, key mapping, the menu and scoreboard screens, and the SSH
// server that serves the same flow to remote players.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation tick of the model that scheduled it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickGen hands out a generation per game model, so that a tick still in
// flight from a closed game cannot drive the next one.
var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd schedules the next tick of generation gen at tickRate per second.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
