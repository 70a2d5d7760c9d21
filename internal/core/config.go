package core

import "time"

// RuntimeConfig is passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickInterval returns the simulated duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the game status the platform reads after every tick.
type GameState struct {
	Score    int
	Level    int // 0 when the game has no levels
	Lines    int // Rows cleared; 0 for games without lines
	GameOver bool
	Paused   bool
}

// Event is a one-way notification a game raised during a tick,
// e.g. {Name: "score", Value: 31}.
type Event struct {
	Name  string
	Value int
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
