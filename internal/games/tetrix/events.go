package tetrix

// Event is a change notification raised by the board while it handles a
// command or a timer tick.
type Event interface {
	boardEvent()
}

// ScoreChanged is raised whenever the score changes, and on Start.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) boardEvent() {}

// LevelChanged is raised when the level goes up, and on Start.
type LevelChanged struct {
	Level int
}

func (LevelChanged) boardEvent() {}

// LinesRemovedChanged is raised after full rows are cleared, and on Start.
type LinesRemovedChanged struct {
	Lines int
}

func (LinesRemovedChanged) boardEvent() {}
