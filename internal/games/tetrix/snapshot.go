package tetrix

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	State         string
	Paused        bool
	Score         int
	Level         int
	Lines         int
	PiecesDropped int
	Current       Shape
	AnchorX       int
	AnchorY       int
	Next          Shape
	Grid          [BoardHeight][BoardWidth]Shape
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	b := g.board
	x, y := b.Anchor()
	return Snapshot{
		Tick:          g.tick,
		State:         b.State().String(),
		Paused:        b.IsPaused(),
		Score:         b.Score(),
		Level:         b.Level(),
		Lines:         b.LinesRemoved(),
		PiecesDropped: b.PiecesDropped(),
		Current:       b.Current().Shape(),
		AnchorX:       x,
		AnchorY:       y,
		Next:          b.Next().Shape(),
		Grid:          b.grid,
	}
}
