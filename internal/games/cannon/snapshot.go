package cannon

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Angle      int
	Force      int
	ShotsLeft  int
	Hits       int
	Shooting   bool
	TimerCount int
	TargetX    int
	TargetY    int
	GameOver   bool
	Paused     bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	f := g.board.Field()
	tx, ty := f.Target()
	return Snapshot{
		Tick:       g.tick,
		Angle:      f.Angle(),
		Force:      f.Force(),
		ShotsLeft:  g.board.ShotsLeft(),
		Hits:       g.board.Hits(),
		Shooting:   f.IsShooting(),
		TimerCount: f.TimerCount(),
		TargetX:    tx,
		TargetY:    ty,
		GameOver:   g.board.IsGameOver(),
		Paused:     g.paused,
	}
}
