package cannon

// Board is the round around a Field: a limited number of shots, a hit
// counter and the game-over rule.
type Board struct {
	field *Field

	maxShots  int
	shotsLeft int
	hits      int

	listeners []func(Event)
}

// NewBoard wires a board to field and starts a new game.
func NewBoard(field *Field, shots int) *Board {
	if shots <= 0 {
		shots = 15
	}
	b := &Board{field: field, maxShots: shots}
	field.Subscribe(b.onFieldEvent)
	b.NewGame()
	return b
}

// Subscribe registers fn to receive board events and every field event.
func (b *Board) Subscribe(fn func(Event)) {
	b.listeners = append(b.listeners, fn)
}

func (b *Board) emit(e Event) {
	for _, fn := range b.listeners {
		fn(e)
	}
}

func (b *Board) onFieldEvent(e Event) {
	b.emit(e)
	switch e.(type) {
	case Hit:
		b.hit()
	case Missed:
		b.missed()
	}
}

// Fire spends a shot. It does nothing while a shot is in flight or after
// the game is over.
func (b *Board) Fire() bool {
	if b.field.GameOver() || b.field.IsShooting() {
		return false
	}
	b.shotsLeft--
	b.emit(ShotsLeftChanged{Shots: b.shotsLeft})
	return b.field.Shoot()
}

func (b *Board) hit() {
	b.hits++
	b.emit(HitsChanged{Hits: b.hits})
	if b.shotsLeft == 0 {
		b.field.SetGameOver()
	} else {
		b.field.NewTarget()
	}
}

func (b *Board) missed() {
	if b.shotsLeft == 0 {
		b.field.SetGameOver()
	}
}

// NewGame restores the shot supply, clears hits and places a new target.
func (b *Board) NewGame() {
	b.shotsLeft = b.maxShots
	b.hits = 0
	b.field.RestartGame()
	b.field.NewTarget()
	b.emit(ShotsLeftChanged{Shots: b.shotsLeft})
	b.emit(HitsChanged{Hits: b.hits})
}

func (b *Board) Field() *Field { return b.field }
func (b *Board) ShotsLeft() int { return b.shotsLeft }
func (b *Board) Hits() int { return b.hits }
func (b *Board) IsGameOver() bool { return b.field.GameOver() }
