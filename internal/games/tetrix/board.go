// Package tetrix implements the Tetrix game: a board state machine with
// the classic falling-block rules, and the arcade adapter that drives it
// from the platform's fixed tick loop.
package tetrix

import (
	"fmt"
	"math/rand"
	"time"
)

// Board dimensions in cells.
const (
	BoardWidth  = 10
	BoardHeight = 22
)

// State is the primary state of a board. Pause is a separate flag.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateLineClearPause
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateLineClearPause:
		return "line_clear_pause"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Rules holds the tunable constants of a game.
type Rules struct {
	StartLevel     int           // Level set by Start
	PiecesPerLevel int           // Pieces dropped per level up; 0 disables leveling
	DropBonus      int           // Flat points added to every drop
	LinePoints     int           // Points per cleared row
	BaseInterval   time.Duration // Fall interval is BaseInterval / (1 + level)
	LineClearPause time.Duration // Delay between clearing rows and the next spawn
}

// DefaultRules returns the standard scoring and timing.
func DefaultRules() Rules {
	return Rules{
		StartLevel:     1,
		PiecesPerLevel: 25,
		DropBonus:      7,
		LinePoints:     10,
		BaseInterval:   1000 * time.Millisecond,
		LineClearPause: 500 * time.Millisecond,
	}
}

// Board owns the grid, the falling piece and the session counters.
//
// Rows are numbered from the floor: y == 0 is the bottom row and
// y == BoardHeight-1 the top. Block i of the current piece sits at
// (curX + X(i), curY - Y(i)).
//
// A Board is not safe for concurrent use; the host loop serializes all
// commands and ticks.
type Board struct {
	grid [BoardHeight][BoardWidth]Shape

	cur  Piece
	next Piece
	curX int
	curY int

	score         int
	level         int
	linesRemoved  int
	piecesDropped int

	started          bool
	paused           bool
	waitingAfterLine bool
	gameOver         bool

	revision uint64

	rules     Rules
	rng       *rand.Rand
	timer     Timer
	listeners []func(Event)
}

// NewBoard creates an idle board. timer may be nil when the caller drives
// Tick directly.
func NewBoard(rng *rand.Rand, timer Timer, rules Rules) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if rules.BaseInterval <= 0 {
		rules.BaseInterval = DefaultRules().BaseInterval
	}
	if rules.StartLevel < 0 {
		rules.StartLevel = 0
	}

	b := &Board{
		rules: rules,
		rng:   rng,
		timer: timer,
		cur:   NewPiece(NoShape),
	}
	b.next = RandomPiece(rng)
	return b
}

// Subscribe registers fn to receive every event the board raises.
func (b *Board) Subscribe(fn func(Event)) {
	b.listeners = append(b.listeners, fn)
}

func (b *Board) emit(e Event) {
	for _, fn := range b.listeners {
		fn(e)
	}
}

func (b *Board) startTimer(d time.Duration) {
	if b.timer != nil {
		b.timer.Start(d)
	}
}

func (b *Board) stopTimer() {
	if b.timer != nil {
		b.timer.Stop()
	}
}

func (b *Board) touch() {
	b.revision++
}

// Start begins a new session, discarding the previous one.
// It does nothing while paused.
func (b *Board) Start() {
	if b.paused {
		return
	}

	b.started = true
	b.gameOver = false
	b.waitingAfterLine = false
	b.linesRemoved = 0
	b.piecesDropped = 0
	b.score = 0
	b.level = b.rules.StartLevel
	b.clearGrid()

	b.emit(LinesRemovedChanged{Lines: b.linesRemoved})
	b.emit(ScoreChanged{Score: b.score})
	b.emit(LevelChanged{Level: b.level})

	if b.newPiece() {
		b.startTimer(b.TimeoutTime())
	}
}

// Pause toggles the pause flag of a started session.
func (b *Board) Pause() {
	if !b.started {
		return
	}

	b.paused = !b.paused
	switch {
	case b.paused:
		b.stopTimer()
	case b.waitingAfterLine:
		b.startTimer(b.rules.LineClearPause)
	default:
		b.startTimer(b.TimeoutTime())
	}
	b.touch()
}

// Tick handles one timer expiry: gravity while running, or the spawn of
// the next piece after a line clear.
func (b *Board) Tick() {
	if !b.started || b.paused {
		return
	}

	if b.waitingAfterLine {
		b.waitingAfterLine = false
		if b.newPiece() {
			b.startTimer(b.TimeoutTime())
		}
		return
	}
	b.oneLineDown()
}

// TimeoutTime returns the fall interval for the current level.
func (b *Board) TimeoutTime() time.Duration {
	return b.rules.BaseInterval / time.Duration(1+b.level)
}

func (b *Board) controllable() bool {
	return b.started && !b.paused && b.cur.Shape() != NoShape
}

// MoveLeft shifts the current piece one column left.
func (b *Board) MoveLeft() bool {
	return b.controllable() && b.TryMove(b.cur, b.curX-1, b.curY)
}

// MoveRight shifts the current piece one column right.
func (b *Board) MoveRight() bool {
	return b.controllable() && b.TryMove(b.cur, b.curX+1, b.curY)
}

// RotateLeft turns the current piece counter-clockwise in place.
// A rotation that would collide is rejected and the piece is kept.
func (b *Board) RotateLeft() bool {
	return b.controllable() && b.TryMove(b.cur.RotatedLeft(), b.curX, b.curY)
}

// RotateRight turns the current piece clockwise in place.
func (b *Board) RotateRight() bool {
	return b.controllable() && b.TryMove(b.cur.RotatedRight(), b.curX, b.curY)
}

// SoftDrop moves the current piece down one row. When it cannot move the
// piece lands with no drop bonus beyond the flat one. It reports whether
// the piece moved.
func (b *Board) SoftDrop() bool {
	if !b.controllable() {
		return false
	}
	return b.oneLineDown()
}

// HardDrop moves the current piece down as far as it goes and lands it.
// It returns the number of rows fallen.
func (b *Board) HardDrop() int {
	if !b.controllable() {
		return 0
	}

	dropHeight := 0
	for b.TryMove(b.cur, b.curX, b.curY-1) {
		dropHeight++
	}
	b.pieceDropped(dropHeight)
	return dropHeight
}

func (b *Board) oneLineDown() bool {
	if b.TryMove(b.cur, b.curX, b.curY-1) {
		return true
	}
	b.pieceDropped(0)
	return false
}

// TryMove places piece at anchor (x, y) if all four blocks are inside the
// board and on empty cells. On failure nothing changes. Every movement and
// rotation goes through here.
func (b *Board) TryMove(piece Piece, x, y int) bool {
	for i := 0; i < 4; i++ {
		cx := x + piece.X(i)
		cy := y - piece.Y(i)
		if cx < 0 || cx >= BoardWidth || cy < 0 || cy >= BoardHeight {
			return false
		}
		if b.grid[cy][cx] != NoShape {
			return false
		}
	}

	b.cur = piece
	b.curX = x
	b.curY = y
	b.touch()
	return true
}

func (b *Board) pieceDropped(dropHeight int) {
	for i := 0; i < 4; i++ {
		b.grid[b.curY-b.cur.Y(i)][b.curX+b.cur.X(i)] = b.cur.Shape()
	}

	b.piecesDropped++
	if n := b.rules.PiecesPerLevel; n > 0 && b.piecesDropped%n == 0 {
		b.level++
		b.startTimer(b.TimeoutTime())
		b.emit(LevelChanged{Level: b.level})
	}

	b.score += dropHeight + b.rules.DropBonus
	b.emit(ScoreChanged{Score: b.score})
	b.touch()

	b.removeFullLines()

	if !b.waitingAfterLine {
		b.newPiece()
	}
}

// removeFullLines scans from the top row down and removes each full row
// as soon as it is found, so rows above it fall by one before the scan
// continues with the row now below.
func (b *Board) removeFullLines() {
	numFullLines := 0

	for y := BoardHeight - 1; y >= 0; y-- {
		if !b.lineIsFull(y) {
			continue
		}
		numFullLines++
		for k := y; k < BoardHeight-1; k++ {
			b.grid[k] = b.grid[k+1]
		}
		b.grid[BoardHeight-1] = [BoardWidth]Shape{}
	}

	if numFullLines == 0 {
		return
	}

	b.linesRemoved += numFullLines
	b.score += b.rules.LinePoints * numFullLines
	b.emit(LinesRemovedChanged{Lines: b.linesRemoved})
	b.emit(ScoreChanged{Score: b.score})

	b.startTimer(b.rules.LineClearPause)
	b.waitingAfterLine = true
	b.cur = NewPiece(NoShape)
	b.touch()
}

func (b *Board) lineIsFull(y int) bool {
	for x := 0; x < BoardWidth; x++ {
		if b.grid[y][x] == NoShape {
			return false
		}
	}
	return true
}

// newPiece promotes the next piece and spawns it centered at the top.
// If it does not fit the game is over.
func (b *Board) newPiece() bool {
	b.cur = b.next
	b.next = RandomPiece(b.rng)
	b.curX = BoardWidth/2 + 1
	b.curY = BoardHeight - 1 + b.cur.MinY()

	if b.TryMove(b.cur, b.curX, b.curY) {
		return true
	}

	b.cur = NewPiece(NoShape)
	b.stopTimer()
	b.started = false
	b.gameOver = true
	b.touch()
	return false
}

func (b *Board) clearGrid() {
	b.grid = [BoardHeight][BoardWidth]Shape{}
	b.touch()
}

// ShapeAt returns the content of cell (x, y). Coordinates outside the
// board are a programming error and panic.
func (b *Board) ShapeAt(x, y int) Shape {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		panic(fmt.Sprintf("tetrix: cell (%d, %d) outside %dx%d board", x, y, BoardWidth, BoardHeight))
	}
	return b.grid[y][x]
}

// Current returns the falling piece. Its shape is NoShape when nothing is
// falling.
func (b *Board) Current() Piece { return b.cur }

// Anchor returns the board position of the falling piece.
func (b *Board) Anchor() (x, y int) { return b.curX, b.curY }

// Next returns the piece that spawns after the current one.
func (b *Board) Next() Piece { return b.next }

func (b *Board) Score() int { return b.score }
func (b *Board) Level() int { return b.level }
func (b *Board) LinesRemoved() int { return b.linesRemoved }
func (b *Board) PiecesDropped() int { return b.piecesDropped }
func (b *Board) IsStarted() bool { return b.started }
func (b *Board) IsPaused() bool { return b.paused }
func (b *Board) IsGameOver() bool { return b.gameOver }
func (b *Board) IsWaitingAfterLine() bool { return b.waitingAfterLine }

// Revision increases on every visible change and can be used to skip
// redundant redraws.
func (b *Board) Revision() uint64 { return b.revision }

// State returns the primary state of the board.
func (b *Board) State() State {
	switch {
	case b.gameOver:
		return StateGameOver
	case !b.started:
		return StateIdle
	case b.waitingAfterLine:
		return StateLineClearPause
	default:
		return StateRunning
	}
}
