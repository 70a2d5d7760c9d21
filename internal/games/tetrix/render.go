package tetrix

import (
	"fmt"

	"github.com/vovakirdan/tui-tetrix/internal/core"
)

const (
	cellWidth = 2 // Each board cell is two columns wide to look square

	boardBoxW = BoardWidth*cellWidth + 2 // +2 for borders
	boardBoxH = BoardHeight + 2
	panelGap  = 2
	panelW    = 16

	minScreenW = boardBoxW + panelGap + panelW
	minScreenH = boardBoxH
)

// Glyphs
const (
	BlockGlyph = '█'
	EmptyGlyph = '·'
)

// ShapeColor returns the display color of a shape.
func ShapeColor(s Shape) core.Color {
	switch s {
	case ZShape:
		return core.ColorRed
	case SShape:
		return core.ColorGreen
	case LineShape:
		return core.ColorBlue
	case TShape:
		return core.ColorYellow
	case SquareShape:
		return core.ColorMagenta
	case LShape:
		return core.ColorCyan
	case MirroredLShape:
		return core.ColorOrange
	default:
		return core.ColorGray
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - minScreenW) / 2
	boardY := (g.screenH - minScreenH) / 2

	g.renderBoard(dst, boardX, boardY)
	g.renderPanel(dst, boardX+boardBoxW+panelGap, boardY)
	g.renderOverlays(dst, boardX, boardY)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// drawCell paints board cell (x, y); row 0 is the bottom of the box.
func drawCell(dst *core.Screen, boardX, boardY, x, y int, s Shape) {
	sx := boardX + 1 + x*cellWidth
	sy := boardY + 1 + (BoardHeight - 1 - y)

	if s == NoShape {
		dst.SetWithColor(sx, sy, ' ', core.ColorDefault)
		dst.SetWithColor(sx+1, sy, EmptyGlyph, core.ColorGray)
		return
	}
	c := ShapeColor(s)
	dst.SetWithColor(sx, sy, BlockGlyph, c)
	dst.SetWithColor(sx+1, sy, BlockGlyph, c)
}

func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardBoxW, boardBoxH))

	b := g.board
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			drawCell(dst, boardX, boardY, x, y, b.ShapeAt(x, y))
		}
	}

	cur := b.Current()
	if cur.Shape() == NoShape {
		return
	}
	ax, ay := b.Anchor()
	for i := 0; i < 4; i++ {
		drawCell(dst, boardX, boardY, ax+cur.X(i), ay-cur.Y(i), cur.Shape())
	}
}

func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	b := g.board

	dst.DrawTextWithColor(x, y, "T E T R I X", core.ColorBrightWhite)
	dst.DrawText(x, y+2, "SCORE")
	dst.DrawTextWithColor(x, y+3, fmt.Sprintf("%d", b.Score()), core.ColorYellow)
	dst.DrawText(x, y+5, "LEVEL")
	dst.DrawTextWithColor(x, y+6, fmt.Sprintf("%d", b.Level()), core.ColorYellow)
	dst.DrawText(x, y+8, "LINES REMOVED")
	dst.DrawTextWithColor(x, y+9, fmt.Sprintf("%d", b.LinesRemoved()), core.ColorYellow)

	dst.DrawText(x, y+11, "NEXT")
	box := core.NewRect(x, y+12, 4*cellWidth+2, 6)
	dst.DrawBox(box)
	next := b.Next()
	if next.Shape() != NoShape {
		c := ShapeColor(next.Shape())
		for i := 0; i < 4; i++ {
			px := box.X + 1 + (next.X(i)-next.MinX())*cellWidth
			py := box.Y + 1 + (next.Y(i) - next.MinY())
			dst.SetWithColor(px, py, BlockGlyph, c)
			dst.SetWithColor(px+1, py, BlockGlyph, c)
		}
	}

	hints := []string{"←→ move", "↑↓ rotate", "space drop", "d  one line", "p  pause"}
	for i, h := range hints {
		dst.DrawTextWithColor(x, y+19+i, h, core.ColorGray)
	}
}

func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	b := g.board
	cx := boardX + boardBoxW/2
	cy := boardY + boardBoxH/2

	drawCentered := func(y int, text string, c core.Color) {
		x := cx - len([]rune(text))/2
		dst.DrawTextWithColor(x, y, text, c)
	}

	switch {
	case b.IsGameOver():
		drawCentered(cy-1, " GAME OVER ", core.ColorRed)
		drawCentered(cy+1, fmt.Sprintf(" Score: %d ", b.Score()), core.ColorBrightWhite)
		drawCentered(cy+2, " R restart ", core.ColorGray)
	case b.IsPaused():
		drawCentered(cy, " PAUSED ", core.ColorYellow)
	}
}
