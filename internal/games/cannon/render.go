package cannon

import (
	"fmt"

	"github.com/vovakirdan/tui-tetrix/internal/core"
)

const (
	minScreenW = 40
	minScreenH = 16
)

// Glyphs
const (
	ShotGlyph    = 'o'
	TargetGlyph  = '█'
	BarrierGlyph = '▓'
	BarrelGlyph  = '•'
	CannonGlyph  = '▄'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		y := g.screenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)

	box := core.NewRect(0, 1, g.screenW, g.screenH-2)
	dst.DrawBox(box)
	v := viewport{
		f:    g.board.Field(),
		x0:   box.X + 1,
		y0:   box.Y + 1,
		cols: box.W - 2,
		rows: box.H - 2,
	}

	g.renderField(dst, v)
	g.renderOverlays(dst, box)

	dst.DrawTextWithColor(1, g.screenH-1, "↑↓ angle  ←→ force  space fire  p pause  r restart", core.ColorGray)
}

// viewport maps screen-oriented field units onto terminal cells.
type viewport struct {
	f          *Field
	x0, y0     int
	cols, rows int
}

func (v viewport) cell(x, y int) (int, int) {
	cx := v.x0 + x*v.cols/v.f.Width()
	cy := v.y0 + y*v.rows/v.f.Height()
	return cx, cy
}

// fill paints every cell covered by r, at least one.
func (v viewport) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	left, top := v.cell(r.X, r.Y)
	right, bottom := v.cell(r.Right()-1, r.Bottom()-1)
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			dst.SetWithColor(x, y, glyph, c)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	f := g.board.Field()
	dst.DrawTextWithColor(0, 0, "CANNON", core.ColorBrightWhite)
	hud := fmt.Sprintf("Shots: %2d  Hits: %2d  Angle: %2d  Force: %2d",
		g.board.ShotsLeft(), g.board.Hits(), f.Angle(), f.Force())
	dst.DrawText(g.screenW-len(hud), 0, hud)
}

func (g *Game) renderField(dst *core.Screen, v viewport) {
	f := v.f

	if f.HasBarrier() {
		v.fill(dst, f.BarrierRect(), BarrierGlyph, core.ColorGray)
	}
	v.fill(dst, f.TargetRect(), TargetGlyph, core.ColorRed)

	// Barrel from the pivot at the bottom-left corner to its tip.
	tipX, tipY := f.BarrelTip()
	for i := 0; i <= 4; i++ {
		px := int(tipX * float64(i) / 4)
		py := f.toScreenY(int(tipY * float64(i) / 4))
		x, y := v.cell(px, py)
		dst.SetWithColor(x, y, BarrelGlyph, core.ColorWhite)
	}
	x, y := v.cell(0, f.Height()-1)
	dst.SetWithColor(x, y, CannonGlyph, core.ColorBlue)
	dst.SetWithColor(x+1, y, CannonGlyph, core.ColorBlue)

	if f.IsShooting() {
		cx, cy := f.ShotRect().Center()
		if cx >= 0 && cx < f.Width() && cy >= 0 && cy < f.Height() {
			sx, sy := v.cell(cx, cy)
			dst.SetWithColor(sx, sy, ShotGlyph, core.ColorYellow)
		}
	}
}

func (g *Game) renderOverlays(dst *core.Screen, box core.Rect) {
	cx, cy := box.Center()
	drawCentered := func(y int, text string, c core.Color) {
		dst.DrawTextWithColor(cx-len([]rune(text))/2, y, text, c)
	}

	switch {
	case g.board.IsGameOver():
		drawCentered(cy-1, " GAME OVER ", core.ColorRed)
		drawCentered(cy+1, fmt.Sprintf(" Hits: %d ", g.board.Hits()), core.ColorBrightWhite)
		drawCentered(cy+2, " R restart ", core.ColorGray)
	case g.paused:
		drawCentered(cy, " PAUSED ", core.ColorYellow)
	}
}
