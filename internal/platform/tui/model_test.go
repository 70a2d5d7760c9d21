package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetrix/internal/core"
	"github.com/vovakirdan/tui-tetrix/internal/storage"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets []core.RuntimeConfig
	frames []core.InputFrame
	state  core.GameState
	events []core.Event
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state, Events: g.events}
}
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "FAKE GAME") }
func (g *fakeGame) State() core.GameState { return g.state }

// resizableGame also follows terminal resizes.
type resizableGame struct {
	fakeGame
	sizes [][2]int
}

func (g *resizableGame) Resize(w, h int) { g.sizes = append(g.sizes, [2]int{w, h}) }

func newTestModel(game *fakeGame, opts Options) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(game, cfg, opts)
	m.Init()
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg{Gen: m.gen})
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelKeysReachGameOnTick(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, runeKey('d'))
	m = tick(t, m)
	m = tick(t, m)

	if len(game.frames) != 2 {
		t.Fatalf("game stepped %d times, expected 2", len(game.frames))
	}
	if !game.frames[0].Has(core.ActionLeft) || !game.frames[0].Has(core.ActionSecondary) {
		t.Errorf("first frame = %v, expected Left and Secondary", game.frames[0].Actions)
	}
	if !game.frames[1].Empty() {
		t.Errorf("second frame = %v, expected empty", game.frames[1].Actions)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, Options{})

	m, _ = send(t, m, TickMsg{Gen: m.gen + 1000})
	if len(game.frames) != 0 {
		t.Errorf("stale tick stepped the game %d times", len(game.frames))
	}
	tick(t, m)
	if len(game.frames) != 1 {
		t.Errorf("current tick stepped the game %d times, expected 1", len(game.frames))
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := newTestModel(&fakeGame{}, Options{})

	quit, cmd := send(t, m, runeKey('q'))
	if !quit.IsQuitting() || quit.BackToMenu() || !isQuit(cmd) {
		t.Errorf("q: quitting=%v back=%v quitCmd=%v", quit.IsQuitting(), quit.BackToMenu(), isQuit(cmd))
	}

	back, cmd := send(t, m, runeKey('b'))
	if back.IsQuitting() || !back.BackToMenu() || !isQuit(cmd) {
		t.Errorf("b: quitting=%v back=%v quitCmd=%v", back.IsQuitting(), back.BackToMenu(), isQuit(cmd))
	}
	if back.View() != "" {
		t.Error("View() after leaving should be empty")
	}
}

func TestModelRestartKeepsFixedSeed(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, Options{})

	m, _ = send(t, m, runeKey('r'))
	tick(t, m)

	if len(game.resets) != 2 {
		t.Fatalf("Reset called %d times, expected 2", len(game.resets))
	}
	if game.resets[1].Seed != 7 {
		t.Errorf("restart seed = %d, expected the fixed seed 7", game.resets[1].Seed)
	}
	if len(game.frames) != 0 {
		t.Errorf("restart tick also stepped the game")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	m := newTestModel(game, Options{Store: store, Player: "alice"})
	game.state = core.GameState{Score: 42, Level: 3, Lines: 7, GameOver: true}

	m = tick(t, m)
	tick(t, m)

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	s := scores[0]
	if s.Player != "alice" || s.Score != 42 || s.Level != 3 || s.Lines != 7 {
		t.Errorf("saved %+v", s)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	m := newTestModel(game, Options{Store: store})
	game.state = core.GameState{GameOver: true}
	tick(t, m)

	if hs, _ := store.HighScore("fake"); hs != 0 {
		t.Errorf("HighScore() = %d, expected nothing saved", hs)
	}
}

func TestModelResize(t *testing.T) {
	plain := &fakeGame{}
	m := newTestModel(plain, Options{})
	send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if len(plain.resets) != 2 || plain.resets[1].ScreenW != 100 {
		t.Errorf("plain game resets = %+v, expected a reset at 100 wide", plain.resets)
	}

	rg := &resizableGame{}
	cfg := core.DefaultConfig()
	rm := NewModel(rg, cfg, Options{})
	rm.Init()
	send(t, rm, tea.WindowSizeMsg{Width: 90, Height: 30})
	if len(rg.resets) != 1 {
		t.Errorf("resizable game was reset %d times, expected only by Init", len(rg.resets))
	}
	if len(rg.sizes) != 1 || rg.sizes[0] != [2]int{90, 30} {
		t.Errorf("Resize calls = %v", rg.sizes)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{}, Options{})
	if !strings.Contains(m.View(), "FAKE GAME") {
		t.Errorf("View() = %q, expected the rendered game", m.View())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(12, 2)
	scr.DrawTextWithColor(0, 0, "RED", core.ColorRed)
	scr.DrawText(4, 0, "plain")
	scr.DrawTextWithColor(0, 1, "cyan", core.ColorCyan)

	out := RenderScreen(scr)
	for _, want := range []string{"RED", "plain", "cyan"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q in %q", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", n)
	}
}
