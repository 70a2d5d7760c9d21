package cannon

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-tetrix/internal/config"
	"github.com/vovakirdan/tui-tetrix/internal/core"
	"github.com/vovakirdan/tui-tetrix/internal/registry"
)

func newTestGame(seed int64, shots int) *Game {
	cfg := config.DefaultCannonConfig()
	cfg.Gameplay.Shots = shots
	g := NewWithConfig(cfg)
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("cannon")
	if err != nil {
		t.Fatalf("Create(cannon) error = %v", err)
	}
	if g.ID() != "cannon" {
		t.Errorf("ID() = %q, expected cannon", g.ID())
	}
}

func TestResetAppliesStartAim(t *testing.T) {
	g := newTestGame(1, 15)
	res := g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.Angle != 60 || snap.Force != 25 {
		t.Errorf("start aim = (%d, %d), expected (60, 25)", snap.Angle, snap.Force)
	}

	names := make(map[string]int)
	for _, e := range res.Events {
		names[e.Name] = e.Value
	}
	if names["angle"] != 60 || names["force"] != 25 {
		t.Errorf("first Step events = %v", res.Events)
	}
}

func TestAimingInput(t *testing.T) {
	g := newTestGame(1, 15)

	g.Step(core.NewInputFrame(core.ActionUp, core.ActionRight))
	if s := g.Snapshot(); s.Angle != 61 || s.Force != 26 {
		t.Errorf("aim = (%d, %d), expected (61, 26)", s.Angle, s.Force)
	}

	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame(core.ActionDown, core.ActionLeft))
	}
	if s := g.Snapshot(); s.Angle != 5 || s.Force != 10 {
		t.Errorf("aim after holding down/left = (%d, %d), expected (5, 10)", s.Angle, s.Force)
	}
}

func TestShotsRunOutAndEndGame(t *testing.T) {
	g := newTestGame(2, 2)

	// Force 10 at 60 degrees lands well short of any target.
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame(core.ActionLeft))
	}

	for shot := 0; shot < 2; shot++ {
		g.Step(core.NewInputFrame(core.ActionPrimary))
		if !g.Snapshot().Shooting {
			t.Fatalf("shot %d not in flight", shot)
		}
		for i := 0; i < 300 && g.Snapshot().Shooting; i++ {
			g.Step(core.NewInputFrame(core.ActionPrimary))
		}
		if g.Snapshot().Shooting {
			t.Fatalf("shot %d still in flight", shot)
		}
	}

	st := g.State()
	if !st.GameOver || st.Score != 0 {
		t.Errorf("State() = %+v, expected game over with 0 hits", st)
	}
}

func TestDeterminism(t *testing.T) {
	a := newTestGame(77, 15)
	b := newTestGame(77, 15)

	for i := 0; i < 2000; i++ {
		var in core.InputFrame
		switch {
		case i%120 == 0:
			in = core.NewInputFrame(core.ActionPrimary)
		case i%7 == 0:
			in = core.NewInputFrame(core.ActionUp)
		case i%5 == 0:
			in = core.NewInputFrame(core.ActionRight)
		default:
			in = core.NewInputFrame()
		}
		a.Step(in)
		b.Step(in)
		if diff := cmp.Diff(a.Snapshot(), b.Snapshot()); diff != "" {
			t.Fatalf("tick %d: games diverged (-a +b):\n%s", i, diff)
		}
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(3, 15)
	g.Step(core.NewInputFrame(core.ActionPrimary))
	count := g.Snapshot().TimerCount

	if res := g.Step(core.NewInputFrame(core.ActionPause)); !res.State.Paused {
		t.Fatal("State.Paused = false after pause")
	}
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(core.ActionUp))
	}
	if s := g.Snapshot(); s.TimerCount != count || s.Angle != 60 {
		t.Errorf("paused game moved: count %d -> %d, angle %d", count, s.TimerCount, s.Angle)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(4, 15)
	g.Step(core.NewInputFrame(core.ActionPrimary))

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"CANNON", "Shots: 14", "Angle: 60", string(TargetGlyph), string(BarrierGlyph)} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	cfg := config.DefaultCannonConfig()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60})

	scr := core.NewScreen(20, 8)
	g.Render(scr)
	if !strings.Contains(scr.String(), "too small") {
		t.Errorf("expected too-small message, got:\n%s", scr.String())
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := newTestGame(2, 15)
	g.Step(core.NewInputFrame(core.ActionPrimary))

	var _ registry.Resizer = g
	g.Resize(20, 8)
	g.Resize(100, 30)
	if got := g.Board().ShotsLeft(); got != 14 {
		t.Errorf("ShotsLeft() after resize = %d, expected 14", got)
	}
	scr := core.NewScreen(100, 30)
	g.Render(scr)
	if strings.Contains(scr.String(), "too small") {
		t.Error("too-small message shown after growing back")
	}
}
