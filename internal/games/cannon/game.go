// Package cannon implements a small artillery game: aim a cannon, set the
// force and hit a randomly placed target with a limited supply of shots.
package cannon

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetrix/internal/config"
	"github.com/vovakirdan/tui-tetrix/internal/core"
	"github.com/vovakirdan/tui-tetrix/internal/registry"
)

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	if p, err := config.ParsePreset(preset); err == nil {
		difficultyPreset = p
	}
}

// Game adapts a cannon Board to the arcade loop. The shot clock runs on
// simulated time: each platform tick advances it by one tick interval.
type Game struct {
	cfg       config.CannonConfig
	hasConfig bool

	board *Board
	clock *core.StepTimer

	tickDur time.Duration
	tick    uint64

	screenW  int
	screenH  int
	tooSmall bool
	paused   bool

	pending []core.Event
}

// New creates a Cannon game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Cannon game with a fixed config, bypassing files.
func NewWithConfig(cfg config.CannonConfig) *Game {
	return &Game{cfg: cfg, hasConfig: true}
}

func init() {
	registry.Register("cannon", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "cannon" }

// Title returns the display name.
func (g *Game) Title() string { return "Cannon" }

// Board exposes the underlying board.
func (g *Game) Board() *Board { return g.board }

func loadConfig() config.CannonConfig {
	cfg, err := config.LoadCannon(configPath)
	if err != nil {
		cfg = config.DefaultCannonConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCannonPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset starts a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.hasConfig {
		g.cfg = loadConfig()
		g.hasConfig = true
	}

	g.tick = 0
	g.tickDur = cfg.TickInterval()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
	g.paused = false
	g.pending = nil

	g.clock = &core.StepTimer{}
	field := NewField(g.cfg, rand.New(rand.NewSource(cfg.Seed)))
	g.board = NewBoard(field, g.cfg.Gameplay.Shots)
	g.board.Subscribe(g.collect)

	field.SetAngle(g.cfg.Barrel.StartAngle)
	field.SetForce(g.cfg.Barrel.StartForce)
}

func (g *Game) collect(e Event) {
	var ev core.Event
	switch e := e.(type) {
	case AngleChanged:
		ev = core.Event{Name: "angle", Value: e.Angle}
	case ForceChanged:
		ev = core.Event{Name: "force", Value: e.Force}
	case Hit:
		ev = core.Event{Name: "hit", Value: 1}
	case Missed:
		ev = core.Event{Name: "miss", Value: 1}
	case CanShoot:
		ev = core.Event{Name: "can_shoot"}
		if e.Can {
			ev.Value = 1
		}
	case HitsChanged:
		ev = core.Event{Name: "score", Value: e.Hits}
	case ShotsLeftChanged:
		ev = core.Event{Name: "shots", Value: e.Shots}
	default:
		return
	}
	g.pending = append(g.pending, ev)
}

// Resize follows a terminal resize, keeping the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step applies aiming input, fires on the primary action and advances the
// shot clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	events := g.pending
	g.pending = nil

	if g.tooSmall || g.board.IsGameOver() {
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	field := g.board.Field()
	barrel := g.cfg.Barrel

	if in.Has(core.ActionUp) {
		field.SetAngle(field.Angle() + 1)
	}
	if in.Has(core.ActionDown) {
		field.SetAngle(field.Angle() - 1)
	}
	if in.Has(core.ActionRight) {
		field.SetForce(core.Clamp(field.Force()+1, barrel.MinForce, barrel.MaxForce))
	}
	if in.Has(core.ActionLeft) {
		field.SetForce(core.Clamp(field.Force()-1, barrel.MinForce, barrel.MaxForce))
	}
	if in.Has(core.ActionPrimary) && g.board.Fire() {
		g.clock.Start(time.Duration(g.cfg.Physics.StepMS) * time.Millisecond)
	}

	g.clock.Advance(g.tickDur, func() {
		field.MoveShot()
		if !field.IsShooting() {
			g.clock.Stop()
		}
	})

	events = append(events, g.pending...)
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state. The score is the number of hits.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Hits(),
		GameOver: g.board.IsGameOver(),
		Paused:   g.paused,
	}
}
