package tetrix

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

// RulesFromConfig converts the YAML config into board rules.
func RulesFromConfig(cfg config.TetrixConfig) Rules {
	return Rules{
		StartLevel:     cfg.Levels.StartLevel,
		PiecesPerLevel: cfg.Levels.PiecesPerLevel,
		DropBonus:      cfg.Scoring.DropBonus,
		LinePoints:     cfg.Scoring.LinePoints,
		BaseInterval:   time.Duration(cfg.Timing.BaseIntervalMS) * time.Millisecond,
		LineClearPause: time.Duration(cfg.Timing.LineClearPauseMS) * time.Millisecond,
	}
}

func loadRules() Rules {
	cfg, err := config.LoadTetrix(configPath)
	if err != nil {
		cfg = config.DefaultTetrixConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrixPreset(&cfg, difficultyPreset)
	}
	return RulesFromConfig(cfg)
}

// Game adapts a Board to the arcade loop. Each platform tick advances the
// board's timer by one tick interval, so gravity runs in simulated time.
type Game struct {
	board *Board
	timer *core.StepTimer
	rules Rules

	tickDur time.Duration
	tick    uint64

	screenW  int
	screenH  int
	tooSmall bool

	pending []core.Event
}

// New creates a Tetrix game that loads its rules on Reset.
func New() *Game {
	return &Game{}
}

// NewWithRules creates a Tetrix game with fixed rules, bypassing config files.
func NewWithRules(rules Rules) *Game {
	return &Game{rules: rules}
}

func init() {
	registry.Register("tetrix", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetrix" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetrix" }

// Board exposes the underlying board, mainly for tests and snapshots.
func (g *Game) Board() *Board { return g.board }

// Reset starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.rules == (Rules{}) {
		g.rules = loadRules()
	}

	g.tick = 0
	g.tickDur = cfg.TickInterval()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
	g.pending = nil

	g.timer = &core.StepTimer{}
	g.board = NewBoard(rand.New(rand.NewSource(cfg.Seed)), g.timer, g.rules)
	g.board.Subscribe(g.collect)
	g.board.Start()
}

// collect turns board notifications into platform events.
func (g *Game) collect(e Event) {
	switch ev := e.(type) {
	case ScoreChanged:
		g.pending = append(g.pending, core.Event{Name: "score", Value: ev.Score})
	case LevelChanged:
		g.pending = append(g.pending, core.Event{Name: "level", Value: ev.Level})
	case LinesRemovedChanged:
		g.pending = append(g.pending, core.Event{Name: "lines", Value: ev.Lines})
	}
}

// Resize follows a terminal resize, keeping the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step applies the frame's input and advances the timer by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Events raised by Start are reported with the first tick.
	events := g.pending
	g.pending = nil

	if g.tooSmall || g.board.IsGameOver() {
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.board.Pause()
	}

	if !g.board.IsPaused() {
		if in.Has(core.ActionLeft) {
			g.board.MoveLeft()
		}
		if in.Has(core.ActionRight) {
			g.board.MoveRight()
		}
		if in.Has(core.ActionUp) {
			g.board.RotateLeft()
		}
		if in.Has(core.ActionDown) {
			g.board.RotateRight()
		}
		if in.Has(core.ActionSecondary) {
			g.board.SoftDrop()
		}
		if in.Has(core.ActionPrimary) {
			g.board.HardDrop()
		}
		g.timer.Advance(g.tickDur, g.board.Tick)
	}

	events = append(events, g.pending...)
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		Level:    g.board.Level(),
		Lines:    g.board.LinesRemoved(),
		GameOver: g.board.IsGameOver(),
		Paused:   g.board.IsPaused(),
	}
}
