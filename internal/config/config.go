// Package config loads per-game YAML configuration and applies difficulty
// presets.
package config

import "fmt"

// TetrixConfig contains all configuration for Tetrix.
type TetrixConfig struct {
	Levels  TetrixLevels  `yaml:"levels"`
	Scoring TetrixScoring `yaml:"scoring"`
	Timing  TetrixTiming  `yaml:"timing"`
}

// TetrixLevels controls the starting level and level progression.
type TetrixLevels struct {
	StartLevel     int `yaml:"start_level"`
	PiecesPerLevel int `yaml:"pieces_per_level"` // 0 disables progression
}

// TetrixScoring defines the points awarded for drops and cleared rows.
type TetrixScoring struct {
	DropBonus  int `yaml:"drop_bonus"`
	LinePoints int `yaml:"line_points"`
}

// TetrixTiming defines the gravity and line-clear delays.
type TetrixTiming struct {
	BaseIntervalMS   int `yaml:"base_interval_ms"` // Divided by 1+level
	LineClearPauseMS int `yaml:"line_clear_pause_ms"`
}

// CannonConfig contains all configuration for the Cannon game.
type CannonConfig struct {
	Field    CannonField    `yaml:"field"`
	Physics  CannonPhysics  `yaml:"physics"`
	Barrel   CannonBarrel   `yaml:"barrel"`
	Gameplay CannonGameplay `yaml:"gameplay"`
}

// CannonField is the logical size of the shooting range.
type CannonField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CannonPhysics defines the shot trajectory.
type CannonPhysics struct {
	Gravity   float64 `yaml:"gravity"`
	TimeScale float64 `yaml:"time_scale"` // Shot clock steps per unit of flight time
	StepMS    int     `yaml:"step_ms"`    // Simulated milliseconds per shot clock step
}

// CannonBarrel defines the aiming limits.
type CannonBarrel struct {
	MinAngle   int `yaml:"min_angle"`
	MaxAngle   int `yaml:"max_angle"`
	StartAngle int `yaml:"start_angle"`
	MinForce   int `yaml:"min_force"`
	MaxForce   int `yaml:"max_force"`
	StartForce int `yaml:"start_force"`
}

// CannonGameplay defines the round rules.
type CannonGameplay struct {
	Shots   int  `yaml:"shots"`
	Barrier bool `yaml:"barrier"`
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyTetrixPreset adjusts the config for a difficulty preset.
// Presets pick the starting level; fixed keeps the configured level and
// turns off progression.
func ApplyTetrixPreset(cfg *TetrixConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Levels.StartLevel = 0
	case DifficultyNormal:
		cfg.Levels.StartLevel = 1
	case DifficultyHard:
		cfg.Levels.StartLevel = 5
	case DifficultyFixed:
		cfg.Levels.PiecesPerLevel = 0
	}
}

// ApplyCannonPreset adjusts the config for a difficulty preset.
func ApplyCannonPreset(cfg *CannonConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Shots = 20
		cfg.Gameplay.Barrier = false
	case DifficultyNormal:
		cfg.Gameplay.Shots = 15
		cfg.Gameplay.Barrier = true
	case DifficultyHard:
		cfg.Gameplay.Shots = 10
		cfg.Gameplay.Barrier = true
	}
}
