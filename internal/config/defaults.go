package config

import (
	_ "embed"
)

//go:embed defaults/tetrix.yaml
var defaultTetrixYAML []byte

//go:embed defaults/cannon.yaml
var defaultCannonYAML []byte

// DefaultTetrixConfig returns the built-in Tetrix configuration.
func DefaultTetrixConfig() TetrixConfig {
	return TetrixConfig{
		Levels: TetrixLevels{
			StartLevel:     1,
			PiecesPerLevel: 25,
		},
		Scoring: TetrixScoring{
			DropBonus:  7,
			LinePoints: 10,
		},
		Timing: TetrixTiming{
			BaseIntervalMS:   1000,
			LineClearPauseMS: 500,
		},
	}
}

// DefaultCannonConfig returns the built-in Cannon configuration.
func DefaultCannonConfig() CannonConfig {
	return CannonConfig{
		Field: CannonField{
			Width:  400,
			Height: 300,
		},
		Physics: CannonPhysics{
			Gravity:   4.0,
			TimeScale: 20.0,
			StepMS:    5,
		},
		Barrel: CannonBarrel{
			MinAngle:   5,
			MaxAngle:   70,
			StartAngle: 60,
			MinForce:   10,
			MaxForce:   50,
			StartForce: 25,
		},
		Gameplay: CannonGameplay{
			Shots:   15,
			Barrier: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game, or nil.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetrix":
		return defaultTetrixYAML
	case "cannon":
		return defaultCannonYAML
	default:
		return nil
	}
}
