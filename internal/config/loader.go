package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetrix loads Tetrix configuration.
// Search order: customPath -> ~/.tetrix/configs/tetrix.yaml -> ./configs/tetrix.yaml -> embedded default
func LoadTetrix(customPath string) (TetrixConfig, error) {
	return load("tetrix", customPath, DefaultTetrixConfig)
}

// LoadCannon loads Cannon configuration.
// Search order: customPath -> ~/.tetrix/configs/cannon.yaml -> ./configs/cannon.yaml -> embedded default
func LoadCannon(customPath string) (CannonConfig, error) {
	return load("cannon", customPath, DefaultCannonConfig)
}

// load decodes the first config found for gameID over the built-in
// defaults, so a file only needs the keys it changes. Only an explicit
// customPath is allowed to fail; broken files elsewhere are skipped.
func load[T any](gameID, customPath string, defaults func() T) (T, error) {
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{filepath.Join("configs", filename)}
	if p := userConfigPath(filename); p != "" {
		candidates = append([]string{p}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if data := GetDefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), nil // Fallback to hardcoded if embed is broken
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetrix", "configs", filename)
}
