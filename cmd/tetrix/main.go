// tetrix plays falling-block and artillery games in the terminal, locally
// or over SSH.
//
// Usage:
//
//	tetrix list              - List available games
//	tetrix play [game]       - Play a game (default: tetrix)
//	tetrix menu              - Pick games interactively
//	tetrix serve             - Start SSH server for remote play
//	tetrix scores [game]     - Show high scores
//	tetrix config <game>     - Print the default config of a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetrix/scores.db)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetrix/internal/config"
	"github.com/vovakirdan/tui-tetrix/internal/core"
	"github.com/vovakirdan/tui-tetrix/internal/games/cannon"
	"github.com/vovakirdan/tui-tetrix/internal/games/tetrix"
	"github.com/vovakirdan/tui-tetrix/internal/storage"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagLog    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetrix",
	Short: "Tetrix - falling blocks in your terminal",
	Long: `Tetrix is a terminal game platform built around the classic
falling-block game, with a cannon game on the side.

Examples:
  tetrix play
  tetrix play cannon --difficulty hard
  tetrix menu
  tetrix serve --ssh :2222
  tetrix scores tetrix`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetrix/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagLog, "log", false, "Write a debug log to ~/.tetrix/tetrix.log")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. A failure is a warning: games run
// without high scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: closing scores database: %v\n", err)
	}
}

// applyGameSettings hands --config and --difficulty to the game packages
// before any game is created. configPath only applies to gameID.
func applyGameSettings(gameID, configPath, difficulty string) error {
	if _, err := config.ParsePreset(difficulty); err != nil {
		return err
	}
	switch gameID {
	case "tetrix":
		tetrix.SetConfigPath(configPath)
	case "cannon":
		cannon.SetConfigPath(configPath)
	}
	tetrix.SetDifficultyPreset(difficulty)
	cannon.SetDifficultyPreset(difficulty)
	return nil
}

// newLogger returns the play loop logger. Without --log it is nil and the
// TUI discards log output, since stdout belongs to the game.
func newLogger() (*log.Logger, func(), error) {
	if !flagLog {
		return nil, func() {}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	dir := filepath.Join(home, ".tetrix")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "tetrix.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "tetrix",
	})
	return logger, func() { f.Close() }, nil
}
