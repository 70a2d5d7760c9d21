package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetrix/internal/platform/tui"
	"github.com/vovakirdan/tui-tetrix/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing a game directly. Without an argument, plays tetrix.

Tetrix controls:
  Left/Right   - Move piece
  Up/Down      - Rotate left/right
  Space        - Drop
  D            - One row down

Cannon controls:
  Up/Down      - Raise/lower barrel
  Left/Right   - Less/more force
  Space        - Fire

Common:
  P            - Pause
  R            - Restart
  Ctrl+S       - Screenshot to ~/.tetrix/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Tetrix starts at level 0; cannon has 20 shots and no barrier
  normal - Tetrix starts at level 1; cannon has 15 shots
  hard   - Tetrix starts at level 5; cannon has 10 shots
  fixed  - Tetrix never levels up

Examples:
  tetrix play
  tetrix play tetrix --difficulty hard
  tetrix play cannon --seed 42
  tetrix play tetrix --config ./my-tetrix.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "tetrix"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetrix list' to see available games.")
		os.Exit(1)
	}
	if err := applyGameSettings(gameID, flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store := openStore()

	_, runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
	})

	closeStore(store)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
