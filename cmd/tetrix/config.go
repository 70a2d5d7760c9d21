package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetrix/internal/config"
	"github.com/vovakirdan/tui-tetrix/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default config of a game",
	Long: `Print the built-in YAML config of a game. Save it as
~/.tetrix/configs/<game>.yaml or pass it with --config to customize play.

Examples:
  tetrix config tetrix > ~/.tetrix/configs/tetrix.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	gameID := args[0]
	data := config.GetDefaultYAML(gameID)
	if !registry.Exists(gameID) || data == nil {
		fmt.Fprintf(os.Stderr, "Error: no config for game %q\n", gameID)
		os.Exit(1)
	}
	cmd.OutOrStdout().Write(data)
}
