package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetrix/internal/registry"
	"github.com/vovakirdan/tui-tetrix/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores of a game, or a summary of every game when
no game is given.

Examples:
  tetrix scores
  tetrix scores tetrix
  tetrix scores cannon --limit 5
  tetrix scores tetrix --player alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show scores of this player")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer closeStore(store)

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if err := printSummary(out, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetrix list' to see available games.")
		os.Exit(1)
	}
	if err := printTopScores(out, store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printTopScores(out io.Writer, store *storage.Store, gameID string) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(gameID, flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", registry.Title(gameID))
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'tetrix play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %7s  %5s  %5s  %s\n", "Rank", "Player", "Score", "Level", "Lines", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %7s  %5s  %5s  %s\n", "----", "------", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-12s  %7d  %5d  %5d  %s\n",
			i+1, e.Player, e.Score, e.Level, e.Lines, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(out io.Writer, store *storage.Store) error {
	stats, err := store.AllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Score summary")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-10s  %6s  %7s  %8s  %5s  %s\n", "Game", "Games", "Best", "Average", "Level", "Last played")
	fmt.Fprintf(out, "  %-10s  %6s  %7s  %8s  %5s  %s\n", "----", "-----", "----", "-------", "-----", "-----------")
	for _, g := range registry.List() {
		st, ok := stats[g.ID]
		if !ok {
			fmt.Fprintf(out, "  %-10s  %6d  %7s  %8s  %5s  %s\n", g.ID, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Fprintf(out, "  %-10s  %6d  %7d  %8.1f  %5d  %s\n",
			g.ID, st.GamesCount, st.HighScore, st.AvgScore, st.BestLevel, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
