package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/wordshot/internal/games/shooter"
	"github.com/vovakirdan/wordshot/internal/platform/tui"
	"github.com/vovakirdan/wordshot/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show saved runs",
	Long: `Display the best runs with their final sentence and perplexity.

Opens an interactive table when attached to a terminal; use --plain
for a text listing.

Examples:
  wordshot scores
  wordshot scores --plain
  wordshot scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text listing")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(viper.GetString("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(shooter.GameID); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, shooter.GameID, "Sentence Builder Shooter", width, height)
	}

	return printScores(store)
}

func printScores(store *storage.Store) error {
	runs, err := store.TopRuns(shooter.GameID, 10)
	if err != nil {
		return err
	}

	fmt.Println("Top Runs - Sentence Builder Shooter")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'wordshot play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-8s  %-16s  %s\n", "Rank", "Score", "PPL", "Date", "Sentence")
	fmt.Printf("  %-4s  %-5s  %-8s  %-16s  %s\n", "----", "-----", "---", "----", "--------")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-5d  %-8.2f  %-16s  %s\n",
			i+1, r.Score, r.Perplexity, r.CreatedAt.Format("2006-01-02 15:04"), r.Sentence)
	}

	stats, err := store.GetGameStats(shooter.GameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Words shot: %d\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, stats.TotalWords)
	}
	return nil
}
