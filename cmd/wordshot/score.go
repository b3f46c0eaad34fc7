package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordshot/internal/config"
)

var scoreFlags gameFlags

var scoreCmd = &cobra.Command{
	Use:   "score <sentence>",
	Short: "Print the perplexity of a sentence",
	Long: `Score a sentence with the bigram model the game uses and report
whether it would survive the perplexity threshold.

Words are lowercased and periods dropped, like the training corpus.
Sentences with fewer than two words always score 0.

Examples:
  wordshot score "the cat sat on the mat"
  wordshot score the dog ran in the park
  wordshot score --difficulty hard "i like to read books"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreFlags.register(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	cfg, err := scoreFlags.load()
	if err != nil {
		return err
	}

	lang := newLanguage(cfg.Language.Smoothing)
	sentence := normalizeSentence(strings.Join(args, " "))
	ppl := lang.Perplexity(sentence)

	fmt.Printf("sentence:   %s\n", sentence)
	fmt.Printf("perplexity: %.4f\n", ppl)
	fmt.Printf("threshold:  %.2f (%s)\n", cfg.Language.PerplexityThreshold, verdict(ppl, cfg))
	return nil
}

// normalizeSentence applies the corpus normalization to user input.
func normalizeSentence(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, ".", ""))
	return strings.Join(strings.Fields(s), " ")
}

func verdict(ppl float64, cfg config.ShooterConfig) string {
	if ppl > cfg.Language.PerplexityThreshold {
		return "game over"
	}
	return "ok"
}
